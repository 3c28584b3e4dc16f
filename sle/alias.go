package sle

import "github.com/insolar/ledgerstate/ledgerkey"

// Index, AccountID, and CurrencyCode are re-exported from ledgerkey so that
// callers of sle never need to import ledgerkey directly; the split only
// exists to break the sle/amount import cycle (sle entries embed
// amount.Value fields; amount needs AccountID/CurrencyCode for issued
// amounts).
type (
	Index = ledgerkey.Index
	AccountID = ledgerkey.AccountID
	CurrencyCode = ledgerkey.CurrencyCode
)

var (
	ZeroIndex = ledgerkey.ZeroIndex
	ZeroAccount = ledgerkey.ZeroAccount
	ZeroCurrency = ledgerkey.ZeroCurrency
	XRPCurrency = ledgerkey.XRPCurrency
	VBCCurrency = ledgerkey.VBCCurrency
)

var DirNodeIndex = ledgerkey.DirNodeIndex
var TrustLineIndex = ledgerkey.TrustLineIndex
var BookDirIndex = ledgerkey.BookDirIndex
