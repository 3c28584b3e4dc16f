package transactor

import (
	"github.com/insolar/ledgerstate/deltaset"
	"github.com/insolar/ledgerstate/ledgerstore"
	"github.com/insolar/ledgerstate/log"
	"github.com/insolar/ledgerstate/sle"
	"github.com/insolar/ledgerstate/ter"
)

var logger = log.Global()

// dispatchFailMsg traces a transaction that did not reach its handler.
type dispatchFailMsg struct {
	*log.Msg `txt:"transaction rejected before dispatch"`
	TxID sle.Index
	Type TxType
	Code string
}

// Dispatch runs the full pipeline for tx against view and
// returns the delta-set that accumulated its staged changes together with
// the outcome code. The caller applies the returned set to the store only
// if code.Persists — a rejected transaction's staged mutations (if any)
// are simply discarded, since the delta-set never persists itself.
func Dispatch(view ledgerstore.View, tx *Tx, params deltaset.Params, baseFee int64) (*deltaset.Set, ter.Code) {
	set := deltaset.New(view, tx.ID, view.GetLedgerSeq(), params)

	if code := preCheck(tx, params.NoCheckSign); code != ter.TesSUCCESS {
		logger.Trace(dispatchFailMsg{TxID: tx.ID, Type: tx.Type, Code: code.Name()})
		return set, code
	}

	acct := set.GetAccountRoot(tx.Account)
	if acct == nil {
		logger.Trace(dispatchFailMsg{TxID: tx.ID, Type: tx.Type, Code: ter.TerNO_ACCOUNT.Name()})
		return set, ter.TerNO_ACCOUNT
	}

	if code := checkSeq(set, tx, acct); code != ter.TesSUCCESS {
		logger.Trace(dispatchFailMsg{TxID: tx.ID, Type: tx.Type, Code: code.Name()})
		return set, code
	}

	if code := payFee(set, tx, acct, baseFee); code != ter.TesSUCCESS {
		set.EntryModify(acct)
		logger.Trace(dispatchFailMsg{TxID: tx.ID, Type: tx.Type, Code: code.Name()})
		return set, code
	}

	if code := checkSig(tx, acct); code != ter.TesSUCCESS {
		logger.Trace(dispatchFailMsg{TxID: tx.ID, Type: tx.Type, Code: code.Name()})
		return set, code
	}

	set.EntryModify(acct)

	code := dispatchHandler(set, tx, acct)
	return set, code
}

func dispatchHandler(set *deltaset.Set, tx *Tx, acct *sle.AccountRoot) ter.Code {
	switch tx.Type {
	case TypePayment:
		return Payment(set, tx, acct)
	case TypeSetTrust:
		return SetTrust(set, tx, acct)
	case TypeCreateOffer:
		return CreateOffer(set, tx, acct)
	case TypeCancelOffer:
		return CancelOffer(set, tx, acct)
	case TypeSetAccount:
		return SetAccount(set, tx, acct)
	case TypeAddReferee:
		return AddReferee(set, tx, acct)
	case TypeSetRegularKey:
		return SetRegularKey(set, tx, acct)
	case TypeAddWallet:
		return AddWallet(set, tx, acct)
	case TypeChange:
		return Change(set, tx, acct)
	case TypeDividend:
		return Dividend(set, tx, acct)
	case TypeCreateTicket:
		return CreateTicket(set, tx, acct)
	case TypeCancelTicket:
		return CancelTicket(set, tx, acct)
	case TypeSetNickname:
		return SetNickname(set, tx, acct)
	default:
		return ter.TemUNKNOWN
	}
}

// preCheck implements pipeline step 1.
func preCheck(tx *Tx, noCheckSign bool) ter.Code {
	if tx.Account == sle.ZeroAccount {
		return ter.TemBAD_SRC_ACCOUNT
	}
	if !noCheckSign && !tx.Verified {
		return ter.TemINVALID
	}
	return ter.TesSUCCESS
}

// checkSeq implements pipeline step 3, bumping the account's
// sequence and AccountTxnID only once every precondition holds.
func checkSeq(set *deltaset.Set, tx *Tx, acct *sle.AccountRoot) ter.Code {
	switch {
	case tx.Sequence < acct.Sequence:
		if set.HasTransaction(tx.ID) {
			return ter.TefALREADY
		}
		return ter.TefPAST_SEQ
	case tx.Sequence > acct.Sequence:
		return ter.TerPRE_SEQ
	}

	if tx.PreviousTxnID != nil && *tx.PreviousTxnID != acct.AccountTxnID {
		return ter.TefWRONG_PRIOR
	}
	if tx.LastLedgerSequence != nil && set.LedgerSeq() > *tx.LastLedgerSequence {
		return ter.TefMAX_LEDGER
	}

	acct.Sequence++
	acct.AccountTxnID = tx.ID
	return ter.TesSUCCESS
}

// payFee implements pipeline step 4.
func payFee(set *deltaset.Set, tx *Tx, acct *sle.AccountRoot, baseFee int64) ter.Code {
	params := set.Params()
	feeDue := set.ScaleFeeLoad(baseFee, params.Admin)

	if tx.Fee < feeDue && params.OpenLedger {
		return ter.TelINSUF_FEE_P
	}
	if tx.Fee > acct.Balance {
		if !params.OpenLedger {
			acct.Balance = 0
			return ter.TecINSUFF_FEE
		}
		return ter.TerINSUF_FEE_B
	}

	acct.Balance -= tx.Fee
	return ter.TesSUCCESS
}

// checkSig implements pipeline step 5, without real signature
// cryptography: it trusts tx.Verified and tests the resolved
// signing account against the master and regular keys.
func checkSig(tx *Tx, acct *sle.AccountRoot) ter.Code {
	if tx.SigningPubKeyAccount == acct.Account {
		if acct.Flags&sle.LsfDisableMaster != 0 {
			return ter.TefMASTER_DISABLED
		}
		return ter.TesSUCCESS
	}
	if acct.HasRegularKey && tx.SigningPubKeyAccount == acct.RegularKey {
		return ter.TesSUCCESS
	}
	if acct.HasRegularKey {
		return ter.TefBAD_AUTH
	}
	return ter.TemBAD_AUTH_MASTER
}
