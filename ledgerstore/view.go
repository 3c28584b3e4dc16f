// Package ledgerstore implements the parent-ledger read interface consumed
// by deltaset.Set and the single commit hook through which a
// delta-set's staged changes become visible. Everything beyond that — the
// real persistent SHAMap store — is an explicit Non-goal.
package ledgerstore

import (
	"github.com/insolar/ledgerstate/sle"
)

// DescriberFunc stamps a freshly-created directory page with book/owner
// metadata.
type DescriberFunc func(page *sle.DirNode, isRoot bool)

// View is the read-only interface a delta-set uses to fault in entries
// from the ledger beneath it.
// It intentionally never exposes a write path: all mutation is staged in
// the delta-set and only reaches the store through Apply.
type View interface {
	// GetSLE returns a clone the caller may freely mutate without
	// affecting the store, or nil if absent.
	GetSLE(idx sle.Index) sle.Entry
	// GetSLEi returns an immutable read; implementations may return the
	// same underlying value as GetSLEi for different callers, so callers
	// must not mutate it.
	GetSLEi(idx sle.Index) sle.Entry

	GetNextLedgerIndex(after sle.Index) sle.Index

	GetAccountRoot(account sle.AccountID) *sle.AccountRoot

	GetReserve(ownerCount uint32) int64

	GetDividendObject() *sle.DividendObject

	GetLedgerSeq() uint32
	HasTransaction(txID sle.Index) bool

	ScaleFeeLoad(baseFee int64, admin bool) int64
}
