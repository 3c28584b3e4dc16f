package transactor

import (
	"github.com/insolar/ledgerstate/deltaset"
	"github.com/insolar/ledgerstate/ledgerstore"
	"github.com/insolar/ledgerstate/sle"
	"github.com/insolar/ledgerstate/ter"
)

// SetRegularKey, AddWallet, Change, Dividend, CreateTicket,
// CancelTicket, and SetNickname are thin handlers: they validate
// preconditions and call entryCreate/entryModify/entryDelete directly,
// without the full order-matching, amendment-voting, or ticket-expiry
// machinery those transactions drive in the original broader system.

// SetRegularKey implements the SetRegularKey handler.
func SetRegularKey(set *deltaset.Set, tx *Tx, acct *sle.AccountRoot) ter.Code {
	if tx.RegularKey == sle.ZeroAccount {
		acct.HasRegularKey = false
		acct.RegularKey = sle.ZeroAccount
		set.EntryModify(acct)
		return ter.TesSUCCESS
	}
	if tx.RegularKey == acct.Account {
		return ter.TemBAD_SRC_ACCOUNT
	}
	acct.RegularKey = tx.RegularKey
	acct.HasRegularKey = true
	set.EntryModify(acct)
	return ter.TesSUCCESS
}

// AddWallet implements the AddWallet handler, recording
// the account's deterministic-key generator as a GeneratorMap entry.
func AddWallet(set *deltaset.Set, tx *Tx, acct *sle.AccountRoot) ter.Code {
	idx := ledgerstore.GeneratorMapIndex(tx.Account)
	e := set.EntryCache(sle.TypeGeneratorMap, idx)
	if e == nil {
		gm := sle.NewGeneratorMap(idx)
		gm.Generator = tx.Generator
		gm.Sequence = tx.Sequence
		set.EntryCreate(gm)
		return ter.TesSUCCESS
	}
	gm := e.(*sle.GeneratorMap)
	gm.Generator = tx.Generator
	gm.Sequence = tx.Sequence
	set.EntryModify(gm)
	return ter.TesSUCCESS
}

// SetNickname implements the SetNickname handler, recording or updating the
// account's reserved nickname entry with an optional minimum-offer amount.
func SetNickname(set *deltaset.Set, tx *Tx, acct *sle.AccountRoot) ter.Code {
	idx := ledgerstore.NicknameIndex(tx.Account)
	e := set.EntryCache(sle.TypeNickname, idx)

	n, existed := e.(*sle.Nickname)
	if !existed {
		n = sle.NewNickname(idx, tx.Account)
	}
	if tx.NicknameMinOffer != nil {
		n.MinOffer = *tx.NicknameMinOffer
	}

	if existed {
		set.EntryModify(n)
	} else {
		set.EntryCreate(n)
	}
	return ter.TesSUCCESS
}

// Change implements the Change handler for the ledger-wide fee/reserve
// settings singleton; amendment voting itself is out of scope.
func Change(set *deltaset.Set, tx *Tx, acct *sle.AccountRoot) ter.Code {
	idx := ledgerstore.FeeSettingsIndex()
	e := set.EntryCache(sle.TypeFeeSettings, idx)

	fs, existed := e.(*sle.FeeSettings)
	if !existed {
		fs = sle.NewFeeSettings(idx)
	}
	if tx.BaseFee != nil {
		fs.BaseFee = *tx.BaseFee
	}
	if tx.ReserveBase != nil {
		fs.ReserveBase = *tx.ReserveBase
	}
	if tx.ReserveIncrement != nil {
		fs.ReserveIncrement = *tx.ReserveIncrement
	}

	if existed {
		set.EntryModify(fs)
	} else {
		set.EntryCreate(fs)
	}
	return ter.TesSUCCESS
}

// Dividend implements the Dividend handler. It writes through the
// standard delta-set overlay at a well-known singleton index, distinct
// from the dedicated DividendObject field ledgerstore.MemStore exposes
// for its read path (see DESIGN.md): this handler exists to exercise the
// entry-lifecycle primitives, not to wire ledger-close dividend
// accounting end to end, which is out of scope.
func Dividend(set *deltaset.Set, tx *Tx, acct *sle.AccountRoot) ter.Code {
	idx := ledgerstore.DividendObjectIndex()
	e := set.EntryCache(sle.TypeDividendObject, idx)

	d, existed := e.(*sle.DividendObject)
	if !existed {
		d = sle.NewDividendObject(idx)
	}
	d.DividendState = tx.DividendState
	d.DividendLedger = tx.DividendLedger

	if existed {
		set.EntryModify(d)
	} else {
		set.EntryCreate(d)
	}
	return ter.TesSUCCESS
}

// CreateTicket implements the CreateTicket handler: reserves a future
// sequence number (ticket expiry scheduling is out of scope).
func CreateTicket(set *deltaset.Set, tx *Tx, acct *sle.AccountRoot) ter.Code {
	idx := ledgerstore.TicketIndex(tx.Account, tx.TicketSequence)
	if set.EntryCache(sle.TypeTicket, idx) != nil {
		return ter.TemINVALID
	}

	if _, code := set.DirAdd(set.OwnerDirRoot(tx.Account), idx, set.OwnerDirDescriber(tx.Account)); code != ter.TesSUCCESS {
		return code
	}

	set.IncrementOwnerCount(acct)
	set.EntryModify(acct)
	set.EntryCreate(sle.NewTicket(idx, tx.Account, tx.TicketSequence))
	return ter.TesSUCCESS
}

// CancelTicket implements the CancelTicket handler.
func CancelTicket(set *deltaset.Set, tx *Tx, acct *sle.AccountRoot) ter.Code {
	idx := ledgerstore.TicketIndex(tx.Account, tx.TicketSequence)
	e := set.EntryCache(sle.TypeTicket, idx)
	if e == nil {
		return ter.TesSUCCESS
	}
	t := e.(*sle.Ticket)

	if code := set.DirDelete(false, 0, set.OwnerDirRoot(t.Account), idx, false, true); code != ter.TesSUCCESS {
		return code
	}

	set.DecrementOwnerCount(acct)
	set.EntryModify(acct)
	set.EntryDelete(t)
	return ter.TesSUCCESS
}
