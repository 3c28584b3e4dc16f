// api.go is the delta-set's public interface exposed to transaction
// handlers: every method a package outside deltaset (transactor) needs to
// drive a transaction, forwarding straight to the unexported implementation
// the in-package tests exercise directly.
package deltaset

import (
	"github.com/insolar/ledgerstate/amount"
	"github.com/insolar/ledgerstate/ledgerstore"
	"github.com/insolar/ledgerstate/sle"
	"github.com/insolar/ledgerstate/ter"
)

func (s *Set) Clear() { s.clear() }
func (s *Set) Duplicate() *Set { return s.duplicate() }
func (s *Set) SwapWith(o *Set) { s.swapWith(o) }
func (s *Set) HasEntry(idx sle.Index) bool { return s.hasEntry(idx) }

func (s *Set) EntryCache(typ sle.EntryType, idx sle.Index) sle.Entry { return s.entryCache(typ, idx) }
func (s *Set) EntryCreate(entry sle.Entry) { s.entryCreate(entry) }
func (s *Set) EntryModify(entry sle.Entry) { s.entryModify(entry) }
func (s *Set) EntryDelete(entry sle.Entry) { s.entryDelete(entry) }

func (s *Set) GetNextLedgerIndex(after sle.Index) sle.Index { return s.getNextLedgerIndex(after) }
func (s *Set) HasTransaction(txID sle.Index) bool { return s.view.HasTransaction(txID) }
func (s *Set) GetAccountRoot(account sle.AccountID) *sle.AccountRoot { return s.getAccountRoot(account) }
func (s *Set) GetReserve(ownerCount uint32) int64 { return s.getReserve(ownerCount) }
func (s *Set) ScaleFeeLoad(baseFee int64, admin bool) int64 { return s.scaleFeeLoad(baseFee, admin) }

func (s *Set) IncrementOwnerCount(root *sle.AccountRoot) { s.incrementOwnerCount(root) }
func (s *Set) DecrementOwnerCount(root *sle.AccountRoot) { s.decrementOwnerCount(root) }

func (s *Set) DirAdd(root sle.Index, entryID sle.Index, describer ledgerstore.DescriberFunc) (uint64, ter.Code) {
	return s.dirAdd(root, entryID, describer)
}
func (s *Set) DirDelete(keepRoot bool, nodeHint uint64, root sle.Index, entryID sle.Index, stable, soft bool) ter.Code {
	return s.dirDelete(keepRoot, nodeHint, root, entryID, stable, soft)
}
func (s *Set) DirFirst(root sle.Index) (DirCursor, sle.Index, bool) { return s.dirFirst(root) }
func (s *Set) DirNext(cur DirCursor) (DirCursor, sle.Index, bool) { return s.dirNext(cur) }
func (s *Set) DirCount(root sle.Index) int { return s.dirCount(root) }
func (s *Set) DirIsEmpty(root sle.Index) bool { return s.dirIsEmpty(root) }

// OwnerDirRoot is the owner directory's root index for account, exported so
// transactor can place/remove offers in it.
func (s *Set) OwnerDirRoot(account sle.AccountID) sle.Index { return ownerDirRoot(account) }

// OwnerDirDescriber stamps a freshly-created owner-directory root page with
// the owning account.
func (s *Set) OwnerDirDescriber(owner sle.AccountID) ledgerstore.DescriberFunc {
	return s.ownerDirDescriber(owner)
}

func (s *Set) OfferDelete(offer *sle.Offer) ter.Code { return s.offerDelete(offer) }

func (s *Set) TrustCreate(
	srcHigh bool,
	src, dst sle.AccountID,
	idx sle.Index,
	srcAcct *sle.AccountRoot,
	auth, noRipple, freeze bool,
	balance, limit amount.Value,
	qualityIn, qualityOut uint32,
) ter.Code {
	return s.trustCreate(srcHigh, src, dst, idx, srcAcct, auth, noRipple, freeze, balance, limit, qualityIn, qualityOut)
}

func (s *Set) TrustDelete(state *sle.RippleState) ter.Code { return s.trustDelete(state) }

func (s *Set) RippleHolds(account sle.AccountID, currency sle.CurrencyCode, issuer sle.AccountID, policy FreezePolicy) amount.Value {
	return s.rippleHolds(account, currency, issuer, policy)
}
func (s *Set) AccountHolds(account sle.AccountID, currency sle.CurrencyCode, issuer sle.AccountID, policy FreezePolicy) amount.Value {
	return s.accountHolds(account, currency, issuer, policy)
}
func (s *Set) AccountFunds(account sle.AccountID, defaultAmount amount.Value, policy FreezePolicy) amount.Value {
	return s.accountFunds(account, defaultAmount, policy)
}
func (s *Set) IsFrozen(account sle.AccountID, currency sle.CurrencyCode, issuer sle.AccountID) bool {
	return s.isFrozen(account, currency, issuer)
}
func (s *Set) IsGlobalFrozen(issuer sle.AccountID) bool { return s.isGlobalFrozen(issuer) }

func (s *Set) RippleCredit(sender, receiver sle.AccountID, amt amount.Value, checkIssuer bool) ter.Code {
	return s.rippleCredit(sender, receiver, amt, checkIssuer)
}
func (s *Set) RippleSend(sender, receiver, issuer sle.AccountID, amt amount.Value) (amount.Value, ter.Code) {
	return s.rippleSend(sender, receiver, issuer, amt)
}
func (s *Set) AccountSend(sender, receiver sle.AccountID, amt amount.Value) ter.Code {
	return s.accountSend(sender, receiver, amt)
}

func (s *Set) RippleTransferRate(issuer sle.AccountID) amount.TransferRate { return s.rippleTransferRate(issuer) }
func (s *Set) RippleTransferFee(sender, receiver, issuer sle.AccountID, amt amount.Value) amount.Value {
	return s.rippleTransferFee(sender, receiver, issuer, amt)
}

func (s *Set) CalcRawMeta(result ter.Code, txIndex uint32) Metadata { return s.calcRawMeta(result, txIndex) }

// Params returns the delta-set's execution flags, read
// by the transactor's payFee step (open-ledger vs closed-ledger, admin).
func (s *Set) Params() Params { return s.params }
