package transactor

import (
	"github.com/insolar/ledgerstate/amount"
	"github.com/insolar/ledgerstate/deltaset"
	"github.com/insolar/ledgerstate/ledgerstore"
	"github.com/insolar/ledgerstate/sle"
	"github.com/insolar/ledgerstate/ter"
)

// Payment implements the Payment handler via accountSend/rippleSend,
// native and third-party IOU alike.
func Payment(set *deltaset.Set, tx *Tx, acct *sle.AccountRoot) ter.Code {
	if tx.Destination == sle.ZeroAccount {
		return ter.TemINVALID
	}
	if tx.Amount.IsZero() || tx.Amount.IsNegative() {
		return ter.TemBAD_AMOUNT
	}
	return set.AccountSend(tx.Account, tx.Destination, tx.Amount)
}

// SetTrust implements the SetTrust handler via trustCreate/trustDelete:
// create a line on first use, delete it on an
// explicit zero-balance Delete, otherwise update limit and flags in place.
func SetTrust(set *deltaset.Set, tx *Tx, acct *sle.AccountRoot) ter.Code {
	limit := tx.LimitAmount
	if limit.IsNative() {
		return ter.TemBAD_AMOUNT
	}
	dst := limit.Issuer
	if dst == tx.Account || dst == sle.ZeroAccount {
		return ter.TemBAD_AMOUNT
	}

	srcHigh := tx.Account.Compare(dst) > 0
	idx := sle.TrustLineIndex(minAccount(tx.Account, dst), maxAccount(tx.Account, dst), limit.Currency)

	e := set.EntryCache(sle.TypeRippleState, idx)
	if e == nil {
		if tx.Delete {
			return ter.TesSUCCESS
		}
		zeroBalance := amount.Issued(0, 0, limit.Currency, sle.ZeroAccount)
		// Issued by the source, the limit (and reserve) land on the
		// source's side, matching the Delete path below.
		srcLimit := amount.Issued(limit.Mantissa, limit.Exponent, limit.Currency, tx.Account)
		return set.TrustCreate(
			srcHigh, tx.Account, dst, idx, acct,
			tx.SetAuth, tx.NoRipple, tx.Freeze,
			zeroBalance, srcLimit,
			tx.QualityIn, tx.QualityOut,
		)
	}

	state := e.(*sle.RippleState)
	srcLow := !srcHigh

	if tx.Delete {
		if !state.Balance.IsZero() {
			return ter.TecFAILED_PROCESSING
		}
		if state.HasReserve(srcLow) {
			set.DecrementOwnerCount(acct)
			set.EntryModify(acct)
			state.SetReserve(srcLow, false)
		}
		return set.TrustDelete(state)
	}

	state.SetLimit(srcLow, limit)
	setFlag(&state.Flags, srcHigh, sle.LsfLowAuth, sle.LsfHighAuth, tx.SetAuth)
	setFlag(&state.Flags, srcHigh, sle.LsfLowNoRipple, sle.LsfHighNoRipple, tx.NoRipple)
	setFlag(&state.Flags, srcHigh, sle.LsfLowFreeze, sle.LsfHighFreeze, tx.Freeze)
	if srcHigh {
		state.HighQualityIn, state.HighQualityOut = tx.QualityIn, tx.QualityOut
	} else {
		state.LowQualityIn, state.LowQualityOut = tx.QualityIn, tx.QualityOut
	}
	set.EntryModify(state)
	return ter.TesSUCCESS
}

func setFlag(flags *uint32, high bool, lowBit, highBit uint32, v bool) {
	bit := lowBit
	if high {
		bit = highBit
	}
	if v {
		*flags |= bit
	} else {
		*flags &^= bit
	}
}

func minAccount(a, b sle.AccountID) sle.AccountID {
	if a.Compare(b) <= 0 {
		return a
	}
	return b
}

func maxAccount(a, b sle.AccountID) sle.AccountID {
	if a.Compare(b) > 0 {
		return a
	}
	return b
}

// CreateOffer implements the CreateOffer handler: minimal order-book
// placement sufficient to exercise offerDelete and the book directory
// (order matching itself is out of scope, same as sle.Offer's own scope
// note).
func CreateOffer(set *deltaset.Set, tx *Tx, acct *sle.AccountRoot) ter.Code {
	if tx.TakerPays.IsZero() || tx.TakerGets.IsZero() {
		return ter.TemBAD_AMOUNT
	}

	idx := ledgerstore.OfferIndex(tx.Account, tx.Sequence)
	offer := sle.NewOffer(idx, tx.Account, tx.Sequence)
	offer.TakerPays = tx.TakerPays
	offer.TakerGets = tx.TakerGets
	offer.BookDirectory = sle.BookDirIndex(
		tx.TakerGets.Currency, tx.TakerGets.Issuer,
		tx.TakerPays.Currency, tx.TakerPays.Issuer,
		bookQuality(tx.TakerPays, tx.TakerGets),
	)

	ownerNode, code := set.DirAdd(set.OwnerDirRoot(tx.Account), idx, set.OwnerDirDescriber(tx.Account))
	if code != ter.TesSUCCESS {
		return code
	}
	offer.OwnerNode = ownerNode

	bookNode, code := set.DirAdd(offer.BookDirectory, idx, nil)
	if code != ter.TesSUCCESS {
		return code
	}
	offer.BookNode = bookNode

	set.IncrementOwnerCount(acct)
	set.EntryModify(acct)
	set.EntryCreate(offer)
	return ter.TesSUCCESS
}

// bookQuality is a deterministic placeholder discriminator for the book
// directory an offer sorts into; the real offer-quality ordering that
// drives matching is part of the out-of-scope order-matching engine.
func bookQuality(pays, gets amount.Value) uint64 {
	p, g := valueUnits(pays), valueUnits(gets)
	if p < 0 {
		p = -p
	}
	if g < 0 {
		g = -g
	}
	return uint64(p)*1_000_000_000/uint64(g+1) + 1
}

func valueUnits(v amount.Value) int64 {
	if v.IsNative() {
		return v.Drops
	}
	return v.Mantissa
}

// CancelOffer implements the CancelOffer handler via offerDelete.
func CancelOffer(set *deltaset.Set, tx *Tx, acct *sle.AccountRoot) ter.Code {
	idx := ledgerstore.OfferIndex(tx.Account, tx.OfferSequence)
	e := set.EntryCache(sle.TypeOffer, idx)
	if e == nil {
		return ter.TesSUCCESS
	}
	offer := e.(*sle.Offer)
	if offer.Account != tx.Account {
		return ter.TemINVALID
	}
	return set.OfferDelete(offer)
}

// SetAccount implements the SetAccount handler:
// flag and TransferRate updates.
func SetAccount(set *deltaset.Set, tx *Tx, acct *sle.AccountRoot) ter.Code {
	if tx.TransferRate != nil && *tx.TransferRate != 0 && *tx.TransferRate < amount.QualityOne {
		return ter.TemBAD_FEE
	}
	if tx.SetFlag != nil {
		acct.Flags |= *tx.SetFlag
	}
	if tx.ClearFlag != nil {
		acct.Flags &^= *tx.ClearFlag
	}
	if tx.TransferRate != nil {
		acct.TransferRate = *tx.TransferRate
	}
	set.EntryModify(acct)
	return ter.TesSUCCESS
}

// AddReferee implements the AddReferee handler: sets the Referee field
// shareFeeWithReferee walks.
func AddReferee(set *deltaset.Set, tx *Tx, acct *sle.AccountRoot) ter.Code {
	if tx.RefereeAccount == sle.ZeroAccount || tx.RefereeAccount == tx.Account {
		return ter.TemINVALID
	}
	acct.Referee = tx.RefereeAccount
	acct.HasReferee = true
	set.EntryModify(acct)
	return ter.TesSUCCESS
}
