package deltaset

import (
	"github.com/insolar/ledgerstate/amount"
	"github.com/insolar/ledgerstate/sle"
	"github.com/insolar/ledgerstate/ter"
)

// rippleTransferRate returns the effective TransferRate of issuer's
// account root.
func (s *Set) rippleTransferRate(issuer sle.AccountID) amount.TransferRate {
	root := s.getAccountRoot(issuer)
	if root == nil {
		return amount.TransferRate(amount.QualityOne)
	}
	return amount.TransferRate(root.EffectiveTransferRate())
}

// rippleTransferFee returns the transit fee issuer charges on amount,
// zero when sender or receiver is the issuer or the rate is QUALITY_ONE.
func (s *Set) rippleTransferFee(sender, receiver, issuer sle.AccountID, amt amount.Value) amount.Value {
	if sender == issuer || receiver == issuer {
		return amount.Issued(0, 0, amt.Currency, amt.Issuer)
	}
	return s.rippleTransferRate(issuer).Fee(amt)
}

// rippleCredit moves amount of IOU value from sender to receiver along
// their trust line, creating it on first use and auto-deleting it if it
// returns to zero with neither side reserving it.
func (s *Set) rippleCredit(sender, receiver sle.AccountID, amt amount.Value, checkIssuer bool) ter.Code {
	idx := rippleStateIndexFor(sender, receiver, amt.Currency)
	e := s.entryCache(sle.TypeRippleState, idx)

	if e == nil {
		receiverAcct := s.getAccountRoot(receiver)
		if receiverAcct == nil {
			return ter.TerNO_ACCOUNT
		}
		// Zero limit and reserve on the receiver side (limit.Issuer == dst
		// drives trustCreate's set_high formula to fill receiver's slot), so
		// the receiver's account root takes the owner count; balance's
		// issuer is scrubbed since it is not a 3rd-party transit here.
		zeroLimit := amount.Issued(0, 0, amt.Currency, receiver)
		balance := amount.Issued(amt.Mantissa, amt.Exponent, amt.Currency, sle.ZeroAccount)
		return s.trustCreate(
			sender.Compare(receiver) > 0,
			sender, receiver, idx, receiverAcct,
			false, false, false,
			balance, zeroLimit, 0, 0,
		)
	}

	state := e.(*sle.RippleState)
	senderHigh := sender.Compare(receiver) > 0
	senderIsLow := !senderHigh

	senderBalance := state.Balance
	if senderHigh {
		senderBalance = senderBalance.Negate()
	}
	// Stored balances carry the null issuer; amt is subtracted in those terms.
	senderBalance = amount.Subtract(senderBalance, amount.Issued(amt.Mantissa, amt.Exponent, amt.Currency, sle.ZeroAccount))

	clearReserve := false
	autoDelete := false

	// Narrow divergence from the original: the original additionally
	// requires the pre-transfer balance to have been positive
	// (saBefore > zero) before it will clear the sender's reserve flag.
	// spec.md §4.5 omits that precondition, so it is not checked here; a
	// SetTrust immediately followed by a same-ledger zero-value
	// rippleCredit on a never-funded line could clear a reserve that was
	// never earned.
	senderBalanceNonPositive := senderBalance.IsNegative() || senderBalance.IsZero()
	if state.HasReserve(senderIsLow) &&
		senderBalanceNonPositive &&
		state.Limit(senderIsLow).IsZero() &&
		state.QualityIn(senderIsLow) == 0 && state.QualityOut(senderIsLow) == 0 &&
		!state.NoRipple(senderIsLow) && !state.Freeze(senderIsLow) {
		clearReserve = true
	}

	if clearReserve {
		state.SetReserve(senderIsLow, false)
		srcAcct := s.getAccountRoot(sender)
		if srcAcct != nil {
			s.decrementOwnerCount(srcAcct)
			s.entryModify(srcAcct)
		}
		if senderBalance.IsZero() && !state.HasReserve(!senderIsLow) {
			autoDelete = true
		}
	}

	newBalance := senderBalance
	if senderHigh {
		newBalance = newBalance.Negate()
	}
	state.Balance = newBalance

	if autoDelete {
		return s.trustDelete(state)
	}
	s.entryModify(state)
	return ter.TesSUCCESS
}

// rippleSend performs direct credit when either party is the issuer (or
// sender/receiver is the null account), otherwise third-party transit with
// fee and referee sharing.
func (s *Set) rippleSend(sender, receiver, issuer sle.AccountID, amt amount.Value) (actual amount.Value, code ter.Code) {
	if sender == sle.ZeroAccount || receiver == sle.ZeroAccount || issuer == sle.ZeroAccount ||
		sender == issuer || receiver == issuer {
		code = s.rippleCredit(sender, receiver, amt, false)
		return amt, code
	}

	transitFee := s.rippleTransferFee(sender, receiver, issuer, amt)
	if !transitFee.IsZero() {
		share := transitFee.Multiply(1, 4) // 25% of the transit fee
		if code = s.shareFeeWithReferee(sender, issuer, share); code != ter.TesSUCCESS {
			return amount.Issued(0, 0, amt.Currency, amt.Issuer), code
		}
	}

	if code = s.rippleCredit(issuer, receiver, amt, false); code != ter.TesSUCCESS {
		return amount.Issued(0, 0, amt.Currency, amt.Issuer), code
	}

	actual = amount.Add(amt, transitFee)
	code = s.rippleCredit(sender, issuer, actual, false)
	return actual, code
}

// accountSend moves value between two accounts, native or issued.
func (s *Set) accountSend(sender, receiver sle.AccountID, amt amount.Value) ter.Code {
	if amt.IsZero() || sender == receiver {
		return ter.TesSUCCESS
	}
	if !amt.IsNative() {
		_, code := s.rippleSend(sender, receiver, amt.Issuer, amt)
		return code
	}

	senderRoot := s.getAccountRoot(sender)
	receiverRoot := s.getAccountRoot(receiver)

	if senderRoot != nil {
		if senderRoot.NativeBalance(amt.Currency) < amt.Drops {
			if s.params.OpenLedger {
				return ter.TelFAILED_PROCESSING
			}
			return ter.TecFAILED_PROCESSING
		}
		senderRoot.SetNativeBalance(amt.Currency, senderRoot.NativeBalance(amt.Currency)-amt.Drops)
		s.entryModify(senderRoot)
	}
	if receiverRoot != nil {
		receiverRoot.SetNativeBalance(amt.Currency, receiverRoot.NativeBalance(amt.Currency)+amt.Drops)
		s.entryModify(receiverRoot)
	}
	return ter.TesSUCCESS
}
