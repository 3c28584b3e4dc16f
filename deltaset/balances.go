package deltaset

import (
	"github.com/insolar/ledgerstate/amount"
	"github.com/insolar/ledgerstate/sle"
)

// FreezePolicy controls whether a frozen line reports its balance as zero.
type FreezePolicy uint8

const (
	AllowFrozen FreezePolicy = iota
	ZeroIfFrozen
)

func rippleStateIndexFor(a, b sle.AccountID, currency sle.CurrencyCode) sle.Index {
	low, high := a, b
	if a.Compare(b) > 0 {
		low, high = b, a
	}
	return sle.TrustLineIndex(low, high, currency)
}

// rippleHolds returns account's balance of (currency, issuer), in
// account-relative sign, 0 if no trust line exists, or 0 if the line is
// frozen under ZeroIfFrozen.
func (s *Set) rippleHolds(account sle.AccountID, currency sle.CurrencyCode, issuer sle.AccountID, policy FreezePolicy) amount.Value {
	idx := rippleStateIndexFor(account, issuer, currency)
	e := s.entryCache(sle.TypeRippleState, idx)
	if e == nil {
		return amount.Issued(0, 0, currency, issuer)
	}
	state := e.(*sle.RippleState)

	if policy == ZeroIfFrozen && s.isFrozen(account, currency, issuer) {
		return amount.Issued(0, 0, currency, issuer)
	}

	balance := state.Balance
	if account.Compare(issuer) > 0 {
		balance = balance.Negate()
	}
	return balance
}

// accountHolds returns the spendable amount of defaultCurrency/issuer the
// account holds: for native assets, balance minus reserve; for issued
// assets, the trust-line balance.
func (s *Set) accountHolds(account sle.AccountID, currency sle.CurrencyCode, issuer sle.AccountID, policy FreezePolicy) amount.Value {
	if currency == sle.XRPCurrency || currency == sle.VBCCurrency {
		root := s.getAccountRoot(account)
		if root == nil {
			return nativeAmount(currency, 0)
		}
		balance := root.NativeBalance(currency)
		reserve := s.getReserve(root.OwnerCount)
		spendable := balance - reserve
		if spendable < 0 {
			spendable = 0
		}
		return nativeAmount(currency, spendable)
	}
	return s.rippleHolds(account, currency, issuer, policy)
}

func nativeAmount(currency sle.CurrencyCode, v int64) amount.Value {
	if currency == sle.VBCCurrency {
		return amount.VBCDrops(v)
	}
	return amount.Drops(v)
}

// isGlobalFrozen reports whether issuer's account root carries the
// GlobalFreeze flag.
func (s *Set) isGlobalFrozen(issuer sle.AccountID) bool {
	root := s.getAccountRoot(issuer)
	if root == nil {
		return false
	}
	return root.Flags&sle.LsfGlobalFreeze != 0
}

// isFrozen reports true iff the currency is not native AND (the issuer is
// globally frozen, or the specific line has the issuer-side Freeze flag
// set).
func (s *Set) isFrozen(account sle.AccountID, currency sle.CurrencyCode, issuer sle.AccountID) bool {
	if currency == sle.XRPCurrency || currency == sle.VBCCurrency {
		return false
	}
	if s.isGlobalFrozen(issuer) {
		return true
	}
	idx := rippleStateIndexFor(account, issuer, currency)
	e := s.entryCache(sle.TypeRippleState, idx)
	if e == nil {
		return false
	}
	state := e.(*sle.RippleState)
	return state.Freeze(issuer == state.Low)
}

// accountFunds returns defaultAmount unchanged if the account is its own
// issuer (self-funded), otherwise delegates to accountHolds.
func (s *Set) accountFunds(account sle.AccountID, defaultAmount amount.Value, policy FreezePolicy) amount.Value {
	if !defaultAmount.IsNative() && defaultAmount.Issuer == account {
		return defaultAmount
	}
	return s.accountHolds(account, defaultAmount.Currency, defaultAmount.Issuer, policy)
}
