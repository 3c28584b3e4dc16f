package deltaset

import (
	"github.com/insolar/ledgerstate/amount"
	"github.com/insolar/ledgerstate/sle"
	"github.com/insolar/ledgerstate/ter"
	"github.com/insolar/ledgerstate/vanilla/throw"
)

// maxRefereeDepth is the deepest ancestor the referee walk visits.
const maxRefereeDepth = 5

// MinVSPDToGetFeeShare is the DividendVSprd threshold an ancestor must
// clear to qualify for a referee fee share. The protocol constant itself
// is part of the dividend accounting object's external schema, so
// this is a placeholder value, kept as a package-level var that tests
// can override.
var MinVSPDToGetFeeShare int64 = 0

// shareFeeWithReferee splits share five ways across up to 5 qualifying
// ancestors of sender, reached by walking the
// Referee field; any ancestors past the chain's actual qualifying length
// have their would-be share rolled into the last qualifier.
func (s *Set) shareFeeWithReferee(sender, issuer sle.AccountID, share amount.Value) ter.Code {
	dividend := s.view.GetDividendObject()
	if dividend == nil || dividend.DividendState != sle.DividendDone {
		return ter.TesSUCCESS
	}
	targetLedger := dividend.DividendLedger

	shareEach := share.Multiply(1, 5)

	takers := map[sle.AccountID]amount.Value{}
	order := make([]sle.AccountID, 0, maxRefereeDepth)

	current := sender
	qualified := 0
	var lastQualified sle.AccountID

	for i := 0; i < maxRefereeDepth; i++ {
		root := s.getAccountRoot(current)
		if root == nil || !root.HasReferee {
			break
		}
		current = root.Referee

		ancestor := s.getAccountRoot(current)
		if ancestor == nil {
			break
		}
		if ancestor.DividendLedger != targetLedger || ancestor.DividendVSprd <= MinVSPDToGetFeeShare {
			continue
		}

		if code := s.rippleCredit(issuer, current, shareEach, true); code != ter.TesSUCCESS {
			return code
		}

		if existing, ok := takers[current]; ok {
			takers[current] = amount.Add(existing, shareEach)
		} else {
			takers[current] = shareEach
			order = append(order, current)
		}
		lastQualified = current
		qualified++
	}

	if qualified > 0 && qualified < maxRefereeDepth {
		remainder := shareEach.Multiply(int64(maxRefereeDepth-qualified), 1)
		existing, ok := takers[lastQualified]
		if !ok {
			// Invariant: lastQualified was just inserted above on the same
			// pass that set qualified > 0, so it must be present.
			panic(throw.IllegalState())
		}
		takers[lastQualified] = amount.Add(existing, remainder)
		if code := s.rippleCredit(issuer, lastQualified, remainder, true); code != ter.TesSUCCESS {
			return code
		}
	}

	for _, account := range order {
		s.recordFeeShareTaker(account, share.Currency, share.Issuer, takers[account])
	}
	return ter.TesSUCCESS
}

func (s *Set) recordFeeShareTaker(account sle.AccountID, currency sle.CurrencyCode, issuer sle.AccountID, amt amount.Value) {
	for i, t := range s.feeShareTakers {
		if t.Account == account && t.Currency == currency && t.Issuer == issuer {
			s.feeShareTakers[i].Amount += mantissaOf(amt)
			return
		}
	}
	s.feeShareTakers = append(s.feeShareTakers, FeeShareTaker{
		Account: account,
		Currency: currency,
		Issuer: issuer,
		Amount: mantissaOf(amt),
	})
}

func mantissaOf(v amount.Value) int64 {
	if v.IsNative() {
		return v.Drops
	}
	return v.Mantissa
}
