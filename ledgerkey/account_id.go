package ledgerkey

import (
	"bytes"

	base58 "github.com/jbenet/go-base58"
)

// AccountID is the 160-bit account identifier. The zero value is the
// "null-account" sentinel used by rippleSend/rippleCredit to mean "no
// issuer" / "not yet attributed".
type AccountID [20]byte

var ZeroAccount AccountID

func (a AccountID) IsZero() bool {
	return a == ZeroAccount
}

// Compare returns -1, 0, or 1, the ordering used to canonicalize a trust
// line's Low/High endpoints.
func (a AccountID) Compare(o AccountID) int {
	return bytes.Compare(a[:], o[:])
}

func (a AccountID) String() string {
	if a.IsZero() {
		return "rrrrrrrrrrrrrrrrrrrrrhoLvTp"
	}
	return base58.Encode(a[:])
}

// CurrencyCode is the 160-bit currency identifier (all-zero means the
// native asset in the Amount type's Native branch; currency codes on
// RippleState entries are always non-native).
type CurrencyCode [20]byte

var ZeroCurrency CurrencyCode

// XRPCurrency and VBCCurrency are the two native-asset tags named on the
// account root (Balance / BalanceVBC). They are not real 160-bit currency
// codes; they only ever appear as the Currency field of a native
// amount.Value and are never written to a RippleState.
var (
	XRPCurrency = CurrencyCode{}
	VBCCurrency = CurrencyCode{'V', 'B', 'C'}
)
