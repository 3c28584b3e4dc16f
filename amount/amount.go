// Package amount implements the native (drops) and issued-currency
// (mantissa/exponent IOU) value type shared by the balance and
// value-transfer components, grounded on the
// normalized-mantissa arithmetic used for offer quality in the reference
// XRPL ledger-entry code.
package amount

import (
	"fmt"
	"math/big"

	"github.com/insolar/ledgerstate/ledgerkey"
)

// minMantissa/maxMantissa bound a normalized IOU mantissa to [10^15, 10^16),
// matching rippled's STAmount normalization.
const (
	minMantissa = 1_000_000_000_000_000
	maxMantissa = 10_000_000_000_000_000
)

// Value is either a native amount (Currency == XRPCurrency or VBCCurrency,
// Drops holds a signed drop count) or an issued IOU amount (mantissa is
// signed, exponent biases it, Issuer names the obligor).
type Value struct {
	Native   bool
	Currency ledgerkey.CurrencyCode
	Issuer   ledgerkey.AccountID

	Drops int64 // valid iff Native

	Mantissa int64 // valid iff !Native; sign carries the amount's sign
	Exponent int8  // valid iff !Native
}

func Drops(v int64) Value {
	return Value{Native: true, Currency: ledgerkey.XRPCurrency, Drops: v}
}

func VBCDrops(v int64) Value {
	return Value{Native: true, Currency: ledgerkey.VBCCurrency, Drops: v}
}

// Issued builds a normalized IOU amount. A zero mantissa normalizes to the
// canonical zero (exponent reset to 0) so IsZero/Negate/Add behave sanely.
func Issued(mantissa int64, exponent int8, currency ledgerkey.CurrencyCode, issuer ledgerkey.AccountID) Value {
	v := Value{Currency: currency, Issuer: issuer, Mantissa: mantissa, Exponent: exponent}
	return v.normalized()
}

func (v Value) IsNative() bool { return v.Native }

func (v Value) IsZero() bool {
	if v.Native {
		return v.Drops == 0
	}
	return v.Mantissa == 0
}

func (v Value) IsNegative() bool {
	if v.Native {
		return v.Drops < 0
	}
	return v.Mantissa < 0
}

func (v Value) Negate() Value {
	if v.Native {
		v.Drops = -v.Drops
		return v
	}
	v.Mantissa = -v.Mantissa
	return v
}

func (v Value) normalized() Value {
	if v.Native || v.Mantissa == 0 {
		if !v.Native && v.Mantissa == 0 {
			v.Exponent = 0
		}
		return v
	}
	neg := v.Mantissa < 0
	m := v.Mantissa
	if neg {
		m = -m
	}
	for m != 0 && m < minMantissa {
		m *= 10
		v.Exponent--
	}
	for m >= maxMantissa {
		m /= 10
		v.Exponent++
	}
	if neg {
		m = -m
	}
	v.Mantissa = m
	return v
}

func sameAsset(a, b Value) bool {
	return a.Native == b.Native && a.Currency == b.Currency && (a.Native || a.Issuer == b.Issuer)
}

// Add requires a and b to be the same asset (same native-ness, currency,
// and for issued amounts the same issuer); callers enforce this at the
// protocol level (trust lines are per-currency-per-issuer-pair).
func Add(a, b Value) Value {
	if !sameAsset(a, b) {
		panic(fmt.Sprintf("amount: mismatched asset in Add: %+v vs %+v", a, b))
	}
	if a.Native {
		a.Drops += b.Drops
		return a
	}
	bigA, expA := a.bigMantissa(), a.Exponent
	bigB, expB := b.bigMantissa(), b.Exponent
	for expA > expB {
		bigB.Div(bigB, big.NewInt(10))
		expB++
	}
	for expB > expA {
		bigA.Div(bigA, big.NewInt(10))
		expA++
	}
	sum := new(big.Int).Add(bigA, bigB)
	return Issued(sum.Int64(), expA, a.Currency, a.Issuer)
}

func Subtract(a, b Value) Value {
	return Add(a, b.Negate())
}

func (v Value) bigMantissa() *big.Int {
	return big.NewInt(v.Mantissa)
}

// Multiply scales an issued or native amount by a rational rate expressed
// as numerator/denominator (used by TransferRate.Fee and referee-share
// arithmetic, which need exact fractional splits rather than float64).
func (v Value) Multiply(numerator, denominator int64) Value {
	if v.Native {
		v.Drops = mulDivInt64(v.Drops, numerator, denominator)
		return v
	}
	m := mulDivInt64(v.Mantissa, numerator, denominator)
	return Issued(m, v.Exponent, v.Currency, v.Issuer)
}

func mulDivInt64(a, num, den int64) int64 {
	neg := (a < 0) != (num < 0)
	if a < 0 {
		a = -a
	}
	if num < 0 {
		num = -num
	}
	r := new(big.Int).Mul(big.NewInt(a), big.NewInt(num))
	r.Div(r, big.NewInt(den))
	out := r.Int64()
	if neg {
		out = -out
	}
	return out
}

// Compare returns -1, 0, 1. Only meaningful for same-asset values.
func Compare(a, b Value) int {
	d := Subtract(a, b)
	switch {
	case d.IsZero():
		return 0
	case d.IsNegative():
		return -1
	default:
		return 1
	}
}

func (v Value) String() string {
	if v.Native {
		return fmt.Sprintf("%d drops", v.Drops)
	}
	return fmt.Sprintf("%dE%d/%s", v.Mantissa, v.Exponent, v.Currency)
}
