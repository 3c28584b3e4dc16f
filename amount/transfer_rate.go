package amount

// QualityOne is the TransferRate value meaning "no transit fee".
const QualityOne = 1_000_000_000

// TransferRate wraps an account's TransferRate field.
type TransferRate uint32

// Effective resolves the zero/"unset" rate to QualityOne.
func (r TransferRate) Effective() uint32 {
	if r == 0 {
		return QualityOne
	}
	return uint32(r)
}

// Fee computes rippleTransferFee's amount*(transferRate/QUALITY_ONE) -
// amount, or zero when the rate is QUALITY_ONE.
func (r TransferRate) Fee(v Value) Value {
	rate := r.Effective()
	if rate == QualityOne {
		if v.Native {
			return Drops(0)
		}
		return Issued(0, 0, v.Currency, v.Issuer)
	}
	grossed := v.Multiply(int64(rate), QualityOne)
	return Subtract(grossed, v)
}
