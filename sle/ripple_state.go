package sle

import "github.com/insolar/ledgerstate/amount"

// RippleState flags, one bit per side per flag.
const (
	LsfLowReserve uint32 = 1 << 0
	LsfHighReserve uint32 = 1 << 1
	LsfLowAuth uint32 = 1 << 2
	LsfHighAuth uint32 = 1 << 3
	LsfLowNoRipple uint32 = 1 << 4
	LsfHighNoRipple uint32 = 1 << 5
	LsfLowFreeze uint32 = 1 << 6
	LsfHighFreeze uint32 = 1 << 7
)

// RippleState is the bilateral trust-line entry between a canonical Low and
// High account. Balance is always stored in Low-account terms.
type RippleState struct {
	index Index

	Low AccountID
	High AccountID

	Currency CurrencyCode

	// Balance is the mantissa/exponent IOU value, always in Low-terms.
	Balance amount.Value

	LowLimit amount.Value
	HighLimit amount.Value

	LowNode uint64
	HighNode uint64

	LowQualityIn uint32
	LowQualityOut uint32
	HighQualityIn uint32
	HighQualityOut uint32

	Flags uint32

	PrevTxnID Index
	PrevTxnLgrSeq uint32
}

func NewRippleState(idx Index, low, high AccountID, currency CurrencyCode) *RippleState {
	return &RippleState{index: idx, Low: low, High: high, Currency: currency}
}

func (r *RippleState) Type() EntryType    { return TypeRippleState }
func (r *RippleState) GetIndex() Index    { return r.index }
func (r *RippleState) SetIndex(i Index) { r.index = i }

func (r *RippleState) Clone() Entry {
	c := *r
	return &c
}

func (r *RippleState) IsThreaded() bool { return true }

func (r *RippleState) PrevTxn() (Index, uint32) { return r.PrevTxnID, r.PrevTxnLgrSeq }

func (r *RippleState) SetPrevTxn(txID Index, ledgerSeq uint32) {
	r.PrevTxnID, r.PrevTxnLgrSeq = txID, ledgerSeq
}

func (r *RippleState) Owners() []AccountID { return []AccountID{r.Low, r.High} }

func (r *RippleState) HasReserve(low bool) bool {
	if low {
		return r.Flags&LsfLowReserve != 0
	}
	return r.Flags&LsfHighReserve != 0
}

func (r *RippleState) SetReserve(low, v bool) {
	bit := LsfHighReserve
	if low {
		bit = LsfLowReserve
	}
	if v {
		r.Flags |= bit
	} else {
		r.Flags &^= bit
	}
}

func (r *RippleState) NoRipple(low bool) bool {
	if low {
		return r.Flags&LsfLowNoRipple != 0
	}
	return r.Flags&LsfHighNoRipple != 0
}

func (r *RippleState) Freeze(low bool) bool {
	if low {
		return r.Flags&LsfLowFreeze != 0
	}
	return r.Flags&LsfHighFreeze != 0
}

func (r *RippleState) QualityIn(low bool) uint32 {
	if low {
		return r.LowQualityIn
	}
	return r.HighQualityIn
}

func (r *RippleState) QualityOut(low bool) uint32 {
	if low {
		return r.LowQualityOut
	}
	return r.HighQualityOut
}

func (r *RippleState) Limit(low bool) amount.Value {
	if low {
		return r.LowLimit
	}
	return r.HighLimit
}

func (r *RippleState) SetLimit(low bool, v amount.Value) {
	if low {
		r.LowLimit = v
	} else {
		r.HighLimit = v
	}
}

func (r *RippleState) Node(low bool) uint64 {
	if low {
		return r.LowNode
	}
	return r.HighNode
}

func (r *RippleState) SetNode(low bool, v uint64) {
	if low {
		r.LowNode = v
	} else {
		r.HighNode = v
	}
}

func (r *RippleState) Fields() []Field {
	return []Field{
		{Name: "LowLimit", Value: r.LowLimit, Flags: ChangeOrig | ChangeNew | Create, IsDefault: r.LowLimit.IsZero()},
		{Name: "HighLimit", Value: r.HighLimit, Flags: ChangeOrig | ChangeNew | Create, IsDefault: r.HighLimit.IsZero()},
		{Name: "Balance", Value: r.Balance, Flags: ChangeOrig | ChangeNew | Always | DeleteFinal | Create},
		{Name: "Flags", Value: r.Flags, Flags: ChangeOrig | ChangeNew | Always | DeleteFinal | Create, IsDefault: r.Flags == 0},
		{Name: "LowNode", Value: r.LowNode, Flags: ChangeOrig | ChangeNew | Create, IsDefault: r.LowNode == 0},
		{Name: "HighNode", Value: r.HighNode, Flags: ChangeOrig | ChangeNew | Create, IsDefault: r.HighNode == 0},
		{Name: "LowQualityIn", Value: r.LowQualityIn, Flags: ChangeOrig | ChangeNew, IsDefault: r.LowQualityIn == 0},
		{Name: "LowQualityOut", Value: r.LowQualityOut, Flags: ChangeOrig | ChangeNew, IsDefault: r.LowQualityOut == 0},
		{Name: "HighQualityIn", Value: r.HighQualityIn, Flags: ChangeOrig | ChangeNew, IsDefault: r.HighQualityIn == 0},
		{Name: "HighQualityOut", Value: r.HighQualityOut, Flags: ChangeOrig | ChangeNew, IsDefault: r.HighQualityOut == 0},
	}
}
