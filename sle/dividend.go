package sle

// DividendState is the lifecycle state of a DividendObject.
type DividendState uint8

const (
	DividendUnknown DividendState = iota
	DividendStarted
	DividendApplying
	DividendDone
)

// DividendObject is consumed as a typed record: the referee
// fee-sharing precondition reads its DividendState and DividendLedger. The
// Dividend handler creates or modifies one at its own singleton index.
type DividendObject struct {
	index Index

	DividendState  DividendState
	DividendLedger uint32
}

func NewDividendObject(idx Index) *DividendObject {
	return &DividendObject{index: idx}
}

func (d *DividendObject) Type() EntryType    { return TypeDividendObject }
func (d *DividendObject) GetIndex() Index    { return d.index }
func (d *DividendObject) SetIndex(i Index) { d.index = i }

func (d *DividendObject) Clone() Entry {
	c := *d
	return &c
}

func (d *DividendObject) IsThreaded() bool                       { return false }
func (d *DividendObject) PrevTxn() (Index, uint32)                { return ZeroIndex, 0 }
func (d *DividendObject) SetPrevTxn(txID Index, ledgerSeq uint32) {}
func (d *DividendObject) Owners() []AccountID                     { return nil }

func (d *DividendObject) Fields() []Field {
	return []Field{
		{Name: "DividendState", Value: d.DividendState, Flags: Always},
		{Name: "DividendLedger", Value: d.DividendLedger, Flags: Always},
	}
}
