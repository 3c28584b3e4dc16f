package sle

// FeeSettings is the ledger-wide singleton the Change pseudo-transaction
// writes. Amendment voting itself is out of scope; only the fee/reserve
// fields are tracked.
type FeeSettings struct {
	index Index

	BaseFee          int64
	ReserveBase      int64
	ReserveIncrement int64

	PrevTxnID     Index
	PrevTxnLgrSeq uint32
}

func NewFeeSettings(idx Index) *FeeSettings { return &FeeSettings{index: idx} }

func (f *FeeSettings) Type() EntryType    { return TypeFeeSettings }
func (f *FeeSettings) GetIndex() Index    { return f.index }
func (f *FeeSettings) SetIndex(i Index) { f.index = i }

func (f *FeeSettings) Clone() Entry {
	c := *f
	return &c
}

func (f *FeeSettings) IsThreaded() bool                                    { return true }
func (f *FeeSettings) PrevTxn() (Index, uint32)                             { return f.PrevTxnID, f.PrevTxnLgrSeq }
func (f *FeeSettings) SetPrevTxn(txID Index, ledgerSeq uint32) { f.PrevTxnID, f.PrevTxnLgrSeq = txID, ledgerSeq }
func (f *FeeSettings) Owners() []AccountID                                 { return nil }

func (f *FeeSettings) Fields() []Field {
	return []Field{
		{Name: "BaseFee", Value: f.BaseFee, Flags: ChangeOrig | ChangeNew | Always | Create, IsDefault: f.BaseFee == 0},
		{Name: "ReserveBase", Value: f.ReserveBase, Flags: ChangeOrig | ChangeNew | Always | Create, IsDefault: f.ReserveBase == 0},
		{Name: "ReserveIncrement", Value: f.ReserveIncrement, Flags: ChangeOrig | ChangeNew | Always | Create, IsDefault: f.ReserveIncrement == 0},
	}
}

// Ticket reserves a future sequence number for a deferred transaction.
// Ticket-driven transaction submission itself is out of scope; only
// create/cancel of the entry is exercised.
type Ticket struct {
	index Index

	Account  AccountID
	Sequence uint32

	PrevTxnID     Index
	PrevTxnLgrSeq uint32
}

func NewTicket(idx Index, account AccountID, seq uint32) *Ticket {
	return &Ticket{index: idx, Account: account, Sequence: seq}
}

func (t *Ticket) Type() EntryType    { return TypeTicket }
func (t *Ticket) GetIndex() Index    { return t.index }
func (t *Ticket) SetIndex(i Index) { t.index = i }

func (t *Ticket) Clone() Entry {
	c := *t
	return &c
}

func (t *Ticket) IsThreaded() bool                             { return true }
func (t *Ticket) PrevTxn() (Index, uint32)                     { return t.PrevTxnID, t.PrevTxnLgrSeq }
func (t *Ticket) SetPrevTxn(txID Index, ledgerSeq uint32) { t.PrevTxnID, t.PrevTxnLgrSeq = txID, ledgerSeq }
func (t *Ticket) Owners() []AccountID                          { return []AccountID{t.Account} }

func (t *Ticket) Fields() []Field {
	return []Field{
		{Name: "Account", Value: t.Account, Flags: Always | Create},
		{Name: "Sequence", Value: t.Sequence, Flags: Always | Create},
	}
}
