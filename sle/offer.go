package sle

import "github.com/insolar/ledgerstate/amount"

// Offer is a standing order-book entry. The engine only needs enough of its
// shape to exercise offer deletion and the book-directory side of the
// order book; order matching itself is out of scope.
type Offer struct {
	index Index

	Account AccountID
	Seq     uint32

	TakerPays amount.Value
	TakerGets amount.Value

	BookDirectory Index
	OwnerNode     uint64
	BookNode      uint64

	Flags uint32

	PrevTxnID     Index
	PrevTxnLgrSeq uint32
}

func NewOffer(idx Index, account AccountID, seq uint32) *Offer {
	return &Offer{index: idx, Account: account, Seq: seq}
}

func (o *Offer) Type() EntryType    { return TypeOffer }
func (o *Offer) GetIndex() Index    { return o.index }
func (o *Offer) SetIndex(i Index) { o.index = i }

func (o *Offer) Clone() Entry {
	c := *o
	return &c
}

func (o *Offer) IsThreaded() bool { return true }

func (o *Offer) PrevTxn() (Index, uint32) { return o.PrevTxnID, o.PrevTxnLgrSeq }

func (o *Offer) SetPrevTxn(txID Index, ledgerSeq uint32) {
	o.PrevTxnID, o.PrevTxnLgrSeq = txID, ledgerSeq
}

func (o *Offer) Owners() []AccountID { return []AccountID{o.Account} }

func (o *Offer) Fields() []Field {
	return []Field{
		{Name: "Account", Value: o.Account, Flags: Always | Create},
		{Name: "Sequence", Value: o.Seq, Flags: Always | Create},
		{Name: "TakerPays", Value: o.TakerPays, Flags: ChangeOrig | ChangeNew | Always | DeleteFinal | Create},
		{Name: "TakerGets", Value: o.TakerGets, Flags: ChangeOrig | ChangeNew | Always | DeleteFinal | Create},
		{Name: "BookDirectory", Value: o.BookDirectory, Flags: Always | Create},
		{Name: "OwnerNode", Value: o.OwnerNode, Flags: ChangeOrig | ChangeNew | Create, IsDefault: o.OwnerNode == 0},
		{Name: "BookNode", Value: o.BookNode, Flags: ChangeOrig | ChangeNew | Create, IsDefault: o.BookNode == 0},
		{Name: "Flags", Value: o.Flags, Flags: ChangeOrig | ChangeNew | Always | Create, IsDefault: o.Flags == 0},
	}
}
