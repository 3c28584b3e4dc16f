package sle

// GeneratorMap backs AddWallet (transactor.AddWallet) and Nickname backs
// SetNickname (transactor.SetNickname): thin handlers that cache, create,
// or modify these entries without any algorithm beyond the standard
// entry-lifecycle transitions every other entry type goes through.

type GeneratorMap struct {
	index Index

	Generator []byte
	Sequence  uint32

	PrevTxnID     Index
	PrevTxnLgrSeq uint32
}

func NewGeneratorMap(idx Index) *GeneratorMap { return &GeneratorMap{index: idx} }

func (g *GeneratorMap) Type() EntryType    { return TypeGeneratorMap }
func (g *GeneratorMap) GetIndex() Index    { return g.index }
func (g *GeneratorMap) SetIndex(i Index) { g.index = i }

func (g *GeneratorMap) Clone() Entry {
	c := *g
	c.Generator = append([]byte(nil), g.Generator...)
	return &c
}

func (g *GeneratorMap) IsThreaded() bool                                    { return false }
func (g *GeneratorMap) PrevTxn() (Index, uint32)                            { return ZeroIndex, 0 }
func (g *GeneratorMap) SetPrevTxn(txID Index, ledgerSeq uint32) {}
func (g *GeneratorMap) Owners() []AccountID                                 { return nil }

func (g *GeneratorMap) Fields() []Field {
	return []Field{
		{Name: "Generator", Value: g.Generator, Flags: Always | Create},
		{Name: "Sequence", Value: g.Sequence, Flags: ChangeOrig | ChangeNew | Create, IsDefault: g.Sequence == 0},
	}
}

type Nickname struct {
	index Index

	Account  AccountID
	MinOffer interface{}

	PrevTxnID     Index
	PrevTxnLgrSeq uint32
}

func NewNickname(idx Index, account AccountID) *Nickname {
	return &Nickname{index: idx, Account: account}
}

func (n *Nickname) Type() EntryType    { return TypeNickname }
func (n *Nickname) GetIndex() Index    { return n.index }
func (n *Nickname) SetIndex(i Index) { n.index = i }

func (n *Nickname) Clone() Entry {
	c := *n
	return &c
}

func (n *Nickname) IsThreaded() bool { return true }

func (n *Nickname) PrevTxn() (Index, uint32) { return n.PrevTxnID, n.PrevTxnLgrSeq }

func (n *Nickname) SetPrevTxn(txID Index, ledgerSeq uint32) {
	n.PrevTxnID, n.PrevTxnLgrSeq = txID, ledgerSeq
}

func (n *Nickname) Owners() []AccountID { return []AccountID{n.Account} }

func (n *Nickname) Fields() []Field {
	return []Field{
		{Name: "Account", Value: n.Account, Flags: Always | Create},
		{Name: "MinimumOffer", Value: n.MinOffer, Flags: ChangeOrig | ChangeNew | Create, IsDefault: n.MinOffer == nil},
	}
}
