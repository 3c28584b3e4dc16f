package sle

// DirNode is one page of a directory chain. The root
// page's index equals the directory's root index; page k>0's index is
// DirNodeIndex(root, k).
type DirNode struct {
	index Index

	RootIndex Index
	NodeID    uint64

	IndexPrevious uint64 // on root: tail page id. elsewhere: previous page id.
	IndexNext     uint64 // 0 if this is the tail page.

	Indexes []Index

	// Owner is set on owner-directory root pages (ownerDirDescriber).
	Owner    AccountID
	HasOwner bool
}

func NewDirNode(idx, root Index, nodeID uint64) *DirNode {
	return &DirNode{index: idx, RootIndex: root, NodeID: nodeID}
}

func (d *DirNode) Type() EntryType    { return TypeDirNode }
func (d *DirNode) GetIndex() Index    { return d.index }
func (d *DirNode) SetIndex(i Index) { d.index = i }

func (d *DirNode) Clone() Entry {
	c := *d
	c.Indexes = append([]Index(nil), d.Indexes...)
	return &c
}

// DirNode carries no PreviousTxnID in rippled and is not threaded.
func (d *DirNode) IsThreaded() bool { return false }

func (d *DirNode) PrevTxn() (Index, uint32)                     { return ZeroIndex, 0 }
func (d *DirNode) SetPrevTxn(txID Index, ledgerSeq uint32) {}

// DirNode has no owner to thread into.
func (d *DirNode) Owners() []AccountID { return nil }

func (d *DirNode) IsRoot() bool { return d.NodeID == 0 }

func (d *DirNode) Full() bool { return len(d.Indexes) >= DirNodeMax }

// DirNodeMax is the maximum number of entries per directory page.
const DirNodeMax = 32

func (d *DirNode) Fields() []Field {
	return []Field{
		{Name: "RootIndex", Value: d.RootIndex, Flags: Always | Create},
		{Name: "Indexes", Value: d.Indexes, Flags: ChangeOrig | ChangeNew | Always | DeleteFinal | Create},
		{Name: "IndexNext", Value: d.IndexNext, Flags: ChangeOrig | ChangeNew | Create, IsDefault: d.IndexNext == 0},
		{Name: "IndexPrevious", Value: d.IndexPrevious, Flags: ChangeOrig | ChangeNew | Create, IsDefault: d.IndexPrevious == 0},
		{Name: "Owner", Value: d.Owner, Flags: Create, IsDefault: !d.HasOwner},
	}
}
