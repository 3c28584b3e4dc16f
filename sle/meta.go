package sle

// MetaFlag declares, per field, which of a transaction-metadata node's
// Previous/Final/New field subsets that field may appear in. Flags are combined with bitwise OR.
type MetaFlag uint8

const (
	// ChangeOrig: field goes into PreviousFields if its value changed.
	ChangeOrig MetaFlag = 1 << iota
	// ChangeNew: field goes into FinalFields of a Modified node.
	ChangeNew
	// DeleteFinal: field goes into FinalFields of a Deleted node.
	DeleteFinal
	// Create: field goes into NewFields of a Created node, if non-default.
	Create
	// Always: field always goes into FinalFields regardless of Modified/Deleted.
	Always
)

// Field is one named, flagged value on an entry, used by the metadata
// builder to assemble PreviousFields/FinalFields/NewFields without the
// builder needing to know each entry type's concrete field set.
type Field struct {
	Name      string
	Value     interface{}
	Flags     MetaFlag
	IsDefault bool
}

// EntryType is the 16-bit ledger-entry-type tag recorded on every affected
// node.
type EntryType uint16

const (
	TypeAccountRoot    EntryType = 0x0061
	TypeRippleState    EntryType = 0x0072
	TypeDirNode        EntryType = 0x0064
	TypeOffer          EntryType = 0x006F
	TypeGeneratorMap   EntryType = 0x0067
	TypeNickname       EntryType = 0x006E
	TypeDividendObject EntryType = 0x0080
	TypeFeeSettings    EntryType = 0x0073
	TypeTicket         EntryType = 0x0054
)

func (t EntryType) String() string {
	switch t {
	case TypeAccountRoot:
		return "AccountRoot"
	case TypeRippleState:
		return "RippleState"
	case TypeDirNode:
		return "DirectoryNode"
	case TypeOffer:
		return "Offer"
	case TypeGeneratorMap:
		return "GeneratorMap"
	case TypeNickname:
		return "Nickname"
	case TypeDividendObject:
		return "DividendObject"
	case TypeFeeSettings:
		return "FeeSettings"
	case TypeTicket:
		return "Ticket"
	default:
		return "Unknown"
	}
}

// Entry is implemented by every typed ledger-entry record. Threading and
// metadata generation operate on it generically through this interface
// rather than switching on concrete type.
type Entry interface {
	Type() EntryType
	GetIndex() Index
	SetIndex(Index)
	Clone() Entry
	Fields() []Field

	// IsThreaded reports whether this entry type carries
	// PreviousTxnID/PreviousTxnLgrSeq and is therefore self-threaded on
	// Created/Modified.
	IsThreaded() bool
	PrevTxn() (txID Index, ledgerSeq uint32)
	SetPrevTxn(txID Index, ledgerSeq uint32)

	// Owners returns the account(s) this entry is threaded into on
	// Created/Deleted: zero for DirNode/GeneratorMap/FeeSettings/DividendObject,
	// one for AccountRoot/Offer/Nickname/Ticket, two for RippleState.
	Owners() []AccountID
}
