// Package transactor implements the Transactor driver:
// the fixed six-step pipeline every transaction passes through before its
// type-specific handler runs, built on deltaset's exported delta-set
// interface.
package transactor

import (
	"github.com/insolar/ledgerstate/amount"
	"github.com/insolar/ledgerstate/sle"
)

// TxType selects which handler Dispatch calls in pipeline step 6.
type TxType uint8

const (
	TypeUnknown TxType = iota
	TypePayment
	TypeSetTrust
	TypeCreateOffer
	TypeCancelOffer
	TypeSetAccount
	TypeSetRegularKey
	TypeAddWallet
	TypeChange
	TypeDividend
	TypeCreateTicket
	TypeCancelTicket
	TypeAddReferee
	TypeSetNickname
)

// Tx is one submitted transaction, carrying the common header fields the
// pipeline itself consumes plus the per-type fields each handler reads.
// SigningPubKeyAccount and Verified stand in for real signature
// cryptography, which is out of scope: Verified
// records that a signature check already happened upstream of this
// engine, and SigningPubKeyAccount is the account id the (unmodeled)
// public key would resolve to.
type Tx struct {
	ID sle.Index
	Type TxType
	Account sle.AccountID
	Sequence uint32
	Fee int64

	SigningPubKeyAccount sle.AccountID
	Verified bool

	PreviousTxnID *sle.Index
	LastLedgerSequence *uint32

	// Payment
	Destination sle.AccountID
	Amount amount.Value

	// SetTrust
	LimitAmount amount.Value
	QualityIn uint32
	QualityOut uint32
	SetAuth bool
	NoRipple bool
	Freeze bool
	Delete bool

	// CreateOffer
	TakerPays amount.Value
	TakerGets amount.Value

	// CancelOffer
	OfferSequence uint32

	// SetAccount
	SetFlag *uint32
	ClearFlag *uint32
	TransferRate *uint32

	// SetRegularKey
	RegularKey sle.AccountID

	// AddWallet
	Generator []byte

	// Change
	BaseFee *int64
	ReserveBase *int64
	ReserveIncrement *int64

	// Dividend
	DividendState sle.DividendState
	DividendLedger uint32

	// CreateTicket / CancelTicket
	TicketSequence uint32

	// AddReferee
	RefereeAccount sle.AccountID

	// SetNickname
	NicknameMinOffer *amount.Value
}
