package sle

// QualityOne is the TransferRate value meaning "no transit fee".
const QualityOne = 1_000_000_000

// AccountRoot is the account-root entry.
type AccountRoot struct {
	index Index

	Account       AccountID
	Balance       int64 // native XRP, in drops
	BalanceVBC    int64 // alternate native asset
	Sequence      uint32
	OwnerCount    uint32
	RegularKey    AccountID // zero if unset
	HasRegularKey bool

	TransferRate uint32 // 0 means "unset", resolved to QualityOne by callers
	Referee      AccountID
	HasReferee   bool

	DividendLedger uint32
	DividendVSprd  int64
	HasDividend    bool

	Flags uint32

	// AccountTxnID is the id of the last transaction this account
	// submitted, checked against a submitted tx's PreviousTxnID.
	AccountTxnID Index

	PrevTxnID     Index
	PrevTxnLgrSeq uint32
}

const (
	LsfGlobalFreeze  uint32 = 1 << 0
	LsfDisableMaster uint32 = 1 << 1
	LsfNoFreeze      uint32 = 1 << 2
)

func NewAccountRoot(idx Index, account AccountID) *AccountRoot {
	return &AccountRoot{
		index:        idx,
		Account:      account,
		TransferRate: QualityOne,
	}
}

func (a *AccountRoot) Type() EntryType    { return TypeAccountRoot }
func (a *AccountRoot) GetIndex() Index    { return a.index }
func (a *AccountRoot) SetIndex(i Index) { a.index = i }

func (a *AccountRoot) Clone() Entry {
	c := *a
	return &c
}

func (a *AccountRoot) IsThreaded() bool { return true }

func (a *AccountRoot) PrevTxn() (Index, uint32) { return a.PrevTxnID, a.PrevTxnLgrSeq }

func (a *AccountRoot) SetPrevTxn(txID Index, ledgerSeq uint32) {
	a.PrevTxnID, a.PrevTxnLgrSeq = txID, ledgerSeq
}

func (a *AccountRoot) Owners() []AccountID { return []AccountID{a.Account} }

// EffectiveTransferRate returns the account's TransferRate, defaulting to
// QualityOne when unset.
func (a *AccountRoot) EffectiveTransferRate() uint32 {
	if a.TransferRate == 0 {
		return QualityOne
	}
	return a.TransferRate
}

func (a *AccountRoot) NativeBalance(currency CurrencyCode) int64 {
	if currency == VBCCurrency {
		return a.BalanceVBC
	}
	return a.Balance
}

func (a *AccountRoot) SetNativeBalance(currency CurrencyCode, v int64) {
	if currency == VBCCurrency {
		a.BalanceVBC = v
	} else {
		a.Balance = v
	}
}

func (a *AccountRoot) Fields() []Field {
	return []Field{
		{Name: "Account", Value: a.Account, Flags: Always | Create},
		{Name: "Balance", Value: a.Balance, Flags: ChangeOrig | ChangeNew | Always | Create, IsDefault: a.Balance == 0},
		{Name: "BalanceVBC", Value: a.BalanceVBC, Flags: ChangeOrig | ChangeNew | Always, IsDefault: a.BalanceVBC == 0},
		{Name: "Sequence", Value: a.Sequence, Flags: ChangeOrig | ChangeNew | Always | Create, IsDefault: a.Sequence == 0},
		{Name: "OwnerCount", Value: a.OwnerCount, Flags: ChangeOrig | ChangeNew | Always | Create, IsDefault: a.OwnerCount == 0},
		{Name: "Flags", Value: a.Flags, Flags: ChangeOrig | ChangeNew | Always | Create, IsDefault: a.Flags == 0},
		{Name: "RegularKey", Value: a.RegularKey, Flags: ChangeOrig | ChangeNew | Create, IsDefault: !a.HasRegularKey},
		{Name: "TransferRate", Value: a.TransferRate, Flags: ChangeOrig | ChangeNew | Create, IsDefault: a.TransferRate == 0},
		{Name: "Referee", Value: a.Referee, Flags: ChangeOrig | ChangeNew | Create, IsDefault: !a.HasReferee},
		{Name: "AccountTxnID", Value: a.AccountTxnID, Flags: ChangeOrig | ChangeNew, IsDefault: a.AccountTxnID == ZeroIndex},
		{Name: "DividendLedger", Value: a.DividendLedger, Flags: ChangeOrig | ChangeNew, IsDefault: !a.HasDividend},
		{Name: "DividendVSprd", Value: a.DividendVSprd, Flags: ChangeOrig | ChangeNew, IsDefault: !a.HasDividend},
	}
}
