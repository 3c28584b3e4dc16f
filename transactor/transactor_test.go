package transactor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/insolar/ledgerstate/amount"
	"github.com/insolar/ledgerstate/deltaset"
	"github.com/insolar/ledgerstate/ledgerstore"
	"github.com/insolar/ledgerstate/sle"
	"github.com/insolar/ledgerstate/ter"
	"github.com/insolar/ledgerstate/testutils"
)

func acct(b byte) sle.AccountID {
	var a sle.AccountID
	a[0] = b
	return a
}

func txID(b byte) sle.Index {
	var idx sle.Index
	idx[0] = b
	return idx
}

func seedAccount(store *ledgerstore.MemStore, account sle.AccountID, balance int64, seq uint32) {
	root := sle.NewAccountRoot(ledgerstore.AccountRootIndex(account), account)
	root.SetNativeBalance(sle.XRPCurrency, balance)
	root.Sequence = seq
	store.Seed(root)
}

// markTransactionSeen registers id as already applied, for tefALREADY
// coverage, the same way a real prior Dispatch/Apply pair would.
func markTransactionSeen(store *ledgerstore.MemStore, id sle.Index) {
	store.Apply(deltaset.New(store, id, store.GetLedgerSeq(), deltaset.Params{}))
}

func TestPaymentNativeSuccess(t *testing.T) {
	defer testutils.LeakTester(t)

	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	a, b := acct(1), acct(2)
	seedAccount(store, a, 1_000_000, 1)
	seedAccount(store, b, 0, 1)

	tx := &Tx{
		ID: txID(9), Type: TypePayment,
		Account: a, Sequence: 1, Fee: 10,
		SigningPubKeyAccount: a, Verified: true,
		Destination: b, Amount: amount.Drops(500),
	}

	set, code := Dispatch(store, tx, deltaset.Params{}, 10)
	require.Equal(t, ter.TesSUCCESS, code)
	require.True(t, code.Persists())
	require.NoError(t, store.Apply(set))

	root := store.GetAccountRoot(a)
	require.Equal(t, int64(1_000_000-10-500), root.Balance)
	require.Equal(t, uint32(2), root.Sequence)
	require.Equal(t, txID(9), root.AccountTxnID)

	dst := store.GetAccountRoot(b)
	require.Equal(t, int64(500), dst.Balance)
}

func TestPaymentUnknownDestinationRejected(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	a := acct(1)
	seedAccount(store, a, 1_000_000, 1)

	tx := &Tx{
		ID: txID(1), Type: TypePayment,
		Account: a, Sequence: 1, Fee: 10,
		SigningPubKeyAccount: a, Verified: true,
		Destination: sle.ZeroAccount, Amount: amount.Drops(500),
	}

	_, code := Dispatch(store, tx, deltaset.Params{}, 10)
	require.Equal(t, ter.TemINVALID, code)
	require.False(t, code.Persists())
}

func TestSeqMismatchFuture(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	a := acct(1)
	seedAccount(store, a, 1_000_000, 5)

	tx := &Tx{ID: txID(1), Type: TypePayment, Account: a, Sequence: 7, Fee: 10, SigningPubKeyAccount: a, Verified: true}

	_, code := Dispatch(store, tx, deltaset.Params{}, 10)
	require.Equal(t, ter.TerPRE_SEQ, code)
	require.False(t, code.Persists())
	require.Equal(t, uint32(5), store.GetAccountRoot(a).Sequence)
}

func TestSeqMismatchPastAndAlready(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	a := acct(1)
	seedAccount(store, a, 1_000_000, 5)

	tx := &Tx{ID: txID(3), Type: TypePayment, Account: a, Sequence: 3, Fee: 10, SigningPubKeyAccount: a, Verified: true}
	_, code := Dispatch(store, tx, deltaset.Params{}, 10)
	require.Equal(t, ter.TefPAST_SEQ, code)

	markTransactionSeen(store, txID(3))

	_, code = Dispatch(store, tx, deltaset.Params{}, 10)
	require.Equal(t, ter.TefALREADY, code)
}

func TestPayFeeInsufficientOnClosedLedgerZeroesBalance(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	a := acct(1)
	seedAccount(store, a, 5, 1)

	tx := &Tx{ID: txID(1), Type: TypePayment, Account: a, Sequence: 1, Fee: 10, SigningPubKeyAccount: a, Verified: true}

	set, code := Dispatch(store, tx, deltaset.Params{OpenLedger: false}, 10)
	require.Equal(t, ter.TecINSUFF_FEE, code)
	require.True(t, code.Persists())

	require.NoError(t, store.Apply(set))
	root := store.GetAccountRoot(a)
	require.Equal(t, int64(0), root.Balance)
	require.Equal(t, uint32(2), root.Sequence)
}

func TestPayFeeInsufficientOnOpenLedgerRetries(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	a := acct(1)
	seedAccount(store, a, 5, 1)

	tx := &Tx{ID: txID(1), Type: TypePayment, Account: a, Sequence: 1, Fee: 10, SigningPubKeyAccount: a, Verified: true}

	_, code := Dispatch(store, tx, deltaset.Params{OpenLedger: true}, 10)
	require.Equal(t, ter.TerINSUF_FEE_B, code)
	require.False(t, code.Persists())
	require.Equal(t, int64(5), store.GetAccountRoot(a).Balance)
}

// TestCheckSigUnknownSignerWithRegularKey: once a regular key is set, a
// signer that is neither the master nor the regular key gets tefBAD_AUTH,
// and the regular key is accepted.
func TestCheckSigUnknownSignerWithRegularKey(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	a := acct(1)
	regular := acct(9)
	root := sle.NewAccountRoot(ledgerstore.AccountRootIndex(a), a)
	root.Sequence = 1
	root.SetNativeBalance(sle.XRPCurrency, 1000)
	root.RegularKey = regular
	root.HasRegularKey = true
	store.Seed(root)

	tx := &Tx{ID: txID(1), Type: TypePayment, Account: a, Sequence: 1, Fee: 10, SigningPubKeyAccount: acct(7), Verified: true,
		Destination: acct(2), Amount: amount.Drops(100)}
	_, code := Dispatch(store, tx, deltaset.Params{}, 10)
	require.Equal(t, ter.TefBAD_AUTH, code)

	tx.SigningPubKeyAccount = regular
	_, code = Dispatch(store, tx, deltaset.Params{}, 10)
	require.Equal(t, ter.TesSUCCESS, code)
}

func TestCheckSigMasterDisabled(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	a := acct(1)
	root := sle.NewAccountRoot(ledgerstore.AccountRootIndex(a), a)
	root.Sequence = 1
	root.SetNativeBalance(sle.XRPCurrency, 1000)
	root.Flags = sle.LsfDisableMaster
	store.Seed(root)

	tx := &Tx{ID: txID(1), Type: TypePayment, Account: a, Sequence: 1, Fee: 10, SigningPubKeyAccount: a, Verified: true}
	_, code := Dispatch(store, tx, deltaset.Params{}, 10)
	require.Equal(t, ter.TefMASTER_DISABLED, code)
}

func TestSetTrustCreateThenDeleteRequiresZeroBalance(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	a, issuer := acct(1), acct(2)
	seedAccount(store, a, 1_000_000, 1)

	tx := &Tx{
		ID: txID(1), Type: TypeSetTrust, Account: a, Sequence: 1, Fee: 10,
		SigningPubKeyAccount: a, Verified: true,
		LimitAmount: amount.Issued(1_000_000_000_000_000, 0, currency("USD"), issuer),
	}
	set, code := Dispatch(store, tx, deltaset.Params{}, 10)
	require.Equal(t, ter.TesSUCCESS, code)
	require.NoError(t, store.Apply(set))
	require.Equal(t, uint32(1), store.GetAccountRoot(a).OwnerCount)

	tx2 := &Tx{
		ID: txID(2), Type: TypeSetTrust, Account: a, Sequence: 2, Fee: 10,
		SigningPubKeyAccount: a, Verified: true, Delete: true,
		LimitAmount: amount.Issued(0, 0, currency("USD"), issuer),
	}
	set2, code2 := Dispatch(store, tx2, deltaset.Params{}, 10)
	require.Equal(t, ter.TesSUCCESS, code2)
	require.NoError(t, store.Apply(set2))
	require.Equal(t, uint32(0), store.GetAccountRoot(a).OwnerCount)
}

func currency(code string) sle.CurrencyCode {
	var c sle.CurrencyCode
	copy(c[:], code)
	return c
}

func TestCreateOfferThenCancelOffer(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	a := acct(1)
	issuer := acct(2)
	seedAccount(store, a, 1_000_000, 1)

	tx := &Tx{
		ID: txID(1), Type: TypeCreateOffer, Account: a, Sequence: 1, Fee: 10,
		SigningPubKeyAccount: a, Verified: true,
		TakerPays: amount.Drops(1000),
		TakerGets: amount.Issued(1_000_000_000_000_000, 0, currency("USD"), issuer),
	}
	set, code := Dispatch(store, tx, deltaset.Params{}, 10)
	require.Equal(t, ter.TesSUCCESS, code)
	require.NoError(t, store.Apply(set))
	require.Equal(t, uint32(1), store.GetAccountRoot(a).OwnerCount)

	offerIdx := ledgerstore.OfferIndex(a, 1)
	require.NotNil(t, store.GetSLE(offerIdx))

	tx2 := &Tx{
		ID: txID(2), Type: TypeCancelOffer, Account: a, Sequence: 2, Fee: 10,
		SigningPubKeyAccount: a, Verified: true, OfferSequence: 1,
	}
	set2, code2 := Dispatch(store, tx2, deltaset.Params{}, 10)
	require.Equal(t, ter.TesSUCCESS, code2)
	require.NoError(t, store.Apply(set2))
	require.Equal(t, uint32(0), store.GetAccountRoot(a).OwnerCount)
	require.Nil(t, store.GetSLE(offerIdx))
}

func TestAddRefereeAndSetAccount(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	a, referee := acct(1), acct(2)
	seedAccount(store, a, 1_000_000, 1)

	tx := &Tx{ID: txID(1), Type: TypeAddReferee, Account: a, Sequence: 1, Fee: 10, SigningPubKeyAccount: a, Verified: true, RefereeAccount: referee}
	set, code := Dispatch(store, tx, deltaset.Params{}, 10)
	require.Equal(t, ter.TesSUCCESS, code)
	require.NoError(t, store.Apply(set))
	require.Equal(t, referee, store.GetAccountRoot(a).Referee)

	rate := uint32(2_000_000_000)
	tx2 := &Tx{ID: txID(2), Type: TypeSetAccount, Account: a, Sequence: 2, Fee: 10, SigningPubKeyAccount: a, Verified: true, TransferRate: &rate}
	set2, code2 := Dispatch(store, tx2, deltaset.Params{}, 10)
	require.Equal(t, ter.TesSUCCESS, code2)
	require.NoError(t, store.Apply(set2))
	require.Equal(t, rate, store.GetAccountRoot(a).TransferRate)
}

func TestThinHandlers(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	a := acct(1)
	seedAccount(store, a, 1_000_000, 1)

	seq := uint32(1)
	dispatch := func(tx *Tx) ter.Code {
		tx.ID = txID(byte(seq))
		tx.Account = a
		tx.Sequence = seq
		tx.Fee = 10
		tx.SigningPubKeyAccount = a
		tx.Verified = true
		set, code := Dispatch(store, tx, deltaset.Params{}, 10)
		if code.Persists() {
			require.NoError(t, store.Apply(set))
		}
		seq++
		return code
	}

	regular := acct(9)
	require.Equal(t, ter.TesSUCCESS, dispatch(&Tx{Type: TypeSetRegularKey, RegularKey: regular}))
	require.Equal(t, regular, store.GetAccountRoot(a).RegularKey)

	require.Equal(t, ter.TesSUCCESS, dispatch(&Tx{Type: TypeAddWallet, Generator: []byte{1, 2, 3}}))
	require.NotNil(t, store.GetSLE(ledgerstore.GeneratorMapIndex(a)))

	newBase := int64(15)
	require.Equal(t, ter.TesSUCCESS, dispatch(&Tx{Type: TypeChange, BaseFee: &newBase}))
	fs := store.GetSLE(ledgerstore.FeeSettingsIndex()).(*sle.FeeSettings)
	require.Equal(t, newBase, fs.BaseFee)

	require.Equal(t, ter.TesSUCCESS, dispatch(&Tx{Type: TypeDividend, DividendState: sle.DividendDone, DividendLedger: 7}))
	d := store.GetSLE(ledgerstore.DividendObjectIndex()).(*sle.DividendObject)
	require.Equal(t, sle.DividendDone, d.DividendState)

	require.Equal(t, ter.TesSUCCESS, dispatch(&Tx{Type: TypeCreateTicket, TicketSequence: 100}))
	require.NotNil(t, store.GetSLE(ledgerstore.TicketIndex(a, 100)))
	require.Equal(t, uint32(1), store.GetAccountRoot(a).OwnerCount)

	require.Equal(t, ter.TesSUCCESS, dispatch(&Tx{Type: TypeCancelTicket, TicketSequence: 100}))
	require.Nil(t, store.GetSLE(ledgerstore.TicketIndex(a, 100)))
	require.Equal(t, uint32(0), store.GetAccountRoot(a).OwnerCount)

	minOffer := amount.Drops(500)
	require.Equal(t, ter.TesSUCCESS, dispatch(&Tx{Type: TypeSetNickname, NicknameMinOffer: &minOffer}))
	nick := store.GetSLE(ledgerstore.NicknameIndex(a)).(*sle.Nickname)
	require.Equal(t, minOffer, nick.MinOffer)

	raised := amount.Drops(750)
	require.Equal(t, ter.TesSUCCESS, dispatch(&Tx{Type: TypeSetNickname, NicknameMinOffer: &raised}))
	nick = store.GetSLE(ledgerstore.NicknameIndex(a)).(*sle.Nickname)
	require.Equal(t, raised, nick.MinOffer, "a second SetNickname modifies the existing entry rather than creating another")
}

func TestUnknownTxTypeRejected(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	a := acct(1)
	seedAccount(store, a, 1_000_000, 1)

	tx := &Tx{ID: txID(1), Type: TxType(99), Account: a, Sequence: 1, Fee: 10, SigningPubKeyAccount: a, Verified: true}
	set, code := Dispatch(store, tx, deltaset.Params{}, 10)
	require.Equal(t, ter.TemUNKNOWN, code)
	require.False(t, code.Persists())
	_ = set
}
