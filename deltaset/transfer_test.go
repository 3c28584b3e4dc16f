package deltaset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/insolar/ledgerstate/amount"
	"github.com/insolar/ledgerstate/ledgerstore"
	"github.com/insolar/ledgerstate/sle"
	"github.com/insolar/ledgerstate/ter"
)

var usd = sle.CurrencyCode{'U', 'S', 'D'}

// TestRippleCreditRoundTripIsNetZero is property 4: crediting
// A->B then B->A by the same amount returns the trust line to its
// pre-transfer balance. A holds a non-zero limit and the reserve on the
// line, so it is not auto-deleted when the balance returns to zero.
func TestRippleCreditRoundTripIsNetZero(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	a, b := acct(1), acct(2)
	seedAccount(store, a, 1_000_000)
	seedAccount(store, b, 1_000_000)
	s := newTestSet(store, 1)

	amt := amount.Issued(5_000_000_000_000_000, -9, usd, sle.ZeroAccount)

	idx := rippleStateIndexFor(a, b, usd)
	require.Equal(t, ter.TesSUCCESS, s.trustCreate(false, a, b, idx, s.getAccountRoot(a), false, false, false,
		amount.Issued(0, 0, usd, sle.ZeroAccount), amount.Issued(1_000_000_000_000_000, 0, usd, a), 0, 0))

	code := s.rippleCredit(a, b, amt, false)
	require.Equal(t, ter.TesSUCCESS, code)

	before := s.entries[idx].entry.(*sle.RippleState).Balance

	code = s.rippleCredit(b, a, amt, false)
	require.Equal(t, ter.TesSUCCESS, code)

	after := s.entries[idx].entry.(*sle.RippleState).Balance
	require.True(t, after.IsZero(), "round-trip of equal credits must net to zero, got %v (started at %v)", after, before)
}

// TestRippleCreditAutoDeletesZeroLine is scenario S3: a trust
// line created with a zero limit on both sides auto-deletes once its
// balance returns to zero.
func TestRippleCreditAutoDeletesZeroLine(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	a, b := acct(1), acct(2)
	seedAccount(store, a, 1_000_000)
	seedAccount(store, b, 1_000_000)
	s := newTestSet(store, 1)

	amt := amount.Issued(5_000_000_000_000_000, -9, usd, sle.ZeroAccount)
	require.Equal(t, ter.TesSUCCESS, s.rippleCredit(a, b, amt, false))

	idx := rippleStateIndexFor(a, b, usd)
	require.NotNil(t, s.entryCache(sle.TypeRippleState, idx))

	require.Equal(t, ter.TesSUCCESS, s.rippleCredit(b, a, amt, false))
	require.Nil(t, s.entryCache(sle.TypeRippleState, idx), "a zero-balance, zero-reserve line auto-deletes")
}

// TestAccountSendNativeExactDelta is property 5: a native
// accountSend moves exactly amount.Drops from sender to receiver.
func TestAccountSendNativeExactDelta(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	a, b := acct(1), acct(2)
	seedAccount(store, a, 1_000_000)
	seedAccount(store, b, 500_000)
	s := newTestSet(store, 1)

	code := s.accountSend(a, b, amount.Drops(200_000))
	require.Equal(t, ter.TesSUCCESS, code)

	require.Equal(t, int64(800_000), s.getAccountRoot(a).NativeBalance(sle.XRPCurrency))
	require.Equal(t, int64(700_000), s.getAccountRoot(b).NativeBalance(sle.XRPCurrency))
}

func TestAccountSendInsufficientBalance(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	a, b := acct(1), acct(2)
	seedAccount(store, a, 100)
	seedAccount(store, b, 0)
	s := newTestSet(store, 1)

	code := s.accountSend(a, b, amount.Drops(200))
	require.Equal(t, ter.TecFAILED_PROCESSING, code)
}

// TestRippleSendConservesValueMinusFee is property 6: a
// third-party rippleSend with a non-trivial transfer rate debits the
// sender by amount+fee and credits the receiver by exactly amount.
func TestRippleSendConservesValueMinusFee(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	sender, receiver, issuer := acct(1), acct(2), acct(3)
	seedAccount(store, sender, 1_000_000)
	seedAccount(store, receiver, 1_000_000)
	issuerRoot := sle.NewAccountRoot(ledgerstore.AccountRootIndex(issuer), issuer)
	issuerRoot.TransferRate = sle.QualityOne + sle.QualityOne/100 // 1% transit fee
	store.Seed(issuerRoot)

	s := newTestSet(store, 1)

	amt := amount.Issued(5_000_000_000_000_000, -9, usd, issuer)
	actual, code := s.rippleSend(sender, receiver, issuer, amt)
	require.Equal(t, ter.TesSUCCESS, code)
	require.True(t, amount.Compare(actual, amt) > 0, "actual debited from sender must exceed the nominal amount when a transit fee applies")

	receiverIdx := rippleStateIndexFor(issuer, receiver, usd)
	receiverState := s.entries[receiverIdx].entry.(*sle.RippleState)
	receiverBalance := receiverState.Balance
	if receiver.Compare(issuer) > 0 {
		receiverBalance = receiverBalance.Negate()
	}
	// Stored balances carry the null issuer, so they are compared in those terms.
	require.True(t, amount.Compare(receiverBalance, amount.Issued(amt.Mantissa, amt.Exponent, usd, sle.ZeroAccount)) == 0, "receiver must end up credited exactly the nominal amount")

	senderIdx := rippleStateIndexFor(issuer, sender, usd)
	senderState := s.entries[senderIdx].entry.(*sle.RippleState)
	senderOwed := senderState.Balance
	if sender.Compare(issuer) > 0 {
		senderOwed = senderOwed.Negate()
	}
	require.True(t, amount.Compare(senderOwed.Negate(), amount.Issued(actual.Mantissa, actual.Exponent, usd, sle.ZeroAccount)) == 0, "sender's debt to the issuer equals amount+fee")
}

func TestRippleSendDirectToIssuerSkipsFee(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	sender, issuer := acct(1), acct(3)
	seedAccount(store, sender, 1_000_000)
	issuerRoot := sle.NewAccountRoot(ledgerstore.AccountRootIndex(issuer), issuer)
	issuerRoot.TransferRate = sle.QualityOne + sle.QualityOne/100
	store.Seed(issuerRoot)
	s := newTestSet(store, 1)

	amt := amount.Issued(5_000_000_000_000_000, -9, usd, issuer)
	actual, code := s.rippleSend(sender, issuer, issuer, amt)
	require.Equal(t, ter.TesSUCCESS, code)
	require.True(t, amount.Compare(actual, amt) == 0, "paying the issuer directly never charges a transit fee")
}
