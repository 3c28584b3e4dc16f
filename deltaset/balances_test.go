package deltaset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/insolar/ledgerstate/amount"
	"github.com/insolar/ledgerstate/ledgerstore"
	"github.com/insolar/ledgerstate/sle"
)

func TestAccountHoldsNativeSubtractsReserve(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	a := acct(1)
	root := sle.NewAccountRoot(ledgerstore.AccountRootIndex(a), a)
	root.SetNativeBalance(sle.XRPCurrency, 30_000_000)
	root.OwnerCount = 1
	store.Seed(root)
	s := newTestSet(store, 1)

	held := s.accountHolds(a, sle.XRPCurrency, sle.ZeroAccount, AllowFrozen)
	require.Equal(t, int64(5_000_000), held.Drops, "30M balance - (20M base + 1*5M increment) reserve = 5M spendable")
}

func TestAccountHoldsNativeFloorsAtZero(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	a := acct(1)
	root := sle.NewAccountRoot(ledgerstore.AccountRootIndex(a), a)
	root.SetNativeBalance(sle.XRPCurrency, 1_000_000)
	store.Seed(root)
	s := newTestSet(store, 1)

	held := s.accountHolds(a, sle.XRPCurrency, sle.ZeroAccount, AllowFrozen)
	require.Equal(t, int64(0), held.Drops, "balance below reserve never reports negative spendable")
}

func TestIsFrozenGlobalFreezeOverridesLine(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	account, issuer := acct(1), acct(2)
	seedAccount(store, account, 1_000_000)
	issuerRoot := sle.NewAccountRoot(ledgerstore.AccountRootIndex(issuer), issuer)
	issuerRoot.Flags |= sle.LsfGlobalFreeze
	store.Seed(issuerRoot)
	s := newTestSet(store, 1)

	require.True(t, s.isFrozen(account, usd, issuer), "global freeze on the issuer freezes every line regardless of its own Freeze flag")
}

func TestIsFrozenNativeNeverFrozen(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	s := newTestSet(store, 1)
	require.False(t, s.isFrozen(acct(1), sle.XRPCurrency, acct(2)))
}

func TestRippleHoldsZeroWithoutLine(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	s := newTestSet(store, 1)
	held := s.rippleHolds(acct(1), usd, acct(2), AllowFrozen)
	require.True(t, held.IsZero())
}

func TestAccountFundsSelfIssuedIsAuthoritative(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	s := newTestSet(store, 1)
	issuer := acct(1)
	claim := amount.Issued(9_000_000_000_000_000, -9, usd, issuer)
	got := s.accountFunds(issuer, claim, AllowFrozen)
	require.True(t, amount.Compare(got, claim) == 0, "an issuer's own IOU claim is never looked up on a trust line")
}
