package deltaset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/insolar/ledgerstate/ledgerstore"
	"github.com/insolar/ledgerstate/sle"
	"github.com/insolar/ledgerstate/ter"
)

func TestForEachChangeOrdersByIndexAndSkipsCachedOnly(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	high := acct(200)
	low := acct(1)
	seedAccount(store, high, 1_000_000)
	seedAccount(store, low, 1_000_000)
	s := newTestSet(store, 1)

	rootHigh := s.getAccountRoot(high) // cached-only: must not appear in ForEachChange
	_ = rootHigh

	rootLow := s.getAccountRoot(low)
	rootLow.SetNativeBalance(sle.XRPCurrency, 42)
	s.entryModify(rootLow)

	var seen []sle.Index
	s.ForEachChange(func(c ledgerstore.Change) {
		seen = append(seen, c.Index)
		require.Equal(t, ledgerstore.ActionModified, c.Action)
	})

	require.Len(t, seen, 1, "a Cached-only read never surfaces as a change")
	require.Equal(t, ledgerstore.AccountRootIndex(low), seen[0])
}

func TestForEachChangeReportsDeletion(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	a := acct(1)
	seedAccount(store, a, 1_000_000)
	s := newTestSet(store, 1)

	root := s.getAccountRoot(a)
	s.entryDelete(root)

	var changes []ledgerstore.Change
	s.ForEachChange(func(c ledgerstore.Change) { changes = append(changes, c) })

	require.Len(t, changes, 1)
	require.Equal(t, ledgerstore.ActionDeleted, changes[0].Action)
}

func TestSwapWithExchangesContents(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	a := acct(1)
	seedAccount(store, a, 1_000_000)

	s1 := newTestSet(store, 1)
	root := s1.getAccountRoot(a)
	root.SetNativeBalance(sle.XRPCurrency, 111)
	s1.entryModify(root)

	s2 := newTestSet(store, 2)

	s1.swapWith(s2)

	require.Empty(t, s1.entries)
	require.Equal(t, int64(111), s2.getAccountRoot(a).NativeBalance(sle.XRPCurrency))
}

func TestIncrementDecrementOwnerCountUnderflowPanics(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	a := acct(1)
	seedAccount(store, a, 1_000_000)
	s := newTestSet(store, 1)
	root := s.getAccountRoot(a)
	require.Equal(t, uint32(0), root.OwnerCount)
	require.Panics(t, func() { s.decrementOwnerCount(root) })
}

func TestOwnClonesOnFirstAccessAfterDuplicate(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	a := acct(1)
	seedAccount(store, a, 1_000_000)
	s := newTestSet(store, 1)
	root := s.getAccountRoot(a)
	root.SetNativeBalance(sle.XRPCurrency, 5)
	s.entryModify(root)

	dup := s.duplicate()
	idx := ledgerstore.AccountRootIndex(a)
	require.Equal(t, s.entries[idx].entry, dup.entries[idx].entry, "immediately after duplicate, the underlying entry is still shared")

	_ = dup.own(idx)
	require.NotSame(t, s.entries[idx].entry, dup.entries[idx].entry, "own clones on first access past a generation bump")
}

var _ = ter.TesSUCCESS // keep ter imported for future Result-based tests in this file
