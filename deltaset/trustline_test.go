package deltaset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/insolar/ledgerstate/amount"
	"github.com/insolar/ledgerstate/ledgerstore"
	"github.com/insolar/ledgerstate/sle"
	"github.com/insolar/ledgerstate/ter"
)

// TestTrustCreateSetHighTruthTable is Open Question 3's
// recommended truth table for bSetHigh = srcHigh XOR (limit.Issuer==dst):
// all four combinations of (src relative to dst, limit issuer) must land
// the caller-supplied limit on the side the formula predicts.
func TestTrustCreateSetHighTruthTable(t *testing.T) {
	low := acct(1)
	high := acct(2)

	cases := []struct {
		name string
		src, dst sle.AccountID
		limitIssuer sle.AccountID
		wantSetHigh bool
	}{
		// setHigh = srcHigh XOR (limit.Issuer == dst)
		{"srcLow_limitOnDst", low, high, high, true}, // srcHigh=false, issuer==dst=true -> true
		{"srcLow_limitNotOnDst", low, high, low, false}, // srcHigh=false, issuer==dst=false -> false
		{"srcHigh_limitOnDst", high, low, low, false}, // srcHigh=true, issuer==dst=true -> false
		{"srcHigh_limitNotOnDst", high, low, high, true}, // srcHigh=true, issuer==dst=false -> true
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
			seedAccount(store, c.src, 1_000_000)
			s := newTestSet(store, 1)

			srcAcct := s.getAccountRoot(c.src)
			srcHigh := c.src.Compare(c.dst) > 0
			idx := sle.TrustLineIndex(low, high, sle.CurrencyCode{'U', 'S', 'D'})
			limit := amount.Issued(1_000_000_000_000_000, -6, sle.CurrencyCode{'U', 'S', 'D'}, c.limitIssuer)

			code := s.trustCreate(srcHigh, c.src, c.dst, idx, srcAcct, false, false, false, amount.Issued(0, 0, limit.Currency, sle.ZeroAccount), limit, 0, 0)
			require.Equal(t, ter.TesSUCCESS, code)

			state := s.entries[idx].entry.(*sle.RippleState)
			gotSetHigh := !state.HighLimit.IsZero()
			require.Equal(t, c.wantSetHigh, gotSetHigh, "limit landed on the wrong side")
		})
	}
}

func TestTrustCreateLinksBothOwnerDirectories(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	src, dst := acct(1), acct(2)
	seedAccount(store, src, 1_000_000)
	seedAccount(store, dst, 1_000_000)
	s := newTestSet(store, 1)

	srcAcct := s.getAccountRoot(src)
	currency := sle.CurrencyCode{'U', 'S', 'D'}
	low, high := src, dst
	if src.Compare(dst) > 0 {
		low, high = dst, src
	}
	idx := sle.TrustLineIndex(low, high, currency)
	limit := amount.Issued(1_000_000_000_000_000, -6, currency, dst)

	code := s.trustCreate(src.Compare(dst) > 0, src, dst, idx, srcAcct, false, false, false, amount.Issued(0, 0, currency, sle.ZeroAccount), limit, 0, 0)
	require.Equal(t, ter.TesSUCCESS, code)

	require.Equal(t, 1, s.dirCount(ownerDirRoot(src)))
	require.Equal(t, 1, s.dirCount(ownerDirRoot(dst)))
	require.Equal(t, uint32(1), s.getAccountRoot(src).OwnerCount)
}

func TestTrustDeleteUnlinksBothDirectories(t *testing.T) {
	store := ledgerstore.NewMemStore(20_000_000, 5_000_000)
	src, dst := acct(1), acct(2)
	seedAccount(store, src, 1_000_000)
	seedAccount(store, dst, 1_000_000)
	s := newTestSet(store, 1)

	srcAcct := s.getAccountRoot(src)
	currency := sle.CurrencyCode{'U', 'S', 'D'}
	low, high := src, dst
	if src.Compare(dst) > 0 {
		low, high = dst, src
	}
	idx := sle.TrustLineIndex(low, high, currency)
	limit := amount.Issued(1_000_000_000_000_000, -6, currency, dst)
	code := s.trustCreate(src.Compare(dst) > 0, src, dst, idx, srcAcct, false, false, false, amount.Issued(0, 0, currency, sle.ZeroAccount), limit, 0, 0)
	require.Equal(t, ter.TesSUCCESS, code)

	state := s.entries[idx].entry.(*sle.RippleState)
	code = s.trustDelete(state)
	require.Equal(t, ter.TesSUCCESS, code)

	require.True(t, s.dirIsEmpty(ownerDirRoot(src)))
	require.True(t, s.dirIsEmpty(ownerDirRoot(dst)))
	require.Nil(t, s.entryCache(sle.TypeRippleState, idx))
}
