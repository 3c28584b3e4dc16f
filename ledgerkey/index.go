// Package ledgerkey defines the 256-bit entry index and 160-bit account/
// currency identifiers shared by the sle (ledger entry) and amount packages,
// kept separate from both to avoid an import cycle between them.
package ledgerkey

import (
	"crypto/sha256"
	"encoding/hex"
)

// Index is the content-derived 256-bit key identifying a ledger entry.
type Index [32]byte

// ZeroIndex is the all-zero index, returned where no index exists (for
// example, no next ledger index).
var ZeroIndex Index

func (i Index) IsZero() bool {
	return i == ZeroIndex
}

func (i Index) String() string {
	return hex.EncodeToString(i[:])
}

// Less orders indexes ascending, used for the deterministic sorted iteration
// required by metadata emission.
func (i Index) Less(o Index) bool {
	for k := range i {
		if i[k] != o[k] {
			return i[k] < o[k]
		}
	}
	return false
}

// DirNodeIndex derives the index of directory page nodeID within the chain
// rooted at root. Node 0 is the root itself. The real protocol's derivation
// is a fixed hash; the exact hash function is part of the wire codec and is
// out of scope, so this is a stand-in with the same shape:
// deterministic, root- and nodeID-dependent, collision-free for any nodeID
// sequence actually produced by dirAdd.
func DirNodeIndex(root Index, nodeID uint64) Index {
	if nodeID == 0 {
		return root
	}
	h := sha256.New()
	h.Write(root[:])
	var b [8]byte
	putUint64(b[:], nodeID)
	h.Write(b[:])
	var out Index
	copy(out[:], h.Sum(nil))
	return out
}

// TrustLineIndex derives a RippleState's index from its canonical
// endpoints and currency. The real protocol hash is part of the wire
// codec and out of scope; this stand-in is deterministic and
// collision-free for any (low, high, currency) triple.
func TrustLineIndex(low, high AccountID, currency CurrencyCode) Index {
	h := sha256.New()
	h.Write([]byte("RippleState"))
	h.Write(low[:])
	h.Write(high[:])
	h.Write(currency[:])
	var out Index
	copy(out[:], h.Sum(nil))
	return out
}

// BookDirIndex derives an order book's directory root from the traded
// currency pair and a quality rate, the same way TrustLineIndex derives a
// trust line's index from its endpoints: a deterministic stand-in for the
// real protocol's book-directory key (out of scope), collision-free for
// any (pays, gets, rate) triple actually produced by CreateOffer.
func BookDirIndex(paysCurrency CurrencyCode, paysIssuer AccountID, getsCurrency CurrencyCode, getsIssuer AccountID, rate uint64) Index {
	h := sha256.New()
	h.Write([]byte("BookDirectory"))
	h.Write(paysCurrency[:])
	h.Write(paysIssuer[:])
	h.Write(getsCurrency[:])
	h.Write(getsIssuer[:])
	var b [8]byte
	putUint64(b[:], rate)
	h.Write(b[:])
	var out Index
	copy(out[:], h.Sum(nil))
	return out
}

func putUint64(b []byte, v uint64) {
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}
