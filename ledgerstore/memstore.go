package ledgerstore

import (
	"sync"

	"github.com/insolar/ledgerstate/ledgerkey"
	"github.com/insolar/ledgerstate/sle"
	"github.com/insolar/ledgerstate/vanilla/synckit"
)

// Action mirrors deltaset's action tag just closely enough for Apply to
// know what to do with a changed entry, without ledgerstore importing
// deltaset (that import runs the other way: deltaset.Set reads through
// View).
type Action uint8

const (
	ActionModified Action = iota
	ActionDeleted
)

// Change is one staged mutation, as produced by a delta-set's
// ChangeSet.ForEachChange callback.
type Change struct {
	Index  sle.Index
	Entry  sle.Entry
	Action Action
}

// ChangeSet is the narrow view of a committed delta-set that Apply needs.
// deltaset.Set implements it (see deltaset/set.go ForEachChange) without
// either package importing the other.
type ChangeSet interface {
	ForEachChange(func(Change))
	TxID() sle.Index
	LedgerSeq() uint32
}

// MemStore is an in-memory parent-ledger store, guarded the way the
// teacher's insolar/nodestorage.Storage guards its per-pulse node map: one
// RWMutex around a plain map, Accessor-style reads taking RLock and the
// single Modifier-style write (Apply) taking Lock.
type MemStore struct {
	lock synckit.RWLocker

	entries map[sle.Index]sle.Entry
	order   []sle.Index // insertion order, for GetNextLedgerIndex

	txns map[sle.Index]struct{}

	ledgerSeq uint32

	reserveBase      int64
	reserveIncrement int64

	dividend *sle.DividendObject

	describer DescriberFunc
}

func NewMemStore(reserveBase, reserveIncrement int64) *MemStore {
	return &MemStore{
		lock:             &sync.RWMutex{},
		entries:          map[sle.Index]sle.Entry{},
		txns:             map[sle.Index]struct{}{},
		ledgerSeq:        1,
		reserveBase:      reserveBase,
		reserveIncrement: reserveIncrement,
		describer:        func(*sle.DirNode, bool) {},
	}
}

func (m *MemStore) SetDescriber(f DescriberFunc) { m.describer = f }

func (m *MemStore) Describer() DescriberFunc { return m.describer }

func (m *MemStore) SetDividendObject(d *sle.DividendObject) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.dividend = d
}

// Seed inserts an entry directly into the store, bypassing the delta-set
// (used by tests and the cmd/ front-end to bootstrap a ledger).
func (m *MemStore) Seed(e sle.Entry) {
	m.lock.Lock()
	defer m.lock.Unlock()
	idx := e.GetIndex()
	if _, ok := m.entries[idx]; !ok {
		m.order = append(m.order, idx)
	}
	m.entries[idx] = e
}

func (m *MemStore) GetSLE(idx sle.Index) sle.Entry {
	m.lock.RLock()
	defer m.lock.RUnlock()
	e, ok := m.entries[idx]
	if !ok {
		return nil
	}
	return e.Clone()
}

func (m *MemStore) GetSLEi(idx sle.Index) sle.Entry {
	return m.GetSLE(idx)
}

func (m *MemStore) GetNextLedgerIndex(after sle.Index) sle.Index {
	m.lock.RLock()
	defer m.lock.RUnlock()

	var best sle.Index
	found := false
	for _, idx := range m.order {
		if !after.Less(idx) {
			continue
		}
		if !found || idx.Less(best) {
			best = idx
			found = true
		}
	}
	if !found {
		return sle.ZeroIndex
	}
	return best
}

func (m *MemStore) GetAccountRoot(account sle.AccountID) *sle.AccountRoot {
	idx := AccountRootIndex(account)
	e := m.GetSLE(idx)
	if e == nil {
		return nil
	}
	return e.(*sle.AccountRoot)
}

func (m *MemStore) GetReserve(ownerCount uint32) int64 {
	return m.reserveBase + int64(ownerCount)*m.reserveIncrement
}

func (m *MemStore) GetDividendObject() *sle.DividendObject {
	m.lock.RLock()
	defer m.lock.RUnlock()
	if m.dividend == nil {
		return nil
	}
	d := m.dividend.Clone()
	return d.(*sle.DividendObject)
}

func (m *MemStore) GetLedgerSeq() uint32 {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.ledgerSeq
}

func (m *MemStore) HasTransaction(txID sle.Index) bool {
	m.lock.RLock()
	defer m.lock.RUnlock()
	_, ok := m.txns[txID]
	return ok
}

// ScaleFeeLoad applies the admin discount: an admin submitter is charged
// zero, everyone else pays baseFee unchanged. Network load is not modelled.
func (m *MemStore) ScaleFeeLoad(baseFee int64, admin bool) int64 {
	if admin {
		return 0
	}
	return baseFee
}

// Apply merges a committed delta-set's changes into the store and advances
// the ledger sequence — the single commit hook a caller invokes once a
// transaction's result code says its delta-set persists.
func (m *MemStore) Apply(cs ChangeSet) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	cs.ForEachChange(func(c Change) {
		switch c.Action {
		case ActionDeleted:
			delete(m.entries, c.Index)
		default:
			if _, ok := m.entries[c.Index]; !ok {
				m.order = append(m.order, c.Index)
			}
			m.entries[c.Index] = c.Entry
		}
	})

	m.txns[cs.TxID()] = struct{}{}
	if cs.LedgerSeq() > m.ledgerSeq {
		m.ledgerSeq = cs.LedgerSeq()
	}
	return nil
}

// AccountRootIndex derives an AccountRoot's index from its account id. The
// real derivation hashes a namespace byte with the account id; the exact
// hash is part of the wire codec, so this is a deterministic stand-in with
// the same shape.
func AccountRootIndex(account sle.AccountID) sle.Index {
	var seed ledgerkey.Index
	copy(seed[:], account[:])
	return ledgerkey.DirNodeIndex(seed, 0x61)
}

// OfferIndex derives an Offer's index from its owning account and sequence
// number, the same deterministic-stand-in style as AccountRootIndex.
func OfferIndex(account sle.AccountID, seq uint32) sle.Index {
	var seed ledgerkey.Index
	copy(seed[:], account[:])
	return ledgerkey.DirNodeIndex(seed, 0x6F00000000|uint64(seq))
}

// GeneratorMapIndex derives a wallet's GeneratorMap index from its owning
// account, same stand-in style.
func GeneratorMapIndex(account sle.AccountID) sle.Index {
	var seed ledgerkey.Index
	copy(seed[:], account[:])
	return ledgerkey.DirNodeIndex(seed, 0x6700000000)
}

// TicketIndex derives a Ticket's index from its owning account and reserved
// sequence.
func TicketIndex(account sle.AccountID, seq uint32) sle.Index {
	var seed ledgerkey.Index
	copy(seed[:], account[:])
	return ledgerkey.DirNodeIndex(seed, 0x5400000000|uint64(seq))
}

// NicknameIndex derives a Nickname's index from its owning account, the
// same deterministic-stand-in style as AccountRootIndex.
func NicknameIndex(account sle.AccountID) sle.Index {
	var seed ledgerkey.Index
	copy(seed[:], account[:])
	return ledgerkey.DirNodeIndex(seed, 0x6E00000000)
}

// FeeSettingsIndex is the ledger-wide singleton index FeeSettings lives at —
// a fixed well-known key, not account-derived, mirroring rippled's single
// "fee settings" object.
func FeeSettingsIndex() sle.Index {
	return ledgerkey.DirNodeIndex(ledgerkey.ZeroIndex, 0x73)
}

// DividendObjectIndex is the ledger-wide singleton index the Dividend
// transaction's overlay-backed handler writes to.
// This is distinct from the dedicated `dividend` field MemStore exposes
// through GetDividendObject/SetDividendObject — see DESIGN.md for why the
// two are not wired together.
func DividendObjectIndex() sle.Index {
	return ledgerkey.DirNodeIndex(ledgerkey.ZeroIndex, 0x80)
}
