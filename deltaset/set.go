package deltaset

import (
	"sort"

	"github.com/insolar/ledgerstate/ledgerstore"
	"github.com/insolar/ledgerstate/log"
	"github.com/insolar/ledgerstate/sle"
	"github.com/insolar/ledgerstate/ter"
	"github.com/insolar/ledgerstate/vanilla/throw"
)

// Params are the per-execution flags carried by a delta-set.
type Params struct {
	OpenLedger  bool
	Admin       bool
	NoCheckSign bool
}

// FeeShareTaker is one credited referee in the metadata's FeeShareTakers
// list.
type FeeShareTaker struct {
	Account  sle.AccountID
	Currency sle.CurrencyCode
	Issuer   sle.AccountID
	Amount   int64 // drops for a native share, the normalized mantissa for an issued one (exponent not recorded)
}

// Set is the delta-set overlay: a copy-on-write map from
// entry index to (entry, action), backed by a read-through parent-ledger
// View. It is not safe for concurrent use.
type Set struct {
	view ledgerstore.View
	log  log.Logger

	txID      sle.Index
	ledgerSeq uint32
	params    Params
	immutable bool

	entries map[sle.Index]*overlayEntry

	gen   *uint64
	myGen uint64

	feeShareTakers []FeeShareTaker
}

// New builds a fresh delta-set rooted at view.
func New(view ledgerstore.View, txID sle.Index, ledgerSeq uint32, params Params) *Set {
	gen := new(uint64)
	return &Set{
		view:      view,
		log:       log.Global(),
		txID:      txID,
		ledgerSeq: ledgerSeq,
		params:    params,
		entries:   map[sle.Index]*overlayEntry{},
		gen:       gen,
		myGen:     *gen,
	}
}

// TxID and LedgerSeq satisfy ledgerstore.ChangeSet.
func (s *Set) TxID() sle.Index    { return s.txID }
func (s *Set) LedgerSeq() uint32 { return s.ledgerSeq }

// ForEachChange satisfies ledgerstore.ChangeSet: it yields every entry this
// delta-set Created or Modified (as an upsert) or Deleted, in index order,
// so Apply's iteration is deterministic.
func (s *Set) ForEachChange(fn func(ledgerstore.Change)) {
	for _, idx := range s.sortedIndexes() {
		oe := s.entries[idx]
		switch oe.action {
		case actionCreated, actionModified:
			fn(ledgerstore.Change{Index: idx, Entry: oe.entry.Clone(), Action: ledgerstore.ActionModified})
		case actionDeleted:
			fn(ledgerstore.Change{Index: idx, Action: ledgerstore.ActionDeleted})
		}
	}
}

func (s *Set) sortedIndexes() []sle.Index {
	out := make([]sle.Index, 0, len(s.entries))
	for idx := range s.entries {
		out = append(out, idx)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// clear empties the overlay in place.
func (s *Set) clear() {
	s.entries = map[sle.Index]*overlayEntry{}
	s.feeShareTakers = nil
}

// duplicate returns a logically-independent copy: shared entries are
// not cloned until the first write to either side touches them.
func (s *Set) duplicate() *Set {
	*s.gen++
	s.myGen = *s.gen
	*s.gen++
	dup := &Set{
		view:      s.view,
		log:       s.log,
		txID:      s.txID,
		ledgerSeq: s.ledgerSeq,
		params:    s.params,
		immutable: s.immutable,
		entries:   make(map[sle.Index]*overlayEntry, len(s.entries)),
		gen:       s.gen,
		myGen:     *s.gen,
	}
	for idx, oe := range s.entries {
		dup.entries[idx] = oe
	}
	dup.feeShareTakers = append([]FeeShareTaker(nil), s.feeShareTakers...)
	return dup
}

// swapWith exchanges the contents of two delta-sets.
func (s *Set) swapWith(other *Set) {
	s.entries, other.entries = other.entries, s.entries
	s.feeShareTakers, other.feeShareTakers = other.feeShareTakers, s.feeShareTakers
	s.gen, other.gen = other.gen, s.gen
	s.myGen, other.myGen = other.myGen, s.myGen
}

// own returns this Set's exclusive, mutable copy of the entry at idx,
// cloning it first if it is still shared with a sibling produced by
// duplicate (copy-on-write).
func (s *Set) own(idx sle.Index) *overlayEntry {
	oe := s.entries[idx]
	if oe.gen != s.myGen {
		oe = oe.clone(s.myGen)
		s.entries[idx] = oe
	}
	return oe
}

func (s *Set) hasEntry(idx sle.Index) bool {
	oe, ok := s.entries[idx]
	return ok && oe.action != actionDeleted
}

// entryCache reads through to the parent ledger on miss.
func (s *Set) entryCache(typ sle.EntryType, idx sle.Index) sle.Entry {
	if oe, ok := s.entries[idx]; ok {
		if oe.action == actionDeleted {
			return nil
		}
		return s.own(idx).entry
	}

	var fetched sle.Entry
	if s.immutable {
		fetched = s.view.GetSLEi(idx)
	} else {
		fetched = s.view.GetSLE(idx)
	}
	if fetched == nil {
		return nil
	}
	if fetched.Type() != typ {
		panic(throw.IllegalValue())
	}

	s.entries[idx] = &overlayEntry{
		entry:    fetched,
		action:   actionCached,
		gen:      s.myGen,
		original: fetched.Clone(),
	}
	return fetched
}

// entryTransitionMsg traces an entry lifecycle transition.
type entryTransitionMsg struct {
	*log.Msg `txt:"entry lifecycle transition"`
	Type     sle.EntryType
	Index    sle.Index
	Action   action
}

// entryCreate materializes a brand-new entry, or resurrects one staged for
// deletion.
func (s *Set) entryCreate(entry sle.Entry) {
	idx := entry.GetIndex()
	oe, ok := s.entries[idx]
	if !ok {
		s.entries[idx] = &overlayEntry{entry: entry, action: actionCreated, gen: s.myGen}
		s.log.Trace(entryTransitionMsg{Type: entry.Type(), Index: idx, Action: actionCreated})
		return
	}
	switch oe.action {
	case actionDeleted:
		s.entries[idx] = &overlayEntry{entry: entry, action: actionModified, gen: s.myGen, original: oe.original}
		s.log.Trace(entryTransitionMsg{Type: entry.Type(), Index: idx, Action: actionModified})
	default:
		panic(throw.IllegalState())
	}
}

// entryModify stages entry as Modified, following the transition table's
// "stay" rule for an already-Created/Modified entry.
func (s *Set) entryModify(entry sle.Entry) {
	idx := entry.GetIndex()
	oe, ok := s.entries[idx]
	if !ok {
		s.entries[idx] = &overlayEntry{entry: entry, action: actionModified, gen: s.myGen}
		s.log.Trace(entryTransitionMsg{Type: entry.Type(), Index: idx, Action: actionModified})
		return
	}
	if oe.action == actionDeleted {
		panic(throw.IllegalState())
	}
	newAction := actionModified
	if oe.action == actionCreated {
		newAction = actionCreated
	}
	s.entries[idx] = &overlayEntry{entry: entry, action: newAction, gen: s.myGen, original: oe.original}
	s.log.Trace(entryTransitionMsg{Type: entry.Type(), Index: idx, Action: newAction})
}

// entryDelete stages entry for deletion, erasing it outright if it was
// only Created in this delta-set.
func (s *Set) entryDelete(entry sle.Entry) {
	idx := entry.GetIndex()
	oe, ok := s.entries[idx]
	if !ok {
		panic(throw.IllegalState())
	}
	switch oe.action {
	case actionCreated:
		delete(s.entries, idx)
	case actionDeleted:
		// noop
	default:
		s.entries[idx] = &overlayEntry{entry: entry, action: actionDeleted, gen: s.myGen, original: oe.original}
		s.log.Trace(entryTransitionMsg{Type: entry.Type(), Index: idx, Action: actionDeleted})
	}
}

func (s *Set) getNextLedgerIndex(after sle.Index) sle.Index {
	return s.view.GetNextLedgerIndex(after)
}

func (s *Set) incrementOwnerCount(root *sle.AccountRoot) {
	root.OwnerCount++
}

func (s *Set) decrementOwnerCount(root *sle.AccountRoot) {
	if root.OwnerCount == 0 {
		panic(throw.IllegalState())
	}
	root.OwnerCount--
}

// getAccountRoot loads (and caches) an account root by account id.
func (s *Set) getAccountRoot(account sle.AccountID) *sle.AccountRoot {
	idx := ledgerstore.AccountRootIndex(account)
	e := s.entryCache(sle.TypeAccountRoot, idx)
	if e == nil {
		return nil
	}
	return e.(*sle.AccountRoot)
}

func (s *Set) getReserve(ownerCount uint32) int64 {
	return s.view.GetReserve(ownerCount)
}

func (s *Set) scaleFeeLoad(baseFee int64, admin bool) int64 {
	return s.view.ScaleFeeLoad(baseFee, admin)
}

// Result pairs a ter.Code with the delta-set that produced it, for
// handlers that need both (transactor.Dispatch).
type Result struct {
	Code ter.Code
	Set  *Set
}
