package deltaset

import (
	"github.com/insolar/ledgerstate/ledgerstore"
	"github.com/insolar/ledgerstate/sle"
	"github.com/insolar/ledgerstate/vanilla/throw"
)

// threadBuf is the metadata-build-time state threadTx and threadOwners
// share with calcRawMeta: the affected-node set being assembled and the
// new_mods side buffer for ledger-only reads materialized purely for
// threading.
type threadBuf struct {
	nodes map[sle.Index]*AffectedNode
	newMods map[sle.Index]*overlayEntry
}

// threadTx records idx's pre-thread PreviousTxnID/PreviousTxnLgrSeq onto
// its (possibly newly-created) AffectedNode, then overwrites the entry's
// threading fields with the current transaction id and ledger sequence.
// It loads idx via the overlay first, then the side buffer, then the
// parent ledger — never a Deleted entry.
func (s *Set) threadTx(idx sle.Index, buf *threadBuf) {
	if oe, ok := s.entries[idx]; ok {
		if oe.action == actionDeleted {
			panic(throw.IllegalState())
		}
		target := s.own(idx)
		s.recordThreadedPrevious(idx, target.entry, buf)
		target.entry.SetPrevTxn(s.txID, s.ledgerSeq)
		if target.action == actionCached {
			target.action = actionModified
		}
		return
	}

	if nm, ok := buf.newMods[idx]; ok {
		s.recordThreadedPrevious(idx, nm.entry, buf)
		nm.entry.SetPrevTxn(s.txID, s.ledgerSeq)
		return
	}

	fetched := s.view.GetSLE(idx)
	if fetched == nil {
		return
	}
	original := fetched.Clone()
	s.recordThreadedPrevious(idx, fetched, buf)
	fetched.SetPrevTxn(s.txID, s.ledgerSeq)
	buf.newMods[idx] = &overlayEntry{entry: fetched, action: actionModified, gen: s.myGen, original: original}
}

func (s *Set) recordThreadedPrevious(idx sle.Index, entry sle.Entry, buf *threadBuf) {
	node, ok := buf.nodes[idx]
	if !ok {
		node = &AffectedNode{Kind: actionModified, EntryType: entry.Type(), Index: idx}
		buf.nodes[idx] = node
	}
	prevID, prevSeq := entry.PrevTxn()
	node.PreviousTxnID = &prevID
	node.PreviousTxnLgrSeq = &prevSeq
}

// threadOwners threads the account root(s) that own entry, per
// entry.Owners.
func (s *Set) threadOwners(entry sle.Entry, buf *threadBuf) {
	for _, owner := range entry.Owners() {
		s.threadTx(ledgerstore.AccountRootIndex(owner), buf)
	}
}

// threadSelf threads a Created/Modified entry to itself when its type is
// threaded.
func (s *Set) threadSelf(idx sle.Index, buf *threadBuf) {
	s.threadTx(idx, buf)
}

// drainNewMods funnels every side-buffer entry back into the overlay,
// completing the two-pass new_mods fold-in.
func (s *Set) drainNewMods(buf *threadBuf) {
	for idx, nm := range buf.newMods {
		s.entries[idx] = nm
	}
}
