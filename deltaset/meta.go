package deltaset

import (
	"reflect"
	"sort"

	"github.com/insolar/ledgerstate/sle"
	"github.com/insolar/ledgerstate/ter"
)

// AffectedNode is one entry in calcRawMeta's AffectedNodes list. A Created
// node carries NewFields; a Modified or Deleted node carries FinalFields and
// PreviousFields; plus the threading fields when threadTx touched it.
type AffectedNode struct {
	Kind      action
	EntryType sle.EntryType
	Index     sle.Index

	PreviousTxnID     *sle.Index
	PreviousTxnLgrSeq *uint32

	PreviousFields []sle.Field
	FinalFields    []sle.Field
	NewFields      []sle.Field
}

// Metadata is the full output of calcRawMeta.
type Metadata struct {
	TransactionResult ter.Code
	TransactionIndex  uint32
	AffectedNodes     []AffectedNode
	FeeShareTakers    []FeeShareTaker
}

// calcRawMeta builds the transaction metadata for every entry this
// delta-set created, modified, or deleted, plus every entry materialized
// purely for threading.
func (s *Set) calcRawMeta(result ter.Code, txIndex uint32) Metadata {
	buf := &threadBuf{
		nodes:   map[sle.Index]*AffectedNode{},
		newMods: map[sle.Index]*overlayEntry{},
	}

	// Snapshot the keys to visit before threading can add new ones.
	keys := s.sortedIndexes()

	for _, idx := range keys {
		oe := s.entries[idx]
		switch oe.action {
		case actionCreated:
			node := &AffectedNode{Kind: actionCreated, EntryType: oe.entry.Type(), Index: idx}
			node.NewFields = selectFields(oe.entry.Fields(), sle.Create|sle.Always, true)
			buf.nodes[idx] = node
			s.threadOwners(oe.entry, buf)
			if oe.entry.IsThreaded() {
				s.threadSelf(idx, buf)
			}

		case actionModified:
			if reflect.DeepEqual(oe.original, oe.entry) {
				continue
			}
			node := &AffectedNode{Kind: actionModified, EntryType: oe.entry.Type(), Index: idx}
			node.PreviousFields = previousFields(oe.original, oe.entry)
			node.FinalFields = selectFields(oe.entry.Fields(), sle.Always|sle.ChangeNew, false)
			buf.nodes[idx] = node
			if oe.entry.IsThreaded() {
				s.threadSelf(idx, buf)
			}

		case actionDeleted:
			node := &AffectedNode{Kind: actionDeleted, EntryType: oe.entry.Type(), Index: idx}
			node.PreviousFields = previousFields(oe.original, oe.entry)
			node.FinalFields = selectFields(oe.entry.Fields(), sle.Always|sle.DeleteFinal, false)
			buf.nodes[idx] = node
			s.threadOwners(oe.entry, buf)
		}
	}

	// Second pass: fold every ledger-only entry threading materialized
	// back into the overlay, and fill in its node's field subsets now
	// that we know its final (post-thread) shape.
	for idx, nm := range buf.newMods {
		node, ok := buf.nodes[idx]
		if !ok {
			node = &AffectedNode{Kind: actionModified, EntryType: nm.entry.Type(), Index: idx}
			buf.nodes[idx] = node
		}
		node.PreviousFields = previousFields(nm.original, nm.entry)
		node.FinalFields = selectFields(nm.entry.Fields(), sle.Always|sle.ChangeNew, false)
	}
	s.drainNewMods(buf)

	out := make([]AffectedNode, 0, len(buf.nodes))
	idxs := make([]sle.Index, 0, len(buf.nodes))
	for idx := range buf.nodes {
		idxs = append(idxs, idx)
	}
	sort.Slice(idxs, func(i, j int) bool { return idxs[i].Less(idxs[j]) })
	for _, idx := range idxs {
		out = append(out, *buf.nodes[idx])
	}

	return Metadata{
		TransactionResult: result,
		TransactionIndex:  txIndex,
		AffectedNodes:     out,
		FeeShareTakers:    s.feeShareTakers,
	}
}

// selectFields picks fields whose meta flags intersect mask, optionally
// excluding fields at their default value (used for NewFields).
func selectFields(fields []sle.Field, mask sle.MetaFlag, excludeDefault bool) []sle.Field {
	out := make([]sle.Field, 0, len(fields))
	for _, f := range fields {
		if f.Flags&mask == 0 {
			continue
		}
		if excludeDefault && f.IsDefault {
			continue
		}
		out = append(out, f)
	}
	return out
}

// previousFields returns every field of original flagged ChangeOrig whose
// value differs from the corresponding field on current.
func previousFields(original, current sle.Entry) []sle.Field {
	if original == nil || current == nil {
		return nil
	}
	currentByName := map[string]interface{}{}
	for _, f := range current.Fields() {
		currentByName[f.Name] = f.Value
	}

	out := make([]sle.Field, 0, 4)
	for _, f := range original.Fields() {
		if f.Flags&sle.ChangeOrig == 0 {
			continue
		}
		if cur, ok := currentByName[f.Name]; ok && reflect.DeepEqual(cur, f.Value) {
			continue
		}
		out = append(out, f)
	}
	return out
}
