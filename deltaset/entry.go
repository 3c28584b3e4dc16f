// Package deltaset implements the copy-on-write delta-set overlay a
// transaction stages its reads and mutations into: the
// entry lifecycle state machine, the directory engine, the trust-line and
// value-transfer protocols, referee fee sharing, offer deletion, and
// transaction-metadata generation.
package deltaset

import "github.com/insolar/ledgerstate/sle"

// action is the delta-set entry's state-machine tag.
type action uint8

const (
	actionAbsent action = iota
	actionCached
	actionCreated
	actionModified
	actionDeleted
)

func (a action) String() string {
	switch a {
	case actionCached:
		return "Cached"
	case actionCreated:
		return "Created"
	case actionModified:
		return "Modified"
	case actionDeleted:
		return "Deleted"
	default:
		return "Absent"
	}
}

// overlayEntry is one delta-set entry: the current value, its action tag,
// the generation it was last cloned for (copy-on-write), and a snapshot
// of the value as first observed by this Set, used by the metadata
// builder to compute PreviousFields.
type overlayEntry struct {
	entry    sle.Entry
	action   action
	gen      uint64
	original sle.Entry
}

func (oe *overlayEntry) clone(gen uint64) *overlayEntry {
	return &overlayEntry{
		entry:    oe.entry.Clone(),
		action:   oe.action,
		gen:      gen,
		original: oe.original,
	}
}
