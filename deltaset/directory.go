package deltaset

import (
	"github.com/insolar/ledgerstate/ledgerkey"
	"github.com/insolar/ledgerstate/ledgerstore"
	"github.com/insolar/ledgerstate/sle"
	"github.com/insolar/ledgerstate/ter"
)

// softProbeWindow bounds how many successive node ids dirDelete will probe
// past a stale hint before giving up.
const softProbeWindow = 20

func pageIndex(root sle.Index, nodeID uint64) sle.Index {
	return ledgerkey.DirNodeIndex(root, nodeID)
}

func (s *Set) loadPage(root sle.Index, nodeID uint64) *sle.DirNode {
	e := s.entryCache(sle.TypeDirNode, pageIndex(root, nodeID))
	if e == nil {
		return nil
	}
	return e.(*sle.DirNode)
}

// dirAdd appends entryID to the directory rooted at root, describer
// stamping any newly-created page.
func (s *Set) dirAdd(root sle.Index, entryID sle.Index, describer ledgerstore.DescriberFunc) (nodeID uint64, code ter.Code) {
	rootPage := s.loadPage(root, 0)
	if rootPage == nil {
		rootPage = sle.NewDirNode(root, root, 0)
		rootPage.Indexes = []sle.Index{entryID}
		if describer != nil {
			describer(rootPage, true)
		}
		s.entryCreate(rootPage)
		return 0, ter.TesSUCCESS
	}

	tail := rootPage
	tailID := uint64(0)
	if rootPage.IndexPrevious != 0 {
		tailID = rootPage.IndexPrevious
		tail = s.loadPage(root, tailID)
		if tail == nil {
			return 0, ter.TefBAD_LEDGER
		}
	}

	if !tail.Full() {
		tail.Indexes = append(tail.Indexes, entryID)
		s.entryModify(tail)
		return tailID, ter.TesSUCCESS
	}

	newID := tailID + 1
	if newID == 0 {
		// wrapped: tailID was the max uint64
		return 0, ter.TecDIR_FULL
	}

	newPage := sle.NewDirNode(pageIndex(root, newID), root, newID)
	newPage.Indexes = []sle.Index{entryID}
	if newID > 1 {
		newPage.IndexPrevious = newID - 1
	}
	if describer != nil {
		describer(newPage, false)
	}

	tail.IndexNext = newID
	s.entryModify(tail)

	rootPage.IndexPrevious = newID
	s.entryModify(rootPage)

	s.entryCreate(newPage)
	return newID, ter.TesSUCCESS
}

// dirDelete removes entryID from the directory rooted at root, starting
// its search at page nodeHint.
func (s *Set) dirDelete(keepRoot bool, nodeHint uint64, root sle.Index, entryID sle.Index, stable bool, soft bool) ter.Code {
	page, pageID, code := s.findPageSoft(root, nodeHint, entryID, soft)
	if code != ter.TesSUCCESS {
		return code
	}

	removeFromPage(page, entryID, stable)
	s.entryModify(page)

	if len(page.Indexes) > 0 {
		return ter.TesSUCCESS
	}

	return s.collapseEmptyPage(keepRoot, root, page, pageID)
}

func (s *Set) findPageSoft(root sle.Index, nodeHint uint64, entryID sle.Index, soft bool) (*sle.DirNode, uint64, ter.Code) {
	page := s.loadPage(root, nodeHint)
	if page == nil {
		if !soft {
			return nil, 0, ter.TefBAD_LEDGER
		}
		for probe := nodeHint + 1; probe <= nodeHint+softProbeWindow; probe++ {
			page = s.loadPage(root, probe)
			if page != nil {
				nodeHint = probe
				break
			}
		}
		if page == nil {
			return nil, 0, ter.TefBAD_LEDGER
		}
	}

	if indexOf(page.Indexes, entryID) >= 0 {
		return page, nodeHint, ter.TesSUCCESS
	}
	if !soft {
		return nil, 0, ter.TefBAD_LEDGER
	}

	for probe := nodeHint + 1; probe <= nodeHint+softProbeWindow; probe++ {
		p := s.loadPage(root, probe)
		if p != nil && indexOf(p.Indexes, entryID) >= 0 {
			return p, probe, ter.TesSUCCESS
		}
	}
	return nil, 0, ter.TefBAD_LEDGER
}

func indexOf(ids []sle.Index, target sle.Index) int {
	for i, id := range ids {
		if id == target {
			return i
		}
	}
	return -1
}

func removeFromPage(page *sle.DirNode, entryID sle.Index, stable bool) {
	i := indexOf(page.Indexes, entryID)
	if i < 0 {
		return
	}
	if stable {
		page.Indexes = append(page.Indexes[:i], page.Indexes[i+1:]...)
		return
	}
	last := len(page.Indexes) - 1
	page.Indexes[i] = page.Indexes[last]
	page.Indexes = page.Indexes[:last]
}

// collapseEmptyPage implements pipeline step 5, the root/middle/tail
// unlinking policy for a page that has just become empty.
func (s *Set) collapseEmptyPage(keepRoot bool, root sle.Index, page *sle.DirNode, pageID uint64) ter.Code {
	prev := page.IndexPrevious
	next := page.IndexNext

	if pageID == 0 {
		// Root page.
		if prev == 0 {
			s.entryDelete(page)
			return ter.TesSUCCESS
		}
		if keepRoot {
			return ter.TesSUCCESS
		}
		if prev != next {
			return ter.TesSUCCESS
		}
		// Exactly one other page remains, and it is both the previous and
		// the next link of a root that overflowed exactly once.
		sole := s.loadPage(root, prev)
		if sole == nil {
			return ter.TefBAD_LEDGER
		}
		if len(sole.Indexes) == 0 {
			s.entryDelete(sole)
			s.entryDelete(page)
		}
		return ter.TesSUCCESS
	}

	if next != 0 {
		// Middle page: splice out.
		prevPage := s.loadPage(root, prev)
		nextPage := s.loadPage(root, next)
		if prevPage == nil || nextPage == nil {
			return ter.TefBAD_LEDGER
		}
		prevPage.IndexNext = next
		s.entryModify(prevPage)
		nextPage.IndexPrevious = prev
		s.entryModify(nextPage)
		s.entryDelete(page)
		return ter.TesSUCCESS
	}

	// Tail page.
	if keepRoot || prev != 0 {
		return ter.TesSUCCESS
	}
	rootPage := s.loadPage(root, 0)
	if rootPage == nil {
		return ter.TefBAD_LEDGER
	}
	if len(rootPage.Indexes) == 0 {
		s.entryDelete(rootPage)
		s.entryDelete(page)
	}
	return ter.TesSUCCESS
}

// DirCursor identifies a position within a directory chain for iteration.
type DirCursor struct {
	root sle.Index
	nodeID uint64
	offset int
}

// dirFirst returns the first entry in the directory rooted at root, or
// ok=false if the directory is absent or empty.
func (s *Set) dirFirst(root sle.Index) (cur DirCursor, entryID sle.Index, ok bool) {
	return s.dirAt(root, 0, 0)
}

// dirNext advances cur to the following entry.
func (s *Set) dirNext(cur DirCursor) (next DirCursor, entryID sle.Index, ok bool) {
	return s.dirAt(cur.root, cur.nodeID, cur.offset+1)
}

func (s *Set) dirAt(root sle.Index, nodeID uint64, offset int) (DirCursor, sle.Index, bool) {
	for {
		page := s.loadPage(root, nodeID)
		if page == nil {
			return DirCursor{}, sle.ZeroIndex, false
		}
		if offset < len(page.Indexes) {
			return DirCursor{root: root, nodeID: nodeID, offset: offset}, page.Indexes[offset], true
		}
		if page.IndexNext == 0 {
			return DirCursor{}, sle.ZeroIndex, false
		}
		nodeID = page.IndexNext
		offset = 0
	}
}

// dirCount walks the full chain and counts entries (used by tests; a real
// caller would track this incrementally, but the chain is always small
// enough in this engine's scope to just walk it).
func (s *Set) dirCount(root sle.Index) int {
	n := 0
	for cur, _, ok := s.dirFirst(root); ok; cur, _, ok = s.dirNext(cur) {
		n++
	}
	return n
}

func (s *Set) dirIsEmpty(root sle.Index) bool {
	_, _, ok := s.dirFirst(root)
	return !ok
}
