package deltaset

import (
	"github.com/insolar/ledgerstate/sle"
	"github.com/insolar/ledgerstate/ter"
)

// offerDelete removes offer from its owner and book directories and
// deletes the entry itself, decrementing owner count only if the
// owner-directory delete succeeded.
func (s *Set) offerDelete(offer *sle.Offer) ter.Code {
	ownerDirSoft := offer.OwnerNode == 0
	ownerCode := s.dirDelete(false, offer.OwnerNode, ownerDirRoot(offer.Account), offer.GetIndex(), false, ownerDirSoft)

	bookCode := s.dirDelete(false, offer.BookNode, offer.BookDirectory, offer.GetIndex(), true, false)

	if ownerCode == ter.TesSUCCESS {
		if owner := s.getAccountRoot(offer.Account); owner != nil {
			s.decrementOwnerCount(owner)
			s.entryModify(owner)
		}
	}

	s.entryDelete(offer)

	if ownerCode != ter.TesSUCCESS {
		return ownerCode
	}
	return bookCode
}
