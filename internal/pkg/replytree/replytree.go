package replytree

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/s21platform/forum-service/internal/model"
)

// maxParentDepth caps the parent-chain walk so that a corrupted chain
// can never stall a request.
const maxParentDepth = 512

// Closure computes the transitive delete-set for rootID: the reply
// itself plus every reply whose parent chain leads into the set. The
// set grows monotonically and the candidate list is finite, so the
// loop reaches a fixed point regardless of the order replies are
// stored in, even if a corrupted chain contains a cycle.
func Closure(refs []model.ReplyRef, rootID uuid.UUID) []uuid.UUID {
	deleteSet := map[uuid.UUID]struct{}{rootID: {}}

	changed := true
	for changed {
		changed = false
		for _, ref := range refs {
			if ref.ParentReplyID == nil {
				continue
			}
			if _, ok := deleteSet[*ref.ParentReplyID]; !ok {
				continue
			}
			if _, ok := deleteSet[ref.ID]; !ok {
				deleteSet[ref.ID] = struct{}{}
				changed = true
			}
		}
	}

	ids := make([]uuid.UUID, 0, len(deleteSet))
	for id := range deleteSet {
		ids = append(ids, id)
	}

	return ids
}

// FindParent returns the reply parentID points at, or false when the
// thread has no such reply.
func FindParent(refs []model.ReplyRef, parentID uuid.UUID) (model.ReplyRef, bool) {
	for _, ref := range refs {
		if ref.ID == parentID {
			return ref, true
		}
	}

	return model.ReplyRef{}, false
}

// ValidateParent checks that parentID references an existing reply of
// the thread and that its parent chain terminates without revisiting a
// node. Nothing in storage prevents a cycle from sneaking in through
// racing updates, so the walk keeps a visited set and bails out early.
func ValidateParent(refs []model.ReplyRef, parentID uuid.UUID) error {
	byID := make(map[uuid.UUID]model.ReplyRef, len(refs))
	for _, ref := range refs {
		byID[ref.ID] = ref
	}

	if _, ok := byID[parentID]; !ok {
		return fmt.Errorf("parent reply %s does not exist in this thread", parentID)
	}

	visited := make(map[uuid.UUID]struct{})
	current := parentID

	for depth := 0; depth < maxParentDepth; depth++ {
		if _, ok := visited[current]; ok {
			return fmt.Errorf("parent chain of reply %s contains a cycle", parentID)
		}
		visited[current] = struct{}{}

		ref, ok := byID[current]
		if !ok || ref.ParentReplyID == nil {
			return nil
		}
		current = *ref.ParentReplyID
	}

	return fmt.Errorf("parent chain of reply %s exceeds maximum depth", parentID)
}
