package engine

import "github.com/SscSPs/backoffice_app/internal/core/domain"

// GoalIndex is an arena over a flat snapshot of goal nodes. Parent/child links
// are resolved through it by key; nodes never hold references to each other.
type GoalIndex struct {
	nodes    map[domain.NodeKey]domain.GoalNode
	order    []domain.NodeKey
	children map[domain.NodeKey][]domain.NodeKey
}

// NewGoalIndex builds an index. When a key appears twice the later node wins.
func NewGoalIndex(nodes []domain.GoalNode) *GoalIndex {
	ix := &GoalIndex{
		nodes:    make(map[domain.NodeKey]domain.GoalNode, len(nodes)),
		order:    make([]domain.NodeKey, 0, len(nodes)),
		children: make(map[domain.NodeKey][]domain.NodeKey),
	}
	for _, n := range nodes {
		key := n.Key()
		if prev, seen := ix.nodes[key]; seen {
			ix.unlink(prev)
		} else {
			ix.order = append(ix.order, key)
		}
		ix.nodes[key] = n
		if parentKey, ok := n.ParentKey(); ok {
			ix.children[parentKey] = append(ix.children[parentKey], key)
		}
	}
	return ix
}

func (ix *GoalIndex) unlink(n domain.GoalNode) {
	parentKey, ok := n.ParentKey()
	if !ok {
		return
	}
	siblings := ix.children[parentKey]
	for i, k := range siblings {
		if k == n.Key() {
			ix.children[parentKey] = append(siblings[:i:i], siblings[i+1:]...)
			return
		}
	}
}

// Get returns the node stored under key.
func (ix *GoalIndex) Get(key domain.NodeKey) (domain.GoalNode, bool) {
	n, ok := ix.nodes[key]
	return n, ok
}

// Parent resolves the node's parent reference.
func (ix *GoalIndex) Parent(n domain.GoalNode) (domain.GoalNode, bool) {
	key, ok := n.ParentKey()
	if !ok {
		return domain.GoalNode{}, false
	}
	return ix.Get(key)
}

// Children returns every node whose parent reference resolves to key, deleted or not,
// in snapshot order.
func (ix *GoalIndex) Children(key domain.NodeKey) []domain.GoalNode {
	keys := ix.children[key]
	out := make([]domain.GoalNode, 0, len(keys))
	for _, k := range keys {
		out = append(out, ix.nodes[k])
	}
	return out
}

// Nodes returns every node in snapshot order.
func (ix *GoalIndex) Nodes() []domain.GoalNode {
	out := make([]domain.GoalNode, 0, len(ix.order))
	for _, k := range ix.order {
		out = append(out, ix.nodes[k])
	}
	return out
}

// IsOrphaned reports whether n points at a parent that is missing from the
// snapshot or soft deleted.
func (ix *GoalIndex) IsOrphaned(n domain.GoalNode) bool {
	if !n.HasParent() {
		return false
	}
	parent, ok := ix.Parent(n)
	return !ok || parent.IsDeleted()
}

// ParentDeleted reports whether n's parent is present and soft deleted.
func (ix *GoalIndex) ParentDeleted(n domain.GoalNode) bool {
	parent, ok := ix.Parent(n)
	return ok && parent.IsDeleted()
}
