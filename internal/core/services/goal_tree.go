package services

import (
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/engine"
	"github.com/SscSPs/backoffice_app/internal/dto"
)

// BuildGoalTree aggregates a snapshot of goals and reports into the nested tree
// returned by the API. Soft-deleted nodes are left out unless includeDeleted is set,
// in which case their subtrees stay in place.
func BuildGoalTree(nodes []domain.GoalNode, reports []domain.DailyReport, year int, includeDeleted bool, opts ...engine.AggregateOption) *dto.GoalTreeResponse {
	ix := engine.NewGoalIndex(nodes)
	tree := treeBuilder{ix: ix, rollups: engine.AggregateIndex(ix, reports, opts...), includeDeleted: includeDeleted}

	resp := &dto.GoalTreeResponse{Year: year, Roots: []dto.GoalTreeNode{}}
	for _, n := range ix.Nodes() {
		if tree.isRoot(n) {
			resp.Roots = append(resp.Roots, tree.build(n))
		}
	}
	return resp
}

type treeBuilder struct {
	ix             *engine.GoalIndex
	rollups        engine.Rollups
	includeDeleted bool
}

func (t treeBuilder) shown(n domain.GoalNode) bool {
	return t.includeDeleted || engine.IsVisible(n)
}

func (t treeBuilder) isRoot(n domain.GoalNode) bool {
	if !t.shown(n) {
		return false
	}
	parent, ok := t.ix.Parent(n)
	return !ok || !t.shown(parent)
}

func (t treeBuilder) build(n domain.GoalNode) dto.GoalTreeNode {
	rollup := t.rollups[n.Key()]
	node := dto.GoalTreeNode{
		Goal:          dto.ToGoalResponse(&n),
		ActualValue:   rollup.ActualValue,
		Progress:      rollup.Progress,
		Completed:     rollup.Completed,
		Orphaned:      rollup.Orphaned,
		ParentDeleted: rollup.ParentDeleted,
		Children:      []dto.GoalTreeNode{},
	}

	children := t.ix.Children(n.Key())
	live := make([]domain.GoalNode, 0, len(children))
	for _, c := range children {
		if !c.IsDeleted() {
			live = append(live, c)
		}
		if t.shown(c) {
			node.Children = append(node.Children, t.build(c))
		}
	}
	if _, splittable := n.Level.ChildLevel(); splittable {
		remaining := engine.RemainingTarget(n, live)
		node.Remaining = &remaining
		node.Balance = engine.BalanceOf(remaining)
		node.Message = engine.BalanceMessage(remaining, n.Unit)
	}
	return node
}
