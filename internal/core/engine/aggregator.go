package engine

import (
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Rollup is the derived display state of one goal node.
type Rollup struct {
	Key         domain.NodeKey  `json:"key"`
	TargetValue decimal.Decimal `json:"targetValue"`
	ActualValue decimal.Decimal `json:"actualValue"`
	Progress    int64           `json:"progress"`
	// Completed is progress >= 100. It is recomputed on every run and never persisted.
	Completed bool `json:"completed"`
	// Visible is false for soft-deleted nodes.
	Visible bool `json:"visible"`
	// Orphaned is set when the parent reference resolves to nothing or to a deleted node.
	Orphaned bool `json:"orphaned"`
	// ParentDeleted is the narrower case of Orphaned where the parent is present but deleted.
	ParentDeleted bool `json:"parentDeleted"`
}

// Rollups maps every node of a snapshot to its rollup.
type Rollups map[domain.NodeKey]Rollup

// Get looks up a rollup by level and id.
func (r Rollups) Get(level domain.GoalLevel, id string) (Rollup, bool) {
	v, ok := r[domain.NodeKey{Level: level, ID: id}]
	return v, ok
}

type aggregateConfig struct {
	from *time.Time
	to   *time.Time
}

// AggregateOption tunes an aggregation run.
type AggregateOption func(*aggregateConfig)

// WithReportingPeriod restricts daily reports to from <= date <= to. A zero bound is open.
func WithReportingPeriod(from, to time.Time) AggregateOption {
	return func(c *aggregateConfig) {
		if !from.IsZero() {
			c.from = &from
		}
		if !to.IsZero() {
			c.to = &to
		}
	}
}

func (c aggregateConfig) includes(r domain.DailyReport) bool {
	if c.from != nil && r.ReportDate.Before(*c.from) {
		return false
	}
	if c.to != nil && r.ReportDate.After(*c.to) {
		return false
	}
	return true
}

// Aggregate computes actual value and progress for every node in nodes.
//
// Personal goals sum their daily reports. Team and company goals sum the actual
// values of direct children that are not soft deleted. A deleted node still gets
// its own rollup; it just stops contributing upward. Inputs are not modified.
func Aggregate(nodes []domain.GoalNode, reports []domain.DailyReport, opts ...AggregateOption) Rollups {
	return AggregateIndex(NewGoalIndex(nodes), reports, opts...)
}

// AggregateIndex is Aggregate over a prebuilt index.
func AggregateIndex(ix *GoalIndex, reports []domain.DailyReport, opts ...AggregateOption) Rollups {
	var cfg aggregateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	reported := make(map[string]decimal.Decimal)
	for _, r := range reports {
		if !cfg.includes(r) {
			continue
		}
		reported[r.GoalID] = reported[r.GoalID].Add(r.PerformanceValue)
	}

	actual := make(map[domain.NodeKey]decimal.Decimal, len(ix.order))
	for _, level := range []domain.GoalLevel{domain.PersonalMonthly, domain.TeamMonthly, domain.CompanyYearly} {
		for _, key := range ix.order {
			if key.Level != level {
				continue
			}
			node := ix.nodes[key]
			if level == domain.PersonalMonthly {
				actual[key] = reported[node.ID]
				continue
			}
			sum := decimal.Zero
			for _, child := range ix.Children(key) {
				if ContributesTo(child, node) {
					sum = sum.Add(actual[child.Key()])
				}
			}
			actual[key] = sum
		}
	}

	out := make(Rollups, len(ix.order))
	for _, key := range ix.order {
		node := ix.nodes[key]
		progress := Progress(actual[key], node.TargetValue)
		out[key] = Rollup{
			Key:           key,
			TargetValue:   node.TargetValue,
			ActualValue:   actual[key],
			Progress:      progress,
			Completed:     progress >= 100,
			Visible:       IsVisible(node),
			Orphaned:      ix.IsOrphaned(node),
			ParentDeleted: ix.ParentDeleted(node),
		}
	}
	return out
}
