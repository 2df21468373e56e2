package engine

import (
	"sort"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllocationSpec is one organizational unit's share of a primary record.
// Exactly one of Ratio and Amount must be set.
type AllocationSpec struct {
	OrganizationalUnitRef string
	OrgUnitType           domain.OrgUnitType
	Ratio                 *decimal.Decimal // Percentage of the primary amount, (0, 100]
	Amount                *decimal.Decimal // Direct entry
}

// AllocationOptions carries the caller context of an allocation.
type AllocationOptions struct {
	Actor      string
	Now        time.Time
	NewID      func() string
	RatioScale int32 // Decimal places for ratio-derived amounts; 0 means RatioPlaces
}

func (o AllocationOptions) withDefaults() AllocationOptions {
	if o.Now.IsZero() {
		o.Now = time.Now().UTC()
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	if o.RatioScale <= 0 {
		o.RatioScale = RatioPlaces
	}
	return o
}

// AllocationPlan is the validated outcome of PlanAllocation.
type AllocationPlan struct {
	Primary    domain.FinancialRecord   `json:"primary"` // Copy with IsAllocated set
	Children   []domain.FinancialRecord `json:"children"`
	Allocated  decimal.Decimal          `json:"allocated"`
	Remaining  decimal.Decimal          `json:"remaining"`
	Balance    BalanceStatus            `json:"balance"`
	RatioTotal decimal.Decimal          `json:"ratioTotal"`
}

// PlanAllocation validates specs against primary and returns the allocation children.
// Children that do not add up to the primary are permitted; the gap is reported
// through Remaining and Balance.
func PlanAllocation(primary domain.FinancialRecord, specs []AllocationSpec, opts AllocationOptions) (*AllocationPlan, error) {
	opts = opts.withDefaults()
	verr := apperrors.NewValidationError()

	if primary.IsAllocationChild {
		verr.Add(-1, "primary", "is an allocation child and cannot be allocated again")
	}
	if primary.DeletedAt != nil {
		verr.Add(-1, "primary", "has been deleted")
	}
	if !primary.Amount.IsPositive() {
		verr.Add(-1, "amount", "of the primary record must be greater than 0")
	}
	if opts.Actor == "" {
		verr.Add(-1, "actor", "is required")
	}
	if len(specs) == 0 {
		verr.Add(-1, "allocations", "must contain at least one item")
	}

	allRatio := len(specs) > 0
	ratioTotal := decimal.Zero
	for i, spec := range specs {
		if spec.OrganizationalUnitRef == "" {
			verr.Add(i, "organizationalUnitRef", "is required")
		}
		switch spec.OrgUnitType {
		case domain.Subsidiary, domain.Department:
		default:
			verr.Add(i, "orgUnitType", "must be SUBSIDIARY or DEPARTMENT")
		}
		switch {
		case spec.Ratio != nil && spec.Amount != nil:
			verr.Add(i, "ratio", "cannot be combined with amount")
		case spec.Ratio != nil:
			if !spec.Ratio.IsPositive() || spec.Ratio.GreaterThan(hundred) {
				verr.Add(i, "ratio", "must be greater than 0 and at most 100")
			}
			ratioTotal = ratioTotal.Add(*spec.Ratio)
		case spec.Amount != nil:
			allRatio = false
			if !spec.Amount.IsPositive() {
				verr.Add(i, "amount", "must be greater than 0")
			}
		default:
			verr.Add(i, "amount", "or ratio is required")
		}
	}
	if verr.HasIssues() {
		return nil, verr
	}

	children := make([]domain.FinancialRecord, 0, len(specs))
	for _, spec := range specs {
		children = append(children, newAllocationChild(primary, spec, opts))
	}
	// Ratios that cover the whole primary must reproduce it exactly.
	if allRatio && ratioTotal.Equal(hundred) {
		last := len(children) - 1
		others := sumQuantities(children[:last])
		children[last].Amount = primary.Amount.Sub(others)
	}
	for i, c := range children {
		if !c.Amount.IsPositive() {
			verr.Add(i, "ratio", "yields an amount of "+c.Amount.String()+"; allocated amounts must be greater than 0")
		}
	}
	if verr.HasIssues() {
		return nil, verr
	}

	allocated := primary
	allocated.IsAllocated = true
	allocated.AllocationType = domain.AllocationRatio
	allocated.LastUpdatedAt = opts.Now
	allocated.LastUpdatedBy = opts.Actor

	remaining := RemainingAmount(primary, children)
	if !allRatio {
		ratioTotal = decimal.Zero
		for _, c := range children {
			ratioTotal = ratioTotal.Add(c.AllocationRatio)
		}
	}
	return &AllocationPlan{
		Primary:    allocated,
		Children:   children,
		Allocated:  sumQuantities(children),
		Remaining:  remaining,
		Balance:    BalanceOf(remaining),
		RatioTotal: ratioTotal,
	}, nil
}

func newAllocationChild(primary domain.FinancialRecord, spec AllocationSpec, opts AllocationOptions) domain.FinancialRecord {
	var amount, ratio decimal.Decimal
	if spec.Ratio != nil {
		ratio = *spec.Ratio
		amount = primary.Amount.Mul(ratio).Div(hundred).Round(opts.RatioScale)
	} else {
		amount = *spec.Amount
		ratio = Ratio(amount, primary.Amount)
	}
	return domain.FinancialRecord{
		RecordID:              opts.NewID(),
		WorkplaceID:           primary.WorkplaceID,
		Kind:                  primary.Kind,
		Amount:                amount,
		RecordDate:            primary.RecordDate,
		Description:           primary.Description,
		OrganizationalUnitRef: spec.OrganizationalUnitRef,
		OrgUnitType:           spec.OrgUnitType,
		IsAllocationChild:     true,
		ParentRecordRef:       primary.RecordID,
		AllocationRatio:       ratio,
		AuditFields:           domain.NewAuditFields(opts.Actor, opts.Now),
	}
}

// SumPrimaries totals primary records only. Deleted records are skipped.
func SumPrimaries(records []domain.FinancialRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if r.IsPrimary() && r.DeletedAt == nil {
			total = total.Add(r.Amount)
		}
	}
	return total
}

// SumAllocationChildren totals allocation children only. Deleted records are skipped.
func SumAllocationChildren(records []domain.FinancialRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if r.IsAllocationChild && r.DeletedAt == nil {
			total = total.Add(r.Amount)
		}
	}
	return total
}

// UnitTotal is the amount attributed to one organizational unit.
type UnitTotal struct {
	OrganizationalUnitRef string          `json:"organizationalUnitRef"`
	Amount                decimal.Decimal `json:"amount"`
}

// TotalsByUnit attributes every live primary exactly once: through its children
// when it has been allocated, otherwise to its own unit. Results are sorted by unit.
func TotalsByUnit(records []domain.FinancialRecord) []UnitTotal {
	primaries := make(map[string]domain.FinancialRecord)
	childrenOf := make(map[string][]domain.FinancialRecord)
	for _, r := range records {
		if r.DeletedAt != nil {
			continue
		}
		if r.IsAllocationChild {
			childrenOf[r.ParentRecordRef] = append(childrenOf[r.ParentRecordRef], r)
			continue
		}
		primaries[r.RecordID] = r
	}

	sums := make(map[string]decimal.Decimal)
	for id, p := range primaries {
		children := childrenOf[id]
		if p.IsAllocated && len(children) > 0 {
			for _, c := range children {
				sums[c.OrganizationalUnitRef] = sums[c.OrganizationalUnitRef].Add(c.Amount)
			}
			continue
		}
		sums[p.OrganizationalUnitRef] = sums[p.OrganizationalUnitRef].Add(p.Amount)
	}

	out := make([]UnitTotal, 0, len(sums))
	for unit, amount := range sums {
		out = append(out, UnitTotal{OrganizationalUnitRef: unit, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].OrganizationalUnitRef < out[j].OrganizationalUnitRef
	})
	return out
}

// Discrepancy describes an allocated primary whose children do not add up to it.
type Discrepancy struct {
	RecordID  string          `json:"recordID"`
	Amount    decimal.Decimal `json:"amount"`
	Allocated decimal.Decimal `json:"allocated"`
	Remaining decimal.Decimal `json:"remaining"`
	Balance   BalanceStatus   `json:"balance"`
}

// AllocationDiscrepancies lists allocated primaries whose live children are short
// of or exceed the primary amount, in input order.
func AllocationDiscrepancies(records []domain.FinancialRecord) []Discrepancy {
	childrenOf := make(map[string][]domain.FinancialRecord)
	for _, r := range records {
		if r.IsAllocationChild && r.DeletedAt == nil {
			childrenOf[r.ParentRecordRef] = append(childrenOf[r.ParentRecordRef], r)
		}
	}
	var out []Discrepancy
	for _, p := range records {
		if !p.IsPrimary() || !p.IsAllocated || p.DeletedAt != nil {
			continue
		}
		children := childrenOf[p.RecordID]
		remaining := RemainingAmount(p, children)
		if remaining.IsZero() {
			continue
		}
		out = append(out, Discrepancy{
			RecordID:  p.RecordID,
			Amount:    p.Amount,
			Allocated: sumQuantities(children),
			Remaining: remaining,
			Balance:   BalanceOf(remaining),
		})
	}
	return out
}
