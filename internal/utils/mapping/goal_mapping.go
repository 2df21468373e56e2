package mapping

import (
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/models"
)

// ToModelGoal converts a domain GoalNode to a model Goal. Level-specific fields
// that do not apply to the node's level are stored as NULL.
func ToModelGoal(d domain.GoalNode) models.Goal {
	m := models.Goal{
		GoalID:       d.ID,
		WorkplaceID:  d.WorkplaceID,
		Level:        string(d.Level),
		Title:        d.Title,
		TargetValue:  d.TargetValue,
		Unit:         d.Unit,
		ParentID:     nullable(d.ParentID),
		Year:         d.Year,
		DepartmentID: nullable(d.DepartmentID),
		UserID:       nullable(d.UserID),
		Ratio:        d.Ratio,
		Remark:       d.Remark,
		Status:       string(d.Status),
		DeletedAt:    d.DeletedAt,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
	if d.Level != domain.CompanyYearly {
		month := d.Month
		m.Month = &month
	}
	return m
}

// ToModelGoalQuarters converts the quarter targets of a company goal.
func ToModelGoalQuarters(d domain.GoalNode) []models.GoalQuarter {
	qs := make([]models.GoalQuarter, len(d.Quarters))
	for i, q := range d.Quarters {
		qs[i] = models.GoalQuarter{
			WorkplaceID: d.WorkplaceID,
			GoalID:      d.ID,
			Quarter:     q.Quarter,
			TargetValue: q.TargetValue,
			Percentage:  q.Percentage,
		}
	}
	return qs
}

// ToDomainGoal converts a model Goal and its quarter rows to a domain GoalNode
func ToDomainGoal(m models.Goal, quarters []models.GoalQuarter) domain.GoalNode {
	d := domain.GoalNode{
		ID:           m.GoalID,
		WorkplaceID:  m.WorkplaceID,
		Level:        domain.GoalLevel(m.Level),
		Title:        m.Title,
		TargetValue:  m.TargetValue,
		Unit:         m.Unit,
		ParentID:     deref(m.ParentID),
		Year:         m.Year,
		DepartmentID: deref(m.DepartmentID),
		UserID:       deref(m.UserID),
		Ratio:        m.Ratio,
		Remark:       m.Remark,
		Status:       domain.GoalStatus(m.Status),
		DeletedAt:    m.DeletedAt,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	if m.Month != nil {
		d.Month = *m.Month
	}
	for _, q := range quarters {
		d.Quarters = append(d.Quarters, domain.QuarterlyGoal{
			Quarter:     q.Quarter,
			TargetValue: q.TargetValue,
			Percentage:  q.Percentage,
		})
	}
	return d
}
