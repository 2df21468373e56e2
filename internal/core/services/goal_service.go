package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/engine"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// goalService implements the GoalSvcFacade interface
type goalService struct {
	BaseService
	goalRepo                 portsrepo.GoalRepositoryFacade
	reportRepo               portsrepo.DailyReportRepositoryFacade
	rejectDuplicateAssignees bool
	now                      func() time.Time
	newID                    func() string
}

// GoalServiceOption is a functional option for configuring the goal service
type GoalServiceOption func(*goalService)

// WithGoalWorkplaceAuthorizer adds the workplace authorizer dependency
func WithGoalWorkplaceAuthorizer(authorizer portssvc.WorkplaceAuthorizerSvc) GoalServiceOption {
	return func(s *goalService) {
		s.WorkplaceAuthorizer = authorizer
	}
}

// WithDuplicateAssigneesRejected makes splits reject two children for the same assignee.
func WithDuplicateAssigneesRejected(reject bool) GoalServiceOption {
	return func(s *goalService) {
		s.rejectDuplicateAssignees = reject
	}
}

// WithGoalClock overrides the time source and id generator.
func WithGoalClock(now func() time.Time, newID func() string) GoalServiceOption {
	return func(s *goalService) {
		if now != nil {
			s.now = now
		}
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewGoalService creates a new goal service with the provided options
func NewGoalService(goalRepo portsrepo.GoalRepositoryFacade, reportRepo portsrepo.DailyReportRepositoryFacade, options ...GoalServiceOption) portssvc.GoalSvcFacade {
	svc := &goalService{
		goalRepo:   goalRepo,
		reportRepo: reportRepo,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) CreateGoal(ctx context.Context, workplaceID string, req dto.CreateGoalRequest, creatorUserID string) (*domain.GoalNode, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, workplaceID, domain.RoleManager); err != nil {
		return nil, err
	}

	goal := domain.GoalNode{
		ID:          s.newID(),
		WorkplaceID: workplaceID,
		Level:       req.Level,
		Title:       req.Title,
		TargetValue: req.TargetValue,
		Unit:        req.Unit,
		ParentID:    req.ParentID,
		Year:        req.Year,
		Remark:      req.Remark,
		Status:      domain.GoalActive,
		AuditFields: domain.NewAuditFields(creatorUserID, s.now()),
	}
	switch req.Level {
	case domain.CompanyYearly:
		quarters := make([]domain.QuarterlyGoal, len(req.Quarters))
		for i, q := range req.Quarters {
			quarters[i] = domain.QuarterlyGoal{Quarter: q.Quarter, TargetValue: q.TargetValue}
		}
		goal.Quarters = engine.QuarterPercentages(req.TargetValue, quarters)
	case domain.TeamMonthly:
		goal.Month = req.Month
		goal.DepartmentID = req.DepartmentID
	case domain.PersonalMonthly:
		goal.Month = req.Month
		goal.DepartmentID = req.DepartmentID
		goal.UserID = req.UserID
	}

	if goal.HasParent() {
		if err := s.linkToParent(ctx, &goal); err != nil {
			return nil, err
		}
	}
	if err := engine.ValidateGoal(goal); err != nil {
		return nil, err
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save goal",
			slog.String("workplace_id", workplaceID),
			slog.String("level", string(goal.Level)))
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	s.LogInfo(ctx, "Goal created",
		slog.String("goal_id", goal.ID),
		slog.String("level", string(goal.Level)),
		slog.String("workplace_id", workplaceID))
	return &goal, nil
}

// linkToParent checks the parent reference of a manually created goal and fills in
// what the goal inherits from it.
func (s *goalService) linkToParent(ctx context.Context, goal *domain.GoalNode) error {
	parentKey, ok := goal.ParentKey()
	if !ok {
		return apperrors.NewValidationError(apperrors.FieldIssue{Index: -1, Field: "parentID", Message: "must be empty for company goals"})
	}
	parent, err := s.goalRepo.FindGoalByID(ctx, goal.WorkplaceID, parentKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError(apperrors.FieldIssue{Index: -1, Field: "parentID", Message: "references no " + string(parentKey.Level) + " goal"})
		}
		return fmt.Errorf("failed to load parent goal: %w", err)
	}

	verr := apperrors.NewValidationError()
	if parent.IsDeleted() {
		verr.Add(-1, "parentID", "references a deleted goal")
	}
	if parent.Year != goal.Year {
		verr.Add(-1, "year", fmt.Sprintf("must match the parent goal's year %d", parent.Year))
	}
	if goal.Level == domain.PersonalMonthly && parent.Month != goal.Month {
		verr.Add(-1, "month", fmt.Sprintf("must match the parent goal's month %d", parent.Month))
	}
	if verr.HasIssues() {
		return verr
	}

	if parent.Unit != "" {
		goal.Unit = parent.Unit
	}
	if goal.Title == "" {
		goal.Title = parent.Title
	}
	if goal.Level == domain.PersonalMonthly && goal.DepartmentID == "" {
		goal.DepartmentID = parent.DepartmentID
	}
	goal.Ratio = engine.Ratio(goal.TargetValue, parent.TargetValue)
	return nil
}

func (s *goalService) GetGoal(ctx context.Context, workplaceID string, key domain.NodeKey, requestingUserID string) (*domain.GoalNode, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workplaceID, domain.RoleMember); err != nil {
		return nil, err
	}
	goal, err := s.goalRepo.FindGoalByID(ctx, workplaceID, key)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get goal", slog.String("goal", key.String()))
		}
		return nil, err
	}
	return goal, nil
}

// GetGoalTree aggregates one year of a workplace. Nodes whose parent is missing, or
// deleted and hidden, are returned as roots carrying their orphan flags.
func (s *goalService) GetGoalTree(ctx context.Context, workplaceID string, params dto.GoalTreeParams, requestingUserID string) (*dto.GoalTreeResponse, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workplaceID, domain.RoleMember); err != nil {
		return nil, err
	}
	from, to, err := dto.ParsePeriod(params.From, params.To)
	if err != nil {
		return nil, err
	}

	nodes, err := s.goalRepo.ListGoalsByYear(ctx, workplaceID, params.Year)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals", slog.String("workplace_id", workplaceID), slog.Int("year", params.Year))
		return nil, fmt.Errorf("failed to load goal tree: %w", err)
	}
	var personalIDs []string
	for _, n := range nodes {
		if n.Level == domain.PersonalMonthly {
			personalIDs = append(personalIDs, n.ID)
		}
	}
	var reports []domain.DailyReport
	if len(personalIDs) > 0 {
		reports, err = s.reportRepo.ListDailyReportsByGoals(ctx, workplaceID, personalIDs)
		if err != nil {
			s.LogError(ctx, err, "Failed to list daily reports", slog.String("workplace_id", workplaceID))
			return nil, fmt.Errorf("failed to load daily reports: %w", err)
		}
	}

	resp := BuildGoalTree(nodes, reports, params.Year, params.IncludeDeleted, engine.WithReportingPeriod(from, to))
	s.LogDebug(ctx, "Goal tree built",
		slog.String("workplace_id", workplaceID),
		slog.Int("nodes", len(nodes)),
		slog.Int("reports", len(reports)))
	return resp, nil
}

// SplitGoal plans the split and, unless it is a dry run, writes every child in one batch.
func (s *goalService) SplitGoal(ctx context.Context, workplaceID string, key domain.NodeKey, req dto.SplitGoalRequest, requestingUserID string) (*engine.SplitPlan, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workplaceID, domain.RoleManager); err != nil {
		return nil, err
	}
	parent, err := s.goalRepo.FindGoalByID(ctx, workplaceID, key)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load goal to split", slog.String("goal", key.String()))
		}
		return nil, err
	}

	plan, err := engine.PlanSplit(*parent, req.ToChildSpecs(), engine.SplitOptions{
		Actor:                    requestingUserID,
		Now:                      s.now(),
		RejectDuplicateAssignees: s.rejectDuplicateAssignees,
		NewID:                    s.newID,
	})
	if err != nil {
		s.LogDebug(ctx, "Split rejected", slog.String("goal", key.String()), slog.String("reason", err.Error()))
		return nil, err
	}
	if req.DryRun {
		return plan, nil
	}

	created, err := s.goalRepo.SaveGoalBatch(ctx, plan.Children)
	if err != nil {
		s.LogError(ctx, err, "Failed to save split children",
			slog.String("goal", key.String()),
			slog.Int("children", len(plan.Children)),
			slog.Int("created", len(created)))
		if len(created) > 0 {
			return nil, &apperrors.PartialBatchFailure{
				Created: created,
				Failed:  missingIDs(plan.Children, created),
				Cause:   err,
			}
		}
		return nil, fmt.Errorf("failed to save split: %w", err)
	}

	s.LogInfo(ctx, "Goal split",
		slog.String("goal", key.String()),
		slog.Int("children", len(plan.Children)),
		slog.String("remaining", plan.Remaining.String()),
		slog.String("balance", string(plan.Balance)))
	return plan, nil
}

func missingIDs(children []domain.GoalNode, created []string) []string {
	done := make(map[string]struct{}, len(created))
	for _, id := range created {
		done[id] = struct{}{}
	}
	var failed []string
	for _, c := range children {
		if _, ok := done[c.ID]; !ok {
			failed = append(failed, c.ID)
		}
	}
	return failed
}

// DeleteGoal soft deletes a goal. Its dependents keep their own values and report the
// goal as a deleted parent.
func (s *goalService) DeleteGoal(ctx context.Context, workplaceID string, key domain.NodeKey, requestingUserID string) (*dto.DeleteGoalResponse, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workplaceID, domain.RoleManager); err != nil {
		return nil, err
	}
	goal, err := s.goalRepo.FindGoalByID(ctx, workplaceID, key)
	if err != nil {
		return nil, err
	}
	dependents, err := s.goalRepo.CountGoalDependents(ctx, workplaceID, key)
	if err != nil {
		s.LogError(ctx, err, "Failed to count goal dependents", slog.String("goal", key.String()))
		return nil, fmt.Errorf("failed to delete goal: %w", err)
	}

	resp := &dto.DeleteGoalResponse{ID: key.ID, Level: key.Level, Mode: dto.DeleteModeSoft, Dependents: dependents}
	if !goal.IsDeleted() {
		if err := s.goalRepo.MarkGoalDeleted(ctx, workplaceID, key, requestingUserID, s.now()); err != nil {
			s.LogError(ctx, err, "Failed to soft delete goal", slog.String("goal", key.String()))
			return nil, fmt.Errorf("failed to delete goal: %w", err)
		}
	}

	s.LogInfo(ctx, "Goal deleted",
		slog.String("goal", key.String()),
		slog.String("mode", string(resp.Mode)),
		slog.Int("dependents", dependents))
	return resp, nil
}

// AddDailyReport files a report against a personal goal. Members may only report on
// their own goals; managers may report on any.
func (s *goalService) AddDailyReport(ctx context.Context, workplaceID, goalID string, req dto.CreateDailyReportRequest, creatorUserID string) (*domain.DailyReport, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, workplaceID, domain.RoleMember); err != nil {
		return nil, err
	}
	goal, err := s.goalRepo.FindGoalByID(ctx, workplaceID, domain.NodeKey{Level: domain.PersonalMonthly, ID: goalID})
	if err != nil {
		return nil, err
	}
	if goal.UserID != creatorUserID {
		if err := s.AuthorizeUser(ctx, creatorUserID, workplaceID, domain.RoleManager); err != nil {
			return nil, err
		}
	}

	reportDate, err := dto.ParseDate(req.ReportDate)
	if err != nil {
		return nil, err
	}
	report := domain.DailyReport{
		ReportID:         s.newID(),
		WorkplaceID:      workplaceID,
		GoalID:           goalID,
		ReportDate:       reportDate,
		PerformanceValue: req.PerformanceValue,
		ProgressPercent:  req.ProgressPercent,
		Description:      req.Description,
		AuditFields:      domain.NewAuditFields(creatorUserID, s.now()),
	}

	if err := engine.PlanDailyReport(*goal, nil, report); err != nil {
		return nil, err
	}
	// The cumulative percent cap is rechecked against the stored reports while the goal is locked.
	var check portsrepo.DailyReportCheck
	if report.ProgressPercent != nil {
		check = func(existing []domain.DailyReport) error {
			return engine.PlanDailyReport(*goal, existing, report)
		}
	}

	if err := s.reportRepo.SaveDailyReport(ctx, report, check); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save daily report", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to add daily report: %w", err)
	}
	s.LogInfo(ctx, "Daily report added",
		slog.String("report_id", report.ReportID),
		slog.String("goal_id", goalID),
		slog.String("performance_value", report.PerformanceValue.String()))
	return &report, nil
}

func (s *goalService) ListDailyReports(ctx context.Context, workplaceID, goalID, requestingUserID string) (*dto.ListDailyReportsResponse, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workplaceID, domain.RoleMember); err != nil {
		return nil, err
	}
	if _, err := s.goalRepo.FindGoalByID(ctx, workplaceID, domain.NodeKey{Level: domain.PersonalMonthly, ID: goalID}); err != nil {
		return nil, err
	}
	reports, err := s.reportRepo.ListDailyReportsByGoals(ctx, workplaceID, []string{goalID})
	if err != nil {
		s.LogError(ctx, err, "Failed to list daily reports", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to list daily reports: %w", err)
	}

	resp := &dto.ListDailyReportsResponse{
		GoalID:          goalID,
		Reports:         make([]dto.DailyReportResponse, len(reports)),
		ActualValue:     decimal.Zero,
		ReportedPercent: engine.ReportedPercent(goalID, reports),
	}
	for i := range reports {
		resp.Reports[i] = dto.ToDailyReportResponse(&reports[i])
		resp.ActualValue = resp.ActualValue.Add(reports[i].PerformanceValue)
	}
	return resp, nil
}

// DeleteDailyReport hard deletes a report. Only its author or a manager may do so.
func (s *goalService) DeleteDailyReport(ctx context.Context, workplaceID, reportID, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, workplaceID, domain.RoleMember); err != nil {
		return err
	}
	report, err := s.reportRepo.FindDailyReportByID(ctx, workplaceID, reportID)
	if err != nil {
		return err
	}
	if report.CreatedBy != requestingUserID {
		if err := s.AuthorizeUser(ctx, requestingUserID, workplaceID, domain.RoleManager); err != nil {
			return err
		}
	}
	if err := s.reportRepo.DeleteDailyReport(ctx, workplaceID, reportID); err != nil {
		s.LogError(ctx, err, "Failed to delete daily report", slog.String("report_id", reportID))
		return fmt.Errorf("failed to delete daily report: %w", err)
	}
	s.LogInfo(ctx, "Daily report deleted", slog.String("report_id", reportID), slog.String("goal_id", report.GoalID))
	return nil
}
