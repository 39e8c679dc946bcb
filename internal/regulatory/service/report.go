package service

import (
	"context"

	"github.com/google/uuid"

	"regledger/internal/regulatory/models"
	"regledger/internal/regulatory/report"
	dErrors "regledger/pkg/domain-errors"
	"regledger/pkg/requestcontext"
)

// GenerateRegulatoryReport builds a compliance report for a jurisdiction and
// date window. Validation happens before any store access. Generation is a
// pure read: no events, no audit records, no locks held over the render.
func (s *Service) GenerateRegulatoryReport(ctx context.Context, req models.ReportRequest) (*models.ComplianceReport, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := requestcontext.Now(ctx)

	activeRules, err := s.rules.FindByJurisdictionAndActive(ctx, req.Jurisdiction, true)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load rules for report")
	}

	applicable := report.Applicable(activeRules, req.StartDate, req.EndDate)

	generatedBy := req.RequestedBy
	if generatedBy == "" {
		generatedBy = requestcontext.Actor(ctx)
	}

	result := &models.ComplianceReport{
		ReportID:      uuid.NewString(),
		ReportName:    req.ReportName,
		ReportType:    req.ReportType,
		Jurisdiction:  req.Jurisdiction,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Parameters:    req.Parameters,
		ReportStatus:  models.ReportStatusCompleted,
		ReportContent: report.Render(activeRules, applicable, req, start),
		GeneratedAt:   start,
		GeneratedBy:   generatedBy,
	}

	if s.metrics != nil {
		s.metrics.ReportsGenerated.Inc()
		s.metrics.ObserveReport(start)
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "compliance report generated",
			"report_id", result.ReportID,
			"jurisdiction", req.Jurisdiction,
			"active_rules", len(activeRules),
			"applicable_rules", len(applicable),
		)
	}
	return result, nil
}
