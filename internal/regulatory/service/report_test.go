package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"regledger/internal/regulatory/models"
	"regledger/internal/regulatory/ports/mocks"
	rulestore "regledger/internal/regulatory/store/rule"
	dErrors "regledger/pkg/domain-errors"
	"regledger/pkg/requestcontext"
)

func reportRequest() models.ReportRequest {
	return models.ReportRequest{
		ReportName:   "Q4 Compliance Review",
		ReportType:   "QUARTERLY",
		Jurisdiction: "US",
		StartDate:    time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func seededReportService(t *testing.T) (*Service, context.Context) {
	t.Helper()

	store := rulestore.NewInMemory()
	svc, err := New(store)
	require.NoError(t, err)

	now := time.Date(2024, 12, 31, 9, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)

	candidates := []models.RegulatoryRule{
		{RuleID: "BASEL-US-001", Jurisdiction: "US", Framework: "Basel III", Description: "Capital adequacy floor.", Source: "Basel Committee", EffectiveDate: time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC)},
		{RuleID: "MIFID-US-002", Jurisdiction: "US", Framework: "MiFID II", Description: "Best execution reporting.", Source: "ESMA", EffectiveDate: time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)},
		{RuleID: "GDPR-US-003", Jurisdiction: "US", Framework: "GDPR", Description: "Breach notification window.", Source: "EDPB", EffectiveDate: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
		{RuleID: "GDPR-EU-009", Jurisdiction: "EU", Framework: "GDPR", Description: "Out of jurisdiction.", EffectiveDate: time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range candidates {
		_, err := svc.CreateRule(ctx, c)
		require.NoError(t, err)
	}
	return svc, ctx
}

func TestGenerateRegulatoryReport(t *testing.T) {
	svc, ctx := seededReportService(t)

	rep, err := svc.GenerateRegulatoryReport(ctx, reportRequest())
	require.NoError(t, err)
	require.NotNil(t, rep)

	assert.NotEmpty(t, rep.ReportID)
	assert.Equal(t, models.ReportStatusCompleted, rep.ReportStatus)
	assert.Equal(t, "US", rep.Jurisdiction)
	assert.Equal(t, time.Date(2024, 12, 31, 9, 0, 0, 0, time.UTC), rep.GeneratedAt)

	assert.Contains(t, rep.ReportContent, "Q4 COMPLIANCE REVIEW")
	assert.Contains(t, rep.ReportContent, "Total Active Regulatory Rules: 3")
	assert.Contains(t, rep.ReportContent, "Applicable Rules for Period: 3")
	assert.Contains(t, rep.ReportContent, "Regulatory Frameworks Covered: 3")
	assert.NotContains(t, rep.ReportContent, "GDPR-EU-009")
}

func TestGenerateRegulatoryReportWindowFiltering(t *testing.T) {
	svc, ctx := seededReportService(t)

	req := reportRequest()
	req.StartDate = time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
	req.EndDate = time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC)

	rep, err := svc.GenerateRegulatoryReport(ctx, req)
	require.NoError(t, err)

	assert.Contains(t, rep.ReportContent, "Total Active Regulatory Rules: 3")
	assert.Contains(t, rep.ReportContent, "Applicable Rules for Period: 1")
	assert.Contains(t, rep.ReportContent, "[MIFID-US-002]")
	assert.NotContains(t, rep.ReportContent, "[BASEL-US-001]")
}

func TestGenerateRegulatoryReportDeterminism(t *testing.T) {
	svc, ctx := seededReportService(t)

	first, err := svc.GenerateRegulatoryReport(ctx, reportRequest())
	require.NoError(t, err)
	second, err := svc.GenerateRegulatoryReport(ctx, reportRequest())
	require.NoError(t, err)

	assert.Equal(t, first.ReportContent, second.ReportContent)
	assert.NotEqual(t, first.ReportID, second.ReportID)
}

func TestGenerateRegulatoryReportGeneratedBy(t *testing.T) {
	svc, ctx := seededReportService(t)
	ctx = requestcontext.WithActor(ctx, "compliance-officer-7")

	rep, err := svc.GenerateRegulatoryReport(ctx, reportRequest())
	require.NoError(t, err)
	assert.Equal(t, "compliance-officer-7", rep.GeneratedBy)

	req := reportRequest()
	req.RequestedBy = "auditor-12"
	rep, err = svc.GenerateRegulatoryReport(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "auditor-12", rep.GeneratedBy)
}

func TestGenerateRegulatoryReportValidatesBeforeStoreAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRuleStore(ctrl)
	// No expectations: any store call fails the test.

	svc, err := New(store)
	require.NoError(t, err)

	cases := []struct {
		name   string
		mutate func(*models.ReportRequest)
	}{
		{"blank report name", func(r *models.ReportRequest) { r.ReportName = "   " }},
		{"blank report type", func(r *models.ReportRequest) { r.ReportType = "" }},
		{"blank jurisdiction", func(r *models.ReportRequest) { r.Jurisdiction = "" }},
		{"missing start date", func(r *models.ReportRequest) { r.StartDate = time.Time{} }},
		{"missing end date", func(r *models.ReportRequest) { r.EndDate = time.Time{} }},
		{"inverted window", func(r *models.ReportRequest) {
			r.StartDate, r.EndDate = r.EndDate, r.StartDate
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := reportRequest()
			tc.mutate(&req)

			rep, err := svc.GenerateRegulatoryReport(context.Background(), req)
			assert.Nil(t, rep)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation), "got %v", err)
		})
	}
}

func TestGenerateRegulatoryReportStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRuleStore(ctrl)
	store.EXPECT().
		FindByJurisdictionAndActive(gomock.Any(), "US", true).
		Return(nil, errors.New("connection refused"))

	svc, err := New(store)
	require.NoError(t, err)

	rep, err := svc.GenerateRegulatoryReport(context.Background(), reportRequest())
	assert.Nil(t, rep)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal), "got %v", err)
}
