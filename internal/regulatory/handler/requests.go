package handler

import (
	"strings"
	"time"

	"regledger/internal/regulatory/models"
	dErrors "regledger/pkg/domain-errors"
)

const dateLayout = "2006-01-02"

// createRuleRequest is the wire shape for rule creation. Dates travel as
// calendar dates, not timestamps: a rule takes effect on a day.
type createRuleRequest struct {
	RuleID        string `json:"rule_id"`
	Jurisdiction  string `json:"jurisdiction"`
	Framework     string `json:"framework"`
	Description   string `json:"description"`
	Source        string `json:"source"`
	EffectiveDate string `json:"effective_date"`
}

func (r createRuleRequest) toModel() (models.RegulatoryRule, error) {
	rule := models.RegulatoryRule{
		RuleID:       r.RuleID,
		Jurisdiction: r.Jurisdiction,
		Framework:    r.Framework,
		Description:  r.Description,
		Source:       r.Source,
	}
	if r.EffectiveDate != "" {
		t, err := parseDate(r.EffectiveDate)
		if err != nil {
			return models.RegulatoryRule{}, err
		}
		rule.EffectiveDate = t
	}
	return rule, nil
}

// updateRuleRequest carries a partial update; absent fields stay unchanged.
type updateRuleRequest struct {
	Jurisdiction  *string `json:"jurisdiction"`
	Framework     *string `json:"framework"`
	Description   *string `json:"description"`
	Source        *string `json:"source"`
	EffectiveDate *string `json:"effective_date"`
}

func (r updateRuleRequest) toPatch() (models.RulePatch, error) {
	patch := models.RulePatch{
		Jurisdiction: r.Jurisdiction,
		Framework:    r.Framework,
		Description:  r.Description,
		Source:       r.Source,
	}
	if r.EffectiveDate != nil {
		t, err := parseDate(*r.EffectiveDate)
		if err != nil {
			return models.RulePatch{}, err
		}
		patch.EffectiveDate = &t
	}
	return patch, nil
}

// reportRequest is the wire shape for report generation.
type reportRequest struct {
	ReportName   string            `json:"report_name"`
	ReportType   string            `json:"report_type"`
	Jurisdiction string            `json:"jurisdiction"`
	StartDate    string            `json:"start_date"`
	EndDate      string            `json:"end_date"`
	Parameters   map[string]string `json:"parameters"`
}

func (r reportRequest) toModel() (models.ReportRequest, error) {
	req := models.ReportRequest{
		ReportName:   r.ReportName,
		ReportType:   r.ReportType,
		Jurisdiction: r.Jurisdiction,
		Parameters:   r.Parameters,
	}
	var err error
	if r.StartDate != "" {
		if req.StartDate, err = parseDate(r.StartDate); err != nil {
			return models.ReportRequest{}, err
		}
	}
	if r.EndDate != "" {
		if req.EndDate, err = parseDate(r.EndDate); err != nil {
			return models.ReportRequest{}, err
		}
	}
	return req, nil
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, dErrors.New(dErrors.CodeBadRequest,
			"dates must use the YYYY-MM-DD format")
	}
	return t, nil
}
