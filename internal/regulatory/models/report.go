package models

import (
	"strings"
	"time"

	dErrors "regledger/pkg/domain-errors"
)

// ReportStatus is the terminal state of a generated report. Generation is
// synchronous, so the only value produced today is completed.
type ReportStatus string

const ReportStatusCompleted ReportStatus = "COMPLETED"

// Well-known parameter keys callers may set on a ReportRequest. The map is
// open; unknown keys are echoed into the report verbatim.
const (
	ParamOutputFormat        = "outputFormat"
	ParamDetailLevel         = "detailLevel"
	ParamIncludeCharts       = "includeCharts"
	ParamComplianceThreshold = "complianceThreshold"
)

// ReportRequest describes a compliance report to generate.
type ReportRequest struct {
	ReportName   string            `json:"report_name"`
	ReportType   string            `json:"report_type"`
	Jurisdiction string            `json:"jurisdiction"`
	StartDate    time.Time         `json:"start_date"`
	EndDate      time.Time         `json:"end_date"`
	Parameters   map[string]string `json:"parameters,omitempty"`
	RequestedBy  string            `json:"requested_by,omitempty"`
}

// Validate checks the request before any store access happens.
func (r ReportRequest) Validate() error {
	if strings.TrimSpace(r.ReportName) == "" {
		return dErrors.New(dErrors.CodeValidation, "report_name is required")
	}
	if strings.TrimSpace(r.ReportType) == "" {
		return dErrors.New(dErrors.CodeValidation, "report_type is required")
	}
	if strings.TrimSpace(r.Jurisdiction) == "" {
		return dErrors.New(dErrors.CodeValidation, "jurisdiction is required")
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "start_date and end_date are required")
	}
	if r.StartDate.After(r.EndDate) {
		return dErrors.New(dErrors.CodeValidation, "start_date must not be after end_date")
	}
	return nil
}

// ComplianceReport is generated on demand and never persisted here. It echoes
// the request, carries the rendered body, and records provenance.
type ComplianceReport struct {
	ReportID      string            `json:"report_id"`
	ReportName    string            `json:"report_name"`
	ReportType    string            `json:"report_type"`
	Jurisdiction  string            `json:"jurisdiction"`
	StartDate     time.Time         `json:"start_date"`
	EndDate       time.Time         `json:"end_date"`
	Parameters    map[string]string `json:"parameters,omitempty"`
	ReportStatus  ReportStatus      `json:"report_status"`
	ReportContent string            `json:"report_content"`
	GeneratedAt   time.Time         `json:"generated_at"`
	GeneratedBy   string            `json:"generated_by"`
}
