// Package compliance exposes the public entry point external callers use:
// HTTP handlers, batch jobs, and seed tooling all go through the Facade
// rather than wiring the service and report machinery themselves.
package compliance

import (
	"context"

	"regledger/internal/regulatory/models"
	"regledger/internal/regulatory/ports"
	"regledger/internal/regulatory/service"
)

// Facade wraps the regulatory service. It exists so transports depend on one
// narrow surface; new collaborators (schedulers, exports) get added here
// without widening the service.
type Facade struct {
	service *Service
}

// Service is the orchestration type the facade fronts.
type Service = service.Service

// New builds a Facade over a rule store with the given service options.
func New(rules ports.RuleStore, opts ...service.Option) (*Facade, error) {
	svc, err := service.New(rules, opts...)
	if err != nil {
		return nil, err
	}
	return &Facade{service: svc}, nil
}

// NewWithService wraps an already-constructed service, for callers that need
// direct access to it in tests.
func NewWithService(svc *Service) *Facade {
	return &Facade{service: svc}
}

func (f *Facade) GetRuleByID(ctx context.Context, id int64) (*models.RegulatoryRule, error) {
	return f.service.GetRuleByID(ctx, id)
}

func (f *Facade) GetAllRules(ctx context.Context) ([]*models.RegulatoryRule, error) {
	return f.service.GetAllRules(ctx)
}

func (f *Facade) CreateRule(ctx context.Context, candidate models.RegulatoryRule) (*models.RegulatoryRule, error) {
	return f.service.CreateRule(ctx, candidate)
}

func (f *Facade) UpdateRule(ctx context.Context, id int64, patch models.RulePatch) (*models.RegulatoryRule, error) {
	return f.service.UpdateRule(ctx, id, patch)
}

func (f *Facade) DeleteRule(ctx context.Context, id int64) (*models.RegulatoryRule, error) {
	return f.service.DeleteRule(ctx, id)
}

func (f *Facade) GenerateRegulatoryReport(ctx context.Context, req models.ReportRequest) (*models.ComplianceReport, error) {
	return f.service.GenerateRegulatoryReport(ctx, req)
}
