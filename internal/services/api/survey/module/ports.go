package module

import (
	"context"

	"figurefriday/internal/services/api/survey/domain"
	surveysvc "figurefriday/internal/services/api/survey/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptSurveyPort struct{ svc surveysvc.Service }

// Fields lists the dropdown sources
func (a adaptSurveyPort) Fields(ctx context.Context) (domain.Fields, error) {
	return a.svc.Fields(ctx)
}

// DefaultSelection returns the initial dashboard state
func (a adaptSurveyPort) DefaultSelection(ctx context.Context) (domain.Selection, error) {
	return a.svc.DefaultSelection(ctx)
}

// BarChart builds the stacked bar chart payload
func (a adaptSurveyPort) BarChart(ctx context.Context, in domain.Selection) (domain.BarChart, error) {
	return a.svc.BarChart(ctx, in)
}

// CrossTab returns the raw table
func (a adaptSurveyPort) CrossTab(ctx context.Context, in domain.Selection) (domain.CrossTab, error) {
	return a.svc.CrossTab(ctx, in)
}
