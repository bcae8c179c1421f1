package module

import (
	"context"

	"figurefriday/internal/services/api/violations/domain"
	violationssvc "figurefriday/internal/services/api/violations/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptViolationsPort exposes the read side only; Load stays with the module
type adaptViolationsPort struct{ svc violationssvc.Service }

func (a adaptViolationsPort) Menu(ctx context.Context) ([]domain.MenuItem, error) {
	return a.svc.Menu(ctx)
}

func (a adaptViolationsPort) View(ctx context.Context, index int) (domain.View, error) {
	return a.svc.View(ctx, index)
}

func (a adaptViolationsPort) Select(ctx context.Context, in domain.SelectRequest) (domain.Selection, error) {
	return a.svc.Select(ctx, in)
}

func (a adaptViolationsPort) DefaultSelection(ctx context.Context) (domain.Selection, error) {
	return a.svc.DefaultSelection(ctx)
}
