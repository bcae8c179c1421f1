package domain

import "context"

// ServicePort is the violations dashboard surface other modules may call
type ServicePort interface {
	Menu(ctx context.Context) ([]MenuItem, error)
	View(ctx context.Context, index int) (View, error)
	Select(ctx context.Context, in SelectRequest) (Selection, error)
	DefaultSelection(ctx context.Context) (Selection, error)
}
