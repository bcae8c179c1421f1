package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Fields(ctx context.Context) (Fields, error)
	DefaultSelection(ctx context.Context) (Selection, error)
	BarChart(ctx context.Context, in Selection) (BarChart, error)
	CrossTab(ctx context.Context, in Selection) (CrossTab, error)
}
