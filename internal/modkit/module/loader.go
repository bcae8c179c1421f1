package module

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Loader is implemented by modules that read a dataset before serving
type Loader interface {
	Load(ctx context.Context) error
}

// LoadAll runs Load on every module that implements Loader, one goroutine each.
// the first failure cancels the others and is returned
func LoadAll(ctx context.Context, mods ...Module) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, m := range mods {
		l, ok := m.(Loader)
		if !ok {
			continue
		}
		g.Go(func() error { return l.Load(gctx) })
	}
	return g.Wait()
}
