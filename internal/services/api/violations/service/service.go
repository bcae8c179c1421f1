// Package service builds the violations dashboard view models
package service

import (
	"context"
	"strconv"
	"sync/atomic"

	"figurefriday/internal/core/numfmt"
	"figurefriday/internal/core/violation"
	"figurefriday/internal/platform/cache"
	perr "figurefriday/internal/platform/errors"
	"figurefriday/internal/platform/logger"
	"figurefriday/internal/services/api/violations/domain"
	"figurefriday/internal/services/api/violations/repo"
)

// Service defines the violations service contract
type Service interface {
	domain.ServicePort
	Load(ctx context.Context) error
}

type snapshot struct {
	coll    *violation.Collection
	version string
}

// Svc implements the violations service over one loaded snapshot
type Svc struct {
	repo  repo.Repo
	cache *cache.Cache
	data  atomic.Pointer[snapshot]
}

// New constructs a violations service; call Load before serving
func New(r repo.Repo, c *cache.Cache) *Svc {
	if r == nil {
		panic("violations.Service requires a non nil Repo")
	}
	return &Svc{repo: r, cache: c}
}

// Load reads the snapshot and swaps it in
func (s *Svc) Load(ctx context.Context) error {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	coll, err := violation.NewCollection(snap.Items)
	if err != nil {
		return err
	}
	s.data.Store(&snapshot{coll: coll, version: snap.Version.String()})
	logger.Named("violations").Info().
		Int("records", coll.Len()).
		Str("version", snap.Version.String()).
		Msg("violation snapshot loaded")
	return nil
}

func (s *Svc) snapshot() (*snapshot, error) {
	sn := s.data.Load()
	if sn == nil {
		return nil, perr.New(perr.ErrorCodeUnavailable, "violation snapshot not loaded")
	}
	return sn, nil
}

// Menu lists the selector entries in snapshot order
func (s *Svc) Menu(ctx context.Context) ([]domain.MenuItem, error) {
	sn, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	var out []domain.MenuItem
	err = s.cache.FetchJSON(ctx, "violations_menu", cache.Key("violations", "menu", sn.version), &out,
		func(context.Context) (any, error) {
			items := make([]domain.MenuItem, 0, sn.coll.Len())
			for i, v := range sn.coll.All() {
				items = append(items, domain.MenuItem{
					Index:       i,
					Code:        v.Code,
					CodeText:    numfmt.TwoDigit(v.Code),
					Description: numfmt.Title(v.Description),
					Issued:      numfmt.Thousands(v.TotalCount),
				})
			}
			return items, nil
		})
	return out, err
}

// View builds everything the dashboard renders for the record at index
func (s *Svc) View(ctx context.Context, index int) (domain.View, error) {
	sn, err := s.snapshot()
	if err != nil {
		return domain.View{}, err
	}
	v, err := sn.coll.At(index)
	if err != nil {
		return domain.View{}, err
	}

	var out domain.View
	key := cache.Key("violations", "view", sn.version, strconv.Itoa(index))
	err = s.cache.FetchJSON(ctx, "violations_view", key, &out, func(context.Context) (any, error) {
		return buildView(index, v, sn.version), nil
	})
	return out, err
}

func buildView(index int, v violation.Violation, version string) domain.View {
	hearing := v.HearingOutcomeSeries()
	legend := make([]domain.LegendEntry, len(hearing))
	for i, sl := range hearing {
		legend[i] = domain.LegendEntry{Name: sl.Name, Value: numfmt.SI(float64(sl.Value)), Color: sl.Color}
	}
	return domain.View{
		Index:       index,
		Code:        v.Code,
		Label:       v.Label(),
		Description: v.Description,
		Definition:  v.Definition,
		Fines:       v.FineRangeSummary(),
		Totals:      v.TotalsSummary(),
		Waterfall:   v.WaterfallSeries(),
		Hearing:     hearing,
		Legend:      legend,
		HeatMap:     v.HeatMapGrid(),
		Visible:     v.Visible(),
		Version:     version,
	}
}

// Select applies a selector move; the returned index is always in range
func (s *Svc) Select(_ context.Context, in domain.SelectRequest) (domain.Selection, error) {
	sn, err := s.snapshot()
	if err != nil {
		return domain.Selection{}, err
	}
	next, err := sn.coll.Cursor().Apply(in.Index, violation.Move(in.Action), in.Target)
	if err != nil {
		return domain.Selection{}, err
	}
	return domain.Selection{Index: next}, nil
}

// DefaultSelection opens the dashboard on the first record
func (s *Svc) DefaultSelection(_ context.Context) (domain.Selection, error) {
	return domain.Selection{Index: 0}, nil
}
