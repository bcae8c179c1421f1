// Package service builds the survey dashboard view models
package service

import (
	"context"
	"strconv"
	"strings"
	"sync/atomic"

	"figurefriday/internal/core/survey"
	"figurefriday/internal/platform/cache"
	perr "figurefriday/internal/platform/errors"
	"figurefriday/internal/platform/logger"
	"figurefriday/internal/services/api/survey/domain"
	"figurefriday/internal/services/api/survey/repo"
)

const (
	// SeriesAlpha is the bar fill opacity
	SeriesAlpha = 0.65
	// RefLineColor is the color of cumulative share lines
	RefLineColor = "rgba(255, 255, 255, 0.85)"
	// DataKey is the record key the renderer groups bars by
	DataKey = survey.IndexKey
)

// Service defines the survey service contract
type Service interface {
	domain.ServicePort
	Load(ctx context.Context) error
}

// Svc implements the survey service over one loaded dataset
type Svc struct {
	reg   *survey.Registry
	repo  repo.Repo
	cache *cache.Cache
	data  atomic.Pointer[repo.Dataset]
}

// New constructs a survey service; call Load before serving
func New(reg *survey.Registry, r repo.Repo, c *cache.Cache) *Svc {
	if reg == nil {
		panic("survey.Service requires a non nil Registry")
	}
	if r == nil {
		panic("survey.Service requires a non nil Repo")
	}
	return &Svc{reg: reg, repo: r, cache: c}
}

// Load reads the dataset and swaps it in
func (s *Svc) Load(ctx context.Context) error {
	ds, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	s.data.Store(&ds)
	logger.Named("survey").Info().
		Int("respondents", len(ds.Respondents)).
		Str("version", ds.Version.String()).
		Msg("survey dataset loaded")
	return nil
}

func (s *Svc) dataset() (*repo.Dataset, error) {
	ds := s.data.Load()
	if ds == nil {
		return nil, perr.New(perr.ErrorCodeUnavailable, "survey dataset not loaded")
	}
	return ds, nil
}

// Fields lists the dropdown sources and every field's answers
func (s *Svc) Fields(_ context.Context) (domain.Fields, error) {
	out := domain.Fields{
		Attributes: s.reg.Names(survey.Attribute),
		Variables:  s.reg.Names(survey.Variable),
	}
	for _, f := range s.reg.Fields() {
		info := domain.FieldInfo{Name: f.Name, Question: f.Header(), Type: string(f.Type)}
		for _, r := range f.Responses {
			info.Responses = append(info.Responses, domain.ResponseOption{Value: r.Value, Color: r.Color.String()})
		}
		out.Fields = append(out.Fields, info)
	}
	return out, nil
}

// DefaultSelection is the state the dashboard opens with
func (s *Svc) DefaultSelection(_ context.Context) (domain.Selection, error) {
	return domain.Selection{Attribute: "Age", Variable: "Steak Preparation", Transpose: true, ShowRef: false}, nil
}

// BarChart builds headers, records, series and optional reference lines
func (s *Svc) BarChart(ctx context.Context, in domain.Selection) (domain.BarChart, error) {
	ds, err := s.dataset()
	if err != nil {
		return domain.BarChart{}, err
	}
	key := cache.Key("survey", "bar", ds.Version.String(), selectionKey(in))

	var out domain.BarChart
	err = s.cache.FetchJSON(ctx, "survey_bar", key, &out, func(context.Context) (any, error) {
		return s.buildBarChart(ds, in)
	})
	return out, err
}

func (s *Svc) buildBarChart(ds *repo.Dataset, in domain.Selection) (domain.BarChart, error) {
	attr, vrb, err := s.resolve(in)
	if err != nil {
		return domain.BarChart{}, err
	}
	tab, fractions, err := survey.BuildCrossTab(ds.Respondents, attr, vrb, in.Transpose)
	if err != nil {
		return domain.BarChart{}, err
	}

	// BuildCrossTab accepts the pair in either order; headers follow the field types
	if attr.Type == survey.Variable {
		attr, vrb = vrb, attr
	}
	x := attr
	if in.Transpose {
		x = vrb
	}

	alpha := SeriesAlpha
	out := domain.BarChart{
		Title:          vrb.Header(),
		Subtitle:       "Broken down by respondent's " + strings.ToLower(attr.Header()),
		DataKey:        DataKey,
		Data:           tab.Records(),
		Series:         x.SeriesColorMap(&alpha),
		ReferenceLines: []domain.ReferenceLine{},
		Version:        ds.Version.String(),
	}
	if in.ShowRef {
		for _, f := range fractions {
			out.ReferenceLines = append(out.ReferenceLines, domain.ReferenceLine{X: f, Color: RefLineColor})
		}
	}
	return out, nil
}

// CrossTab returns the raw table behind the bar chart
func (s *Svc) CrossTab(ctx context.Context, in domain.Selection) (domain.CrossTab, error) {
	ds, err := s.dataset()
	if err != nil {
		return domain.CrossTab{}, err
	}
	key := cache.Key("survey", "crosstab", ds.Version.String(), selectionKey(in))

	var out domain.CrossTab
	err = s.cache.FetchJSON(ctx, "survey_crosstab", key, &out, func(context.Context) (any, error) {
		attr, vrb, err := s.resolve(in)
		if err != nil {
			return nil, err
		}
		tab, fractions, err := survey.BuildCrossTab(ds.Respondents, attr, vrb, in.Transpose)
		if err != nil {
			return nil, err
		}
		return domain.CrossTab{Table: tab, Fractions: fractions, Total: tab.Total(), Version: ds.Version.String()}, nil
	})
	return out, err
}

func (s *Svc) resolve(in domain.Selection) (survey.Field, survey.Field, error) {
	attr, err := s.reg.Field(strings.TrimSpace(in.Attribute))
	if err != nil {
		return survey.Field{}, survey.Field{}, err
	}
	vrb, err := s.reg.Field(strings.TrimSpace(in.Variable))
	if err != nil {
		return survey.Field{}, survey.Field{}, err
	}
	return attr, vrb, nil
}

// selectionKey is the cache key suffix for a selection
func selectionKey(in domain.Selection) string {
	return strings.Join([]string{
		strconv.Quote(strings.TrimSpace(in.Attribute)),
		strconv.Quote(strings.TrimSpace(in.Variable)),
		strconv.FormatBool(in.Transpose),
		strconv.FormatBool(in.ShowRef),
	}, ":")
}
