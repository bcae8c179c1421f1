package survey

import (
	"bytes"
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"sync"

	perr "figurefriday/internal/platform/errors"

	"gopkg.in/yaml.v3"
)

//go:embed fields.yaml
var fieldsYAML []byte

// Registry is the immutable lookup of survey fields by name
// build once at startup and share; reads need no locking
type Registry struct {
	fields     []Field
	byName     map[string]int
	byQuestion map[string]int
}

type fieldTable struct {
	Fields []Field `yaml:"fields"`
}

var defaultRegistry = sync.OnceValues(func() (*Registry, error) {
	return Parse(fieldsYAML)
})

// Default returns the registry for the steak-risk survey
func Default() (*Registry, error) { return defaultRegistry() }

// MustDefault is Default that panics on a broken embedded table
func MustDefault() *Registry {
	r, err := Default()
	if err != nil {
		panic(err)
	}
	return r
}

// Parse builds a registry from a YAML field table
func Parse(b []byte) (*Registry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var tbl fieldTable
	if err := dec.Decode(&tbl); err != nil {
		return nil, fmt.Errorf("survey: decode field table: %w", err)
	}
	return New(tbl.Fields...)
}

// New validates fields and builds a registry
func New(fields ...Field) (*Registry, error) {
	r := &Registry{
		fields:     make([]Field, 0, len(fields)),
		byName:     make(map[string]int, len(fields)),
		byQuestion: make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if strings.TrimSpace(f.Name) == "" {
			return nil, fmt.Errorf("survey: field with empty name")
		}
		if !f.Type.Valid() {
			return nil, fmt.Errorf("survey: field %q has unknown type %q", f.Name, f.Type)
		}
		if _, dup := r.byName[f.Name]; dup {
			return nil, fmt.Errorf("survey: duplicate field %q", f.Name)
		}
		seen := make(map[string]struct{}, len(f.Responses))
		for _, resp := range f.Responses {
			if _, dup := seen[resp.Value]; dup {
				return nil, fmt.Errorf("survey: field %q repeats response %q", f.Name, resp.Value)
			}
			seen[resp.Value] = struct{}{}
		}
		r.byName[f.Name] = len(r.fields)
		r.byQuestion[questionKey(f.Question)] = len(r.fields)
		r.fields = append(r.fields, f.clone())
	}
	return r, nil
}

// Field looks a field up by name
func (r *Registry) Field(name string) (Field, error) {
	i, ok := r.byName[name]
	if !ok {
		return Field{}, perr.NotFoundf("unknown survey field %q", name)
	}
	return r.fields[i].clone(), nil
}

// ByQuestion finds the field whose question matches the source column header
// markup and whitespace differences are ignored
func (r *Registry) ByQuestion(q string) (Field, bool) {
	i, ok := r.byQuestion[questionKey(q)]
	if !ok {
		return Field{}, false
	}
	return r.fields[i].clone(), true
}

// Fields returns every field in table order
func (r *Registry) Fields() []Field {
	out := make([]Field, len(r.fields))
	for i, f := range r.fields {
		out[i] = f.clone()
	}
	return out
}

// Names returns the sorted names of fields of type t
func (r *Registry) Names(t FieldType) []string {
	var out []string
	for _, f := range r.fields {
		if f.Type == t {
			out = append(out, f.Name)
		}
	}
	slices.Sort(out)
	return out
}

func questionKey(q string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(q, "<br>", " ")), " ")
}
