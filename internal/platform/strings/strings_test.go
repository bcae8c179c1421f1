package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIfEmpty(t *testing.T) {
	assert.Equal(t, []string{"GET"}, IfEmpty([]string{"GET"}, []string{"POST"}))
	assert.Equal(t, []string{"POST"}, IfEmpty(nil, []string{"POST"}))
	assert.Equal(t, []int{7}, IfEmpty([]int{}, []int{7}))
}

func TestMustString(t *testing.T) {
	assert.Equal(t, "survey", MustString("survey", "module name"))
	assert.PanicsWithValue(t, "module name is required", func() { MustString(" \t", "module name") })
}

func TestMustPrefix(t *testing.T) {
	for in, want := range map[string]string{
		"/survey/":           "/survey",
		" survey  ":          "/survey",
		"//violations//":     "/violations",
		"/survey/bar-chart/": "/survey/bar-chart",
	} {
		assert.Equal(t, want, MustPrefix(in), in)
	}
	for _, in := range []string{"", "/", " // "} {
		assert.Panics(t, func() { MustPrefix(in) }, in)
	}
}
