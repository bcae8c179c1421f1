package raw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnv_Key(t *testing.T) {
	e := Env("CORE_").Prefix("API_")
	assert.Equal(t, "CORE_API_PORT", e.Key("PORT"))
	assert.Equal(t, "PORT", Env("").Key("PORT"))
}

func TestEnv_Lookup(t *testing.T) {
	t.Setenv("RAW_SET", "  info ")
	t.Setenv("RAW_BLANK", "   ")
	e := Env("RAW_")

	v, ok := e.Lookup("SET")
	assert.True(t, ok)
	assert.Equal(t, "info", v)

	_, ok = e.Lookup("BLANK")
	assert.False(t, ok)
	assert.Equal(t, "console", e.String("MISSING", "console"))
}

func TestEnv_Bool(t *testing.T) {
	e := Env("RAW_")
	cases := map[string]bool{"true": true, "1": true, "FALSE": false, "yes": true, "": true}
	for in, want := range cases {
		t.Setenv("RAW_CALLER", in)
		// yes and blank are not ParseBool values, so def wins
		assert.Equal(t, want, e.Bool("CALLER", true), "input %q", in)
	}
	t.Setenv("RAW_CALLER", "yes")
	assert.False(t, e.Bool("CALLER", false))
}

func TestEnv_Int(t *testing.T) {
	e := Env("RAW_")
	t.Setenv("RAW_PORT", " 4000 ")
	t.Setenv("RAW_BAD", "4k")
	assert.Equal(t, 4000, e.Int("PORT", 0))
	assert.Equal(t, 8080, e.Int("BAD", 8080))
	assert.Equal(t, 7, e.Int("MISSING", 7))
}
