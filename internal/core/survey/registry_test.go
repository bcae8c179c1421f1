package survey

import (
	"testing"

	perr "figurefriday/internal/platform/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Table(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	assert.Len(t, reg.Fields(), 14)
	assert.Equal(t,
		[]string{"Age", "Education", "Gender", "Income", "Location"},
		reg.Names(Attribute))
	assert.Equal(t,
		[]string{"Alcohol", "Cheated", "Cigarettes", "Gamble", "Lottery", "Skydived", "Speed", "Steak", "Steak Preparation"},
		reg.Names(Variable))

	steak, err := reg.Field("Steak Preparation")
	require.NoError(t, err)
	assert.Equal(t, []string{"Rare", "Medium rare", "Medium", "Medium Well", "Well"}, steak.Values())
	assert.Equal(t, RGB{164, 22, 26}, steak.Responses[0].Color)

	// anchored responses decode for every binary question
	cheat, err := reg.Field("Cheated")
	require.NoError(t, err)
	assert.Equal(t, []string{"Yes", "No"}, cheat.Values())
}

func TestRegistry_FieldUnknown(t *testing.T) {
	_, err := MustDefault().Field("Shoe Size")
	require.Error(t, err)
	assert.Equal(t, perr.ErrorCodeNotFound, perr.CodeOf(err))
}

func TestRegistry_FieldIsACopy(t *testing.T) {
	reg := MustDefault()
	f, err := reg.Field("Gender")
	require.NoError(t, err)
	f.Responses[0].Value = "mutated"

	again, err := reg.Field("Gender")
	require.NoError(t, err)
	assert.Equal(t, "Female", again.Responses[0].Value)
}

func TestRegistry_ByQuestion(t *testing.T) {
	reg := MustDefault()

	f, ok := reg.ByQuestion("Location (Census Region)")
	require.True(t, ok)
	assert.Equal(t, "Location", f.Name)

	// source headers carry no <br> markup
	f, ok = reg.ByQuestion("Consider the following hypothetical situations: In Lottery A, you have a 50% chance of success, with a payout of $100. In Lottery B, you have a 90% chance of success, with a payout of $20. Assuming you have $10 to bet, would you play Lottery A or Lottery B?")
	require.True(t, ok)
	assert.Equal(t, "Lottery", f.Name)

	_, ok = reg.ByQuestion("RespondentID")
	assert.False(t, ok)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"bad type": `
fields:
  - {name: A, question: q, type: other, responses: []}
`,
		"duplicate name": `
fields:
  - {name: A, question: q, type: attribute, responses: []}
  - {name: A, question: r, type: variable, responses: []}
`,
		"duplicate response": `
fields:
  - name: A
    question: q
    type: attribute
    responses:
      - {value: x, color: "rgb(1, 2, 3)"}
      - {value: x, color: "rgb(4, 5, 6)"}
`,
		"bad color": `
fields:
  - name: A
    question: q
    type: attribute
    responses:
      - {value: x, color: "rbg(1, 2, 3)"}
`,
		"unknown key": `
fields:
  - {name: A, question: q, type: attribute, colors: []}
`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestSeriesColorMap(t *testing.T) {
	gender, err := MustDefault().Field("Gender")
	require.NoError(t, err)

	assert.Equal(t, []Series{
		{Name: "Female", Color: "rgb(114, 1, 168)"},
		{Name: "Male", Color: "rgb(31, 158, 137)"},
	}, gender.SeriesColorMap(nil))

	a := 0.65
	assert.Equal(t, []Series{
		{Name: "Female", Color: "rgba(114, 1, 168, 0.65)"},
		{Name: "Male", Color: "rgba(31, 158, 137, 0.65)"},
	}, gender.SeriesColorMap(&a))

	zero := 0.0
	assert.Equal(t, "rgba(114, 1, 168, 0)", gender.SeriesColorMap(&zero)[0].Color)
}

func TestField_Header(t *testing.T) {
	lottery, err := MustDefault().Field("Lottery")
	require.NoError(t, err)
	assert.NotContains(t, lottery.Header(), "<br>")
	assert.Contains(t, lottery.Header(), "situations: In Lottery A")
}

func TestParseRGB(t *testing.T) {
	c, err := ParseRGB(" rgb(12, 99,127) ")
	require.NoError(t, err)
	assert.Equal(t, RGB{12, 99, 127}, c)
	assert.Equal(t, "rgb(12, 99, 127)", c.String())

	for _, bad := range []string{"", "rgb(1, 2)", "rgb(1, 2, 300)", "#ffffff", "rgb(a, b, c)"} {
		_, err := ParseRGB(bad)
		assert.Error(t, err, bad)
	}
}
