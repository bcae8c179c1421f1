package survey

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// RGB is an opaque display color with 8-bit channels
type RGB struct {
	R, G, B uint8
}

// String renders the color as rgb(r, g, b)
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBA renders the color with the alpha channel replaced by a
// alpha is written as given; callers keep it within [0,1]
func (c RGB) RGBA(a float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(a, 'f', -1, 64))
}

// ParseRGB parses "rgb(r, g, b)"
func ParseRGB(s string) (RGB, error) {
	in := strings.TrimSpace(s)
	if !strings.HasPrefix(in, "rgb(") || !strings.HasSuffix(in, ")") {
		return RGB{}, fmt.Errorf("survey: color %q is not rgb(r, g, b)", s)
	}
	parts := strings.Split(in[len("rgb("):len(in)-1], ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("survey: color %q needs three channels", s)
	}
	var ch [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("survey: color %q channel %d: %w", s, i, err)
		}
		ch[i] = uint8(n)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// MarshalText implements encoding.TextMarshaler
func (c RGB) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (c *RGB) UnmarshalText(b []byte) error {
	v, err := ParseRGB(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// UnmarshalYAML decodes a scalar color from the field table
func (c *RGB) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("survey: line %d: color must be a string", n.Line)
	}
	return c.UnmarshalText([]byte(n.Value))
}
