package net_test

import (
	"context"
	"testing"

	pnet "figurefriday/internal/platform/net"

	"github.com/stretchr/testify/assert"
)

func TestWithRequest(t *testing.T) {
	base := context.Background()
	cases := []struct {
		name, rid, ip string
	}{
		{"both", "579f33bf50b1/abc-000001", "10.0.0.7"},
		{"request id only", "r-only", ""},
		{"address only", "", "192.168.1.9"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := pnet.WithRequest(base, c.rid, c.ip)
			assert.Equal(t, c.rid, pnet.RequestID(ctx))
			assert.Equal(t, c.ip, pnet.ClientIP(ctx))
		})
	}

	assert.Equal(t, base, pnet.WithRequest(base, "", ""), "nothing to attach keeps the parent")
	assert.Empty(t, pnet.ClientIP(base))
}
