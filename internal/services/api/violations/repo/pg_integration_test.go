//go:build integration_pg

package repo

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"figurefriday/internal/core/violation"
	"figurefriday/internal/platform/store"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// postgresDSN starts a throwaway postgres:16 and returns its URL; the container dies with the test
func postgresDSN(t *testing.T) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	t.Cleanup(cancel)

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		Started: true,
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env:          map[string]string{"POSTGRES_PASSWORD": "ff", "POSTGRES_DB": "figurefriday"},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
	})
	require.NoError(t, err, "start postgres")
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	return fmt.Sprintf("postgres://postgres:ff@%s:%s/figurefriday?sslmode=disable", host, port.Port())
}

func TestPG_SeedThenLoad(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	s, err := store.Open(ctx, store.Config{PG: store.PGConfig{Enabled: true, URL: postgresDSN(t), MaxConns: 2, SlowQueryMs: -1}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	items, err := violation.DecodeSnapshot(strings.NewReader(snapshotJSON))
	require.NoError(t, err)

	n, err := Seed(ctx, s.PG, items)
	require.NoError(t, err)
	require.Equal(t, len(items), n)

	snap, err := NewPG().Bind(s.PG).Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Items, len(items))
	for i, it := range items {
		require.Equal(t, it.Code, snap.Items[i].Code, "position %d", i)
		require.Equal(t, it.TotalCount, snap.Items[i].TotalCount, "position %d", i)
	}

	// an identical reseed replaces the rows without moving the content version
	_, err = Seed(ctx, s.PG, items)
	require.NoError(t, err)
	again, err := NewPG().Bind(s.PG).Load(ctx)
	require.NoError(t, err)
	require.Equal(t, snap.Version, again.Version)
}
