package db

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

var DBPool *DB

// Setup the testcontainer DB before running any ops tests. Without Docker the
// tests in this file are skipped.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "postgres container unavailable, skipping db tests: %v\n", err)
		os.Exit(m.Run())
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		panic(err)
	}

	DBPool, err = Init(ctx, Config{
		ConnString:     connStr,
		Password:       "testpass",
		MigrationsPath: "./migrations",
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()

	DBPool.Close()
	pgContainer.Terminate(ctx)
	os.Exit(code)
}

func requireDB(t *testing.T) {
	t.Helper()
	if DBPool == nil {
		t.Skip("postgres container not available")
	}
}

func TestOps(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	from := "+15551234567"
	lat, lng := 12.9173, 77.6043

	before := time.Now().Add(-time.Minute)
	events := []DeviceEvent{
		{FromNumber: &from, Message: "CPR,12.9173,77.6043", Latitude: &lat, Longitude: &lng},
		{FromNumber: &from, Message: "hello there"},
	}
	for _, e := range events {
		require.NoError(t, DBPool.InsertDeviceEvent(ctx, e))
	}

	got, err := DBPool.LoadEventsBetween(ctx, from, before, time.Now().Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "CPR,12.9173,77.6043", got[0].Message)
	require.NotNil(t, got[0].Latitude)
	require.NotNil(t, got[0].Longitude)
	assert.Equal(t, lat, *got[0].Latitude)
	assert.Equal(t, lng, *got[0].Longitude)
	assert.NotZero(t, got[0].ID)
	assert.False(t, got[0].CreatedAt.IsZero())

	assert.Equal(t, "hello there", got[1].Message)
	assert.Nil(t, got[1].Latitude)
	assert.Nil(t, got[1].Longitude)
}

func TestInsertDeviceEvent_NullSender(t *testing.T) {
	requireDB(t)
	ctx := context.Background()

	err := DBPool.InsertDeviceEvent(ctx, DeviceEvent{Message: "no sender"})
	require.NoError(t, err)

	var count int
	err = DBPool.pool.QueryRow(ctx,
		`SELECT count(*) FROM device_events WHERE from_number IS NULL AND message = $1`,
		"no sender",
	).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestInsertDeviceEvent_UnpairedCoordinates(t *testing.T) {
	requireDB(t)
	lat := 1.0

	err := DBPool.InsertDeviceEvent(context.Background(), DeviceEvent{Message: "half", Latitude: &lat})
	assert.ErrorIs(t, err, ErrInsertFailed)
}

func TestLoadEventsBetween_Empty(t *testing.T) {
	requireDB(t)
	got, err := DBPool.LoadEventsBetween(context.Background(), "+10000000000", time.Unix(0, 0), time.Now())
	require.NoError(t, err)
	assert.Empty(t, got)
}
