package config

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDB struct {
	pings     int
	failPings int // Ping fails while pings <= failPings
	pingTimes []time.Time
	execs     []string
	execErr   error
}

func (f *fakeDB) Ping(_ context.Context) error {
	f.pings++
	f.pingTimes = append(f.pingTimes, time.Now())
	if f.pings <= f.failPings {
		return errors.New("connection refused")
	}
	return nil
}

func (f *fakeDB) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	return pgconn.CommandTag{}, f.execErr
}

func TestBringUpFirstAttemptSucceeds(t *testing.T) {
	db := &fakeDB{}

	err := BringUp(context.Background(), db, zerolog.Nop(), 30, time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 1, db.pings)
	require.Len(t, db.execs, 1)
	assert.Contains(t, db.execs[0], "CREATE TABLE IF NOT EXISTS users")
	assert.Contains(t, db.execs[0], "CREATE TABLE IF NOT EXISTS orders")
}

func TestBringUpRecoversWithinBudget(t *testing.T) {
	db := &fakeDB{failPings: 2}

	err := BringUp(context.Background(), db, zerolog.Nop(), 30, time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 3, db.pings)
	assert.Len(t, db.execs, 1)
}

func TestBringUpGivesUpAfterMaxAttempts(t *testing.T) {
	db := &fakeDB{failPings: 1000}
	interval := 10 * time.Millisecond
	maxAttempts := 5

	start := time.Now()
	err := BringUp(context.Background(), db, zerolog.Nop(), maxAttempts, interval)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "not reachable"))

	// Exactly maxAttempts probes, spaced by the fixed interval.
	assert.Equal(t, maxAttempts, db.pings)
	assert.GreaterOrEqual(t, elapsed, time.Duration(maxAttempts-1)*interval)
	assert.Empty(t, db.execs)

	for i := 1; i < len(db.pingTimes); i++ {
		gap := db.pingTimes[i].Sub(db.pingTimes[i-1])
		assert.GreaterOrEqual(t, gap, interval)
	}
}

func TestBringUpSchemaFailureIsFatal(t *testing.T) {
	db := &fakeDB{execErr: errors.New("permission denied")}

	err := BringUp(context.Background(), db, zerolog.Nop(), 3, time.Millisecond)

	// Schema ensure runs once after a successful probe and is not retried.
	require.Error(t, err)
	assert.Equal(t, 1, db.pings)
	assert.Len(t, db.execs, 1)
}

func TestBringUpHonorsContextCancellation(t *testing.T) {
	db := &fakeDB{failPings: 1000}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := BringUp(ctx, db, zerolog.Nop(), 30, time.Hour)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, db.pings)
}
