package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/pgxscan"
)

var (
	ErrInsertFailed = errors.New("insert operation failed")
	ErrSelectFailed = errors.New("select operation failed")
)

// InsertDeviceEvent writes a single event. ID and CreatedAt are assigned by
// the database and ignored here.
func (db *DB) InsertDeviceEvent(ctx context.Context, event DeviceEvent) error {
	const fn = "DB:InsertDeviceEvent"
	_, err := db.pool.Exec(ctx, `
		INSERT INTO device_events (
			from_number,
			message,
			latitude,
			longitude
		) VALUES ($1, $2, $3, $4)
	`, event.FromNumber, event.Message, event.Latitude, event.Longitude)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}

func (db *DB) LoadEventsBetween(ctx context.Context, fromNumber string, start, end time.Time) ([]DeviceEvent, error) {
	const fn = "DB:LoadEventsBetween"
	events := []DeviceEvent{}
	err := pgxscan.Select(ctx, db.pool, &events, `
			SELECT
				id,
				from_number,
				message,
				latitude,
				longitude,
				created_at
			FROM device_events
			WHERE from_number = $1
			AND created_at >= $2
			AND created_at <= $3
			ORDER BY created_at ASC, id ASC
		`, fromNumber, start, end)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return events, nil
}
