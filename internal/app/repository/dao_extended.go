package repository

import "context"

// MaintenanceDAO adds the bulk operations used by the command line tools.
type MaintenanceDAO interface {
	TranscriptionDAO

	// Reset deletes every record and restarts id assignment.
	Reset(ctx context.Context) error

	// DeleteNullTimestamps removes records without a timestamp and returns how many were removed.
	DeleteNullTimestamps(ctx context.Context) (int64, error)
}
