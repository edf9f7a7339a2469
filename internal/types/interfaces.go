package types

import (
	"context"
	"time"
)

// CropRepository persists monitored crops. Implementations return
// ErrCodeNotFoundCrop for unknown IDs and ErrCodeInternalDB for storage
// failures.
type CropRepository interface {
	List(ctx context.Context, filter CropFilter) ([]*Crop, error)
	Get(ctx context.Context, id string) (*Crop, error)
	Create(ctx context.Context, crop *Crop) error
	Delete(ctx context.Context, id string) (*Crop, error)
	SetNextInspection(ctx context.Context, id string, date Date) (*Crop, error)
}

// FieldRepository persists fields and their soil readings. Field names are
// unique; Create returns ErrCodeConflictFieldExists for a duplicate.
type FieldRepository interface {
	List(ctx context.Context) ([]*Field, error)
	Get(ctx context.Context, name string) (*Field, error)
	Create(ctx context.Context, field *Field) error
	Delete(ctx context.Context, name string) (*Field, error)
}

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the real system time (always UTC).
type RealClock struct{}

// Now returns the current time in UTC.
func (RealClock) Now() time.Time { return time.Now().UTC() }

// FixedClock always returns the same instant. Used by tests and the CLI.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return time.Time(c) }
