package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"farmdesk/internal/types"
)

// FieldRepository provides data access for the fields table. It implements
// types.FieldRepository.
type FieldRepository struct {
	db DBTX
}

// NewFieldRepository creates a FieldRepository backed by the given database
// connection (pool or transaction).
func NewFieldRepository(db DBTX) *FieldRepository {
	return &FieldRepository{db: db}
}

const fieldColumns = `name, soil_type, ph, nitrogen, phosphorus, potassium,
	organic_matter, moisture, last_tested, status, created_at`

func scanField(row pgx.Row) (*types.Field, error) {
	var (
		f          types.Field
		lastTested time.Time
	)
	err := row.Scan(
		&f.Name,
		&f.SoilType,
		&f.PH,
		&f.Nitrogen,
		&f.Phosphorus,
		&f.Potassium,
		&f.OrganicMatter,
		&f.Moisture,
		&lastTested,
		&f.Status,
		&f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	f.LastTested = types.NewDate(lastTested)
	return &f, nil
}

// List returns all fields in insertion order.
func (r *FieldRepository) List(ctx context.Context) ([]*types.Field, error) {
	rows, err := r.db.Query(ctx, `SELECT `+fieldColumns+` FROM fields ORDER BY created_at, name`)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to list fields", err)
	}
	defer rows.Close()

	fields := []*types.Field{}
	for rows.Next() {
		f, err := scanField(rows)
		if err != nil {
			return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to scan field row", err)
		}
		fields = append(fields, f)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "error iterating field rows", err)
	}
	return fields, nil
}

// Get retrieves a field by name.
func (r *FieldRepository) Get(ctx context.Context, name string) (*types.Field, error) {
	row := r.db.QueryRow(ctx, `SELECT `+fieldColumns+` FROM fields WHERE name = $1`, name)
	f, err := scanField(row)
	if err != nil {
		return nil, fieldQueryError(err, "failed to retrieve field")
	}
	return f, nil
}

// Create inserts a field. A duplicate name yields ErrCodeConflictFieldExists.
func (r *FieldRepository) Create(ctx context.Context, field *types.Field) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO fields (name, soil_type, ph, nitrogen, phosphorus, potassium,
		 organic_matter, moisture, last_tested, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, COALESCE($11, NOW()))`,
		field.Name,
		field.SoilType,
		field.PH,
		field.Nitrogen,
		field.Phosphorus,
		field.Potassium,
		field.OrganicMatter,
		field.Moisture,
		field.LastTested.Time,
		string(field.Status),
		nilIfZeroTime(field.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return types.NewAppErrorWithDetails(types.ErrCodeConflictFieldExists,
				"a field with this name already exists", err, map[string]any{"name": field.Name})
		}
		return types.NewAppError(types.ErrCodeInternalDB, "failed to create field", err)
	}
	return nil
}

// Delete removes a field and returns it.
func (r *FieldRepository) Delete(ctx context.Context, name string) (*types.Field, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM fields WHERE name = $1 RETURNING `+fieldColumns, name)
	f, err := scanField(row)
	if err != nil {
		return nil, fieldQueryError(err, "failed to delete field")
	}
	return f, nil
}

func fieldQueryError(err error, msg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return types.NewAppError(types.ErrCodeNotFoundField, "field not found", nil)
	}
	return types.NewAppError(types.ErrCodeInternalDB, msg, err)
}
