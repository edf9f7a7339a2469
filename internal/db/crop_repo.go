package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"farmdesk/internal/types"
)

// CropRepository provides data access for the crops table. It implements
// types.CropRepository.
type CropRepository struct {
	db DBTX
}

// NewCropRepository creates a CropRepository backed by the given database
// connection (pool or transaction).
func NewCropRepository(db DBTX) *CropRepository {
	return &CropRepository{db: db}
}

// cropColumns is the column list shared by every crop query. scanCrop reads
// them in this order.
const cropColumns = `id, name, variety, planting_date, area_acres, location,
	growth_stage, health, progress, issues, last_inspection, next_inspection,
	created_at`

// scanCrop scans a single crop row. DATE columns arrive as time.Time and are
// normalized to types.Date.
func scanCrop(row pgx.Row) (*types.Crop, error) {
	var (
		c              types.Crop
		plantingDate   time.Time
		lastInspection time.Time
		nextInspection *time.Time
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Variety,
		&plantingDate,
		&c.AreaAcres,
		&c.Location,
		&c.GrowthStage,
		&c.Health,
		&c.Progress,
		&c.Issues,
		&lastInspection,
		&nextInspection,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.PlantingDate = types.NewDate(plantingDate)
	c.LastInspection = types.NewDate(lastInspection)
	if nextInspection != nil {
		c.NextInspection = types.NewDate(*nextInspection)
	}
	if c.Issues == nil {
		c.Issues = []string{}
	}
	return &c, nil
}

// List returns crops matching filter in insertion order.
func (r *CropRepository) List(ctx context.Context, filter types.CropFilter) ([]*types.Crop, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Health != "" {
		args = append(args, string(filter.Health))
		conds = append(conds, fmt.Sprintf("health = $%d", len(args)))
	}
	if filter.Name != "" {
		args = append(args, filter.Name)
		conds = append(conds, fmt.Sprintf("name = $%d", len(args)))
	}

	query := `SELECT ` + cropColumns + ` FROM crops`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to list crops", err)
	}
	defer rows.Close()

	crops := []*types.Crop{}
	for rows.Next() {
		c, err := scanCrop(rows)
		if err != nil {
			return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to scan crop row", err)
		}
		crops = append(crops, c)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "error iterating crop rows", err)
	}
	return crops, nil
}

// Get retrieves a crop by ID.
func (r *CropRepository) Get(ctx context.Context, id string) (*types.Crop, error) {
	row := r.db.QueryRow(ctx, `SELECT `+cropColumns+` FROM crops WHERE id = $1`, id)
	c, err := scanCrop(row)
	if err != nil {
		return nil, cropQueryError(err, "failed to retrieve crop")
	}
	return c, nil
}

// Create inserts a new crop. The caller sets the ID.
func (r *CropRepository) Create(ctx context.Context, crop *types.Crop) error {
	issues := crop.Issues
	if issues == nil {
		issues = []string{}
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO crops (id, name, variety, planting_date, area_acres, location,
		 growth_stage, health, progress, issues, last_inspection, next_inspection, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, COALESCE($13, NOW()))`,
		crop.ID,
		crop.Name,
		crop.Variety,
		crop.PlantingDate.Time,
		crop.AreaAcres,
		crop.Location,
		crop.GrowthStage,
		string(crop.Health),
		crop.Progress,
		issues,
		crop.LastInspection.Time,
		nilIfZeroTime(crop.NextInspection.Time),
		nilIfZeroTime(crop.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return types.NewAppError(types.ErrCodeConflictDuplicate, "crop already exists", err)
		}
		return types.NewAppError(types.ErrCodeInternalDB, "failed to create crop", err)
	}
	return nil
}

// Delete removes a crop and returns it.
func (r *CropRepository) Delete(ctx context.Context, id string) (*types.Crop, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM crops WHERE id = $1 RETURNING `+cropColumns, id)
	c, err := scanCrop(row)
	if err != nil {
		return nil, cropQueryError(err, "failed to delete crop")
	}
	return c, nil
}

// SetNextInspection records the next scheduled inspection and returns the
// updated crop.
func (r *CropRepository) SetNextInspection(ctx context.Context, id string, date types.Date) (*types.Crop, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE crops SET next_inspection = $1 WHERE id = $2 RETURNING `+cropColumns,
		date.Time, id,
	)
	c, err := scanCrop(row)
	if err != nil {
		return nil, cropQueryError(err, "failed to schedule inspection")
	}
	return c, nil
}

func cropQueryError(err error, msg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return types.NewAppError(types.ErrCodeNotFoundCrop, "crop not found", nil)
	}
	return types.NewAppError(types.ErrCodeInternalDB, msg, err)
}
