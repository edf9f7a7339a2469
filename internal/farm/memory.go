package farm

import (
	"context"
	"errors"
	"slices"

	"farmdesk/internal/collection"
	"farmdesk/internal/types"
)

// MemoryCropRepository is the in-process CropRepository used when no database
// is configured.
type MemoryCropRepository struct {
	crops *collection.Collection[string, types.Crop]
}

// NewMemoryCropRepository creates a repository holding crops in order.
func NewMemoryCropRepository(crops ...*types.Crop) (*MemoryCropRepository, error) {
	c := collection.New(func(crop types.Crop) string { return crop.ID })
	for _, crop := range crops {
		if err := c.Add(cloneCrop(crop)); err != nil {
			return nil, err
		}
	}
	return &MemoryCropRepository{crops: c}, nil
}

func (r *MemoryCropRepository) List(_ context.Context, filter types.CropFilter) ([]*types.Crop, error) {
	matched := r.crops.Filter(func(c types.Crop) bool { return filter.Matches(&c) })
	out := make([]*types.Crop, 0, len(matched))
	for i := range matched {
		out = append(out, ptrCrop(matched[i]))
	}
	return out, nil
}

func (r *MemoryCropRepository) Get(_ context.Context, id string) (*types.Crop, error) {
	c, ok := r.crops.Get(id)
	if !ok {
		return nil, cropNotFound(id)
	}
	return ptrCrop(c), nil
}

func (r *MemoryCropRepository) Create(_ context.Context, crop *types.Crop) error {
	if err := r.crops.Add(cloneCrop(crop)); err != nil {
		if errors.Is(err, collection.ErrDuplicateKey) {
			return types.NewAppError(types.ErrCodeConflictDuplicate, "crop already exists", err)
		}
		return err
	}
	return nil
}

func (r *MemoryCropRepository) Delete(_ context.Context, id string) (*types.Crop, error) {
	c, err := r.crops.Remove(id)
	if err != nil {
		return nil, cropNotFound(id)
	}
	return ptrCrop(c), nil
}

func (r *MemoryCropRepository) SetNextInspection(_ context.Context, id string, date types.Date) (*types.Crop, error) {
	c, err := r.crops.Update(id, func(c types.Crop) types.Crop {
		c.NextInspection = date
		return c
	})
	if err != nil {
		return nil, cropNotFound(id)
	}
	return ptrCrop(c), nil
}

// MemoryFieldRepository is the in-process FieldRepository used when no
// database is configured.
type MemoryFieldRepository struct {
	fields *collection.Collection[string, types.Field]
}

// NewMemoryFieldRepository creates a repository holding fields in order.
func NewMemoryFieldRepository(fields ...*types.Field) (*MemoryFieldRepository, error) {
	c := collection.New(func(f types.Field) string { return f.Name })
	for _, f := range fields {
		if err := c.Add(*f); err != nil {
			return nil, err
		}
	}
	return &MemoryFieldRepository{fields: c}, nil
}

func (r *MemoryFieldRepository) List(_ context.Context) ([]*types.Field, error) {
	all := r.fields.All()
	out := make([]*types.Field, 0, len(all))
	for i := range all {
		out = append(out, &all[i])
	}
	return out, nil
}

func (r *MemoryFieldRepository) Get(_ context.Context, name string) (*types.Field, error) {
	f, ok := r.fields.Get(name)
	if !ok {
		return nil, fieldNotFound(name)
	}
	return &f, nil
}

func (r *MemoryFieldRepository) Create(_ context.Context, field *types.Field) error {
	if err := r.fields.Add(*field); err != nil {
		if errors.Is(err, collection.ErrDuplicateKey) {
			return fieldExists(field.Name)
		}
		return err
	}
	return nil
}

func (r *MemoryFieldRepository) Delete(_ context.Context, name string) (*types.Field, error) {
	f, err := r.fields.Remove(name)
	if err != nil {
		return nil, fieldNotFound(name)
	}
	return &f, nil
}

func cloneCrop(c *types.Crop) types.Crop {
	out := *c
	out.Issues = slices.Clone(c.Issues)
	return out
}

func ptrCrop(c types.Crop) *types.Crop {
	out := cloneCrop(&c)
	return &out
}

func cropNotFound(id string) error {
	return types.NewAppErrorWithDetails(types.ErrCodeNotFoundCrop, "crop not found", nil, map[string]any{"id": id})
}

func fieldNotFound(name string) error {
	return types.NewAppErrorWithDetails(types.ErrCodeNotFoundField, "field not found", nil, map[string]any{"name": name})
}

func fieldExists(name string) error {
	return types.NewAppErrorWithDetails(types.ErrCodeConflictFieldExists, "a field with this name already exists", nil, map[string]any{"name": name})
}
