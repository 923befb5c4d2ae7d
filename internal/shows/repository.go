package shows

import (
	"context"
	"errors"
	"fmt"

	"cinebook/internal/shared/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, show *Show) error
	GetWithRelations(ctx context.Context, id uuid.UUID) (*Show, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, show *Show) error {
	if err := r.db.WithContext(ctx).Create(show).Error; err != nil {
		return fmt.Errorf("failed to create show: %w", err)
	}
	return nil
}

func (r *repository) GetWithRelations(ctx context.Context, id uuid.UUID) (*Show, error) {
	var show Show
	err := r.db.WithContext(ctx).
		Preload("Movie").
		Preload("Theater").
		Preload("Screen").
		Where("id = ?", id).
		First(&show).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("show %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &show, nil
}
