package theaters

import (
	"context"
	"errors"
	"fmt"

	"cinebook/internal/shared/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateTheater(ctx context.Context, theater *Theater) error
	CreateScreen(ctx context.Context, screen *Screen) error
	GetTheaterByID(ctx context.Context, id uuid.UUID) (*Theater, error)
	GetScreenByID(ctx context.Context, id uuid.UUID) (*Screen, error)
	ListWithScreenCounts(ctx context.Context) ([]TheaterSummary, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateTheater(ctx context.Context, theater *Theater) error {
	if err := r.db.WithContext(ctx).Create(theater).Error; err != nil {
		return fmt.Errorf("failed to create theater: %w", err)
	}
	return nil
}

func (r *repository) CreateScreen(ctx context.Context, screen *Screen) error {
	if err := r.db.WithContext(ctx).Create(screen).Error; err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	return nil
}

func (r *repository) GetTheaterByID(ctx context.Context, id uuid.UUID) (*Theater, error) {
	var theater Theater
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&theater).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("theater %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &theater, nil
}

func (r *repository) GetScreenByID(ctx context.Context, id uuid.UUID) (*Screen, error) {
	var screen Screen
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&screen).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("screen %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &screen, nil
}

func (r *repository) ListWithScreenCounts(ctx context.Context) ([]TheaterSummary, error) {
	var rows []struct {
		ID          uuid.UUID
		Name        string
		Location    string
		Contact     string
		ScreenCount int64
	}

	err := r.db.WithContext(ctx).
		Table("theaters t").
		Select("t.id, t.name, t.location, t.contact, COUNT(s.id) as screen_count").
		Joins("LEFT JOIN screens s ON t.id = s.theater_id").
		Group("t.id, t.name, t.location, t.contact").
		Order("t.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list theaters: %w", err)
	}

	summaries := make([]TheaterSummary, len(rows))
	for i, row := range rows {
		summaries[i] = TheaterSummary{
			TheaterID:   row.ID.String(),
			Name:        row.Name,
			Location:    row.Location,
			Contact:     row.Contact,
			ScreenCount: row.ScreenCount,
		}
	}
	return summaries, nil
}
