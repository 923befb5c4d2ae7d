package movies

import (
	"context"
	"errors"
	"fmt"

	"cinebook/internal/shared/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, movie *Movie) error
	GetByID(ctx context.Context, id uuid.UUID) (*Movie, error)
	Search(ctx context.Context, search string) ([]Movie, error)
	GetShowsForMovie(ctx context.Context, movieID uuid.UUID) ([]movieShowRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, movie *Movie) error {
	if err := r.db.WithContext(ctx).Create(movie).Error; err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Movie, error) {
	var movie Movie
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&movie).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("movie %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &movie, nil
}

// Search filters by case-insensitive substring match on title or
// description. An empty search returns the whole catalog.
func (r *repository) Search(ctx context.Context, search string) ([]Movie, error) {
	query := r.db.WithContext(ctx).Model(&Movie{})

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var movies []Movie
	if err := query.Order("title ASC").Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}
	return movies, nil
}

// GetShowsForMovie returns the flat show/theater/screen projection for
// a movie, ordered so the service can group rows by theater in one pass.
func (r *repository) GetShowsForMovie(ctx context.Context, movieID uuid.UUID) ([]movieShowRow, error) {
	var rows []movieShowRow

	err := r.db.WithContext(ctx).
		Table("shows sh").
		Select(`sh.id as show_id, sh.show_time, sh.base_seat_price,
			t.id as theater_id, t.name as theater_name, t.location as theater_loc,
			sc.id as screen_id, sc.screen_number`).
		Joins("JOIN screens sc ON sh.screen_id = sc.id").
		Joins("JOIN theaters t ON sh.theater_id = t.id").
		Where("sh.movie_id = ?", movieID).
		Order("t.name ASC, sh.show_time ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load shows for movie: %w", err)
	}
	return rows, nil
}
