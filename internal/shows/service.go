package shows

import (
	"context"
	"errors"
	"fmt"

	"cinebook/internal/seatmap"
	"cinebook/internal/shared/apperrors"
	"cinebook/internal/shared/config"
	"cinebook/internal/shared/constants"
	"cinebook/internal/theaters"
	"cinebook/pkg/cache"
	"cinebook/pkg/logger"

	"github.com/google/uuid"
)

// AvailabilityResolver reports which seat labels are already taken for
// a show. The bookings repository implements it; depending on the
// interface here keeps shows from importing the bookings package.
type AvailabilityResolver interface {
	GetBookedSeatLabels(ctx context.Context, showID uuid.UUID) ([]string, error)
}

type Service interface {
	GetShowDetails(ctx context.Context, showID uuid.UUID) (*ShowDetailResponse, error)
	CreateShow(ctx context.Context, req CreateShowRequest) (*Show, error)
}

type service struct {
	repo         Repository
	theaterRepo  theaters.Repository
	availability AvailabilityResolver
	cache        cache.Service
	cfg          *config.Config
	log          *logger.Logger
}

func NewService(repo Repository, theaterRepo theaters.Repository, availability AvailabilityResolver, cacheService cache.Service, cfg *config.Config) Service {
	return &service{
		repo:         repo,
		theaterRepo:  theaterRepo,
		availability: availability,
		cache:        cacheService,
		cfg:          cfg,
		log:          logger.GetDefault(),
	}
}

func (s *service) GetShowDetails(ctx context.Context, showID uuid.UUID) (*ShowDetailResponse, error) {
	cacheKey := constants.ShowDetailKey(showID.String())

	var cached ShowDetailResponse
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.log.WithError(err).Warn("show detail cache read failed", "show_id", showID)
	}

	show, err := s.repo.GetWithRelations(ctx, showID)
	if err != nil {
		return nil, err
	}
	if show.Screen == nil {
		return nil, fmt.Errorf("show %s has no screen: %w", showID, apperrors.ErrNotFound)
	}

	grid, err := seatmap.New(show.Screen.SeatRows, show.Screen.SeatCols)
	if err != nil {
		return nil, fmt.Errorf("invalid screen layout for show %s: %w", showID, err)
	}

	booked, err := s.availability.GetBookedSeatLabels(ctx, showID)
	if err != nil {
		return nil, err
	}
	if booked == nil {
		booked = []string{}
	}

	detail := &ShowDetailResponse{
		Show:        *show,
		SeatLayout:  grid.Layout(),
		BookedSeats: booked,
	}

	if err := s.cache.Set(ctx, cacheKey, detail, s.cfg.Redis.ShowDetailTTL); err != nil {
		s.log.WithError(err).Warn("show detail cache write failed", "show_id", showID)
	}

	return detail, nil
}

func (s *service) CreateShow(ctx context.Context, req CreateShowRequest) (*Show, error) {
	screen, err := s.theaterRepo.GetScreenByID(ctx, req.ScreenID)
	if err != nil {
		return nil, err
	}

	show := &Show{
		MovieID:       req.MovieID,
		ScreenID:      screen.ID,
		TheaterID:     screen.TheaterID,
		ShowTime:      req.ShowTime,
		BaseSeatPrice: screen.BaseSeatPrice,
	}

	if err := s.repo.Create(ctx, show); err != nil {
		return nil, err
	}

	// New shows change the movie's theater grouping
	movieKey := constants.MovieDetailKey(show.MovieID.String())
	if err := s.cache.Delete(ctx, movieKey); err != nil {
		s.log.WithError(err).Warn("movie detail cache invalidation failed", "movie_id", show.MovieID)
	}

	return show, nil
}
