package theaters

import (
	"context"
	"fmt"

	"cinebook/internal/shared/apperrors"

	"github.com/google/uuid"
)

// Service interface defines the contract for theater catalog logic
type Service interface {
	ListTheaters(ctx context.Context) ([]TheaterSummary, error)
	CreateTheater(ctx context.Context, req CreateTheaterRequest) (*Theater, error)
	CreateScreen(ctx context.Context, theaterID uuid.UUID, req CreateScreenRequest) (*ScreenResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListTheaters(ctx context.Context) ([]TheaterSummary, error) {
	return s.repo.ListWithScreenCounts(ctx)
}

func (s *service) CreateTheater(ctx context.Context, req CreateTheaterRequest) (*Theater, error) {
	theater := &Theater{
		Name:     req.Name,
		Location: req.Location,
		Contact:  req.Contact,
	}

	if err := s.repo.CreateTheater(ctx, theater); err != nil {
		return nil, err
	}
	return theater, nil
}

func (s *service) CreateScreen(ctx context.Context, theaterID uuid.UUID, req CreateScreenRequest) (*ScreenResponse, error) {
	if req.BaseSeatPrice.IsNegative() {
		return nil, fmt.Errorf("%w: base seat price must not be negative", apperrors.ErrInvalidInput)
	}

	// Parent theater must exist
	if _, err := s.repo.GetTheaterByID(ctx, theaterID); err != nil {
		return nil, err
	}

	screen := &Screen{
		TheaterID:     theaterID,
		ScreenNumber:  req.ScreenNumber,
		SeatRows:      req.SeatRows,
		SeatCols:      req.SeatCols,
		BaseSeatPrice: req.BaseSeatPrice,
	}

	if err := s.repo.CreateScreen(ctx, screen); err != nil {
		return nil, err
	}

	resp := screen.ToResponse()
	return &resp, nil
}
