package theaters

import (
	"context"
	"fmt"
	"testing"

	"cinebook/internal/shared/apperrors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	theaters map[uuid.UUID]*Theater
	screens  map[uuid.UUID]*Screen
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		theaters: make(map[uuid.UUID]*Theater),
		screens:  make(map[uuid.UUID]*Screen),
	}
}

func (r *fakeRepo) CreateTheater(ctx context.Context, theater *Theater) error {
	theater.ID = uuid.New()
	r.theaters[theater.ID] = theater
	return nil
}

func (r *fakeRepo) CreateScreen(ctx context.Context, screen *Screen) error {
	screen.ID = uuid.New()
	r.screens[screen.ID] = screen
	return nil
}

func (r *fakeRepo) GetTheaterByID(ctx context.Context, id uuid.UUID) (*Theater, error) {
	theater, ok := r.theaters[id]
	if !ok {
		return nil, fmt.Errorf("theater %s: %w", id, apperrors.ErrNotFound)
	}
	return theater, nil
}

func (r *fakeRepo) GetScreenByID(ctx context.Context, id uuid.UUID) (*Screen, error) {
	screen, ok := r.screens[id]
	if !ok {
		return nil, fmt.Errorf("screen %s: %w", id, apperrors.ErrNotFound)
	}
	return screen, nil
}

func (r *fakeRepo) ListWithScreenCounts(ctx context.Context) ([]TheaterSummary, error) {
	summaries := make([]TheaterSummary, 0, len(r.theaters))
	for _, theater := range r.theaters {
		summaries = append(summaries, TheaterSummary{
			TheaterID: theater.ID.String(),
			Name:      theater.Name,
			Location:  theater.Location,
		})
	}
	return summaries, nil
}

func TestCreateScreenUnknownTheater(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.CreateScreen(context.Background(), uuid.New(), CreateScreenRequest{
		ScreenNumber:  "1",
		SeatRows:      10,
		SeatCols:      10,
		BaseSeatPrice: decimal.NewFromInt(250),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateScreenDerivesTotalSeats(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	theater, err := svc.CreateTheater(context.Background(), CreateTheaterRequest{
		Name:     "Astor",
		Location: "Downtown",
	})
	require.NoError(t, err)

	screen, err := svc.CreateScreen(context.Background(), theater.ID, CreateScreenRequest{
		ScreenNumber:  "2",
		SeatRows:      8,
		SeatCols:      12,
		BaseSeatPrice: decimal.RequireFromString("199.50"),
	})
	require.NoError(t, err)

	assert.Equal(t, 96, screen.TotalSeats)
	assert.Equal(t, theater.ID.String(), screen.TheaterID)
}

func TestCreateScreenNegativePrice(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	theater, err := svc.CreateTheater(context.Background(), CreateTheaterRequest{
		Name:     "Astor",
		Location: "Downtown",
	})
	require.NoError(t, err)

	_, err = svc.CreateScreen(context.Background(), theater.ID, CreateScreenRequest{
		ScreenNumber:  "1",
		SeatRows:      10,
		SeatCols:      10,
		BaseSeatPrice: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestListTheaters(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.CreateTheater(context.Background(), CreateTheaterRequest{
		Name:     "Rialto",
		Location: "Midtown",
	})
	require.NoError(t, err)

	summaries, err := svc.ListTheaters(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Rialto", summaries[0].Name)
}
