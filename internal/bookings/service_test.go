package bookings

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"cinebook/internal/shared/apperrors"
	"cinebook/internal/shows"
	"cinebook/internal/theaters"
	"cinebook/pkg/cache"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory Repository guarding its state with a mutex,
// mirroring the serialization the row lock provides in Postgres.
type fakeRepo struct {
	mu                   sync.Mutex
	show                 *shows.Show
	booked               map[string]uuid.UUID
	bookings             map[uuid.UUID]*Booking
	usedCodes            map[string]bool
	forcedCodeCollisions int
}

func newFakeRepo(show *shows.Show) *fakeRepo {
	return &fakeRepo{
		show:      show,
		booked:    make(map[string]uuid.UUID),
		bookings:  make(map[uuid.UUID]*Booking),
		usedCodes: make(map[string]bool),
	}
}

func (r *fakeRepo) CreateBookingWithSeatCheck(ctx context.Context, booking *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.show == nil || booking.ShowID != r.show.ID {
		return fmt.Errorf("show %s: %w", booking.ShowID, apperrors.ErrNotFound)
	}

	for _, seat := range booking.Seats {
		if _, taken := r.booked[seat.SeatLabel]; taken {
			return fmt.Errorf("seat %s already booked: %w", seat.SeatLabel, apperrors.ErrSeatConflict)
		}
	}

	if r.forcedCodeCollisions > 0 {
		r.forcedCodeCollisions--
		return errCodeCollision
	}
	if r.usedCodes[booking.BookingCode] {
		return errCodeCollision
	}

	booking.ID = uuid.New()
	booking.CreatedAt = time.Now()
	for i := range booking.Seats {
		booking.Seats[i].BookingID = booking.ID
	}

	r.usedCodes[booking.BookingCode] = true
	for _, seat := range booking.Seats {
		r.booked[seat.SeatLabel] = booking.ID
	}
	r.bookings[booking.ID] = booking
	return nil
}

func (r *fakeRepo) GetBookedSeatLabels(ctx context.Context, showID uuid.UUID) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	labels := make([]string, 0, len(r.booked))
	for label := range r.booked {
		labels = append(labels, label)
	}
	return labels, nil
}

func (r *fakeRepo) GetShowForBooking(ctx context.Context, showID uuid.UUID) (*shows.Show, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.show == nil || showID != r.show.ID {
		return nil, fmt.Errorf("show %s: %w", showID, apperrors.ErrNotFound)
	}
	return r.show, nil
}

func (r *fakeRepo) GetBookingWithRelations(ctx context.Context, id uuid.UUID) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", id, apperrors.ErrNotFound)
	}
	clone := *booking
	clone.Show = r.show
	return &clone, nil
}

func (r *fakeRepo) GetAllBookings(ctx context.Context, query BookingListQuery) ([]Booking, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Booking, 0, len(r.bookings))
	for _, booking := range r.bookings {
		clone := *booking
		clone.Show = r.show
		out = append(out, clone)
	}
	return out, int64(len(out)), nil
}

// noopCache satisfies cache.Service without a Redis instance.
type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string, dest interface{}) error { return cache.ErrCacheMiss }
func (noopCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}
func (noopCache) Delete(ctx context.Context, key string) error { return nil }
func (noopCache) Ping(ctx context.Context) error               { return nil }

func testShow() *shows.Show {
	showID := uuid.New()
	return &shows.Show{
		ID:            showID,
		MovieID:       uuid.New(),
		TheaterID:     uuid.New(),
		ShowTime:      time.Now().Add(48 * time.Hour),
		BaseSeatPrice: decimal.NewFromInt(250),
		Screen: &theaters.Screen{
			ID:       uuid.New(),
			SeatRows: 10,
			SeatCols: 10,
		},
	}
}

func newTestService(show *shows.Show) (Service, *fakeRepo) {
	repo := newFakeRepo(show)
	return NewService(repo, noopCache{}, nil), repo
}

func TestCreateBookingSuccess(t *testing.T) {
	show := testShow()
	svc, repo := newTestService(show)

	resp, err := svc.CreateBooking(context.Background(), nil, CreateBookingRequest{
		ShowID:      show.ID,
		Seats:       []string{"A1", "A2"},
		TotalAmount: decimal.NewFromInt(530), // 2*250 + 2*15
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.BookingID)
	assert.Regexp(t, regexp.MustCompile(`^CNB[A-Z0-9]{8}$`), resp.BookingCode)

	booked, err := repo.GetBookedSeatLabels(context.Background(), show.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A1", "A2"}, booked)
}

func TestCreateBookingUnknownShow(t *testing.T) {
	svc, _ := newTestService(testShow())

	_, err := svc.CreateBooking(context.Background(), nil, CreateBookingRequest{
		ShowID:      uuid.New(),
		Seats:       []string{"A1"},
		TotalAmount: decimal.NewFromInt(265),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateBookingInvalidSeats(t *testing.T) {
	show := testShow()
	svc, _ := newTestService(show)

	tests := []struct {
		name  string
		seats []string
	}{
		{"off-grid row", []string{"Z9"}},
		{"off-grid column", []string{"A11"}},
		{"lowercase label", []string{"a1"}},
		{"duplicate within request", []string{"B1", "B2", "B1"}},
		{"empty label", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, _ := decimal.NewFromString("0")
			_, err := svc.CreateBooking(context.Background(), nil, CreateBookingRequest{
				ShowID:      show.ID,
				Seats:       tt.seats,
				TotalAmount: total,
			})
			assert.ErrorIs(t, err, apperrors.ErrInvalidSeats)
		})
	}
}

func TestCreateBookingAmountMismatch(t *testing.T) {
	show := testShow()
	svc, repo := newTestService(show)

	_, err := svc.CreateBooking(context.Background(), nil, CreateBookingRequest{
		ShowID:      show.ID,
		Seats:       []string{"A1", "A2"},
		TotalAmount: decimal.NewFromInt(500), // client lowballs the fee
	})
	assert.ErrorIs(t, err, apperrors.ErrAmountMismatch)

	// Nothing was persisted
	booked, err := repo.GetBookedSeatLabels(context.Background(), show.ID)
	require.NoError(t, err)
	assert.Empty(t, booked)
}

func TestCreateBookingSeatConflictIsAllOrNothing(t *testing.T) {
	show := testShow()
	svc, repo := newTestService(show)

	_, err := svc.CreateBooking(context.Background(), nil, CreateBookingRequest{
		ShowID:      show.ID,
		Seats:       []string{"A1", "A2"},
		TotalAmount: decimal.NewFromInt(530),
	})
	require.NoError(t, err)

	// A2 is taken; A3 alone must not be committed either
	_, err = svc.CreateBooking(context.Background(), nil, CreateBookingRequest{
		ShowID:      show.ID,
		Seats:       []string{"A2", "A3"},
		TotalAmount: decimal.NewFromInt(530),
	})
	assert.ErrorIs(t, err, apperrors.ErrSeatConflict)

	booked, err := repo.GetBookedSeatLabels(context.Background(), show.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A1", "A2"}, booked)
}

func TestConcurrentOverlappingBookingsAtMostOneSucceeds(t *testing.T) {
	show := testShow()
	svc, _ := newTestService(show)

	requests := []CreateBookingRequest{
		{ShowID: show.ID, Seats: []string{"E5", "E6"}, TotalAmount: decimal.NewFromInt(530)},
		{ShowID: show.ID, Seats: []string{"E5", "E7"}, TotalAmount: decimal.NewFromInt(530)},
	}

	var wg sync.WaitGroup
	errs := make([]error, len(requests))
	for i, req := range requests {
		wg.Add(1)
		go func(i int, req CreateBookingRequest) {
			defer wg.Done()
			_, errs[i] = svc.CreateBooking(context.Background(), nil, req)
		}(i, req)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		default:
			assert.ErrorIs(t, err, apperrors.ErrSeatConflict)
			conflicts++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
}

func TestCreateBookingRetriesOnCodeCollision(t *testing.T) {
	show := testShow()
	repo := newFakeRepo(show)
	repo.forcedCodeCollisions = 2
	svc := NewService(repo, noopCache{}, nil)

	resp, err := svc.CreateBooking(context.Background(), nil, CreateBookingRequest{
		ShowID:      show.ID,
		Seats:       []string{"C1"},
		TotalAmount: decimal.NewFromInt(265),
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^CNB[A-Z0-9]{8}$`), resp.BookingCode)
}

func TestCreateBookingGivesUpAfterExhaustedRetries(t *testing.T) {
	show := testShow()
	repo := newFakeRepo(show)
	repo.forcedCodeCollisions = codeRetryAttempts
	svc := NewService(repo, noopCache{}, nil)

	_, err := svc.CreateBooking(context.Background(), nil, CreateBookingRequest{
		ShowID:      show.ID,
		Seats:       []string{"C1"},
		TotalAmount: decimal.NewFromInt(265),
	})
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}

func TestBookingReaderRoundTrip(t *testing.T) {
	show := testShow()
	show.Movie = nil
	svc, _ := newTestService(show)

	created, err := svc.CreateBooking(context.Background(), nil, CreateBookingRequest{
		ShowID:      show.ID,
		Seats:       []string{"D4", "D5", "D6"},
		TotalAmount: decimal.NewFromInt(795), // 3*250 + 3*15
	})
	require.NoError(t, err)

	details, err := svc.GetBookingDetails(context.Background(), uuid.MustParse(created.BookingID))
	require.NoError(t, err)

	assert.Equal(t, created.BookingID, details.BookingID)
	assert.Equal(t, created.BookingCode, details.BookingCode)
	assert.Equal(t, []string{"D4", "D5", "D6"}, details.Seats)
	assert.True(t, details.TotalAmount.Equal(decimal.NewFromInt(795)))
	assert.True(t, details.CancellationAvailable)
	assert.Equal(t, show.ID.String(), details.Show.ShowID)
}

func TestGetBookingDetailsNotFound(t *testing.T) {
	svc, _ := newTestService(testShow())

	_, err := svc.GetBookingDetails(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBookedSeatsReflectUnionOfBookings(t *testing.T) {
	show := testShow()
	svc, repo := newTestService(show)

	for _, seats := range [][]string{{"A1"}, {"B1", "B2"}, {"J10"}} {
		total, err := svc.CreateBooking(context.Background(), nil, CreateBookingRequest{
			ShowID:      show.ID,
			Seats:       seats,
			TotalAmount: decimal.NewFromInt(int64(len(seats)) * 265),
		})
		require.NoError(t, err)
		require.NotNil(t, total)
	}

	booked, err := repo.GetBookedSeatLabels(context.Background(), show.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A1", "B1", "B2", "J10"}, booked)
}
