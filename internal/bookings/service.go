package bookings

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"cinebook/internal/notifications"
	"cinebook/internal/pricing"
	"cinebook/internal/seatmap"
	"cinebook/internal/shared/apperrors"
	"cinebook/internal/shared/constants"
	"cinebook/pkg/cache"
	"cinebook/pkg/logger"

	"github.com/google/uuid"
)

const (
	bookingCodePrefix = "CNB"
	bookingCodeLength = 8
	codeRetryAttempts = 3
)

type Service interface {
	CreateBooking(ctx context.Context, userID *uuid.UUID, req CreateBookingRequest) (*CreateBookingResponse, error)
	GetBookingDetails(ctx context.Context, bookingID uuid.UUID) (*BookingDetailsResponse, error)
	GetAllBookings(ctx context.Context, query BookingListQuery) (*BookingListResponse, error)
}

type service struct {
	repo      Repository
	cache     cache.Service
	publisher notifications.Producer
	log       *logger.Logger
}

// NewService wires the booking flow. publisher may be nil when Kafka
// is disabled; publishing is best-effort either way.
func NewService(repo Repository, cacheService cache.Service, publisher notifications.Producer) Service {
	return &service{
		repo:      repo,
		cache:     cacheService,
		publisher: publisher,
		log:       logger.GetDefault(),
	}
}

func (s *service) CreateBooking(ctx context.Context, userID *uuid.UUID, req CreateBookingRequest) (*CreateBookingResponse, error) {
	show, err := s.repo.GetShowForBooking(ctx, req.ShowID)
	if err != nil {
		return nil, err
	}
	if show.Screen == nil {
		return nil, fmt.Errorf("show %s has no screen: %w", req.ShowID, apperrors.ErrNotFound)
	}

	// Seat labels must be well-formed members of the screen's grid and
	// unique within the request.
	grid, err := seatmap.New(show.Screen.SeatRows, show.Screen.SeatCols)
	if err != nil {
		return nil, fmt.Errorf("invalid screen layout for show %s: %w", req.ShowID, err)
	}

	seen := make(map[string]struct{}, len(req.Seats))
	for _, label := range req.Seats {
		if !grid.Contains(label) {
			return nil, fmt.Errorf("seat %q is not on this screen: %w", label, apperrors.ErrInvalidSeats)
		}
		if _, dup := seen[label]; dup {
			return nil, fmt.Errorf("seat %q requested twice: %w", label, apperrors.ErrInvalidSeats)
		}
		seen[label] = struct{}{}
	}

	// The server's recomputed price is authoritative; a disagreeing
	// client total is rejected, never stored.
	total, err := pricing.Total(len(req.Seats), show.BaseSeatPrice)
	if err != nil {
		return nil, err
	}
	if !total.Equal(req.TotalAmount) {
		return nil, fmt.Errorf("expected total %s, got %s: %w",
			total.String(), req.TotalAmount.String(), apperrors.ErrAmountMismatch)
	}

	var booking *Booking
	for attempt := 0; attempt < codeRetryAttempts; attempt++ {
		code, err := generateBookingCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate booking code: %w", err)
		}

		candidate := &Booking{
			ShowID:                req.ShowID,
			UserID:                userID,
			BookingCode:           code,
			TotalAmount:           total,
			CancellationAvailable: true,
			Seats:                 make([]BookingSeat, len(req.Seats)),
		}
		for i, label := range req.Seats {
			candidate.Seats[i] = BookingSeat{
				ShowID:    req.ShowID,
				SeatLabel: label,
				Position:  i,
			}
		}

		err = s.repo.CreateBookingWithSeatCheck(ctx, candidate)
		if err == nil {
			booking = candidate
			break
		}
		if errors.Is(err, errCodeCollision) {
			continue
		}
		if errors.Is(err, apperrors.ErrSeatConflict) {
			s.log.LogSeatConflict(ctx, req.ShowID.String(), req.Seats)
		}
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking code generation exhausted retries: %w", apperrors.ErrStoreUnavailable)
	}

	// Cached show detail now lists stale availability
	showKey := constants.ShowDetailKey(req.ShowID.String())
	if err := s.cache.Delete(ctx, showKey); err != nil {
		s.log.WithError(err).Warn("show detail cache invalidation failed", "show_id", req.ShowID)
	}

	s.publishConfirmed(ctx, booking)
	s.log.LogBookingCreated(ctx, booking.ID.String(), booking.BookingCode, req.ShowID.String(), len(req.Seats))

	return &CreateBookingResponse{
		BookingID:   booking.ID.String(),
		BookingCode: booking.BookingCode,
	}, nil
}

func (s *service) GetBookingDetails(ctx context.Context, bookingID uuid.UUID) (*BookingDetailsResponse, error) {
	booking, err := s.repo.GetBookingWithRelations(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	resp := &BookingDetailsResponse{
		BookingID:             booking.ID.String(),
		BookingCode:           booking.BookingCode,
		Seats:                 booking.SeatLabels(),
		TotalAmount:           booking.TotalAmount,
		CancellationAvailable: booking.CancellationAvailable,
		CreatedAt:             booking.CreatedAt,
	}

	if booking.Show != nil {
		resp.Show = ShowSummary{
			ShowID:   booking.Show.ID.String(),
			ShowTime: booking.Show.ShowTime,
		}
		if booking.Show.Movie != nil {
			resp.Show.Movie = MovieSummary{
				MovieID:   booking.Show.Movie.ID.String(),
				Title:     booking.Show.Movie.Title,
				PosterURL: booking.Show.Movie.PosterURL,
				Duration:  booking.Show.Movie.Duration,
			}
		}
		if booking.Show.Theater != nil {
			resp.Show.Theater = TheaterSummary{
				TheaterID: booking.Show.Theater.ID.String(),
				Name:      booking.Show.Theater.Name,
				Location:  booking.Show.Theater.Location,
			}
		}
		if booking.Show.Screen != nil {
			resp.Show.Screen = ScreenSummary{
				ScreenID:     booking.Show.Screen.ID.String(),
				ScreenNumber: booking.Show.Screen.ScreenNumber,
			}
		}
	}

	return resp, nil
}

func (s *service) GetAllBookings(ctx context.Context, query BookingListQuery) (*BookingListResponse, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	bookings, totalCount, err := s.repo.GetAllBookings(ctx, query)
	if err != nil {
		return nil, err
	}

	items := make([]BookingListItem, len(bookings))
	for i, booking := range bookings {
		item := BookingListItem{
			BookingID:   booking.ID.String(),
			BookingCode: booking.BookingCode,
			Seats:       booking.SeatLabels(),
			TotalAmount: booking.TotalAmount,
			CreatedAt:   booking.CreatedAt,
		}
		if booking.Show != nil {
			item.ShowTime = booking.Show.ShowTime
			if booking.Show.Movie != nil {
				item.MovieTitle = booking.Show.Movie.Title
			}
			if booking.Show.Theater != nil {
				item.TheaterName = booking.Show.Theater.Name
			}
		}
		items[i] = item
	}

	return &BookingListResponse{
		Bookings:   items,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: CalculateTotalPages(totalCount, query.Limit),
	}, nil
}

// publishConfirmed emits the booking event when a producer is wired.
// A publish failure never fails the booking.
func (s *service) publishConfirmed(ctx context.Context, booking *Booking) {
	if s.publisher == nil {
		return
	}

	event := notifications.BookingConfirmedEvent{
		BookingID:   booking.ID.String(),
		BookingCode: booking.BookingCode,
		ShowID:      booking.ShowID.String(),
		Seats:       booking.SeatLabels(),
		TotalAmount: booking.TotalAmount,
		CreatedAt:   booking.CreatedAt,
	}
	if booking.UserID != nil {
		event.UserID = booking.UserID.String()
	}

	if err := s.publisher.PublishBookingConfirmed(ctx, event); err != nil {
		s.log.WithError(err).Warn("booking event publish failed", "booking_id", event.BookingID)
	}
}

// generateBookingCode builds a human-readable code: fixed prefix plus
// random uppercase alphanumerics. Uniqueness is enforced by the
// database constraint; the caller retries on collision.
func generateBookingCode() (string, error) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	var sb strings.Builder
	sb.WriteString(bookingCodePrefix)
	for i := 0; i < bookingCodeLength; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		sb.WriteByte(charset[num.Int64()])
	}
	return sb.String(), nil
}
