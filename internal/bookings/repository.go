package bookings

import (
	"context"
	"errors"
	"fmt"
	"math"

	"cinebook/internal/shared/apperrors"
	"cinebook/internal/shows"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// errCodeCollision signals that the generated booking code already
// exists. The service retries with a new code; callers never see it.
var errCodeCollision = errors.New("booking code collision")

const (
	seatConstraintName = "idx_booking_seats_show_seat"
	codeConstraintName = "idx_bookings_booking_code"
)

type Repository interface {
	// Concurrency-safe booking creation
	CreateBookingWithSeatCheck(ctx context.Context, booking *Booking) error

	// Availability
	GetBookedSeatLabels(ctx context.Context, showID uuid.UUID) ([]string, error)

	// Reads
	GetShowForBooking(ctx context.Context, showID uuid.UUID) (*shows.Show, error)
	GetBookingWithRelations(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetAllBookings(ctx context.Context, query BookingListQuery) ([]Booking, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateBookingWithSeatCheck inserts a booking and its seats atomically.
// The show row is locked FOR UPDATE so concurrent requests for the same
// show serialize, then the requested labels are checked against the
// committed seats inside the same transaction. The composite unique
// index on (show_id, seat_label) backstops the check: if a conflicting
// insert slips through anyway, the constraint violation is translated
// to the same conflict error.
func (r *repository) CreateBookingWithSeatCheck(ctx context.Context, booking *Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the show row to serialize bookings per show
		var show struct {
			ID uuid.UUID `gorm:"column:id"`
		}
		err := tx.Table("shows").
			Select("id").
			Where("id = ?", booking.ShowID).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&show).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("show %s: %w", booking.ShowID, apperrors.ErrNotFound)
			}
			return fmt.Errorf("failed to lock show: %w", err)
		}

		// 2. Check requested seats against committed ones
		labels := make([]string, len(booking.Seats))
		for i, seat := range booking.Seats {
			labels[i] = seat.SeatLabel
		}

		var taken []string
		err = tx.Model(&BookingSeat{}).
			Where("show_id = ? AND seat_label IN ?", booking.ShowID, labels).
			Pluck("seat_label", &taken).Error
		if err != nil {
			return fmt.Errorf("failed to check booked seats: %w", err)
		}
		if len(taken) > 0 {
			return fmt.Errorf("seats %v already booked: %w", taken, apperrors.ErrSeatConflict)
		}

		// 3. Insert booking and seats together
		if err := tx.Create(booking).Error; err != nil {
			return translateUniqueViolation(err)
		}

		return nil
	})
	return err
}

// translateUniqueViolation maps Postgres unique-violation errors to the
// package's sentinels based on which constraint fired.
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case seatConstraintName:
			return fmt.Errorf("seat already booked: %w", apperrors.ErrSeatConflict)
		case codeConstraintName:
			return errCodeCollision
		}
	}
	return fmt.Errorf("failed to create booking: %w", err)
}

// GetBookedSeatLabels returns the distinct labels committed for a show.
// This also satisfies the availability interface the shows service
// depends on.
func (r *repository) GetBookedSeatLabels(ctx context.Context, showID uuid.UUID) ([]string, error) {
	var labels []string
	err := r.db.WithContext(ctx).
		Model(&BookingSeat{}).
		Distinct("seat_label").
		Where("show_id = ?", showID).
		Pluck("seat_label", &labels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load booked seats: %w", err)
	}
	return labels, nil
}

// GetShowForBooking loads the show with its screen so the service can
// validate seat labels against the grid and recompute the price.
func (r *repository) GetShowForBooking(ctx context.Context, showID uuid.UUID) (*shows.Show, error) {
	var show shows.Show
	err := r.db.WithContext(ctx).
		Preload("Screen").
		Where("id = ?", showID).
		First(&show).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("show %s: %w", showID, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &show, nil
}

func (r *repository) GetBookingWithRelations(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("Seats", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Show.Movie").
		Preload("Show.Theater").
		Preload("Show.Screen").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetAllBookings(ctx context.Context, query BookingListQuery) ([]Booking, int64, error) {
	var bookings []Booking
	var totalCount int64

	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	baseQuery := r.db.WithContext(ctx).Model(&Booking{})

	if query.ShowID != "" {
		if showID, err := uuid.Parse(query.ShowID); err == nil {
			baseQuery = baseQuery.Where("show_id = ?", showID)
		}
	}

	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	err := baseQuery.
		Preload("Seats", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Show.Movie").
		Preload("Show.Theater").
		Order("created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&bookings).Error

	return bookings, totalCount, err
}

// CalculateTotalPages computes the page count for a paginated listing.
func CalculateTotalPages(totalCount int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalCount) / float64(limit)))
}
