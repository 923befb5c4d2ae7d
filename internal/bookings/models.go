package bookings

import (
	"time"

	"cinebook/internal/shows"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Booking is one committed reservation of seats for a show. Rows are
// immutable after creation; cancellation is modeled as a flag only.
// UserID is nullable so guests can book without an account.
type Booking struct {
	ID                    uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"booking_id"`
	ShowID                uuid.UUID       `gorm:"type:uuid;index;not null" json:"show_id"`
	UserID                *uuid.UUID      `gorm:"type:uuid;index" json:"user_id,omitempty"`
	BookingCode           string          `gorm:"uniqueIndex:idx_bookings_booking_code;not null;size:20" json:"booking_code"`
	TotalAmount           decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	CancellationAvailable bool            `gorm:"not null;default:true" json:"cancellation_available"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`

	// Relationships
	Seats []BookingSeat `json:"seats,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;"`
	Show  *shows.Show   `json:"show,omitempty" gorm:"foreignKey:ShowID;constraint:OnDelete:CASCADE;"`
}

// BookingSeat is one claimed seat label. ShowID is denormalized from
// the parent booking so the composite unique index can enforce
// at-most-one booking per (show, seat) pair at the database level.
type BookingSeat struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;index;not null" json:"booking_id"`
	ShowID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_booking_seats_show_seat" json:"show_id"`
	SeatLabel string    `gorm:"not null;size:10;uniqueIndex:idx_booking_seats_show_seat" json:"seat_label"`
	Position  int       `gorm:"not null" json:"position"` // order within the request
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// TableName sets the table name for BookingSeat
func (BookingSeat) TableName() string {
	return "booking_seats"
}

// SeatLabels returns the booking's seat labels in request order.
func (b *Booking) SeatLabels() []string {
	labels := make([]string, len(b.Seats))
	for i, seat := range b.Seats {
		labels[i] = seat.SeatLabel
	}
	return labels
}
