package bookings

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateBookingRequest is the client payload for creating a booking.
// TotalAmount is the price the client displayed to the user; the
// server recomputes it and rejects disagreement instead of storing the
// client value.
type CreateBookingRequest struct {
	ShowID      uuid.UUID       `json:"show_id" binding:"required"`
	Seats       []string        `json:"seats" binding:"required,min=1,dive,required"`
	TotalAmount decimal.Decimal `json:"total_amount" binding:"required"`
}

// BookingListQuery carries admin list filters and pagination.
type BookingListQuery struct {
	ShowID string `form:"show_id"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}
