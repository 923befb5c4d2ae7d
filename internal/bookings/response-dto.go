package bookings

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBookingResponse is the minimal confirmation payload.
type CreateBookingResponse struct {
	BookingID   string `json:"booking_id"`
	BookingCode string `json:"booking_code"`
}

// BookingDetailsResponse is the fully denormalized confirmation view.
type BookingDetailsResponse struct {
	BookingID             string          `json:"booking_id"`
	BookingCode           string          `json:"booking_code"`
	Seats                 []string        `json:"seats"`
	TotalAmount           decimal.Decimal `json:"total_amount"`
	CancellationAvailable bool            `json:"cancellation_available"`
	CreatedAt             time.Time       `json:"created_at"`
	Show                  ShowSummary     `json:"show"`
}

// ShowSummary nests the show context inside a booking view.
type ShowSummary struct {
	ShowID   string         `json:"show_id"`
	ShowTime time.Time      `json:"show_time"`
	Movie    MovieSummary   `json:"movie"`
	Theater  TheaterSummary `json:"theater"`
	Screen   ScreenSummary  `json:"screen"`
}

type MovieSummary struct {
	MovieID   string `json:"movie_id"`
	Title     string `json:"title"`
	PosterURL string `json:"poster_url,omitempty"`
	Duration  string `json:"duration,omitempty"`
}

type TheaterSummary struct {
	TheaterID string `json:"theater_id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
}

type ScreenSummary struct {
	ScreenID     string `json:"screen_id"`
	ScreenNumber string `json:"screen_number"`
}

// BookingListItem is one row of the admin booking listing.
type BookingListItem struct {
	BookingID   string          `json:"booking_id"`
	BookingCode string          `json:"booking_code"`
	Seats       []string        `json:"seats"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	MovieTitle  string          `json:"movie_title"`
	TheaterName string          `json:"theater_name"`
	ShowTime    time.Time       `json:"show_time"`
}

// BookingListResponse wraps the admin listing with pagination info.
type BookingListResponse struct {
	Bookings   []BookingListItem `json:"bookings"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}
