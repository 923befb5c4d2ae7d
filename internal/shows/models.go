package shows

import (
	"time"

	"cinebook/internal/movies"
	"cinebook/internal/seatmap"
	"cinebook/internal/theaters"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Show is one screening of a movie on a screen. TheaterID is
// denormalized from the screen at creation so booking and listing
// queries skip a join. BaseSeatPrice is copied from the screen at the
// same moment; later screen price edits do not reprice existing shows.
type Show struct {
	ID            uuid.UUID       `json:"show_id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	MovieID       uuid.UUID       `json:"movie_id" gorm:"type:uuid;not null;index"`
	ScreenID      uuid.UUID       `json:"screen_id" gorm:"type:uuid;not null;index"`
	TheaterID     uuid.UUID       `json:"theater_id" gorm:"type:uuid;not null;index"`
	ShowTime      time.Time       `json:"show_time" gorm:"not null;index"`
	BaseSeatPrice decimal.Decimal `json:"base_seat_price" gorm:"type:numeric(10,2);not null"`

	Movie   *movies.Movie     `json:"movie,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
	Theater *theaters.Theater `json:"theater,omitempty" gorm:"foreignKey:TheaterID;constraint:OnDelete:CASCADE"`
	Screen  *theaters.Screen  `json:"screen,omitempty" gorm:"foreignKey:ScreenID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Show) TableName() string {
	return "shows"
}

// CreateShowRequest is the admin payload for scheduling a show.
type CreateShowRequest struct {
	MovieID  uuid.UUID `json:"movie_id" binding:"required"`
	ScreenID uuid.UUID `json:"screen_id" binding:"required"`
	ShowTime time.Time `json:"show_time" binding:"required"`
}

// ShowDetailResponse is the payload for the show detail endpoint: the
// show with its relations, the screen's full seat layout, and the
// labels already taken. A seat is available iff it appears in the
// layout and not in booked_seats.
type ShowDetailResponse struct {
	Show        Show            `json:"show"`
	SeatLayout  [][]seatmap.Seat `json:"seat_layout"`
	BookedSeats []string        `json:"booked_seats"`
}
