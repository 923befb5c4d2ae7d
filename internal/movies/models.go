package movies

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Movie is a catalog entry. Rows are immutable once loaded; nothing in
// the booking flow mutates them.
type Movie struct {
	ID          uuid.UUID  `json:"movie_id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title       string     `json:"title" gorm:"not null;size:255"`
	PosterURL   string     `json:"poster_url" gorm:"size:500"`
	Description string     `json:"description" gorm:"type:text"`
	Genre       string     `json:"genre" gorm:"size:255"` // comma-joined genre names
	Rating      float64    `json:"rating" gorm:"check:rating >= 0"`
	Votes       int        `json:"votes" gorm:"check:votes >= 0"`
	Duration    string     `json:"duration" gorm:"size:50"`
	ReleaseDate *time.Time `json:"release_date"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Movie) TableName() string {
	return "movies"
}

// CreateMovieRequest is the admin payload for adding a catalog entry.
type CreateMovieRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=255"`
	PosterURL   string     `json:"poster_url" binding:"omitempty,url"`
	Description string     `json:"description" binding:"max=5000"`
	Genre       string     `json:"genre" binding:"max=255"`
	Rating      float64    `json:"rating" binding:"omitempty,min=0,max=10"`
	Votes       int        `json:"votes" binding:"omitempty,min=0"`
	Duration    string     `json:"duration" binding:"omitempty,max=50"`
	ReleaseDate *time.Time `json:"release_date"`
}

// MovieListQuery carries the search filter for the movie listing.
type MovieListQuery struct {
	Search string `form:"search"`
}

// ShowTime is one scheduled show as it appears under a movie's theater
// grouping.
type ShowTime struct {
	ShowID        string          `json:"show_id"`
	ShowTime      time.Time       `json:"show_time"`
	BaseSeatPrice decimal.Decimal `json:"base_seat_price"`
	Screen        ScreenInfo      `json:"screen"`
}

// ScreenInfo is the screen summary nested in show listings.
type ScreenInfo struct {
	ScreenID     string `json:"screen_id"`
	ScreenNumber string `json:"screen_number"`
}

// TheaterShows groups a movie's shows under the theater playing them.
type TheaterShows struct {
	TheaterID string     `json:"theater_id"`
	Name      string     `json:"name"`
	Location  string     `json:"location"`
	Shows     []ShowTime `json:"shows"`
}

// MovieDetailResponse is the payload for the movie detail endpoint:
// the movie plus its shows grouped by theater.
type MovieDetailResponse struct {
	Movie    Movie          `json:"movie"`
	Theaters []TheaterShows `json:"theaters"`
}

// movieShowRow is the flat projection of the shows/theaters/screens
// join, ordered by theater name then show time.
type movieShowRow struct {
	ShowID        uuid.UUID
	ShowTime      time.Time
	BaseSeatPrice decimal.Decimal
	TheaterID     uuid.UUID
	TheaterName   string
	TheaterLoc    string
	ScreenID      uuid.UUID
	ScreenNumber  string
}
