package theaters

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Theater is a physical venue owning one or more screens.
type Theater struct {
	ID       uuid.UUID `json:"theater_id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name     string    `json:"name" gorm:"not null;size:255"`
	Location string    `json:"location" gorm:"not null;size:255"`
	Contact  string    `json:"contact" gorm:"size:100"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Screens []Screen `json:"screens,omitempty" gorm:"foreignKey:TheaterID;constraint:OnDelete:CASCADE;"`
}

// Screen is an auditorium inside a theater. Grid dimensions are
// declared per screen; the seat total is derived from them rather than
// stored separately, so the two can never disagree.
type Screen struct {
	ID            uuid.UUID       `json:"screen_id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TheaterID     uuid.UUID       `json:"theater_id" gorm:"type:uuid;index;not null"`
	ScreenNumber  string          `json:"screen_number" gorm:"not null;size:50"`
	SeatRows      int             `json:"seat_rows" gorm:"not null;check:seat_rows > 0"`
	SeatCols      int             `json:"seat_cols" gorm:"not null;check:seat_cols > 0"`
	BaseSeatPrice decimal.Decimal `json:"base_seat_price" gorm:"type:numeric(10,2);not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Theater *Theater `json:"theater,omitempty" gorm:"foreignKey:TheaterID;constraint:OnDelete:CASCADE;"`
}

// TableName sets the table name for Theater
func (Theater) TableName() string {
	return "theaters"
}

// TableName sets the table name for Screen
func (Screen) TableName() string {
	return "screens"
}

// TotalSeats derives the screen's seat count from its grid dimensions.
func (s *Screen) TotalSeats() int {
	return s.SeatRows * s.SeatCols
}

// CreateTheaterRequest is the admin payload for registering a theater.
type CreateTheaterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=255"`
	Location string `json:"location" binding:"required,min=2,max=255"`
	Contact  string `json:"contact" binding:"omitempty,max=100"`
}

// CreateScreenRequest is the admin payload for adding a screen to a theater.
type CreateScreenRequest struct {
	ScreenNumber  string          `json:"screen_number" binding:"required,min=1,max=50"`
	SeatRows      int             `json:"seat_rows" binding:"required,min=1,max=26"`
	SeatCols      int             `json:"seat_cols" binding:"required,min=1,max=50"`
	BaseSeatPrice decimal.Decimal `json:"base_seat_price" binding:"required"`
}

// TheaterSummary is a theater row with its screen count, as served by
// the theater listing.
type TheaterSummary struct {
	TheaterID   string `json:"theater_id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Contact     string `json:"contact"`
	ScreenCount int64  `json:"screen_count"`
}

// ScreenResponse is a screen with its derived seat total.
type ScreenResponse struct {
	ScreenID      string          `json:"screen_id"`
	TheaterID     string          `json:"theater_id"`
	ScreenNumber  string          `json:"screen_number"`
	SeatRows      int             `json:"seat_rows"`
	SeatCols      int             `json:"seat_cols"`
	TotalSeats    int             `json:"total_seats"`
	BaseSeatPrice decimal.Decimal `json:"base_seat_price"`
}

// ToResponse converts a Screen to its API shape.
func (s *Screen) ToResponse() ScreenResponse {
	return ScreenResponse{
		ScreenID:      s.ID.String(),
		TheaterID:     s.TheaterID.String(),
		ScreenNumber:  s.ScreenNumber,
		SeatRows:      s.SeatRows,
		SeatCols:      s.SeatCols,
		TotalSeats:    s.TotalSeats(),
		BaseSeatPrice: s.BaseSeatPrice,
	}
}
