//go:build unit || e2e

package builder

import (
	"time"

	"lendshare/internal/domain/booking"
	reqdto "lendshare/internal/handler/dto/request"
	"lendshare/internal/usecase/queries"
)

type BookingBuilder struct {
	ID         int64
	ItemID     int64
	ItemName   string
	OwnerID    int64
	BookerID   int64
	BookerName string
	Start      time.Time
	End        time.Time
	Status     booking.Status
	Version    int64
	CreatedAt  time.Time
}

// NewBookingBuilder defaults to a future WAITING booking relative to Anchor.
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:         100,
		ItemID:     10,
		ItemName:   "Cordless drill",
		OwnerID:    1,
		BookerID:   2,
		BookerName: "Bob",
		Start:      Anchor.Add(24 * time.Hour),
		End:        Anchor.Add(48 * time.Hour),
		Status:     booking.StatusWaiting,
		CreatedAt:  Anchor,
	}
}

// Anchor is the fixed "now" unit tests feed to mock clocks.
var Anchor = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain(now time.Time) (*booking.Booking, error) {
	window, err := booking.NewWindow(b.Start, b.End, now)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.ItemID, b.OwnerID, b.BookerID, window)
}

func (b *BookingBuilder) BuildReconstructed() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID, b.ItemID, b.BookerID,
		booking.ReconstructWindow(b.Start, b.End),
		b.Status, b.Version, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:        b.ID,
		Start:     b.Start,
		End:       b.End,
		Status:    b.Status.String(),
		Item:      queries.ItemRef{ID: b.ItemID, Name: b.ItemName},
		Booker:    queries.UserRef{ID: b.BookerID, Name: b.BookerName},
		OwnerID:   b.OwnerID,
		CreatedAt: b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
	}
}
