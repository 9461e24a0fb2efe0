package commands

import (
	"context"
	"errors"
	"time"

	"lendshare/internal/domain/booking"
	"lendshare/internal/infra"
	"lendshare/internal/pkg/clock"
	"lendshare/internal/pkg/errs"
	"lendshare/internal/usecase/queries"
)

type CreateBookingInput struct {
	ItemID   int64
	BookerID int64
	Start    time.Time
	End      time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, in CreateBookingInput) (*queries.BookingView, error)
	// Decide approves or rejects a waiting (or previously rejected) booking.
	// Only the item's owner may decide; APPROVED is terminal.
	Decide(ctx context.Context, bookingID int64, approve bool, callerID int64) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookings       BookingWriteRepo
	items          ItemWriteRepo
	users          UserWriteRepo
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingCommands(
	bookings BookingWriteRepo,
	items ItemWriteRepo,
	users UserWriteRepo,
	bookingQueries queries.BookingQueries,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings:       bookings,
		items:          items,
		users:          users,
		bookingQueries: bookingQueries,
		clock:          clock,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, in CreateBookingInput) (*queries.BookingView, error) {
	itm, err := c.items.FindByID(ctx, in.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound("item", in.ItemID)
		}
		return nil, err
	}

	if _, err := c.users.FindByID(ctx, in.BookerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound("user", in.BookerID)
		}
		return nil, err
	}

	if !itm.Available() {
		return nil, errs.ItemUnavailable(in.ItemID)
	}

	window, err := booking.NewWindow(in.Start, in.End, c.clock.Now())
	if err != nil {
		return nil, errs.InvalidInterval(in.Start, in.End)
	}

	b, err := booking.NewBooking(itm.ID(), itm.OwnerID(), in.BookerID, window)
	if err != nil {
		if errors.Is(err, booking.ErrBookerIsOwner) {
			return nil, errs.Forbidden("item", in.ItemID, in.BookerID)
		}
		return nil, err
	}

	id, err := c.bookings.Create(ctx, b)
	if err != nil {
		return nil, errs.Wrap(err, "failed to persist booking")
	}

	// Read-after-write: return the eager (id, name) projection view.
	return c.bookingQueries.GetByIDSystem(ctx, id)
}

func (c *bookingCommandsImpl) Decide(ctx context.Context, bookingID int64, approve bool, callerID int64) (*queries.BookingView, error) {
	b, err := c.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound("booking", bookingID)
		}
		return nil, err
	}

	itm, err := c.items.FindByID(ctx, b.ItemID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound("item", b.ItemID())
		}
		return nil, err
	}
	if !itm.IsOwnedBy(callerID) {
		return nil, errs.Forbidden("booking", bookingID, callerID)
	}

	if err := b.Decide(approve); err != nil {
		if errors.Is(err, booking.ErrAlreadyApproved) {
			return nil, errs.AlreadyApproved(bookingID)
		}
		return nil, err
	}

	if err := c.bookings.UpdateStatus(ctx, b.ID(), b.Status(), b.Version()); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, c.classifyLostRace(ctx, bookingID)
		}
		return nil, errs.Wrap(err, "failed to update booking status")
	}

	return c.bookingQueries.GetByIDSystem(ctx, bookingID)
}

// classifyLostRace re-reads after a failed CAS so a race against an approving
// writer still reports AlreadyApproved rather than a bare conflict.
func (c *bookingCommandsImpl) classifyLostRace(ctx context.Context, bookingID int64) error {
	current, err := c.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return errs.Conflict("booking", bookingID)
	}
	if current.Status() == booking.StatusApproved {
		return errs.AlreadyApproved(bookingID)
	}
	return errs.Conflict("booking", bookingID)
}
