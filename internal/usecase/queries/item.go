package queries

import (
	"context"
	"strings"
	"time"

	"lendshare/internal/infra"
	"lendshare/internal/pkg/clock"
	"lendshare/internal/pkg/errs"
)

type ItemReadStore interface {
	FindByID(ctx context.Context, id int64) (*ItemView, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]*ItemView, error)
	Search(ctx context.Context, text string) ([]*ItemView, error)
	FindComments(ctx context.Context, itemID int64) ([]*CommentView, error)
	// FindLastBooking returns the latest APPROVED booking started before now,
	// or nil when none exists.
	FindLastBooking(ctx context.Context, itemID int64, now time.Time) (*BookingRef, error)
	// FindNextBooking returns the earliest APPROVED booking starting after
	// now, or nil when none exists.
	FindNextBooking(ctx context.Context, itemID int64, now time.Time) (*BookingRef, error)
}

type ItemQueries interface {
	// GetByID returns the item with its comments; booking projections are
	// attached only for the owner.
	GetByID(ctx context.Context, itemID, callerID int64) (*ItemView, error)
	GetByIDSystem(ctx context.Context, itemID int64) (*ItemView, error)
	ListForOwner(ctx context.Context, ownerID int64) ([]*ItemView, error)
	Search(ctx context.Context, text string) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	items ItemReadStore
	users UserReadStore
	clock clock.Clock
}

func NewItemQueries(items ItemReadStore, users UserReadStore, clock clock.Clock) ItemQueries {
	return &itemQueriesImpl{
		items: items,
		users: users,
		clock: clock,
	}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, itemID, callerID int64) (*ItemView, error) {
	view, err := q.GetByIDSystem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if view.OwnerID == callerID {
		if err := q.attachBookings(ctx, view); err != nil {
			return nil, err
		}
	}
	return view, nil
}

func (q *itemQueriesImpl) GetByIDSystem(ctx context.Context, itemID int64) (*ItemView, error) {
	view, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound("item", itemID)
		}
		return nil, err
	}

	comments, err := q.items.FindComments(ctx, itemID)
	if err != nil {
		return nil, err
	}
	view.Comments = comments
	return view, nil
}

func (q *itemQueriesImpl) ListForOwner(ctx context.Context, ownerID int64) ([]*ItemView, error) {
	exists, err := q.users.Exists(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NotFound("user", ownerID)
	}

	views, err := q.items.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	for _, view := range views {
		comments, err := q.items.FindComments(ctx, view.ID)
		if err != nil {
			return nil, err
		}
		view.Comments = comments
		if err := q.attachBookings(ctx, view); err != nil {
			return nil, err
		}
	}
	return views, nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string) ([]*ItemView, error) {
	if strings.TrimSpace(text) == "" {
		return []*ItemView{}, nil
	}
	return q.items.Search(ctx, text)
}

func (q *itemQueriesImpl) attachBookings(ctx context.Context, view *ItemView) error {
	now := q.clock.Now()

	last, err := q.items.FindLastBooking(ctx, view.ID, now)
	if err != nil {
		return err
	}
	next, err := q.items.FindNextBooking(ctx, view.ID, now)
	if err != nil {
		return err
	}

	view.LastBooking = last
	view.NextBooking = next
	return nil
}
