package queries

import (
	"context"

	"lendshare/internal/domain/booking"
	"lendshare/internal/infra"
	"lendshare/internal/pkg/clock"
	"lendshare/internal/pkg/errs"
)

const DefaultPageSize = 10

type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	FindByBooker(ctx context.Context, bookerID int64, filter BucketFilter) ([]*BookingView, error)
	FindByOwnerItems(ctx context.Context, ownerID int64, filter BucketFilter) ([]*BookingView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*UserView, error)
	Exists(ctx context.Context, id int64) (bool, error)
	FindAll(ctx context.Context) ([]*UserView, error)
}

type BookingQueries interface {
	// GetByID enforces view access: only the booker or the item's owner may
	// see a booking.
	GetByID(ctx context.Context, bookingID, callerID int64) (*BookingView, error)
	// GetByIDSystem bypasses access control for internal read-after-write.
	GetByIDSystem(ctx context.Context, bookingID int64) (*BookingView, error)
	ListForBooker(ctx context.Context, bookerID int64, state string, from, size int32) ([]*BookingView, error)
	ListForOwner(ctx context.Context, ownerID int64, state string, from, size int32) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	users    UserReadStore
	clock    clock.Clock
}

func NewBookingQueries(bookings BookingReadStore, users UserReadStore, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		bookings: bookings,
		users:    users,
		clock:    clock,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, bookingID, callerID int64) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if view.Booker.ID != callerID && view.OwnerID != callerID {
		return nil, errs.Forbidden("booking", bookingID, callerID)
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, bookingID int64) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound("booking", bookingID)
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForBooker(ctx context.Context, bookerID int64, state string, from, size int32) ([]*BookingView, error) {
	filter, err := q.buildFilter(ctx, bookerID, state, from, size)
	if err != nil {
		return nil, err
	}
	return q.bookings.FindByBooker(ctx, bookerID, filter)
}

func (q *bookingQueriesImpl) ListForOwner(ctx context.Context, ownerID int64, state string, from, size int32) ([]*BookingView, error) {
	filter, err := q.buildFilter(ctx, ownerID, state, from, size)
	if err != nil {
		return nil, err
	}
	return q.bookings.FindByOwnerItems(ctx, ownerID, filter)
}

func (q *bookingQueriesImpl) buildFilter(ctx context.Context, subjectID int64, state string, from, size int32) (BucketFilter, error) {
	exists, err := q.users.Exists(ctx, subjectID)
	if err != nil {
		return BucketFilter{}, err
	}
	if !exists {
		return BucketFilter{}, errs.NotFound("user", subjectID)
	}

	bucket, err := booking.ParseBucket(state)
	if err != nil {
		return BucketFilter{}, errs.UnknownState(state)
	}

	if from < 0 {
		from = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}

	// now is captured once and used for every classification in this call.
	return BucketFilter{
		Bucket: bucket,
		Now:    q.clock.Now(),
		Page:   Page{Offset: from, Limit: size},
	}, nil
}
