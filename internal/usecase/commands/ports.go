package commands

import (
	"context"
	"time"

	"lendshare/internal/domain/booking"
	"lendshare/internal/domain/comment"
	"lendshare/internal/domain/item"
	"lendshare/internal/domain/request"
	"lendshare/internal/domain/user"
)

// Write-side repository ports. Implementations live in internal/infra and
// report failures as infra.RepositoryError kinds.

type BookingWriteRepo interface {
	Create(ctx context.Context, b *booking.Booking) (int64, error)
	FindByID(ctx context.Context, id int64) (*booking.Booking, error)
	// UpdateStatus is a compare-and-swap on the version column; a lost race
	// surfaces as infra.KindConflict.
	UpdateStatus(ctx context.Context, id int64, status booking.Status, version int64) error
	HasResolvedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error)
}

type ItemWriteRepo interface {
	Create(ctx context.Context, i *item.Item) (int64, error)
	FindByID(ctx context.Context, id int64) (*item.Item, error)
	Update(ctx context.Context, i *item.Item) error
}

type UserWriteRepo interface {
	Create(ctx context.Context, u *user.User) (int64, error)
	FindByID(ctx context.Context, id int64) (*user.User, error)
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id int64) error
}

type CommentWriteRepo interface {
	Create(ctx context.Context, c *comment.Comment) (int64, error)
}

type RequestWriteRepo interface {
	Create(ctx context.Context, r *request.Request) (int64, error)
}

// DirectoryCache lets write-side use cases drop stale directory entries. The
// disabled implementation is a no-op.
type DirectoryCache interface {
	InvalidateUser(ctx context.Context, userID int64) error
}
