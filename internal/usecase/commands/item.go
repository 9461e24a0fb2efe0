package commands

import (
	"context"

	"lendshare/internal/domain/comment"
	"lendshare/internal/domain/item"
	"lendshare/internal/infra"
	"lendshare/internal/pkg/clock"
	"lendshare/internal/pkg/errs"
	"lendshare/internal/usecase/queries"
)

type CreateItemInput struct {
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

type ItemCommands interface {
	Create(ctx context.Context, in CreateItemInput) (*queries.ItemView, error)
	Update(ctx context.Context, itemID, callerID int64, patch item.Patch) (*queries.ItemView, error)
	// CreateComment passes the eligibility gate: the author must hold an
	// APPROVED booking for the item that ended before now.
	CreateComment(ctx context.Context, itemID, authorID int64, text string) (*queries.CommentView, error)
}

type itemCommandsImpl struct {
	items       ItemWriteRepo
	users       UserWriteRepo
	bookings    BookingWriteRepo
	comments    CommentWriteRepo
	itemQueries queries.ItemQueries
	clock       clock.Clock
}

func NewItemCommands(
	items ItemWriteRepo,
	users UserWriteRepo,
	bookings BookingWriteRepo,
	comments CommentWriteRepo,
	itemQueries queries.ItemQueries,
	clock clock.Clock,
) ItemCommands {
	return &itemCommandsImpl{
		items:       items,
		users:       users,
		bookings:    bookings,
		comments:    comments,
		itemQueries: itemQueries,
		clock:       clock,
	}
}

func (c *itemCommandsImpl) Create(ctx context.Context, in CreateItemInput) (*queries.ItemView, error) {
	if _, err := c.users.FindByID(ctx, in.OwnerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound("user", in.OwnerID)
		}
		return nil, err
	}

	itm, err := item.NewItem(in.OwnerID, in.Name, in.Description, in.Available, in.RequestID)
	if err != nil {
		return nil, err
	}

	id, err := c.items.Create(ctx, itm)
	if err != nil {
		if in.RequestID != nil && infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.NotFound("request", *in.RequestID)
		}
		return nil, errs.Wrap(err, "failed to persist item")
	}

	return c.itemQueries.GetByIDSystem(ctx, id)
}

func (c *itemCommandsImpl) Update(ctx context.Context, itemID, callerID int64, patch item.Patch) (*queries.ItemView, error) {
	itm, err := c.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound("item", itemID)
		}
		return nil, err
	}
	if !itm.IsOwnedBy(callerID) {
		return nil, errs.Forbidden("item", itemID, callerID)
	}

	if err := itm.ApplyPatch(patch); err != nil {
		return nil, err
	}

	if err := c.items.Update(ctx, itm); err != nil {
		return nil, errs.Wrap(err, "failed to update item")
	}

	return c.itemQueries.GetByIDSystem(ctx, itemID)
}

func (c *itemCommandsImpl) CreateComment(ctx context.Context, itemID, authorID int64, text string) (*queries.CommentView, error) {
	author, err := c.users.FindByID(ctx, authorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound("user", authorID)
		}
		return nil, err
	}

	if _, err := c.items.FindByID(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound("item", itemID)
		}
		return nil, err
	}

	now := c.clock.Now()
	resolved, err := c.bookings.HasResolvedBooking(ctx, itemID, authorID, now)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check resolved booking")
	}
	if !resolved {
		return nil, errs.NoResolvedBooking(itemID, authorID)
	}

	cmt, err := comment.NewComment(itemID, authorID, text, now)
	if err != nil {
		return nil, err
	}

	id, err := c.comments.Create(ctx, cmt)
	if err != nil {
		return nil, errs.Wrap(err, "failed to persist comment")
	}

	return &queries.CommentView{
		ID:         id,
		Text:       cmt.Text(),
		AuthorName: author.Name(),
		Created:    cmt.Created(),
	}, nil
}
