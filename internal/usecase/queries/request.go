package queries

import (
	"context"

	"lendshare/internal/infra"
	"lendshare/internal/pkg/errs"
)

type RequestReadStore interface {
	FindByID(ctx context.Context, id int64) (*RequestView, error)
	// FindByRequestor returns the requestor's own requests, newest first.
	FindByRequestor(ctx context.Context, requestorID int64) ([]*RequestView, error)
	// FindOthers returns everyone else's requests, newest first, paged.
	FindOthers(ctx context.Context, excludeRequestorID int64, page Page) ([]*RequestView, error)
	FindRespondingItems(ctx context.Context, requestID int64) ([]*RequestItemRef, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, requestID, callerID int64) (*RequestView, error)
	ListOwn(ctx context.Context, requestorID int64) ([]*RequestView, error)
	// ListOthers pages over requests from everyone but the caller, so owners
	// can browse what they could supply.
	ListOthers(ctx context.Context, callerID int64, from, size int32) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	requests RequestReadStore
	users    UserReadStore
}

func NewRequestQueries(requests RequestReadStore, users UserReadStore) RequestQueries {
	return &requestQueriesImpl{
		requests: requests,
		users:    users,
	}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, requestID, callerID int64) (*RequestView, error) {
	if err := q.assertUserExists(ctx, callerID); err != nil {
		return nil, err
	}

	view, err := q.requests.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound("request", requestID)
		}
		return nil, err
	}

	if err := q.attachItems(ctx, view); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *requestQueriesImpl) ListOwn(ctx context.Context, requestorID int64) ([]*RequestView, error) {
	if err := q.assertUserExists(ctx, requestorID); err != nil {
		return nil, err
	}

	views, err := q.requests.FindByRequestor(ctx, requestorID)
	if err != nil {
		return nil, err
	}

	for _, view := range views {
		if err := q.attachItems(ctx, view); err != nil {
			return nil, err
		}
	}
	return views, nil
}

func (q *requestQueriesImpl) ListOthers(ctx context.Context, callerID int64, from, size int32) ([]*RequestView, error) {
	if err := q.assertUserExists(ctx, callerID); err != nil {
		return nil, err
	}

	if from < 0 {
		from = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}

	views, err := q.requests.FindOthers(ctx, callerID, Page{Offset: from, Limit: size})
	if err != nil {
		return nil, err
	}

	for _, view := range views {
		if err := q.attachItems(ctx, view); err != nil {
			return nil, err
		}
	}
	return views, nil
}

func (q *requestQueriesImpl) assertUserExists(ctx context.Context, userID int64) error {
	exists, err := q.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NotFound("user", userID)
	}
	return nil
}

func (q *requestQueriesImpl) attachItems(ctx context.Context, view *RequestView) error {
	items, err := q.requests.FindRespondingItems(ctx, view.ID)
	if err != nil {
		return err
	}
	view.Items = items
	return nil
}
