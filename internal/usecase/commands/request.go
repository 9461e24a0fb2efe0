package commands

import (
	"context"

	"lendshare/internal/domain/request"
	"lendshare/internal/infra"
	"lendshare/internal/pkg/clock"
	"lendshare/internal/pkg/errs"
	"lendshare/internal/usecase/queries"
)

type RequestCommands interface {
	Create(ctx context.Context, requestorID int64, description string) (*queries.RequestView, error)
}

type requestCommandsImpl struct {
	requests RequestWriteRepo
	users    UserWriteRepo
	clock    clock.Clock
}

func NewRequestCommands(requests RequestWriteRepo, users UserWriteRepo, clock clock.Clock) RequestCommands {
	return &requestCommandsImpl{
		requests: requests,
		users:    users,
		clock:    clock,
	}
}

func (c *requestCommandsImpl) Create(ctx context.Context, requestorID int64, description string) (*queries.RequestView, error) {
	if _, err := c.users.FindByID(ctx, requestorID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound("user", requestorID)
		}
		return nil, err
	}

	req, err := request.NewRequest(requestorID, description, c.clock.Now())
	if err != nil {
		return nil, err
	}

	id, err := c.requests.Create(ctx, req)
	if err != nil {
		return nil, errs.Wrap(err, "failed to persist request")
	}

	// A fresh request has no responding items yet.
	return &queries.RequestView{
		ID:          id,
		RequestorID: requestorID,
		Description: req.Description(),
		Created:     req.Created(),
		Items:       []*queries.RequestItemRef{},
	}, nil
}
