package commands

import (
	"context"
	"log/slog"

	"lendshare/internal/domain/user"
	"lendshare/internal/infra"
	"lendshare/internal/pkg/errs"
	"lendshare/internal/usecase/queries"
)

type UserCommands interface {
	Create(ctx context.Context, name, email string) (*queries.UserView, error)
	Update(ctx context.Context, userID int64, patch user.Patch) (*queries.UserView, error)
	Delete(ctx context.Context, userID int64) error
}

type userCommandsImpl struct {
	users UserWriteRepo
	cache DirectoryCache
}

func NewUserCommands(users UserWriteRepo, cache DirectoryCache) UserCommands {
	return &userCommandsImpl{
		users: users,
		cache: cache,
	}
}

func (c *userCommandsImpl) Create(ctx context.Context, name, email string) (*queries.UserView, error) {
	u, err := user.NewUser(name, email)
	if err != nil {
		return nil, err
	}

	id, err := c.users.Create(ctx, u)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ConflictValue("user", email)
		}
		return nil, errs.Wrap(err, "failed to persist user")
	}

	return &queries.UserView{ID: id, Name: u.Name(), Email: u.Email()}, nil
}

func (c *userCommandsImpl) Update(ctx context.Context, userID int64, patch user.Patch) (*queries.UserView, error) {
	u, err := c.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound("user", userID)
		}
		return nil, err
	}

	if err := u.ApplyPatch(patch); err != nil {
		return nil, err
	}

	if err := c.users.Update(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ConflictValue("user", u.Email())
		}
		return nil, errs.Wrap(err, "failed to update user")
	}

	c.invalidate(ctx, userID)
	return &queries.UserView{ID: u.ID(), Name: u.Name(), Email: u.Email()}, nil
}

func (c *userCommandsImpl) Delete(ctx context.Context, userID int64) error {
	if err := c.users.Delete(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.NotFound("user", userID)
		}
		return errs.Wrap(err, "failed to delete user")
	}

	c.invalidate(ctx, userID)
	return nil
}

// Cache invalidation is best-effort; a stale entry expires by TTL anyway.
func (c *userCommandsImpl) invalidate(ctx context.Context, userID int64) {
	if err := c.cache.InvalidateUser(ctx, userID); err != nil {
		slog.Warn("failed to invalidate user cache", "user_id", userID, "error", err)
	}
}
