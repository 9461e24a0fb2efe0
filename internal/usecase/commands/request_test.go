//go:build unit

package commands_test

import (
	"context"
	"testing"

	"lendshare/internal/domain/request"
	"lendshare/internal/domain/user"
	"lendshare/internal/infra"
	"lendshare/internal/pkg/clock"
	"lendshare/internal/pkg/errs"
	"lendshare/internal/usecase/commands"
	"lendshare/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRequestRepo struct {
	create func(ctx context.Context, r *request.Request) (int64, error)
}

func (s *stubRequestRepo) Create(ctx context.Context, r *request.Request) (int64, error) {
	return s.create(ctx, r)
}

func TestRequestCreate(t *testing.T) {
	ctx := context.Background()
	rb := builder.NewRequestBuilder()

	knownUsers := &stubUserRepo{
		findByID: func(_ context.Context, id int64) (*user.User, error) {
			return builder.NewUserBuilder().With(func(ub *builder.UserBuilder) { ub.ID = id }).BuildReconstructed(), nil
		},
	}

	t.Run("success", func(t *testing.T) {
		var saved *request.Request
		repo := &stubRequestRepo{
			create: func(_ context.Context, r *request.Request) (int64, error) {
				saved = r
				return rb.ID, nil
			},
		}

		cmd := commands.NewRequestCommands(repo, knownUsers, clock.NewMockClock(builder.Anchor))
		view, err := cmd.Create(ctx, rb.RequestorID, "  "+rb.Description+"  ")
		require.NoError(t, err)

		assert.Equal(t, rb.ID, view.ID)
		assert.Equal(t, rb.Description, view.Description)
		assert.Equal(t, builder.Anchor, view.Created)
		assert.Empty(t, view.Items)

		require.NotNil(t, saved)
		assert.Equal(t, rb.RequestorID, saved.RequestorID())
		assert.Equal(t, builder.Anchor, saved.Created())
	})

	t.Run("unknown requestor", func(t *testing.T) {
		users := &stubUserRepo{
			findByID: func(_ context.Context, _ int64) (*user.User, error) {
				return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
			},
		}
		cmd := commands.NewRequestCommands(&stubRequestRepo{}, users, clock.NewMockClock(builder.Anchor))
		_, err := cmd.Create(ctx, 999, rb.Description)
		assert.True(t, errs.IsKind(err, errs.KindNotFound))
	})

	t.Run("empty description", func(t *testing.T) {
		cmd := commands.NewRequestCommands(&stubRequestRepo{}, knownUsers, clock.NewMockClock(builder.Anchor))
		_, err := cmd.Create(ctx, rb.RequestorID, "   ")
		assert.ErrorIs(t, err, request.ErrEmptyDescription)
	})
}
