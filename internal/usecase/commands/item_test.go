//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"lendshare/internal/domain/comment"
	"lendshare/internal/domain/item"
	"lendshare/internal/domain/user"
	"lendshare/internal/infra"
	"lendshare/internal/pkg/clock"
	"lendshare/internal/pkg/errs"
	"lendshare/internal/usecase/commands"
	"lendshare/internal/usecase/queries"
	"lendshare/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubItemWriteRepo struct {
	create   func(ctx context.Context, i *item.Item) (int64, error)
	findByID func(ctx context.Context, id int64) (*item.Item, error)
	update   func(ctx context.Context, i *item.Item) error
}

func (s *stubItemWriteRepo) Create(ctx context.Context, i *item.Item) (int64, error) {
	return s.create(ctx, i)
}

func (s *stubItemWriteRepo) FindByID(ctx context.Context, id int64) (*item.Item, error) {
	return s.findByID(ctx, id)
}

func (s *stubItemWriteRepo) Update(ctx context.Context, i *item.Item) error {
	return s.update(ctx, i)
}

type stubCommentRepo struct {
	create func(ctx context.Context, c *comment.Comment) (int64, error)
}

func (s *stubCommentRepo) Create(ctx context.Context, c *comment.Comment) (int64, error) {
	return s.create(ctx, c)
}

type stubItemQueries struct {
	getByIDSystem func(ctx context.Context, id int64) (*queries.ItemView, error)
}

func (s *stubItemQueries) GetByID(context.Context, int64, int64) (*queries.ItemView, error) {
	panic("not expected")
}

func (s *stubItemQueries) GetByIDSystem(ctx context.Context, id int64) (*queries.ItemView, error) {
	return s.getByIDSystem(ctx, id)
}

func (s *stubItemQueries) ListForOwner(context.Context, int64) ([]*queries.ItemView, error) {
	panic("not expected")
}

func (s *stubItemQueries) Search(context.Context, string) ([]*queries.ItemView, error) {
	panic("not expected")
}

type itemFixture struct {
	items    *stubItemWriteRepo
	users    *stubUserRepo
	bookings *stubBookingRepo
	comments *stubCommentRepo
	views    *stubItemQueries
	clock    *clock.MockClock
}

func newItemFixture() *itemFixture {
	ib := builder.NewItemBuilder()

	f := &itemFixture{
		items:    &stubItemWriteRepo{},
		users:    &stubUserRepo{},
		bookings: &stubBookingRepo{},
		comments: &stubCommentRepo{},
		views:    &stubItemQueries{},
		clock:    clock.NewMockClock(builder.Anchor),
	}

	f.items.findByID = func(_ context.Context, id int64) (*item.Item, error) {
		if id != ib.ID {
			return nil, infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
		}
		return ib.BuildReconstructed(), nil
	}
	f.items.create = func(_ context.Context, _ *item.Item) (int64, error) {
		return ib.ID, nil
	}
	f.items.update = func(_ context.Context, _ *item.Item) error {
		return nil
	}
	f.users.findByID = func(_ context.Context, id int64) (*user.User, error) {
		return builder.NewUserBuilder().With(func(ub *builder.UserBuilder) { ub.ID = id }).BuildReconstructed(), nil
	}
	f.bookings.hasResolved = func(_ context.Context, _, _ int64, _ time.Time) (bool, error) {
		return true, nil
	}
	f.comments.create = func(_ context.Context, _ *comment.Comment) (int64, error) {
		return 500, nil
	}
	f.views.getByIDSystem = func(_ context.Context, id int64) (*queries.ItemView, error) {
		v := ib.BuildView()
		v.ID = id
		return v, nil
	}
	return f
}

func (f *itemFixture) commands() commands.ItemCommands {
	return commands.NewItemCommands(f.items, f.users, f.bookings, f.comments, f.views, f.clock)
}

func TestItemCreate(t *testing.T) {
	ctx := context.Background()
	ib := builder.NewItemBuilder()

	t.Run("success", func(t *testing.T) {
		f := newItemFixture()
		view, err := f.commands().Create(ctx, commands.CreateItemInput{
			OwnerID:     ib.OwnerID,
			Name:        ib.Name,
			Description: ib.Description,
			Available:   true,
		})
		require.NoError(t, err)
		assert.Equal(t, ib.ID, view.ID)
	})

	t.Run("unknown owner", func(t *testing.T) {
		f := newItemFixture()
		f.users.findByID = func(_ context.Context, id int64) (*user.User, error) {
			return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
		}
		_, err := f.commands().Create(ctx, commands.CreateItemInput{
			OwnerID: 999, Name: ib.Name, Description: ib.Description, Available: true,
		})
		assert.True(t, errs.IsKind(err, errs.KindNotFound))
	})

	t.Run("invalid item fields", func(t *testing.T) {
		f := newItemFixture()
		_, err := f.commands().Create(ctx, commands.CreateItemInput{
			OwnerID: ib.OwnerID, Name: " ", Description: ib.Description, Available: true,
		})
		assert.ErrorIs(t, err, item.ErrEmptyName)
	})

	t.Run("unknown request id", func(t *testing.T) {
		f := newItemFixture()
		f.items.create = func(_ context.Context, _ *item.Item) (int64, error) {
			return 0, infra.WrapRepoErr("missing request", nil, infra.KindForeignKeyViolated)
		}
		missing := int64(9999)
		_, err := f.commands().Create(ctx, commands.CreateItemInput{
			OwnerID: ib.OwnerID, Name: ib.Name, Description: ib.Description, Available: true,
			RequestID: &missing,
		})
		assert.True(t, errs.IsKind(err, errs.KindNotFound))
	})
}

func TestItemUpdate(t *testing.T) {
	ctx := context.Background()
	ib := builder.NewItemBuilder()
	strPtr := func(s string) *string { return &s }

	t.Run("owner updates", func(t *testing.T) {
		f := newItemFixture()
		var saved *item.Item
		f.items.update = func(_ context.Context, i *item.Item) error {
			saved = i
			return nil
		}
		_, err := f.commands().Update(ctx, ib.ID, ib.OwnerID, item.Patch{Name: strPtr("Hammer")})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "Hammer", saved.Name())
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newItemFixture()
		_, err := f.commands().Update(ctx, 999, ib.OwnerID, item.Patch{})
		assert.True(t, errs.IsKind(err, errs.KindNotFound))
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		f := newItemFixture()
		_, err := f.commands().Update(ctx, ib.ID, 42, item.Patch{Name: strPtr("Hammer")})
		assert.True(t, errs.IsKind(err, errs.KindForbidden))
	})
}

func TestCreateComment(t *testing.T) {
	ctx := context.Background()
	ib := builder.NewItemBuilder()
	authorID := int64(2)

	t.Run("author with resolved booking", func(t *testing.T) {
		f := newItemFixture()
		view, err := f.commands().CreateComment(ctx, ib.ID, authorID, "held up well")
		require.NoError(t, err)
		assert.EqualValues(t, 500, view.ID)
		assert.Equal(t, "held up well", view.Text)
		assert.Equal(t, "Alice", view.AuthorName)
		assert.Equal(t, builder.Anchor, view.Created)
	})

	t.Run("unknown author", func(t *testing.T) {
		f := newItemFixture()
		f.users.findByID = func(_ context.Context, id int64) (*user.User, error) {
			return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
		}
		_, err := f.commands().CreateComment(ctx, ib.ID, 999, "text")
		assert.True(t, errs.IsKind(err, errs.KindNotFound))
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newItemFixture()
		_, err := f.commands().CreateComment(ctx, 999, authorID, "text")
		assert.True(t, errs.IsKind(err, errs.KindNotFound))
	})

	t.Run("no resolved booking", func(t *testing.T) {
		f := newItemFixture()
		f.bookings.hasResolved = func(_ context.Context, _, _ int64, _ time.Time) (bool, error) {
			return false, nil
		}
		_, err := f.commands().CreateComment(ctx, ib.ID, authorID, "text")
		assert.True(t, errs.IsKind(err, errs.KindNoResolvedBooking))
	})

	t.Run("empty text", func(t *testing.T) {
		f := newItemFixture()
		_, err := f.commands().CreateComment(ctx, ib.ID, authorID, "   ")
		assert.ErrorIs(t, err, comment.ErrEmptyText)
	})
}
