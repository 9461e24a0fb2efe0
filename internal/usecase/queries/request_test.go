//go:build unit

package queries_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"lendshare/internal/infra"
	"lendshare/internal/pkg/errs"
	"lendshare/internal/usecase/queries"
	"lendshare/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRequestStore orders created desc / id desc and slices by absolute
// offset, mirroring the SQL read store.
type fakeRequestStore struct {
	requests []*builder.RequestBuilder
	items    map[int64][]*queries.RequestItemRef
}

func (f *fakeRequestStore) FindByID(_ context.Context, id int64) (*queries.RequestView, error) {
	for _, rb := range f.requests {
		if rb.ID == id {
			return rb.BuildView(), nil
		}
	}
	return nil, infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
}

func (f *fakeRequestStore) FindByRequestor(_ context.Context, requestorID int64) ([]*queries.RequestView, error) {
	return f.list(func(rb *builder.RequestBuilder) bool { return rb.RequestorID == requestorID }, queries.Page{Offset: 0, Limit: int32(len(f.requests))}), nil
}

func (f *fakeRequestStore) FindOthers(_ context.Context, excludeRequestorID int64, page queries.Page) ([]*queries.RequestView, error) {
	return f.list(func(rb *builder.RequestBuilder) bool { return rb.RequestorID != excludeRequestorID }, page), nil
}

func (f *fakeRequestStore) FindRespondingItems(_ context.Context, requestID int64) ([]*queries.RequestItemRef, error) {
	if items, ok := f.items[requestID]; ok {
		return items, nil
	}
	return []*queries.RequestItemRef{}, nil
}

func (f *fakeRequestStore) list(owned func(*builder.RequestBuilder) bool, page queries.Page) []*queries.RequestView {
	matched := make([]*builder.RequestBuilder, 0, len(f.requests))
	for _, rb := range f.requests {
		if owned(rb) {
			matched = append(matched, rb)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].Created.Equal(matched[j].Created) {
			return matched[i].Created.After(matched[j].Created)
		}
		return matched[i].ID > matched[j].ID
	})

	lo := int(page.Offset)
	if lo > len(matched) {
		lo = len(matched)
	}
	hi := lo + int(page.Limit)
	if hi > len(matched) {
		hi = len(matched)
	}

	views := make([]*queries.RequestView, 0, hi-lo)
	for _, rb := range matched[lo:hi] {
		views = append(views, rb.BuildView())
	}
	return views
}

func requestAt(id, requestorID int64, createdOffset time.Duration) *builder.RequestBuilder {
	return builder.NewRequestBuilder().With(func(rb *builder.RequestBuilder) {
		rb.ID = id
		rb.RequestorID = requestorID
		rb.Created = builder.Anchor.Add(createdOffset)
	})
}

func newRequestQueries(store *fakeRequestStore) queries.RequestQueries {
	users := &fakeUserStore{known: map[int64]bool{1: true, 2: true}}
	return queries.NewRequestQueries(store, users)
}

func TestRequestGetByID(t *testing.T) {
	ctx := context.Background()

	store := &fakeRequestStore{
		requests: []*builder.RequestBuilder{builder.NewRequestBuilder()},
		items: map[int64][]*queries.RequestItemRef{
			200: {{ID: 10, Name: "Cordless drill", Description: "18V", Available: true, RequestID: 200}},
		},
	}
	q := newRequestQueries(store)

	t.Run("found with responding items", func(t *testing.T) {
		view, err := q.GetByID(ctx, 200, 1)
		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		assert.EqualValues(t, 10, view.Items[0].ID)
		assert.EqualValues(t, 200, view.Items[0].RequestID)
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := q.GetByID(ctx, 999, 1)
		assert.True(t, errs.IsKind(err, errs.KindNotFound))
	})

	t.Run("unknown caller", func(t *testing.T) {
		_, err := q.GetByID(ctx, 200, 77)
		assert.True(t, errs.IsKind(err, errs.KindNotFound))
	})
}

func TestRequestListOwn(t *testing.T) {
	ctx := context.Background()
	h := time.Hour

	store := &fakeRequestStore{
		requests: []*builder.RequestBuilder{
			requestAt(1, 2, -3*h),
			requestAt(2, 2, -1*h),
			requestAt(3, 1, -2*h),
		},
		items: map[int64][]*queries.RequestItemRef{},
	}
	q := newRequestQueries(store)

	t.Run("own requests newest first", func(t *testing.T) {
		views, err := q.ListOwn(ctx, 2)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.EqualValues(t, 2, views[0].ID)
		assert.EqualValues(t, 1, views[1].ID)
	})

	t.Run("no requests yields empty list", func(t *testing.T) {
		store := &fakeRequestStore{items: map[int64][]*queries.RequestItemRef{}}
		views, err := newRequestQueries(store).ListOwn(ctx, 2)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := q.ListOwn(ctx, 77)
		assert.True(t, errs.IsKind(err, errs.KindNotFound))
	})
}

func TestRequestListOthers(t *testing.T) {
	ctx := context.Background()
	h := time.Hour

	store := &fakeRequestStore{
		requests: []*builder.RequestBuilder{
			requestAt(1, 1, -4*h),
			requestAt(2, 2, -3*h), // caller's own, excluded
			requestAt(3, 1, -2*h),
			requestAt(4, 1, -1*h),
		},
		items: map[int64][]*queries.RequestItemRef{},
	}
	q := newRequestQueries(store)

	ids := func(views []*queries.RequestView) []int64 {
		out := make([]int64, 0, len(views))
		for _, v := range views {
			out = append(out, v.ID)
		}
		return out
	}

	t.Run("excludes own, newest first", func(t *testing.T) {
		views, err := q.ListOthers(ctx, 2, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, []int64{4, 3, 1}, ids(views))
	})

	t.Run("absolute offset window", func(t *testing.T) {
		views, err := q.ListOthers(ctx, 2, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, []int64{3}, ids(views))
	})

	t.Run("negative from clamps to zero", func(t *testing.T) {
		views, err := q.ListOthers(ctx, 2, -5, 2)
		require.NoError(t, err)
		assert.Equal(t, []int64{4, 3}, ids(views))
	})

	t.Run("non-positive size falls back to default", func(t *testing.T) {
		views, err := q.ListOthers(ctx, 2, 0, 0)
		require.NoError(t, err)
		assert.Len(t, views, 3)
	})

	t.Run("unknown caller", func(t *testing.T) {
		_, err := q.ListOthers(ctx, 77, 0, 10)
		assert.True(t, errs.IsKind(err, errs.KindNotFound))
	})
}
