//go:build unit

package item_test

import (
	"testing"
	"time"

	"lendshare/internal/domain/item"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func TestNewItem(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		i, err := item.NewItem(1, "Drill", "18V cordless drill", true, nil)
		require.NoError(t, err)
		assert.True(t, i.IsOwnedBy(1))
		assert.False(t, i.IsOwnedBy(2))
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := item.NewItem(1, "  ", "desc", true, nil)
		assert.ErrorIs(t, err, item.ErrEmptyName)
	})

	t.Run("empty description", func(t *testing.T) {
		_, err := item.NewItem(1, "Drill", "", true, nil)
		assert.ErrorIs(t, err, item.ErrEmptyDescription)
	})
}

func TestItemApplyPatch(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	t.Run("availability toggle only", func(t *testing.T) {
		i := item.ReconstructItem(10, 1, "Drill", "desc", true, nil, createdAt)
		require.NoError(t, i.ApplyPatch(item.Patch{Available: boolPtr(false)}))
		assert.False(t, i.Available())
		assert.Equal(t, "Drill", i.Name())
	})

	t.Run("rename", func(t *testing.T) {
		i := item.ReconstructItem(10, 1, "Drill", "desc", true, nil, createdAt)
		require.NoError(t, i.ApplyPatch(item.Patch{Name: strPtr("Hammer drill")}))
		assert.Equal(t, "Hammer drill", i.Name())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		i := item.ReconstructItem(10, 1, "Drill", "desc", true, nil, createdAt)
		assert.ErrorIs(t, i.ApplyPatch(item.Patch{Name: strPtr(" ")}), item.ErrEmptyName)
		assert.Equal(t, "Drill", i.Name())
	})

	t.Run("blank description rejected", func(t *testing.T) {
		i := item.ReconstructItem(10, 1, "Drill", "desc", true, nil, createdAt)
		assert.ErrorIs(t, i.ApplyPatch(item.Patch{Description: strPtr("")}), item.ErrEmptyDescription)
	})
}
