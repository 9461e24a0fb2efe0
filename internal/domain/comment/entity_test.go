//go:build unit

package comment_test

import (
	"strings"
	"testing"
	"time"

	"lendshare/internal/domain/comment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		c, err := comment.NewComment(10, 2, "  works great  ", now)
		require.NoError(t, err)
		assert.Equal(t, "works great", c.Text())
		assert.Equal(t, now, c.Created())
	})

	t.Run("empty text", func(t *testing.T) {
		_, err := comment.NewComment(10, 2, "   ", now)
		assert.ErrorIs(t, err, comment.ErrEmptyText)
	})

	t.Run("maximum length", func(t *testing.T) {
		_, err := comment.NewComment(10, 2, strings.Repeat("a", comment.MaxTextLength), now)
		assert.NoError(t, err)
	})

	t.Run("over maximum length", func(t *testing.T) {
		_, err := comment.NewComment(10, 2, strings.Repeat("a", comment.MaxTextLength+1), now)
		assert.ErrorIs(t, err, comment.ErrTextTooLong)
	})

	t.Run("length counts runes, not bytes", func(t *testing.T) {
		c, err := comment.NewComment(10, 2, strings.Repeat("я", comment.MaxTextLength), now)
		require.NoError(t, err)
		assert.Equal(t, comment.MaxTextLength, len([]rune(c.Text())))

		_, err = comment.NewComment(10, 2, strings.Repeat("я", comment.MaxTextLength+1), now)
		assert.ErrorIs(t, err, comment.ErrTextTooLong)
	})
}
