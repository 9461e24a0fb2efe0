//go:build unit

package request_test

import (
	"testing"
	"time"

	"lendshare/internal/domain/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		r, err := request.NewRequest(2, "  need a cordless drill  ", now)
		require.NoError(t, err)
		assert.Equal(t, "need a cordless drill", r.Description())
		assert.Equal(t, int64(2), r.RequestorID())
		assert.Equal(t, now, r.Created())
	})

	t.Run("empty description", func(t *testing.T) {
		_, err := request.NewRequest(2, "   ", now)
		assert.ErrorIs(t, err, request.ErrEmptyDescription)
	})
}
