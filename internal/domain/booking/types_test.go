//go:build unit

package booking_test

import (
	"testing"
	"time"

	"lendshare/internal/domain/booking"
	"lendshare/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBucket(t *testing.T) {
	for _, valid := range []string{"ALL", "CURRENT", "PAST", "FUTURE", "WAITING", "REJECTED"} {
		b, err := booking.ParseBucket(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, b.String())
	}

	for _, invalid := range []string{"", "all", "Current", "APPROVED", "UNKNOWN", " ALL"} {
		_, err := booking.ParseBucket(invalid)
		assert.ErrorIs(t, err, booking.ErrUnknownBucket, "input %q", invalid)
	}
}

func TestBucketMatches(t *testing.T) {
	now := builder.Anchor

	build := func(start, end time.Time, status booking.Status) *booking.Booking {
		return builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.Start = start
			bb.End = end
			bb.Status = status
		}).BuildReconstructed()
	}

	past := build(now.Add(-48*time.Hour), now.Add(-24*time.Hour), booking.StatusApproved)
	current := build(now.Add(-time.Hour), now.Add(time.Hour), booking.StatusApproved)
	future := build(now.Add(24*time.Hour), now.Add(48*time.Hour), booking.StatusWaiting)
	rejected := build(now.Add(24*time.Hour), now.Add(48*time.Hour), booking.StatusRejected)

	// Bound cases: CURRENT is inclusive at both ends.
	startingNow := build(now, now.Add(time.Hour), booking.StatusApproved)
	endingNow := build(now.Add(-time.Hour), now, booking.StatusApproved)

	cases := []struct {
		name    string
		bucket  booking.Bucket
		subject *booking.Booking
		want    bool
	}{
		{"ALL matches past", booking.BucketAll, past, true},
		{"ALL matches future", booking.BucketAll, future, true},
		{"CURRENT matches ongoing", booking.BucketCurrent, current, true},
		{"CURRENT includes start bound", booking.BucketCurrent, startingNow, true},
		{"CURRENT includes end bound", booking.BucketCurrent, endingNow, true},
		{"CURRENT excludes past", booking.BucketCurrent, past, false},
		{"CURRENT excludes future", booking.BucketCurrent, future, false},
		{"PAST matches ended", booking.BucketPast, past, true},
		{"PAST excludes ending now", booking.BucketPast, endingNow, false},
		{"PAST excludes ongoing", booking.BucketPast, current, false},
		{"FUTURE matches upcoming", booking.BucketFuture, future, true},
		{"FUTURE excludes starting now", booking.BucketFuture, startingNow, false},
		{"WAITING matches waiting regardless of time", booking.BucketWaiting, future, true},
		{"WAITING excludes approved", booking.BucketWaiting, current, false},
		{"REJECTED matches rejected", booking.BucketRejected, rejected, true},
		{"REJECTED excludes waiting", booking.BucketRejected, future, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.bucket.Matches(tc.subject, now))
		})
	}
}
