package booking

import (
	"errors"
	"time"
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// Bucket is a named time/status partition used to filter listing queries.
// Membership is a derived projection evaluated against a single "now", never
// a stored state.
type Bucket string

const (
	BucketAll      Bucket = "ALL"
	BucketCurrent  Bucket = "CURRENT"
	BucketPast     Bucket = "PAST"
	BucketFuture   Bucket = "FUTURE"
	BucketWaiting  Bucket = "WAITING"
	BucketRejected Bucket = "REJECTED"
)

var ErrUnknownBucket = errors.New("unknown bucket")

// ParseBucket requires an exact, case-sensitive match.
func ParseBucket(s string) (Bucket, error) {
	switch Bucket(s) {
	case BucketAll, BucketCurrent, BucketPast, BucketFuture, BucketWaiting, BucketRejected:
		return Bucket(s), nil
	default:
		return "", ErrUnknownBucket
	}
}

func (b Bucket) String() string {
	return string(b)
}

func (b Bucket) Matches(bk *Booking, now time.Time) bool {
	switch b {
	case BucketAll:
		return true
	case BucketCurrent:
		return bk.IsCurrent(now)
	case BucketPast:
		return bk.IsPast(now)
	case BucketFuture:
		return bk.IsFuture(now)
	case BucketWaiting:
		return bk.Status() == StatusWaiting
	case BucketRejected:
		return bk.Status() == StatusRejected
	default:
		return false
	}
}
