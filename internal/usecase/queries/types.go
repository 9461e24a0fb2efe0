package queries

import (
	"time"

	"lendshare/internal/domain/booking"
)

// Read models (DTO for read side). Related records are eager (id, name)
// projections resolved by the read store, never lazy-loaded.

type UserRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ItemRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingView struct {
	ID        int64     `json:"id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    string    `json:"status"`
	Item      ItemRef   `json:"item"`
	Booker    UserRef   `json:"booker"`
	OwnerID   int64     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// BookingRef is the compact last/next booking projection shown to item owners.
type BookingRef struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

type CommentView struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type ItemView struct {
	ID          int64          `json:"id"`
	OwnerID     int64          `json:"-"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Available   bool           `json:"available"`
	RequestID   *int64         `json:"requestId,omitempty"`
	LastBooking *BookingRef    `json:"lastBooking,omitempty"`
	NextBooking *BookingRef    `json:"nextBooking,omitempty"`
	Comments    []*CommentView `json:"comments"`
}

// RequestItemRef is the item projection shown on a request: the items owners
// created in answer to it.
type RequestItemRef struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   int64  `json:"requestId"`
}

type RequestView struct {
	ID          int64             `json:"id"`
	RequestorID int64             `json:"-"`
	Description string            `json:"description"`
	Created     time.Time         `json:"created"`
	Items       []*RequestItemRef `json:"items"`
}

type UserView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Page is absolute offset slicing: the result is [Offset, Offset+Limit) of
// the full ordered bucket.
type Page struct {
	Offset int32
	Limit  int32
}

// BucketFilter carries the bucket, the single evaluation time for the whole
// call, and the page window.
type BucketFilter struct {
	Bucket booking.Bucket
	Now    time.Time
	Page   Page
}
