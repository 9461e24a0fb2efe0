package booking

import (
	"errors"
	"time"
)

var (
	ErrAlreadyApproved = errors.New("booking is already approved")
	ErrBookerIsOwner   = errors.New("owner cannot book own item")
)

// Booking is created in WAITING and transitions exactly once per decision:
// approve makes APPROVED terminal; reject leaves REJECTED open for a later
// re-decision. The version field backs compare-and-swap persistence.
type Booking struct {
	id        int64
	itemID    int64
	bookerID  int64
	window    Window
	status    Status
	version   int64
	createdAt time.Time
}

func NewBooking(itemID, ownerID, bookerID int64, window Window) (*Booking, error) {
	if bookerID == ownerID {
		return nil, ErrBookerIsOwner
	}

	return &Booking{
		itemID:   itemID,
		bookerID: bookerID,
		window:   window,
		status:   StatusWaiting,
	}, nil
}

func ReconstructBooking(id, itemID, bookerID int64, window Window, status Status, version int64, createdAt time.Time) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		window:    window,
		status:    status,
		version:   version,
		createdAt: createdAt,
	}
}

// Decide applies the owner's verdict. APPROVED is terminal; a REJECTED
// booking may still be re-decided (kept from the original business policy).
func (b *Booking) Decide(approve bool) error {
	if b.status == StatusApproved {
		return ErrAlreadyApproved
	}
	if approve {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

func (b *Booking) IsCurrent(now time.Time) bool {
	return b.window.Contains(now)
}

func (b *Booking) IsPast(now time.Time) bool {
	return b.window.EndedBefore(now)
}

func (b *Booking) IsFuture(now time.Time) bool {
	return b.window.StartsAfter(now)
}

// ResolvedFor reports whether this booking entitles the booker to comment on
// the item: approved, by that user, and finished before now.
func (b *Booking) ResolvedFor(userID int64, now time.Time) bool {
	return b.status == StatusApproved && b.bookerID == userID && b.window.EndedBefore(now)
}

func (b *Booking) ID() int64            { return b.id }
func (b *Booking) ItemID() int64        { return b.itemID }
func (b *Booking) BookerID() int64      { return b.bookerID }
func (b *Booking) Window() Window       { return b.window }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) Version() int64       { return b.version }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
