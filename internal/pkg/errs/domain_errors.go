package errs

import (
	"errors"
	"fmt"
	"time"
)

// Kind tags a domain failure so the transport boundary can map it to a
// status code through an explicit table instead of type inspection.
type Kind string

const (
	KindNotFound          Kind = "NOT_FOUND"
	KindForbidden         Kind = "FORBIDDEN"
	KindAlreadyApproved   Kind = "ALREADY_APPROVED"
	KindUnknownState      Kind = "UNKNOWN_STATE"
	KindNoResolvedBooking Kind = "NO_RESOLVED_BOOKING"
	KindItemUnavailable   Kind = "ITEM_UNAVAILABLE"
	KindInvalidInterval   Kind = "INVALID_INTERVAL"
	KindConflict          Kind = "CONFLICT"
)

// DomainError carries enough identifying context (entity id, user id, or the
// offending value) for both structured logging and client responses.
type DomainError struct {
	Kind     Kind
	Entity   string
	EntityID int64
	UserID   int64
	Value    string
	msg      string
}

func (e *DomainError) Error() string {
	switch {
	case e.Value != "":
		return fmt.Sprintf("%s: %s (%q)", e.Kind, e.msg, e.Value)
	case e.UserID != 0:
		return fmt.Sprintf("%s: %s (%s id=%d, user id=%d)", e.Kind, e.msg, e.Entity, e.EntityID, e.UserID)
	case e.Entity != "":
		return fmt.Sprintf("%s: %s (%s id=%d)", e.Kind, e.msg, e.Entity, e.EntityID)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.msg)
	}
}

func NotFound(entity string, id int64) *DomainError {
	return &DomainError{Kind: KindNotFound, Entity: entity, EntityID: id, msg: entity + " not found"}
}

func Forbidden(entity string, entityID, userID int64) *DomainError {
	return &DomainError{Kind: KindForbidden, Entity: entity, EntityID: entityID, UserID: userID, msg: "access to " + entity + " denied"}
}

func AlreadyApproved(bookingID int64) *DomainError {
	return &DomainError{Kind: KindAlreadyApproved, Entity: "booking", EntityID: bookingID, msg: "booking already approved"}
}

func UnknownState(state string) *DomainError {
	return &DomainError{Kind: KindUnknownState, Value: state, msg: "unknown state"}
}

func NoResolvedBooking(itemID, userID int64) *DomainError {
	return &DomainError{Kind: KindNoResolvedBooking, Entity: "item", EntityID: itemID, UserID: userID, msg: "no resolved booking for item"}
}

func ItemUnavailable(itemID int64) *DomainError {
	return &DomainError{Kind: KindItemUnavailable, Entity: "item", EntityID: itemID, msg: "item is not available"}
}

func InvalidInterval(start, end time.Time) *DomainError {
	return &DomainError{
		Kind:  KindInvalidInterval,
		Value: fmt.Sprintf("[%s, %s)", start.Format(time.RFC3339), end.Format(time.RFC3339)),
		msg:   "invalid booking interval",
	}
}

func Conflict(entity string, id int64) *DomainError {
	return &DomainError{Kind: KindConflict, Entity: entity, EntityID: id, msg: entity + " was modified concurrently"}
}

func ConflictValue(entity, value string) *DomainError {
	return &DomainError{Kind: KindConflict, Entity: entity, Value: value, msg: entity + " already exists"}
}

// KindOf extracts the domain kind from anywhere in the error chain.
func KindOf(err error) (Kind, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return "", false
}

func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
