package item

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName        = errors.New("item name cannot be empty")
	ErrEmptyDescription = errors.New("item description cannot be empty")
)

type Item struct {
	id          int64
	ownerID     int64
	name        string
	description string
	available   bool
	requestID   *int64
	createdAt   time.Time
}

func NewItem(ownerID int64, name, description string, available bool, requestID *int64) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}

	return &Item{
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
	}, nil
}

func ReconstructItem(id, ownerID int64, name, description string, available bool, requestID *int64, createdAt time.Time) *Item {
	return &Item{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
		createdAt:   createdAt,
	}
}

func (i *Item) ID() int64            { return i.id }
func (i *Item) OwnerID() int64       { return i.ownerID }
func (i *Item) Name() string         { return i.name }
func (i *Item) Description() string  { return i.description }
func (i *Item) Available() bool      { return i.available }
func (i *Item) RequestID() *int64    { return i.requestID }
func (i *Item) CreatedAt() time.Time { return i.createdAt }

func (i *Item) IsOwnedBy(userID int64) bool {
	return i.ownerID == userID
}

// Patch carries only the fields the caller supplied; nil fields keep the
// stored value.
type Patch struct {
	Name        *string
	Description *string
	Available   *bool
}

func (i *Item) ApplyPatch(p Patch) error {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return ErrEmptyName
		}
		i.name = name
	}
	if p.Description != nil {
		if strings.TrimSpace(*p.Description) == "" {
			return ErrEmptyDescription
		}
		i.description = *p.Description
	}
	if p.Available != nil {
		i.available = *p.Available
	}
	return nil
}
