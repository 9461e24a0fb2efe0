package comment

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxTextLength is counted in runes to match the char_length check in the
// schema.
const MaxTextLength = 1000

var (
	ErrEmptyText   = errors.New("comment text cannot be empty")
	ErrTextTooLong = errors.New("comment text exceeds maximum length")
)

// Comment is immutable once created; there is no update path.
type Comment struct {
	id       int64
	itemID   int64
	authorID int64
	text     string
	created  time.Time
}

func NewComment(itemID, authorID int64, text string, now time.Time) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return nil, ErrTextTooLong
	}

	return &Comment{
		itemID:   itemID,
		authorID: authorID,
		text:     text,
		created:  now,
	}, nil
}

func ReconstructComment(id, itemID, authorID int64, text string, created time.Time) *Comment {
	return &Comment{
		id:       id,
		itemID:   itemID,
		authorID: authorID,
		text:     text,
		created:  created,
	}
}

func (c *Comment) ID() int64          { return c.id }
func (c *Comment) ItemID() int64      { return c.itemID }
func (c *Comment) AuthorID() int64    { return c.authorID }
func (c *Comment) Text() string       { return c.text }
func (c *Comment) Created() time.Time { return c.created }
