package user

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrInvalidEmail = errors.New("invalid email address")
)

type User struct {
	id    int64
	name  string
	email string
}

func NewUser(name, email string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	return &User{name: name, email: email}, nil
}

func ReconstructUser(id int64, name, email string) *User {
	return &User{id: id, name: name, email: email}
}

func (u *User) ID() int64     { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Email() string { return u.email }

// Patch carries only the fields the caller supplied; nil fields keep the
// stored value. Replaces the reflection-based merge of the legacy system.
type Patch struct {
	Name  *string
	Email *string
}

func (u *User) ApplyPatch(p Patch) error {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return ErrEmptyName
		}
		u.name = name
	}
	if p.Email != nil {
		if !isValidEmail(*p.Email) {
			return ErrInvalidEmail
		}
		u.email = *p.Email
	}
	return nil
}

func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}
