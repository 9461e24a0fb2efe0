//go:build unit || e2e

package builder

import (
	"lendshare/internal/domain/user"
	reqdto "lendshare/internal/handler/dto/request"
	"lendshare/internal/usecase/queries"
)

type UserBuilder struct {
	ID    int64
	Name  string
	Email string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:    1,
		Name:  "Alice",
		Email: "alice@example.com",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	return user.NewUser(u.Name, u.Email)
}

func (u *UserBuilder) BuildReconstructed() *user.User {
	return user.ReconstructUser(u.ID, u.Name, u.Email)
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

func (u *UserBuilder) BuildCreateRequestDTO() reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{
		Name:  u.Name,
		Email: u.Email,
	}
}
