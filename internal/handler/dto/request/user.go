package request

import "lendshare/internal/domain/user"

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}

func (r UpdateUserRequest) ToPatch() user.Patch {
	return user.Patch{
		Name:  r.Name,
		Email: r.Email,
	}
}
