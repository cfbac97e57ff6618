package dto

import (
	"time"

	"github.com/bunx-io/salonx-api/internal/domain/entity"
)

// CreateUserRequest body para POST /api/users. A senha chega em claro e é
// armazenada como hash bcrypt.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
	Active   *bool  `json:"active,omitempty"`
}

// UpdateUserRequest body para PUT /api/users/:id. Password vazio mantém a atual.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
	Active   *bool  `json:"active,omitempty"`
}

// UserResponse usuário nas respostas; o hash da senha nunca sai.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse resposta do login com o token de sessão.
type LoginResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// ToUserResponse converte a entidade, sem o hash da senha.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Phone:     u.Phone,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

// ToUserResponses converte a lista.
func ToUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}
