package repository

import "github.com/bunx-io/salonx-api/internal/domain/entity"

// UserFilter filtros da listagem de usuários.
type UserFilter struct {
	Role   string // vazio ou "all" = todos
	Active *bool
	Search string // nome ou email (LIKE)
}

// UserRepository porta de persistência de usuários.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(filter UserFilter) ([]*entity.User, error)
	Delete(id string) error
}
