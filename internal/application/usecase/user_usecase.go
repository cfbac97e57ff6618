package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/domain"
	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// UserUseCase CRUD de usuários do back office. Senhas entram em claro e são
// guardadas como hash bcrypt; o hash nunca sai nas respostas.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase constrói o caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create cria um usuário. Email é único.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}

	user := &entity.User{
		ID:        entity.NewID("usr"),
		Name:      in.Name,
		Email:     in.Email,
		Password:  string(hash),
		Role:      in.Role,
		Phone:     in.Phone,
		Active:    active,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// GetByID busca um usuário por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// Update atualiza um usuário. Password vazio mantém o hash atual.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Email != "" && in.Email != user.Email {
		other, err := uc.repo.GetByEmail(in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = in.Email
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Role != "" {
		user.Role = in.Role
	}
	user.Phone = in.Phone
	if in.Active != nil {
		user.Active = *in.Active
	}

	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// List lista usuários com filtros de papel, ativo e busca.
func (uc *UserUseCase) List(filter repository.UserFilter) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	return dto.ToUserResponses(users), nil
}

// Delete remove um usuário.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
