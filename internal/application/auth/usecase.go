package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/domain"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// UseCase login do back office. Confere a senha contra o hash bcrypt e emite
// um JWT de sessão. Nenhuma rota valida o token: ele existe para o front
// guardar a sessão, não como barreira de acesso.
type UseCase struct {
	users      repository.UserRepository
	secret     []byte
	issuer     string
	expiration time.Duration
}

// NewUseCase constrói o caso de uso.
func NewUseCase(users repository.UserRepository, secret, issuer string, expirationMinutes int) *UseCase {
	return &UseCase{
		users:      users,
		secret:     []byte(secret),
		issuer:     issuer,
		expiration: time.Duration(expirationMinutes) * time.Minute,
	}
}

// Login autentica por email/senha. Credencial errada, usuário inexistente e
// usuário inativo respondem o mesmo ErrUnauthorized.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"iss":   uc.issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(uc.expiration).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.secret)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Success: true,
		User:    dto.ToUserResponse(user),
		Token:   token,
	}, nil
}
