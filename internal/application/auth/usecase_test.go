package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bunx-io/salonx-api/internal/application/auth"
	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/domain"
	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// fakeUserRepo usuários em memória, indexados por email.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		repo.users[u.Email] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(user *entity.User) error { r.users[user.Email] = user; return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) Update(user *entity.User) error { return nil }

func (r *fakeUserRepo) List(filter repository.UserFilter) ([]*entity.User, error) { return nil, nil }

func (r *fakeUserRepo) Delete(id string) error { return nil }

func seedUser(t *testing.T, password string, active bool) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:        "usr-1",
		Name:      "Admin",
		Email:     "admin@example.com",
		Password:  string(hash),
		Role:      "ADMIN",
		Active:    active,
		CreatedAt: time.Now(),
	}
}

func TestLogin_EmiteTokenComClaims(t *testing.T) {
	repo := newFakeUserRepo(seedUser(t, "admin123", true))
	uc := auth.NewUseCase(repo, "test-secret", "salonx", 60)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@example.com", Password: "admin123"})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, "usr-1", out.User.ID)
	assert.NotEmpty(t, out.Token)

	// O token carrega os claims do usuário e expira no prazo configurado
	token, err := jwt.Parse(out.Token, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "usr-1", claims["sub"])
	assert.Equal(t, "ADMIN", claims["role"])
	assert.Equal(t, "salonx", claims["iss"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(60*time.Minute), exp.Time, time.Minute)
}

func TestLogin_SenhaErrada(t *testing.T) {
	repo := newFakeUserRepo(seedUser(t, "admin123", true))
	uc := auth.NewUseCase(repo, "test-secret", "salonx", 60)

	_, err := uc.Login(dto.LoginRequest{Email: "admin@example.com", Password: "outra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistenteOuInativo(t *testing.T) {
	repo := newFakeUserRepo(seedUser(t, "admin123", false))
	uc := auth.NewUseCase(repo, "test-secret", "salonx", 60)

	// Mesmo erro para usuário inativo e para email desconhecido
	_, err := uc.Login(dto.LoginRequest{Email: "admin@example.com", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "ghost@example.com", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CamposObrigatorios(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), "test-secret", "salonx", 60)

	_, err := uc.Login(dto.LoginRequest{Email: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.com", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
