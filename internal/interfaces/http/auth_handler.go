package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bunx-io/salonx-api/internal/application/auth"
	"github.com/bunx-io/salonx-api/internal/application/dto"
)

// AuthHandler rota de login.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login autentica por email/senha: POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if in.Email == "" || in.Password == "" {
		return badRequest(c, "Email e senha são obrigatórios")
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
