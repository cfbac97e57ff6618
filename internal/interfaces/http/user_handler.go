package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/application/usecase"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// UserHandler rotas de usuários do back office.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler constrói o handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create cria um usuário: POST /api/users.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return badRequest(c, "Nome, email, senha e papel são obrigatórios")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID busca um usuário: GET /api/users/:id.
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "Usuário não encontrado")
	}
	return c.JSON(out)
}

// Update atualiza um usuário: PUT /api/users/:id.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "Usuário não encontrado")
	}
	return c.JSON(out)
}

// List lista usuários: GET /api/users?role=...&active=true&search=...
func (h *UserHandler) List(c *fiber.Ctx) error {
	filter := repository.UserFilter{
		Role:   c.Query("role"),
		Search: c.Query("search"),
	}
	if raw := c.Query("active"); raw != "" {
		active := raw == "true"
		filter.Active = &active
	}
	list, err := h.uc.List(filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// Delete remove um usuário: DELETE /api/users/:id.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Usuário removido com sucesso"})
}
