package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/application/usecase"
	"github.com/bunx-io/salonx-api/internal/domain"
)

// ClientCRMHandler sub-recursos de CRM do cliente: notas e interações.
type ClientCRMHandler struct {
	uc *usecase.ClientCRMUseCase
}

// NewClientCRMHandler constrói o handler.
func NewClientCRMHandler(uc *usecase.ClientCRMUseCase) *ClientCRMHandler {
	return &ClientCRMHandler{uc: uc}
}

// ListNotes lista as notas do cliente: GET /api/clients/:id/notes.
func (h *ClientCRMHandler) ListNotes(c *fiber.Ctx) error {
	list, err := h.uc.ListNotes(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// CreateNote registra uma nota: POST /api/clients/:id/notes.
func (h *ClientCRMHandler) CreateNote(c *fiber.Ctx) error {
	var in dto.CreateClientNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if in.Content == "" {
		return badRequest(c, "Conteúdo é obrigatório")
	}
	out, err := h.uc.AddNote(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Cliente não encontrado")
		}
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListInteractions lista a linha do tempo: GET /api/clients/:id/interactions.
func (h *ClientCRMHandler) ListInteractions(c *fiber.Ctx) error {
	list, err := h.uc.ListInteractions(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}
