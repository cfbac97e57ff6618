package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/application/usecase"
)

// SettingsHandler rotas das configurações do negócio.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler constrói o handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get devolve as configurações: GET /api/settings[?key=...][&category=...].
// Com ?key devolve o par único; sem, o mapa agrupado por categoria.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	if key := c.Query("key"); key != "" {
		out, err := h.uc.Get(key)
		if err != nil {
			return fail(c, err)
		}
		if out == nil {
			return notFound(c, "Configuração não encontrada")
		}
		return c.JSON(out)
	}
	grouped, err := h.uc.ListGrouped(c.Query("category"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(grouped)
}

// Create cria uma configuração: POST /api/settings.
func (h *SettingsHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSettingRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if in.Key == "" {
		return badRequest(c, "Chave é obrigatória")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// BulkUpdate grava um lote de pares chave/valor: PUT /api/settings.
func (h *SettingsHandler) BulkUpdate(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if len(in.Settings) == 0 {
		return badRequest(c, "Nenhuma configuração informada")
	}
	out, err := h.uc.BulkUpdate(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
