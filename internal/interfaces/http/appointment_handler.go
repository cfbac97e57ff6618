package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/application/usecase"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// AppointmentHandler rotas da agenda.
type AppointmentHandler struct {
	uc *usecase.AppointmentUseCase
}

// NewAppointmentHandler constrói o handler.
func NewAppointmentHandler(uc *usecase.AppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// Create cria um agendamento: POST /api/appointments.
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var in dto.AppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if in.ClientID == "" || in.ProfessionalID == "" || in.ServiceID == "" || in.Date == "" || in.Time == "" {
		return badRequest(c, "Cliente, profissional, serviço, data e horário são obrigatórios")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID busca um agendamento: GET /api/appointments/:id.
func (h *AppointmentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "Agendamento não encontrado")
	}
	return c.JSON(out)
}

// Update atualiza um agendamento: PUT /api/appointments/:id.
func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	var in dto.AppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "Agendamento não encontrado")
	}
	return c.JSON(out)
}

// List lista agendamentos: GET /api/appointments?date=...&professionalId=...&status=...
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	filter := repository.AppointmentFilter{
		ProfessionalID: c.Query("professionalId"),
		Status:         c.Query("status"),
	}
	if raw := c.Query("date"); raw != "" {
		date, err := dto.ParseDate(raw)
		if err != nil {
			return badRequest(c, "Data inválida")
		}
		filter.Date = date
	}
	list, err := h.uc.List(filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// Delete remove um agendamento: DELETE /api/appointments/:id.
func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Agendamento removido com sucesso"})
}
