package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/domain"
)

// fail responde um erro de domínio com o status correspondente e o corpo
// { "error": "mensagem" }. Erros não mapeados viram 500 com mensagem genérica
// (o detalhe vai para o log, não para o cliente).
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return badRequest(c, "Dados inválidos")
	case errors.Is(err, domain.ErrSaleWithoutItems):
		return badRequest(c, "A venda deve ter pelo menos um item")
	case errors.Is(err, domain.ErrSaleWithoutPayments):
		return badRequest(c, "A venda deve ter pelo menos uma forma de pagamento")
	case errors.Is(err, domain.ErrInsufficientStock):
		return badRequest(c, "Estoque insuficiente")
	case errors.Is(err, domain.ErrSKUAlreadyExists):
		return badRequest(c, "SKU já cadastrado")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return badRequest(c, "Email já cadastrado")
	case errors.Is(err, domain.ErrNotFound):
		return notFound(c, "Recurso não encontrado")
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "Recurso já existe"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Credenciais inválidas"})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("erro interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Erro interno do servidor"})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: message})
}
