package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrEmailAlreadyExists = errors.New("o email já está cadastrado")
	ErrSKUAlreadyExists   = errors.New("SKU já cadastrado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrConflict           = errors.New("conflito com o estado atual")
	ErrInsufficientStock  = errors.New("estoque insuficiente")

	// Regras do fechamento de venda.
	ErrSaleWithoutItems    = errors.New("a venda deve ter pelo menos um item")
	ErrSaleWithoutPayments = errors.New("a venda deve ter pelo menos uma forma de pagamento")
)
