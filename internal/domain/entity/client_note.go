package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClientNote anotação de CRM feita por um usuário sobre um cliente.
type ClientNote struct {
	ID        string
	ClientID  string
	UserID    string
	UserName  string // preenchido pelo join com users na leitura
	Content   string
	Type      string // NOTE | CALL | WHATSAPP | EMAIL
	CreatedAt time.Time
}

// ClientInteraction evento da linha do tempo do cliente (venda, agendamento,
// contato). A tabela é alimentada fora da API; aqui só leitura.
type ClientInteraction struct {
	ID          string
	ClientID    string
	Type        string
	Description string
	Amount      *decimal.Decimal
	Date        time.Time
	CreatedAt   time.Time
}
