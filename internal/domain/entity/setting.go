package entity

import "time"

// Setting par chave/valor de configuração do negócio, agrupado por categoria
// (general, booking, financial, notifications, stock).
type Setting struct {
	Key       string
	Value     string
	Category  string
	UpdatedAt time.Time
}
