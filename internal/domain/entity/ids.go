package entity

import "github.com/google/uuid"

// NewID gera um identificador com prefixo por entidade ("sal-", "mov-", "txn-"...).
// O prefixo facilita a leitura da trilha de auditoria; o corpo é um UUID v4.
func NewID(prefix string) string {
	return prefix + "-" + uuid.New().String()
}
