package repository

import "github.com/bunx-io/salonx-api/internal/domain/entity"

// ClientNoteRepository porta de persistência das notas de CRM.
type ClientNoteRepository interface {
	Create(note *entity.ClientNote) error
	// ListByClient devolve as notas do cliente, mais recente primeiro,
	// com o nome do autor resolvido.
	ListByClient(clientID string) ([]*entity.ClientNote, error)
}

// ClientInteractionRepository leitura da linha do tempo do cliente.
type ClientInteractionRepository interface {
	// ListByClient devolve até 50 interações, mais recente primeiro.
	ListByClient(clientID string) ([]*entity.ClientInteraction, error)
}
