package postgres

import (
	"context"
	"fmt"

	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

var _ repository.ClientNoteRepository = (*ClientNoteRepo)(nil)

// ClientNoteRepo implementação de ClientNoteRepository sobre PostgreSQL.
type ClientNoteRepo struct {
	q Querier
}

// NewClientNoteRepository constrói o adaptador de notas de CRM.
func NewClientNoteRepository(q Querier) *ClientNoteRepo {
	return &ClientNoteRepo{q: q}
}

// Create persiste uma nota.
func (r *ClientNoteRepo) Create(note *entity.ClientNote) error {
	query := `
		INSERT INTO client_notes (id, client_id, user_id, content, type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		note.ID, note.ClientID, note.UserID, note.Content, note.Type, note.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client note: %w", err)
	}
	return nil
}

// ListByClient lista as notas do cliente, mais recente primeiro, resolvendo
// o nome do autor via join com users.
func (r *ClientNoteRepo) ListByClient(clientID string) ([]*entity.ClientNote, error) {
	query := `
		SELECT cn.id, cn.client_id, cn.user_id, COALESCE(u.name, ''), cn.content, cn.type, cn.created_at
		FROM client_notes cn
		LEFT JOIN users u ON u.id = cn.user_id
		WHERE cn.client_id = $1
		ORDER BY cn.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list client notes: %w", err)
	}
	defer rows.Close()

	var list []*entity.ClientNote
	for rows.Next() {
		var n entity.ClientNote
		if err := rows.Scan(&n.ID, &n.ClientID, &n.UserID, &n.UserName, &n.Content, &n.Type, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan client note: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

var _ repository.ClientInteractionRepository = (*ClientInteractionRepo)(nil)

// ClientInteractionRepo leitura da linha do tempo do cliente sobre PostgreSQL.
type ClientInteractionRepo struct {
	q Querier
}

// NewClientInteractionRepository constrói o adaptador de interações.
func NewClientInteractionRepository(q Querier) *ClientInteractionRepo {
	return &ClientInteractionRepo{q: q}
}

// ListByClient lista até 50 interações do cliente, mais recente primeiro.
func (r *ClientInteractionRepo) ListByClient(clientID string) ([]*entity.ClientInteraction, error) {
	query := `
		SELECT id, client_id, type, description, amount, date, created_at
		FROM client_interactions
		WHERE client_id = $1
		ORDER BY date DESC
		LIMIT 50`
	rows, err := r.q.Query(context.Background(), query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list client interactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.ClientInteraction
	for rows.Next() {
		var i entity.ClientInteraction
		if err := rows.Scan(&i.ID, &i.ClientID, &i.Type, &i.Description, &i.Amount, &i.Date, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan client interaction: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
