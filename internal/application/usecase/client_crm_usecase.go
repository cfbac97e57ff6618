package usecase

import (
	"time"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/domain"
	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// Sem middleware de auth o autor não vem da sessão; notas sem userId
// caem no usuário seed.
const defaultNoteAuthor = "usr-seed-admin"

// ClientCRMUseCase notas e linha do tempo de interações do cliente.
type ClientCRMUseCase struct {
	clientRepo      repository.ClientRepository
	noteRepo        repository.ClientNoteRepository
	interactionRepo repository.ClientInteractionRepository
}

// NewClientCRMUseCase constrói o caso de uso.
func NewClientCRMUseCase(
	clientRepo repository.ClientRepository,
	noteRepo repository.ClientNoteRepository,
	interactionRepo repository.ClientInteractionRepository,
) *ClientCRMUseCase {
	return &ClientCRMUseCase{clientRepo: clientRepo, noteRepo: noteRepo, interactionRepo: interactionRepo}
}

// AddNote registra uma nota sobre o cliente. Tipo default NOTE.
func (uc *ClientCRMUseCase) AddNote(clientID string, in dto.CreateClientNoteRequest) (*dto.ClientNoteResponse, error) {
	if in.Content == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	noteType := in.Type
	if noteType == "" {
		noteType = "NOTE"
	}
	userID := in.UserID
	if userID == "" {
		userID = defaultNoteAuthor
	}

	note := &entity.ClientNote{
		ID:        entity.NewID("note"),
		ClientID:  clientID,
		UserID:    userID,
		Content:   in.Content,
		Type:      noteType,
		CreatedAt: time.Now(),
	}
	if err := uc.noteRepo.Create(note); err != nil {
		return nil, err
	}
	resp := dto.ToClientNoteResponse(note)
	return &resp, nil
}

// ListNotes lista as notas do cliente, mais recente primeiro. Cliente
// desconhecido devolve lista vazia.
func (uc *ClientCRMUseCase) ListNotes(clientID string) ([]dto.ClientNoteResponse, error) {
	notes, err := uc.noteRepo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	return dto.ToClientNoteResponses(notes), nil
}

// ListInteractions lista a linha do tempo do cliente (até 50 eventos).
func (uc *ClientCRMUseCase) ListInteractions(clientID string) ([]dto.ClientInteractionResponse, error) {
	interactions, err := uc.interactionRepo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	return dto.ToClientInteractionResponses(interactions), nil
}
