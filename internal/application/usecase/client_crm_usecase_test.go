package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/application/usecase"
	"github.com/bunx-io/salonx-api/internal/domain"
	"github.com/bunx-io/salonx-api/internal/domain/entity"
)

// fakeClientNoteRepo notas em memória, mais recente primeiro.
type fakeClientNoteRepo struct {
	notes []*entity.ClientNote
}

func (r *fakeClientNoteRepo) Create(note *entity.ClientNote) error {
	r.notes = append([]*entity.ClientNote{note}, r.notes...)
	return nil
}

func (r *fakeClientNoteRepo) ListByClient(clientID string) ([]*entity.ClientNote, error) {
	var out []*entity.ClientNote
	for _, n := range r.notes {
		if n.ClientID == clientID {
			out = append(out, n)
		}
	}
	return out, nil
}

// fakeClientInteractionRepo linha do tempo fixa.
type fakeClientInteractionRepo struct {
	interactions []*entity.ClientInteraction
}

func (r *fakeClientInteractionRepo) ListByClient(clientID string) ([]*entity.ClientInteraction, error) {
	var out []*entity.ClientInteraction
	for _, i := range r.interactions {
		if i.ClientID == clientID {
			out = append(out, i)
		}
	}
	return out, nil
}

func crmFixture(clients ...*entity.Client) (*usecase.ClientCRMUseCase, *fakeClientNoteRepo, *fakeClientInteractionRepo) {
	noteRepo := &fakeClientNoteRepo{}
	interactionRepo := &fakeClientInteractionRepo{}
	uc := usecase.NewClientCRMUseCase(newFakeClientRepo(clients...), noteRepo, interactionRepo)
	return uc, noteRepo, interactionRepo
}

func TestAddNote_DefaultsDeTipoEAutor(t *testing.T) {
	uc, noteRepo, _ := crmFixture(&entity.Client{ID: "cli-1", Name: "Maria Souza", Active: true})

	out, err := uc.AddNote("cli-1", dto.CreateClientNoteRequest{Content: "Prefere horário de manhã"})
	require.NoError(t, err)

	assert.Equal(t, "cli-1", out.ClientID)
	assert.Equal(t, "NOTE", out.Type)
	assert.Equal(t, "usr-seed-admin", out.UserID)
	assert.NotEmpty(t, out.ID)

	require.Len(t, noteRepo.notes, 1)
	assert.Equal(t, "Prefere horário de manhã", noteRepo.notes[0].Content)
}

func TestAddNote_TipoEAutorInformados(t *testing.T) {
	uc, _, _ := crmFixture(&entity.Client{ID: "cli-1", Active: true})

	out, err := uc.AddNote("cli-1", dto.CreateClientNoteRequest{
		Content: "Retornou a ligação",
		Type:    "CALL",
		UserID:  "usr-2",
	})
	require.NoError(t, err)

	assert.Equal(t, "CALL", out.Type)
	assert.Equal(t, "usr-2", out.UserID)
}

func TestAddNote_ConteudoObrigatorio(t *testing.T) {
	uc, noteRepo, _ := crmFixture(&entity.Client{ID: "cli-1", Active: true})

	_, err := uc.AddNote("cli-1", dto.CreateClientNoteRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, noteRepo.notes)
}

func TestAddNote_ClienteInexistente(t *testing.T) {
	uc, noteRepo, _ := crmFixture()

	_, err := uc.AddNote("cli-ghost", dto.CreateClientNoteRequest{Content: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, noteRepo.notes)
}

func TestListNotes_MaisRecentePrimeiro(t *testing.T) {
	uc, _, _ := crmFixture(&entity.Client{ID: "cli-1", Active: true})

	_, err := uc.AddNote("cli-1", dto.CreateClientNoteRequest{Content: "primeira"})
	require.NoError(t, err)
	_, err = uc.AddNote("cli-1", dto.CreateClientNoteRequest{Content: "segunda"})
	require.NoError(t, err)

	list, err := uc.ListNotes("cli-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "segunda", list[0].Content)
	assert.Equal(t, "primeira", list[1].Content)
}

func TestListInteractions_DevolveLinhaDoTempo(t *testing.T) {
	amount := decimal.NewFromInt(120)
	uc, _, interactionRepo := crmFixture(&entity.Client{ID: "cli-1", Active: true})
	interactionRepo.interactions = []*entity.ClientInteraction{
		{
			ID:          "int-1",
			ClientID:    "cli-1",
			Type:        "SALE",
			Description: "Venda #sal-1",
			Amount:      &amount,
			Date:        *date("2026-08-20"),
			CreatedAt:   time.Now(),
		},
		{
			ID:          "int-2",
			ClientID:    "cli-2",
			Type:        "CALL",
			Description: "outro cliente",
			Date:        *date("2026-08-19"),
		},
	}

	list, err := uc.ListInteractions("cli-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "SALE", list[0].Type)
	assert.Equal(t, "2026-08-20", list[0].Date)
	assert.True(t, amount.Equal(*list[0].Amount))
}
