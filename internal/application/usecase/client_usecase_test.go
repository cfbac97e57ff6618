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
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// fakeClientRepo clientes em memória.
type fakeClientRepo struct {
	clients      map[string]*entity.Client
	updatedStats bool
}

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	repo := &fakeClientRepo{clients: make(map[string]*entity.Client)}
	for _, c := range clients {
		repo.clients[c.ID] = c
	}
	return repo
}

func (r *fakeClientRepo) Create(client *entity.Client) error {
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *fakeClientRepo) GetByEmail(email string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.Email == email && c.Active {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) Update(client *entity.Client) error {
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) UpdateStats(id string, visits int, spent decimal.Decimal, lastVisit *time.Time) error {
	c := r.clients[id]
	c.TotalVisits = visits
	c.TotalSpent = spent
	c.LastVisit = lastVisit
	r.updatedStats = true
	return nil
}

func (r *fakeClientRepo) List(filter repository.ClientFilter) ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(r.clients))
	for _, c := range r.clients {
		if c.Active {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) Deactivate(id string) error {
	r.clients[id].Active = false
	return nil
}

// fakeSaleStats devolve agregados fixos para a reconciliação.
type fakeSaleStats struct {
	stats *repository.ClientSalesStats
}

func (r *fakeSaleStats) Create(sale *entity.Sale) error { return nil }

func (r *fakeSaleStats) CreateItem(item *entity.SaleItem) error { return nil }

func (r *fakeSaleStats) CreatePayment(p *entity.SalePayment) error { return nil }

func (r *fakeSaleStats) GetByID(id string) (*entity.Sale, error) { return nil, nil }

func (r *fakeSaleStats) List(s, e *time.Time) ([]*entity.Sale, error) { return nil, nil }

func (r *fakeSaleStats) StatsByClient(clientID string) (*repository.ClientSalesStats, error) {
	return r.stats, nil
}

func date(value string) *time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return &t
}

func TestReconcileStats_CorrigeContadoresDerivados(t *testing.T) {
	client := &entity.Client{
		ID:          "cli-1",
		Name:        "Maria Souza",
		Email:       "maria@example.com",
		TotalVisits: 10,
		TotalSpent:  decimal.NewFromInt(900),
		LastVisit:   date("2026-08-01"),
		Active:      true,
	}
	clientRepo := newFakeClientRepo(client)
	saleRepo := &fakeSaleStats{stats: &repository.ClientSalesStats{
		Visits:    7,
		Spent:     decimal.NewFromInt(650),
		LastVisit: date("2026-08-20"),
	}}
	uc := usecase.NewClientUseCase(clientRepo, saleRepo)

	out, err := uc.ReconcileStats("cli-1")
	require.NoError(t, err)

	assert.True(t, out.Changed)
	assert.Equal(t, 10, out.Before.TotalVisits)
	assert.Equal(t, 7, out.After.TotalVisits)
	assert.Equal(t, "2026-08-20", out.After.LastVisit)

	// Gravou os valores recalculados
	assert.True(t, clientRepo.updatedStats)
	assert.Equal(t, 7, clientRepo.clients["cli-1"].TotalVisits)
	assert.True(t, decimal.NewFromInt(650).Equal(clientRepo.clients["cli-1"].TotalSpent))
}

func TestReconcileStats_SemDivergenciaNaoEscreve(t *testing.T) {
	client := &entity.Client{
		ID:          "cli-1",
		Name:        "Maria Souza",
		TotalVisits: 7,
		TotalSpent:  decimal.NewFromInt(650),
		LastVisit:   date("2026-08-20"),
		Active:      true,
	}
	clientRepo := newFakeClientRepo(client)
	saleRepo := &fakeSaleStats{stats: &repository.ClientSalesStats{
		Visits:    7,
		Spent:     decimal.NewFromInt(650),
		LastVisit: date("2026-08-20"),
	}}
	uc := usecase.NewClientUseCase(clientRepo, saleRepo)

	out, err := uc.ReconcileStats("cli-1")
	require.NoError(t, err)

	assert.False(t, out.Changed)
	assert.False(t, clientRepo.updatedStats)
}

func TestReconcileStats_ClienteSemVendasZeraAgregados(t *testing.T) {
	client := &entity.Client{
		ID:          "cli-1",
		Name:        "Maria Souza",
		TotalVisits: 2,
		TotalSpent:  decimal.NewFromInt(100),
		LastVisit:   date("2026-07-10"),
		Active:      true,
	}
	clientRepo := newFakeClientRepo(client)
	saleRepo := &fakeSaleStats{stats: &repository.ClientSalesStats{Spent: decimal.Zero}}
	uc := usecase.NewClientUseCase(clientRepo, saleRepo)

	out, err := uc.ReconcileStats("cli-1")
	require.NoError(t, err)

	assert.True(t, out.Changed)
	assert.Equal(t, 0, out.After.TotalVisits)
	assert.Empty(t, out.After.LastVisit)
	assert.Nil(t, clientRepo.clients["cli-1"].LastVisit)
}

func TestReconcileStats_ClienteInexistente(t *testing.T) {
	uc := usecase.NewClientUseCase(newFakeClientRepo(), &fakeSaleStats{})

	_, err := uc.ReconcileStats("cli-ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func dtoCreateClient(email string) dto.CreateClientRequest {
	return dto.CreateClientRequest{
		Name:  "Cliente Teste",
		Email: email,
		Phone: "11 99999-0000",
	}
}

func TestCreateClient_EmailDuplicado(t *testing.T) {
	existing := &entity.Client{
		ID:     "cli-1",
		Name:   "Maria Souza",
		Email:  "maria@example.com",
		Active: true,
	}
	uc := usecase.NewClientUseCase(newFakeClientRepo(existing), &fakeSaleStats{})

	_, err := uc.Create(dtoCreateClient("maria@example.com"))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestCreateClient_SegmentoDefaultNew(t *testing.T) {
	repo := newFakeClientRepo()
	uc := usecase.NewClientUseCase(repo, &fakeSaleStats{})

	out, err := uc.Create(dtoCreateClient("nova@example.com"))
	require.NoError(t, err)

	assert.Equal(t, entity.SegmentNew, out.Segment)
	assert.True(t, out.Active)
}
