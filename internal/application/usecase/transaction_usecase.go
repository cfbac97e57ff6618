package usecase

import (
	"time"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/domain"
	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// TransactionUseCase CRUD do livro financeiro. Lançamentos de venda (categoria
// SALE) são gerados pelo motor de checkout; aqui entram os manuais.
type TransactionUseCase struct {
	repo repository.TransactionRepository
}

// NewTransactionUseCase constrói o caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

// Create cria um lançamento. Status default PENDING.
func (uc *TransactionUseCase) Create(in dto.TransactionRequest) (*dto.TransactionResponse, error) {
	if in.Type == "" || in.Category == "" || in.Description == "" || in.DueDate == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.TransactionIncome && in.Type != entity.TransactionExpense {
		return nil, domain.ErrInvalidInput
	}
	dueDate, err := dto.ParseDate(in.DueDate)
	if err != nil || dueDate == nil {
		return nil, domain.ErrInvalidInput
	}
	paidDate, err := dto.ParseDate(in.PaidDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.TransactionPending
	}

	txn := &entity.Transaction{
		ID:             entity.NewID("txn"),
		Type:           in.Type,
		Category:       in.Category,
		Description:    in.Description,
		Amount:         in.Amount,
		Status:         status,
		PaymentMethod:  in.PaymentMethod,
		DueDate:        *dueDate,
		PaidDate:       paidDate,
		ClientID:       in.ClientID,
		ProfessionalID: in.ProfessionalID,
		Notes:          in.Notes,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.Create(txn); err != nil {
		return nil, err
	}
	resp := dto.ToTransactionResponse(txn)
	return &resp, nil
}

// GetByID busca um lançamento por ID.
func (uc *TransactionUseCase) GetByID(id string) (*dto.TransactionResponse, error) {
	txn, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, nil
	}
	resp := dto.ToTransactionResponse(txn)
	return &resp, nil
}

// Update atualiza um lançamento (baixa de pagamento, correções).
func (uc *TransactionUseCase) Update(id string, in dto.TransactionRequest) (*dto.TransactionResponse, error) {
	txn, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, nil
	}
	if in.DueDate != "" {
		dueDate, err := dto.ParseDate(in.DueDate)
		if err != nil || dueDate == nil {
			return nil, domain.ErrInvalidInput
		}
		txn.DueDate = *dueDate
	}
	paidDate, err := dto.ParseDate(in.PaidDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != "" {
		txn.Type = in.Type
	}
	if in.Category != "" {
		txn.Category = in.Category
	}
	if in.Description != "" {
		txn.Description = in.Description
	}
	if !in.Amount.IsZero() {
		txn.Amount = in.Amount
	}
	if in.Status != "" {
		txn.Status = in.Status
	}
	txn.PaymentMethod = in.PaymentMethod
	txn.PaidDate = paidDate
	txn.ClientID = in.ClientID
	txn.ProfessionalID = in.ProfessionalID
	txn.Notes = in.Notes

	if err := uc.repo.Update(txn); err != nil {
		return nil, err
	}
	resp := dto.ToTransactionResponse(txn)
	return &resp, nil
}

// List lista lançamentos com filtros de tipo, status e vencimento.
func (uc *TransactionUseCase) List(filter repository.TransactionFilter) ([]dto.TransactionResponse, error) {
	txns, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	return dto.ToTransactionResponses(txns), nil
}

// Delete remove um lançamento.
func (uc *TransactionUseCase) Delete(id string) error {
	txn, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if txn == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
