package usecase

import (
	"time"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/domain"
	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// ProductUseCase CRUD do catálogo de produtos. CurrentStock só é gravado na
// criação (saldo inicial); depois disso o estoque muda exclusivamente pelo
// livro de movimentações.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create cria um produto. SKU é único.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Type == "" || in.Category == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.ProductTypeService && in.Type != entity.ProductTypeResale {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrSKUAlreadyExists
	}

	product := &entity.Product{
		ID:           entity.NewID("prd"),
		Name:         in.Name,
		Type:         in.Type,
		Category:     in.Category,
		Brand:        in.Brand,
		SKU:          in.SKU,
		CurrentStock: in.CurrentStock,
		MinStock:     in.MinStock,
		MaxStock:     in.MaxStock,
		Unit:         in.Unit,
		CostPrice:    in.CostPrice,
		SalePrice:    in.SalePrice,
		Supplier:     in.Supplier,
		Location:     in.Location,
		Notes:        in.Notes,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// GetByID busca um produto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// Update atualiza os dados cadastrais. Não toca em CurrentStock.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.SKU != "" && in.SKU != product.SKU {
		other, err := uc.repo.GetBySKU(in.SKU)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrSKUAlreadyExists
		}
		product.SKU = in.SKU
	}
	product.Name = in.Name
	product.Type = in.Type
	product.Category = in.Category
	product.Brand = in.Brand
	product.MinStock = in.MinStock
	product.MaxStock = in.MaxStock
	product.Unit = in.Unit
	product.CostPrice = in.CostPrice
	product.SalePrice = in.SalePrice
	product.Supplier = in.Supplier
	product.Location = in.Location
	product.Notes = in.Notes

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// List lista produtos em ordem alfabética, com filtros opcionais.
func (uc *ProductUseCase) List(filter repository.ProductFilter) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponses(products), nil
}

// Delete remove um produto. As movimentações dele seguem no livro.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
