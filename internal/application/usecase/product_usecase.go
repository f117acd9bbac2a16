package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/pos-admin/internal/application/dto"
	"github.com/jhoicas/pos-admin/internal/domain"
	"github.com/jhoicas/pos-admin/internal/domain/entity"
	"github.com/jhoicas/pos-admin/internal/domain/repository"
)

// SearchLimit máximo de resultados del buscador del POS.
const SearchLimit = 200

// ProductUseCase casos de uso CRUD del catálogo. El stock solo baja por ventas o por edición admin.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. name obligatorio, stock >= 0 y price >= 0 con a lo sumo 2 decimales
// y menor a entity.MaxAmount.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	in, err := normalizeProduct(in)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	product := &entity.Product{
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update reemplaza todos los campos editables. Las ventas ya registradas conservan su precio.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) (*dto.ProductResponse, error) {
	in, err := normalizeProduct(in)
	if err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.SKU = in.SKU
	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.Stock = in.Stock
	product.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. Las ventas que lo referencian no se tocan.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// List lista el catálogo completo. order: repository.ProductOrderNewest o ProductOrderName.
func (uc *ProductUseCase) List(ctx context.Context, order string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, order)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Search busca por subcadena en nombre o SKU; con query vacío devuelve los más recientes.
func (uc *ProductUseCase) Search(ctx context.Context, query string) (*dto.ProductSearchResponse, error) {
	list, err := uc.repo.Search(ctx, strings.TrimSpace(query), SearchLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductSummary, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ProductSummary{ID: p.ID, Name: p.Name, Price: p.Price, Stock: p.Stock})
	}
	return &dto.ProductSearchResponse{Products: items}, nil
}

func normalizeProduct(in dto.ProductRequest) (dto.ProductRequest, error) {
	in.SKU = strings.TrimSpace(in.SKU)
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Name == "" || !entity.ValidAmount(in.Price) || in.Stock < 0 {
		return in, domain.ErrInvalidInput
	}
	return in, nil
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
