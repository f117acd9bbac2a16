package sales

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/pos-admin/internal/domain"
	domsales "github.com/jhoicas/pos-admin/internal/domain/sales"
	"github.com/jhoicas/pos-admin/internal/domain/entity"
	"github.com/jhoicas/pos-admin/internal/domain/repository"
	"github.com/rs/zerolog"
)

// DefaultSellerHistory ventas mostradas al vendedor en el POS.
const DefaultSellerHistory = 10

// Policy política de ventas leída de configuración.
type Policy struct {
	AllowNegativeStock bool
	MaxAttempts        int // intentos ante conflicto de versión (mínimo 1)
}

// UseCase ledger de ventas: registro atómico de ventas con descuento de stock.
type UseCase struct {
	tx       TxRunner
	saleRepo repository.SaleRepository
	policy   Policy
	log      zerolog.Logger
	now      func() time.Time
}

// NewUseCase construye el caso de uso. saleRepo se usa solo para lecturas fuera de tx.
func NewUseCase(tx TxRunner, saleRepo repository.SaleRepository, policy Policy, log zerolog.Logger) *UseCase {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &UseCase{
		tx:       tx,
		saleRepo: saleRepo,
		policy:   policy,
		log:      log,
		now:      time.Now,
	}
}

// RecordSale registra una venta de una sola línea.
func (uc *UseCase) RecordSale(ctx context.Context, sellerID, productID, qty int64) (*entity.Sale, error) {
	return uc.RecordSaleLines(ctx, sellerID, []domsales.ItemRef{{ProductID: productID, Quantity: qty}})
}

// RecordSaleLines registra una venta con una o más líneas. Todo ocurre en una transacción:
// lectura de productos, precio congelado, inserción de venta + líneas y descuento de stock.
// Si otro proceso cambió el stock entre la lectura y el descuento, se reintenta.
func (uc *UseCase) RecordSaleLines(ctx context.Context, sellerID int64, refs []domsales.ItemRef) (*entity.Sale, error) {
	if len(refs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, ref := range refs {
		if ref.Quantity < 1 || ref.Quantity > domsales.MaxQuantity {
			return nil, domain.ErrInvalidInput
		}
	}
	// Orden por producto: dos ventas concurrentes bloquean sus filas en el mismo orden.
	refs = domsales.MergeRefs(refs)
	for _, ref := range refs {
		if ref.Quantity > domsales.MaxQuantity {
			return nil, domain.ErrInvalidInput
		}
	}

	var sale *entity.Sale
	var err error
	for attempt := 1; attempt <= uc.policy.MaxAttempts; attempt++ {
		sale, err = uc.recordOnce(ctx, sellerID, refs)
		if !errors.Is(err, domain.ErrConflict) {
			break
		}
		uc.log.Debug().
			Int("attempt", attempt).
			Int64("seller_id", sellerID).
			Msg("conflicto de versión en stock, reintentando venta")
	}
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			uc.log.Warn().Int64("seller_id", sellerID).Msg("venta abortada: reintentos agotados")
		}
		return nil, err
	}

	uc.log.Info().
		Int64("sale_id", sale.ID).
		Int64("seller_id", sellerID).
		Str("items", sale.Items).
		Str("total", sale.Total.StringFixed(2)).
		Msg("venta registrada")
	return sale, nil
}

func (uc *UseCase) recordOnce(ctx context.Context, sellerID int64, refs []domsales.ItemRef) (*entity.Sale, error) {
	var sale *entity.Sale
	err := uc.tx.RunSale(ctx, func(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) error {
		lines := make([]entity.SaleItem, 0, len(refs))
		versions := make([]int64, 0, len(refs))
		for _, ref := range refs {
			product, err := productRepo.GetByID(ctx, ref.ProductID)
			if err != nil {
				return err
			}
			line, err := domsales.NewLine(product, ref.Quantity)
			if err != nil {
				return err
			}
			lines = append(lines, line)
			versions = append(versions, product.Version)
		}

		total := domsales.Total(lines)
		if !entity.ValidAmount(total) {
			return domain.ErrInvalidInput
		}

		for i, line := range lines {
			if err := productRepo.DecrementStock(ctx, line.ProductID, line.Quantity, versions[i], uc.policy.AllowNegativeStock); err != nil {
				return err
			}
		}

		seller := sellerID
		s := &entity.Sale{
			SellerID:  &seller,
			Items:     domsales.EncodeItems(lines),
			Total:     total,
			CreatedAt: uc.now().UTC(),
			Lines:     lines,
		}
		if err := saleRepo.Create(ctx, s); err != nil {
			return err
		}
		sale = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// ListBySeller últimas ventas del vendedor. limit <= 0 usa DefaultSellerHistory.
func (uc *UseCase) ListBySeller(ctx context.Context, sellerID int64, limit int) ([]*entity.Sale, error) {
	if limit <= 0 {
		limit = DefaultSellerHistory
	}
	return uc.saleRepo.ListBySeller(ctx, sellerID, limit)
}

// ListAll últimas ventas de todos los vendedores.
func (uc *UseCase) ListAll(ctx context.Context, limit int) ([]*entity.Sale, error) {
	if limit <= 0 {
		limit = DefaultSellerHistory
	}
	return uc.saleRepo.ListAll(ctx, limit)
}
