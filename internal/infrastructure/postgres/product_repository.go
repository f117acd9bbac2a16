package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/pos-admin/internal/domain"
	"github.com/jhoicas/pos-admin/internal/domain/entity"
	"github.com/jhoicas/pos-admin/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, name, description, price, stock, version, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Version, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto y completa ID, Version y timestamps.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (sku, name, description, price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id, version, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		product.SKU, product.Name, product.Description, product.Price, product.Stock, product.CreatedAt,
	).Scan(&product.ID, &product.Version, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update reemplaza sku, name, description, price y stock. Un cambio manual de stock
// también incrementa version para invalidar ventas concurrentes que leyeron el valor anterior.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET sku = $2, name = $3, description = $4, price = $5, stock = $6,
		    version = version + 1, updated_at = $7
		WHERE id = $1
		RETURNING version`
	err := r.q.QueryRow(ctx, query,
		product.ID, product.SKU, product.Name, product.Description, product.Price, product.Stock, product.UpdatedAt,
	).Scan(&product.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todos los productos en el orden pedido (newest por defecto).
func (r *ProductRepo) List(ctx context.Context, order string) ([]*entity.Product, error) {
	orderBy := "id DESC"
	if order == repository.ProductOrderName {
		orderBy = "name ASC, id ASC"
	}
	return r.list(ctx, `SELECT `+productColumns+` FROM products ORDER BY `+orderBy)
}

// Search busca por subcadena en name o sku (ILIKE), más recientes primero, hasta limit filas.
func (r *ProductRepo) Search(ctx context.Context, query string, limit int) ([]*entity.Product, error) {
	if query == "" {
		return r.list(ctx, `SELECT `+productColumns+` FROM products ORDER BY id DESC LIMIT $1`, limit)
	}
	return r.list(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE name ILIKE $1 OR sku ILIKE $1
		ORDER BY id DESC
		LIMIT $2`, likePattern(query), limit)
}

func (r *ProductRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// DecrementStock descuenta qty con control optimista sobre version.
// Si no se actualizó ninguna fila se relee el producto para distinguir la causa.
func (r *ProductRepo) DecrementStock(ctx context.Context, id, qty, expectedVersion int64, allowNegative bool) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE products
		SET stock = stock - $2, version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $3 AND ($4 OR stock >= $2)`,
		id, qty, expectedVersion, allowNegative,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if cmd.RowsAffected() == 1 {
		return nil
	}

	var stock, version int64
	err = r.q.QueryRow(ctx, `SELECT stock, version FROM products WHERE id = $1`, id).Scan(&stock, &version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("decrement stock: releer producto: %w", err)
	}
	if version != expectedVersion {
		return domain.ErrConflict
	}
	return domain.ErrInsufficientStock
}
