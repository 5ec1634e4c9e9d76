package catalog

import (
	"context"
	"database/sql"

	"go-wemall-api/internal/shared/database"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=catalog_repo.go -destination=../mock/catalog/catalog_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateProduct(ctx context.Context, name string, isActive bool) (Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, name sql.NullString, isActive sql.NullBool) (Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (Product, error)
	ListProducts(ctx context.Context, limit, offset int32) ([]Product, error)
	CountProducts(ctx context.Context) (int64, error)

	CreateSku(ctx context.Context, productID uuid.UUID, price decimal.Decimal, stock int32, isActive bool) (Sku, error)
	UpdateSku(ctx context.Context, id uuid.UUID, price decimal.NullDecimal, stock sql.NullInt32, isActive sql.NullBool) (Sku, error)
	GetSku(ctx context.Context, id uuid.UUID) (Sku, error)

	GetSnapshot(ctx context.Context, skuID uuid.UUID) (SkuSnapshot, error)
	ListSnapshots(ctx context.Context, skuIDs []uuid.UUID) ([]SkuSnapshot, error)
}

type repository struct {
	db database.DBTX
}

func NewRepository(db database.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: tx}
}

const productColumns = "id, name, is_active, created_at, updated_at"

func scanProduct(row *sql.Row) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *repository) CreateProduct(ctx context.Context, name string, isActive bool) (Product, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO products (name, is_active) VALUES ($1, $2)
		 RETURNING `+productColumns,
		name, isActive,
	)
	return scanProduct(row)
}

func (r *repository) UpdateProduct(
	ctx context.Context,
	id uuid.UUID,
	name sql.NullString,
	isActive sql.NullBool,
) (Product, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE products
		 SET name = COALESCE($2, name),
		     is_active = COALESCE($3, is_active),
		     updated_at = now()
		 WHERE id = $1
		 RETURNING `+productColumns,
		id, name, isActive,
	)
	return scanProduct(row)
}

func (r *repository) GetProduct(ctx context.Context, id uuid.UUID) (Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row)
}

func (r *repository) ListProducts(ctx context.Context, limit, offset int32) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}

const skuColumns = "id, product_id, price, stock, is_active, created_at, updated_at"

func scanSku(row *sql.Row) (Sku, error) {
	var s Sku
	err := row.Scan(&s.ID, &s.ProductID, &s.Price, &s.Stock, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *repository) CreateSku(
	ctx context.Context,
	productID uuid.UUID,
	price decimal.Decimal,
	stock int32,
	isActive bool,
) (Sku, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO skus (product_id, price, stock, is_active)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+skuColumns,
		productID, price, stock, isActive,
	)
	return scanSku(row)
}

func (r *repository) UpdateSku(
	ctx context.Context,
	id uuid.UUID,
	price decimal.NullDecimal,
	stock sql.NullInt32,
	isActive sql.NullBool,
) (Sku, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE skus
		 SET price = COALESCE($2, price),
		     stock = COALESCE($3, stock),
		     is_active = COALESCE($4, is_active),
		     updated_at = now()
		 WHERE id = $1
		 RETURNING `+skuColumns,
		id, price, stock, isActive,
	)
	return scanSku(row)
}

func (r *repository) GetSku(ctx context.Context, id uuid.UUID) (Sku, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+skuColumns+` FROM skus WHERE id = $1`, id)
	return scanSku(row)
}

const snapshotQuery = `
SELECT s.id, s.product_id, p.name, s.price, s.stock, s.is_active, p.is_active
FROM skus s
JOIN products p ON p.id = s.product_id`

func (r *repository) GetSnapshot(ctx context.Context, skuID uuid.UUID) (SkuSnapshot, error) {
	var snap SkuSnapshot
	err := r.db.QueryRowContext(ctx, snapshotQuery+` WHERE s.id = $1`, skuID).Scan(
		&snap.SkuID,
		&snap.ProductID,
		&snap.ProductName,
		&snap.Price,
		&snap.Stock,
		&snap.SkuActive,
		&snap.ProductActive,
	)
	return snap, err
}

// ListSnapshots resolves many SKUs in one round trip. Statistics and
// validation passes call this instead of looping GetSnapshot.
func (r *repository) ListSnapshots(ctx context.Context, skuIDs []uuid.UUID) ([]SkuSnapshot, error) {
	if len(skuIDs) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(skuIDs))
	for _, id := range skuIDs {
		ids = append(ids, id.String())
	}

	rows, err := r.db.QueryContext(ctx, snapshotQuery+` WHERE s.id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []SkuSnapshot
	for rows.Next() {
		var snap SkuSnapshot
		if err := rows.Scan(
			&snap.SkuID,
			&snap.ProductID,
			&snap.ProductName,
			&snap.Price,
			&snap.Stock,
			&snap.SkuActive,
			&snap.ProductActive,
		); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, rows.Err()
}
