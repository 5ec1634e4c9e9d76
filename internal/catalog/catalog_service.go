package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-wemall-api/internal/outbox"
	"go-wemall-api/internal/shared/database/helper"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	skuCacheTTL    = 5 * time.Minute
	eventSkuUpdate = "SKU_UPDATED"
)

// SnapshotProvider is the read side the cart core depends on. Reads
// always hit the database so availability reflects the current catalog
// state; the Redis cache below only serves the public detail endpoint.
type SnapshotProvider interface {
	GetSnapshot(ctx context.Context, skuID uuid.UUID) (SkuSnapshot, error)
	GetSnapshots(ctx context.Context, skuIDs []uuid.UUID) (map[uuid.UUID]SkuSnapshot, error)
}

//go:generate mockgen -source=catalog_service.go -destination=../mock/catalog/catalog_service_mock.go -package=mock
type Service interface {
	SnapshotProvider

	CreateProduct(ctx context.Context, req CreateProductRequest) (ProductResponse, error)
	UpdateProduct(ctx context.Context, productID string, req UpdateProductRequest) (ProductResponse, error)
	ListProducts(ctx context.Context, page, limit int) ([]ProductResponse, int64, error)

	CreateSku(ctx context.Context, req CreateSkuRequest) (SkuResponse, error)
	UpdateSku(ctx context.Context, skuID string, req UpdateSkuRequest) (SkuResponse, error)
	SkuDetail(ctx context.Context, skuID string) (SkuDetailResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	outboxRepo outbox.Repository
	cache      *redis.Client
	logger     *zap.Logger
	validate   *validator.Validate
}

type Deps struct {
	DB         *sql.DB
	Repo       Repository
	OutboxRepo outbox.Repository
	Cache      *redis.Client
	Logger     *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &service{
		db:         deps.DB,
		repo:       deps.Repo,
		outboxRepo: deps.OutboxRepo,
		cache:      deps.Cache,
		logger:     deps.Logger,
		validate:   validator.New(),
	}
}

func skuCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("catalog:sku:%s", id)
}

// ========================
// snapshot provider
// ========================

func (s *service) GetSnapshot(ctx context.Context, skuID uuid.UUID) (SkuSnapshot, error) {
	snap, err := s.repo.GetSnapshot(ctx, skuID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SkuSnapshot{}, ErrSkuNotFound
		}
		return SkuSnapshot{}, err
	}
	return snap, nil
}

func (s *service) GetSnapshots(ctx context.Context, skuIDs []uuid.UUID) (map[uuid.UUID]SkuSnapshot, error) {
	snapshots, err := s.repo.ListSnapshots(ctx, skuIDs)
	if err != nil {
		return nil, err
	}

	result := make(map[uuid.UUID]SkuSnapshot, len(snapshots))
	for _, snap := range snapshots {
		result[snap.SkuID] = snap
	}
	return result, nil
}

// ========================
// product admin
// ========================

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (ProductResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return ProductResponse{}, ErrInvalidProductID.WithMessage("Product name is required")
	}

	p, err := s.repo.CreateProduct(ctx, req.Name, helper.BoolPtrValue(req.IsActive, true))
	if err != nil {
		return ProductResponse{}, err
	}
	return mapProduct(p), nil
}

func (s *service) UpdateProduct(ctx context.Context, productID string, req UpdateProductRequest) (ProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return ProductResponse{}, ErrInvalidProductID
	}

	p, err := s.repo.UpdateProduct(ctx, id, helper.StringToNull(req.Name), helper.BoolToNull(req.IsActive))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProductResponse{}, ErrProductNotFound
		}
		return ProductResponse{}, err
	}
	return mapProduct(p), nil
}

func (s *service) ListProducts(ctx context.Context, page, limit int) ([]ProductResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	products, err := s.repo.ListProducts(ctx, int32(limit), int32(offset))
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.CountProducts(ctx)
	if err != nil {
		return nil, 0, err
	}

	res := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		res = append(res, mapProduct(p))
	}
	return res, total, nil
}

// ========================
// sku admin
// ========================

func (s *service) CreateSku(ctx context.Context, req CreateSkuRequest) (SkuResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return SkuResponse{}, ErrInvalidSkuID.WithMessage("Invalid SKU payload")
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return SkuResponse{}, ErrInvalidProductID
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return SkuResponse{}, ErrInvalidPrice
	}

	if _, err := s.repo.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SkuResponse{}, ErrProductNotFound
		}
		return SkuResponse{}, err
	}

	sku, err := s.repo.CreateSku(ctx, productID, price, req.Stock, helper.BoolPtrValue(req.IsActive, true))
	if err != nil {
		return SkuResponse{}, err
	}
	return mapSku(sku), nil
}

// UpdateSku commits the row change and its SKU_UPDATED outbox event in
// one transaction, then drops the detail cache entry.
func (s *service) UpdateSku(ctx context.Context, skuID string, req UpdateSkuRequest) (SkuResponse, error) {
	id, err := uuid.Parse(skuID)
	if err != nil {
		return SkuResponse{}, ErrInvalidSkuID
	}

	if err := s.validate.Struct(req); err != nil {
		return SkuResponse{}, ErrInvalidSkuID.WithMessage("Invalid SKU payload")
	}

	var price decimal.NullDecimal
	if req.Price != nil {
		parsed, err := decimal.NewFromString(*req.Price)
		if err != nil || parsed.IsNegative() {
			return SkuResponse{}, ErrInvalidPrice
		}
		price = decimal.NullDecimal{Decimal: parsed, Valid: true}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SkuResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sku, err := qtx.UpdateSku(ctx, id, price, helper.Int32ToNull(req.Stock), helper.BoolToNull(req.IsActive))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SkuResponse{}, ErrSkuNotFound
		}
		return SkuResponse{}, err
	}

	event := map[string]any{
		"skuId":     sku.ID.String(),
		"productId": sku.ProductID.String(),
		"price":     sku.Price.String(),
		"stock":     sku.Stock,
		"isActive":  sku.IsActive,
	}
	if err := s.outboxRepo.WithTx(tx).Create(ctx, "sku", sku.ID, eventSkuUpdate, event); err != nil {
		return SkuResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SkuResponse{}, err
	}

	if s.cache != nil {
		if err := s.cache.Del(ctx, skuCacheKey(sku.ID)).Err(); err != nil {
			s.logger.Warn("sku cache invalidation failed",
				zap.String("sku_id", sku.ID.String()),
				zap.Error(err))
		}
	}

	return mapSku(sku), nil
}

func (s *service) SkuDetail(ctx context.Context, skuID string) (SkuDetailResponse, error) {
	id, err := uuid.Parse(skuID)
	if err != nil {
		return SkuDetailResponse{}, ErrInvalidSkuID
	}

	if s.cache != nil {
		raw, err := s.cache.Get(ctx, skuCacheKey(id)).Bytes()
		if err == nil {
			var cached SkuDetailResponse
			if json.Unmarshal(raw, &cached) == nil {
				return cached, nil
			}
		}
	}

	snap, err := s.GetSnapshot(ctx, id)
	if err != nil {
		return SkuDetailResponse{}, err
	}

	detail := SkuDetailResponse{
		ID:            snap.SkuID.String(),
		ProductID:     snap.ProductID.String(),
		ProductName:   snap.ProductName,
		ProductActive: snap.ProductActive,
		Price:         snap.Price.String(),
		Stock:         snap.Stock,
		IsActive:      snap.SkuActive,
	}

	if s.cache != nil {
		if raw, err := json.Marshal(detail); err == nil {
			if err := s.cache.Set(ctx, skuCacheKey(id), raw, skuCacheTTL).Err(); err != nil {
				s.logger.Warn("sku cache write failed", zap.Error(err))
			}
		}
	}

	return detail, nil
}

func mapProduct(p Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

func mapSku(s Sku) SkuResponse {
	return SkuResponse{
		ID:        s.ID.String(),
		ProductID: s.ProductID.String(),
		Price:     s.Price.String(),
		Stock:     s.Stock,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}
