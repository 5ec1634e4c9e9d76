package cart

import (
	"context"
	"database/sql"
	"errors"
	"time"

	autherrors "go-wemall-api/internal/auth/errors"
	"go-wemall-api/internal/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	AddItem(ctx context.Context, userID string, req AddItemRequest) (CartItemDetailResponse, error)
	UpdateItem(ctx context.Context, userID, itemID string, req UpdateItemRequest) (CartItemDetailResponse, error)
	DeleteItem(ctx context.Context, userID, itemID string) (bool, error)
	BatchOperate(ctx context.Context, userID string, req BatchOperateRequest) (BatchOperateResponse, error)
	ClearCart(ctx context.Context, userID string, checkedOnly bool) (int64, error)

	List(ctx context.Context, userID string, checked *bool, page, limit int) ([]CartItemDetailResponse, int64, error)
	Statistics(ctx context.Context, userID string) (CartStatisticsResponse, error)
	Validate(ctx context.Context, userID string, cartIDs []string) (CartValidationResponse, error)
	Count(ctx context.Context, userID string) (int64, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	catalog  catalog.SnapshotProvider
	logger   *zap.Logger
	validate *validator.Validate
}

type Deps struct {
	DB      *sql.DB
	Repo    Repository
	Catalog catalog.SnapshotProvider
	Logger  *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &service{
		db:       deps.DB,
		repo:     deps.Repo,
		catalog:  deps.Catalog,
		logger:   deps.Logger,
		validate: validator.New(),
	}
}

// ========================
// helpers
// ========================

func (s *service) parseUserID(userID string) (uuid.UUID, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, autherrors.ErrInvalidUserID
	}
	return id, nil
}

// getOwnedItem treats a row owned by someone else the same as a
// missing row, so mutations can never cross user boundaries.
func (s *service) getOwnedItem(ctx context.Context, uid uuid.UUID, itemID string) (Item, error) {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return Item{}, ErrInvalidCartItemID
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Item{}, ErrCartItemNotFound
		}
		return Item{}, err
	}
	if item.UserID != uid {
		return Item{}, ErrCartItemNotFound
	}
	return item, nil
}

// snapshotForSku maps a purged SKU to the offline error; any other
// provider failure propagates unchanged.
func (s *service) snapshotForSku(ctx context.Context, skuID uuid.UUID) (catalog.SkuSnapshot, error) {
	snap, err := s.catalog.GetSnapshot(ctx, skuID)
	if err != nil {
		if errors.Is(err, catalog.ErrSkuNotFound) {
			return catalog.SkuSnapshot{}, ErrSkuOffline
		}
		return catalog.SkuSnapshot{}, err
	}
	return snap, nil
}

func (s *service) buildDetail(item Item, snap *catalog.SkuSnapshot) CartItemDetailResponse {
	detail := CartItemDetailResponse{
		ID:        item.ID.String(),
		SkuID:     item.SkuID.String(),
		Quantity:  item.Quantity,
		Checked:   item.Checked,
		CreatedAt: item.CreatedAt.Format(time.RFC3339),
		UpdatedAt: item.UpdatedAt.Format(time.RFC3339),
	}

	verdict := EvaluateAvailability(snap, item.Quantity)
	detail.Available = verdict.Available
	detail.Reason = string(verdict.Reason)

	if snap != nil {
		detail.ProductID = snap.ProductID.String()
		detail.ProductName = snap.ProductName
		detail.Price = snap.Price.String()
		detail.TotalPrice = snap.Price.Mul(decimal.NewFromInt32(item.Quantity)).String()
	}
	return detail
}

// ========================
// mutations
// ========================

// AddItem merges into an existing (user, sku) line when present. The
// merged total, not the increment, is validated against live stock;
// on failure the transaction rolls back and the stored line keeps its
// previous quantity.
func (s *service) AddItem(ctx context.Context, userID string, req AddItemRequest) (CartItemDetailResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return CartItemDetailResponse{}, ErrInvalidQuantity
	}

	uid, err := s.parseUserID(userID)
	if err != nil {
		return CartItemDetailResponse{}, err
	}

	skuID, err := uuid.Parse(req.SkuID)
	if err != nil {
		return CartItemDetailResponse{}, catalog.ErrInvalidSkuID
	}

	snap, err := s.snapshotForSku(ctx, skuID)
	if err != nil {
		return CartItemDetailResponse{}, err
	}
	if !snap.SkuActive {
		return CartItemDetailResponse{}, ErrSkuOffline
	}
	if !snap.ProductActive {
		return CartItemDetailResponse{}, ErrProductOffline
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CartItemDetailResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	merged := req.Quantity
	existing, err := qtx.GetByUserAndSku(ctx, uid, skuID)
	switch {
	case err == nil:
		merged += existing.Quantity
	case !errors.Is(err, sql.ErrNoRows):
		return CartItemDetailResponse{}, err
	}

	if merged > MaxQuantity {
		return CartItemDetailResponse{}, ErrInvalidQuantity
	}
	if snap.Stock < merged {
		return CartItemDetailResponse{}, NewInsufficientStock(snap.Stock)
	}

	item, err := qtx.UpsertQuantity(ctx, uid, skuID, req.Quantity)
	if err != nil {
		return CartItemDetailResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return CartItemDetailResponse{}, err
	}

	s.logger.Debug("cart item added",
		zap.String("user_id", uid.String()),
		zap.String("sku_id", skuID.String()),
		zap.Int32("quantity", item.Quantity))

	return s.buildDetail(item, &snap), nil
}

// UpdateItem replaces the stored quantity (no merge) and/or flips the
// checked flag. A quantity change is re-validated against live stock;
// a checked flip alone touches nothing else.
func (s *service) UpdateItem(ctx context.Context, userID, itemID string, req UpdateItemRequest) (CartItemDetailResponse, error) {
	if req.Quantity == nil && req.Checked == nil {
		return CartItemDetailResponse{}, ErrEmptyUpdate
	}
	if err := s.validate.Struct(req); err != nil {
		return CartItemDetailResponse{}, ErrInvalidQuantity
	}

	uid, err := s.parseUserID(userID)
	if err != nil {
		return CartItemDetailResponse{}, err
	}

	item, err := s.getOwnedItem(ctx, uid, itemID)
	if err != nil {
		return CartItemDetailResponse{}, err
	}

	var snap *catalog.SkuSnapshot
	if req.Quantity != nil {
		sn, err := s.snapshotForSku(ctx, item.SkuID)
		if err != nil {
			return CartItemDetailResponse{}, err
		}
		if sn.Stock < *req.Quantity {
			return CartItemDetailResponse{}, NewInsufficientStock(sn.Stock)
		}
		snap = &sn
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CartItemDetailResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if req.Quantity != nil {
		item, err = qtx.UpdateQuantity(ctx, item.ID, *req.Quantity)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return CartItemDetailResponse{}, ErrCartItemNotFound
			}
			return CartItemDetailResponse{}, err
		}
	}
	if req.Checked != nil {
		item, err = qtx.UpdateChecked(ctx, item.ID, *req.Checked)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return CartItemDetailResponse{}, ErrCartItemNotFound
			}
			return CartItemDetailResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return CartItemDetailResponse{}, err
	}

	if snap == nil {
		if sn, err := s.catalog.GetSnapshot(ctx, item.SkuID); err == nil {
			snap = &sn
		}
	}
	return s.buildDetail(item, snap), nil
}

// DeleteItem is idempotent: a missing row (or a malformed id) reports
// false without an error.
func (s *service) DeleteItem(ctx context.Context, userID, itemID string) (bool, error) {
	uid, err := s.parseUserID(userID)
	if err != nil {
		return false, err
	}

	item, err := s.getOwnedItem(ctx, uid, itemID)
	if err != nil {
		if errors.Is(err, ErrCartItemNotFound) || errors.Is(err, ErrInvalidCartItemID) {
			return false, nil
		}
		return false, err
	}

	return s.repo.Delete(ctx, item.ID)
}

// BatchOperate applies the single-item operation to every id
// independently. A failing id is tallied and the loop moves on; no
// transaction spans the batch.
func (s *service) BatchOperate(ctx context.Context, userID string, req BatchOperateRequest) (BatchOperateResponse, error) {
	if _, err := s.parseUserID(userID); err != nil {
		return BatchOperateResponse{}, err
	}

	var result BatchOperateResponse
	if len(req.IDs) == 0 {
		return result, nil
	}

	checked := true
	unchecked := false

	for _, id := range req.IDs {
		var err error
		switch req.Action {
		case ActionDelete:
			var deleted bool
			deleted, err = s.DeleteItem(ctx, userID, id)
			if err == nil && !deleted {
				err = ErrCartItemNotFound
			}
		case ActionCheck:
			_, err = s.UpdateItem(ctx, userID, id, UpdateItemRequest{Checked: &checked})
		case ActionUncheck:
			_, err = s.UpdateItem(ctx, userID, id, UpdateItemRequest{Checked: &unchecked})
		default:
			return BatchOperateResponse{}, ErrInvalidBatchAction
		}

		if err != nil {
			s.logger.Debug("batch operation failed for item",
				zap.String("cart_item_id", id),
				zap.String("action", req.Action),
				zap.Error(err))
			result.Failed++
			continue
		}
		result.Success++
	}

	return result, nil
}

func (s *service) ClearCart(ctx context.Context, userID string, checkedOnly bool) (int64, error) {
	uid, err := s.parseUserID(userID)
	if err != nil {
		return 0, err
	}
	return s.repo.DeleteByUser(ctx, uid, checkedOnly)
}

// ========================
// reads
// ========================

func (s *service) List(ctx context.Context, userID string, checked *bool, page, limit int) ([]CartItemDetailResponse, int64, error) {
	uid, err := s.parseUserID(userID)
	if err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	items, err := s.repo.ListByUser(ctx, uid, ListFilter{
		Checked: checked,
		Limit:   int32(limit),
		Offset:  int32((page - 1) * limit),
	})
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.CountByUser(ctx, uid, checked)
	if err != nil {
		return nil, 0, err
	}

	snapshots, err := s.resolveSnapshots(ctx, items)
	if err != nil {
		return nil, 0, err
	}

	details := make([]CartItemDetailResponse, 0, len(items))
	for _, item := range items {
		var snapRef *catalog.SkuSnapshot
		if snap, ok := snapshots[item.SkuID]; ok {
			snapRef = &snap
		}
		details = append(details, s.buildDetail(item, snapRef))
	}
	return details, total, nil
}

func (s *service) Statistics(ctx context.Context, userID string) (CartStatisticsResponse, error) {
	uid, err := s.parseUserID(userID)
	if err != nil {
		return CartStatisticsResponse{}, err
	}

	items, err := s.repo.ListByUser(ctx, uid, ListFilter{})
	if err != nil {
		return CartStatisticsResponse{}, err
	}

	snapshots, err := s.resolveSnapshots(ctx, items)
	if err != nil {
		return CartStatisticsResponse{}, err
	}

	stats := ComputeStatistics(items, snapshots)
	return CartStatisticsResponse{
		TotalItems:       stats.TotalItems,
		CheckedItems:     stats.CheckedItems,
		TotalPrice:       stats.TotalPrice.String(),
		CheckedPrice:     stats.CheckedPrice.String(),
		AvailableItems:   stats.AvailableItems,
		UnavailableItems: stats.UnavailableItems,
	}, nil
}

// Validate runs the availability check over the user's full cart, or a
// subset when cartIDs is non-empty. IDs that do not resolve to one of
// the user's lines are ignored.
func (s *service) Validate(ctx context.Context, userID string, cartIDs []string) (CartValidationResponse, error) {
	uid, err := s.parseUserID(userID)
	if err != nil {
		return CartValidationResponse{}, err
	}

	items, err := s.repo.ListByUser(ctx, uid, ListFilter{})
	if err != nil {
		return CartValidationResponse{}, err
	}

	if len(cartIDs) > 0 {
		wanted := make(map[uuid.UUID]struct{}, len(cartIDs))
		for _, raw := range cartIDs {
			if id, err := uuid.Parse(raw); err == nil {
				wanted[id] = struct{}{}
			}
		}
		filtered := items[:0]
		for _, item := range items {
			if _, ok := wanted[item.ID]; ok {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	snapshots, err := s.resolveSnapshots(ctx, items)
	if err != nil {
		return CartValidationResponse{}, err
	}

	report := CartValidationResponse{
		Valid:        true,
		InvalidItems: []InvalidCartItem{},
	}

	for _, item := range items {
		snap, resolved := snapshots[item.SkuID]
		var snapRef *catalog.SkuSnapshot
		if resolved {
			snapRef = &snap
		}

		verdict := EvaluateAvailability(snapRef, item.Quantity)
		if verdict.Available {
			continue
		}

		invalid := InvalidCartItem{
			CartID: item.ID.String(),
			SkuID:  item.SkuID.String(),
			Reason: string(verdict.Reason),
		}
		if resolved {
			invalid.ProductName = snap.ProductName
		}
		if verdict.Reason == ReasonOutOfStock || verdict.Reason == ReasonInsufficientStock {
			stock := snap.Stock
			qty := item.Quantity
			invalid.CurrentStock = &stock
			invalid.RequestedQuantity = &qty
		}
		report.InvalidItems = append(report.InvalidItems, invalid)
	}

	report.Valid = len(report.InvalidItems) == 0
	return report, nil
}

func (s *service) Count(ctx context.Context, userID string) (int64, error) {
	uid, err := s.parseUserID(userID)
	if err != nil {
		return 0, err
	}
	return s.repo.SumQuantityByUser(ctx, uid)
}

// resolveSnapshots fetches every distinct SKU in one batch call so a
// statistics or validation pass costs one catalog query, not N.
func (s *service) resolveSnapshots(ctx context.Context, items []Item) (map[uuid.UUID]catalog.SkuSnapshot, error) {
	if len(items) == 0 {
		return map[uuid.UUID]catalog.SkuSnapshot{}, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(items))
	skuIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.SkuID]; ok {
			continue
		}
		seen[item.SkuID] = struct{}{}
		skuIDs = append(skuIDs, item.SkuID)
	}

	return s.catalog.GetSnapshots(ctx, skuIDs)
}
