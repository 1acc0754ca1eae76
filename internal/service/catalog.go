package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/autoshowroom/backend/internal/logging"
	"github.com/autoshowroom/backend/internal/models"
	"github.com/autoshowroom/backend/internal/mykafka"
	"github.com/autoshowroom/backend/internal/transport"
)

const SearchLimit = 20

type ProductRepo interface {
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetProductsByIDs(ctx context.Context, ids []uint) ([]models.Product, error)
	CreateProduct(ctx context.Context, prod *models.Product) error
	UpdateProduct(ctx context.Context, id uint, prod models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
	SearchProducts(ctx context.Context, q string, limit int) ([]models.Product, error)
}

// ProductIndex is an optional full-text index kept in sync with the store.
type ProductIndex interface {
	IndexProduct(ctx context.Context, p models.Product) error
	DeleteProduct(ctx context.Context, id uint) error
	Search(ctx context.Context, query string, size int) ([]uint, error)
}

type CatalogService struct {
	Repo   ProductRepo
	Index  ProductIndex
	Events mykafka.Publisher
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *CatalogService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.ProductRequest) (*models.Product, error) {
	if err := checkPrice(req); err != nil {
		return nil, err
	}

	draft := transport.ToProductModel(req)
	if err := s.Repo.CreateProduct(ctx, &draft); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	prod, err := s.Repo.GetProduct(ctx, draft.ID)
	if err != nil {
		return nil, fmt.Errorf("reload product %d: %w", draft.ID, err)
	}

	s.index(ctx, *prod)
	publish(ctx, s.Events, mykafka.TopicProducts, productKey(prod.ID), "product_created", transport.ToProductResponse(*prod))
	return prod, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, req transport.ProductRequest) (*models.Product, error) {
	if err := checkPrice(req); err != nil {
		return nil, err
	}

	prod, err := s.Repo.UpdateProduct(ctx, id, transport.ToProductModel(req))
	if err != nil {
		return nil, err
	}

	s.index(ctx, *prod)
	publish(ctx, s.Events, mykafka.TopicProducts, productKey(prod.ID), "product_updated", transport.ToProductResponse(*prod))
	return prod, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	if s.Index != nil {
		if err := s.Index.DeleteProduct(ctx, id); err != nil {
			logging.FromContext(ctx).Error("search_index_delete_failed", "product_id", id, "error", err)
		}
	}
	publish(ctx, s.Events, mykafka.TopicProducts, productKey(id), "product_deleted", map[string]any{"id": id})
	return nil
}

// SearchProducts prefers the search index and falls back to the store when the
// index is absent or failing.
func (s *CatalogService) SearchProducts(ctx context.Context, q string) ([]models.Product, error) {
	if s.Index != nil {
		ids, err := s.Index.Search(ctx, q, SearchLimit)
		if err == nil {
			return s.Repo.GetProductsByIDs(ctx, ids)
		}
		logging.FromContext(ctx).Warn("search_index_query_failed", "reason", "falling back to store", "error", err)
	}
	return s.Repo.SearchProducts(ctx, q, SearchLimit)
}

func (s *CatalogService) index(ctx context.Context, p models.Product) {
	if s.Index == nil {
		return
	}
	if err := s.Index.IndexProduct(ctx, p); err != nil {
		logging.FromContext(ctx).Error("search_index_update_failed", "product_id", p.ID, "error", err)
	}
}

// maxPrice is the first value that no longer fits numeric(15,2).
var maxPrice = decimal.New(1, 13)

func checkPrice(req transport.ProductRequest) error {
	if req.Price == nil {
		return nil
	}
	p := *req.Price
	switch {
	case p.IsNegative():
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	case !p.Equal(p.Round(2)):
		return fmt.Errorf("%w: price must have at most 2 decimal places", ErrValidation)
	case p.GreaterThanOrEqual(maxPrice):
		return fmt.Errorf("%w: price must be less than %s", ErrValidation, maxPrice.String())
	}
	return nil
}

func productKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
