package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"shoply-be/internal/apperrors"
	"shoply-be/internal/cache"
	"shoply-be/internal/entities"
	"shoply-be/internal/models"
	"shoply-be/internal/repository"
	"shoply-be/internal/uploader"
)

// ProductService defines the interface for product business logic
type ProductService interface {
	CreateProduct(input *models.CreateProductInput) (*entities.Product, error)
	ListProducts(search string) ([]*entities.Product, error)
	GetProduct(id string) (*entities.Product, error)
	DeleteProduct(id string) error
}

type productService struct {
	repo     repository.ProductRepository
	uploader uploader.Uploader
	cache    cache.Cache
	ctx      context.Context
}

// listCacheKey caches the unfiltered product list only; search results go
// straight to the database.
const listCacheKey = "products:all"

const listCacheTTL = 5 * time.Minute

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository, up uploader.Uploader, cacheClient cache.Cache) ProductService {
	svc := &productService{
		repo:     repo,
		uploader: up,
		ctx:      context.Background(),
	}
	// Only set cache if provided (allows graceful degradation)
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

// CreateProduct uploads the attached image (if any) to the media host and
// inserts the product. If the insert fails after a successful upload the
// remote file is orphaned; there is no compensation step.
func (s *productService) CreateProduct(input *models.CreateProductInput) (*entities.Product, error) {
	if input.Price < 0 {
		return nil, apperrors.Validation("Price must not be negative")
	}
	if input.Stock < 0 {
		return nil, apperrors.Validation("Stock must not be negative")
	}

	imageURL := ""
	if len(input.ImageData) > 0 {
		url, err := s.uploader.Upload(input.ImageName, input.ImageData)
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		imageURL = url
	}

	product, err := s.repo.Create(input.Name, input.Description, input.Price, input.Stock, input.Category, imageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.invalidateListCache()
	return product, nil
}

// ListProducts returns products newest-first, filtered by name when search
// is non-empty. The unfiltered list is served from cache when possible.
func (s *productService) ListProducts(search string) ([]*entities.Product, error) {
	if search == "" && s.cache != nil {
		var cached []*entities.Product
		if err := s.cache.GetJSON(s.ctx, listCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	products, err := s.repo.List(search)
	if err != nil {
		return nil, err
	}

	if search == "" && s.cache != nil {
		if err := s.cache.SetJSON(s.ctx, listCacheKey, products, listCacheTTL); err != nil {
			log.Warn().Err(err).Msg("failed to cache product list")
		}
	}

	return products, nil
}

// GetProduct returns a single product by id.
func (s *productService) GetProduct(id string) (*entities.Product, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.ErrProductNotFound
	}
	return product, nil
}

// DeleteProduct removes a product together with every cart item that
// references it, in one transaction.
func (s *productService) DeleteProduct(id string) error {
	rowsAffected, err := s.repo.DeleteWithCartItems(id)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return apperrors.ErrProductNotFound
	}

	s.invalidateListCache()
	return nil
}

func (s *productService) invalidateListCache() {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(s.ctx, listCacheKey); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate product list cache")
	}
}
