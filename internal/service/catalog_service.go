package service

import (
	"go-retail-backoffice/internal/model"
	"go-retail-backoffice/internal/repository"
	"go-retail-backoffice/pkg/validator"

	"github.com/google/uuid"
)

type CatalogService interface {
	CreateProduct(req *model.Product) error
	GetProducts() ([]model.Product, error)
	GetProduct(id uuid.UUID) (*model.Product, error)
	UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
	GetLowStockItems() ([]model.LowStockItem, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogService{productRepo: productRepo}
}

func (s *catalogService) CreateProduct(req *model.Product) error {
	if err := validator.Check(req); err != nil {
		return err
	}

	if req.LowStockThreshold == 0 {
		req.LowStockThreshold = model.DefaultLowStockThreshold
	}
	assignVariantIDs(req.Variants)

	return s.productRepo.Create(req)
}

func (s *catalogService) GetProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *catalogService) GetProduct(id uuid.UUID) (*model.Product, error) {
	return s.productRepo.FindByID(id)
}

// UpdateProduct replaces the product wholesale, keeping identity and
// creation timestamp. Variants without an id (newly added ones) get one.
func (s *catalogService) UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error) {
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	req.ID = existing.ID
	req.CreatedAt = existing.CreatedAt
	if req.LowStockThreshold == 0 {
		req.LowStockThreshold = model.DefaultLowStockThreshold
	}
	assignVariantIDs(req.Variants)

	if err := s.productRepo.Save(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *catalogService) DeleteProduct(id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		return err
	}
	return s.productRepo.Delete(id)
}

// GetLowStockItems walks every product and collects variants whose stock is
// at or below the product's threshold.
func (s *catalogService) GetLowStockItems() ([]model.LowStockItem, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}

	items := []model.LowStockItem{}
	for _, product := range products {
		for _, variant := range product.Variants {
			if variant.StockQuantity <= product.LowStockThreshold {
				items = append(items, model.LowStockItem{
					ProductID:    product.ID,
					ProductName:  product.Name,
					VariantID:    variant.ID,
					Size:         variant.Size,
					Color:        variant.Color,
					CurrentStock: variant.StockQuantity,
					Threshold:    product.LowStockThreshold,
				})
			}
		}
	}
	return items, nil
}

func assignVariantIDs(variants []model.Variant) {
	for i := range variants {
		if variants[i].ID == "" {
			variants[i].ID = uuid.NewString()
		}
	}
}
