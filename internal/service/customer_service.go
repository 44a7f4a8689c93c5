package service

import (
	"go-retail-backoffice/internal/model"
	"go-retail-backoffice/internal/repository"
	"go-retail-backoffice/pkg/validator"

	"github.com/google/uuid"
)

type CustomerService interface {
	CreateCustomer(req *model.Customer) error
	GetCustomers() ([]model.Customer, error)
	GetCustomer(id uuid.UUID) (*model.Customer, error)
	UpdateCustomer(id uuid.UUID, req *model.Customer) (*model.Customer, error)
	DeleteCustomer(id uuid.UUID) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(req *model.Customer) error {
	if err := validator.Check(req); err != nil {
		return err
	}
	return s.customerRepo.Create(req)
}

func (s *customerService) GetCustomers() ([]model.Customer, error) {
	return s.customerRepo.FindAll()
}

func (s *customerService) GetCustomer(id uuid.UUID) (*model.Customer, error) {
	return s.customerRepo.FindByID(id)
}

// UpdateCustomer replaces the record wholesale. Orders denormalize customer
// fields at creation time, so edits here never touch past orders.
func (s *customerService) UpdateCustomer(id uuid.UUID, req *model.Customer) (*model.Customer, error) {
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	existing, err := s.customerRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	req.ID = existing.ID
	req.CreatedAt = existing.CreatedAt
	if err := s.customerRepo.Save(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *customerService) DeleteCustomer(id uuid.UUID) error {
	if _, err := s.customerRepo.FindByID(id); err != nil {
		return err
	}
	return s.customerRepo.Delete(id)
}
