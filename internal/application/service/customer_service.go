package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/domain/entity"
	"github.com/juliotite/vendas-crm/internal/domain/repository"
	"github.com/juliotite/vendas-crm/pkg/apperror"
	"github.com/juliotite/vendas-crm/pkg/pagination"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
	sellerRepo   repository.SellerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, sellerRepo repository.SellerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, sellerRepo: sellerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	SellerID         *uuid.UUID
	Name             string
	Phone            string
	Email            *string
	Address          *string
	BirthDate        *time.Time
	LastPurchaseDate *time.Time
}

// CreateCustomer creates a new customer. When no seller is given the
// customer is assigned to the first active seller.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	var sellerID uuid.UUID
	if input.SellerID != nil {
		seller, err := s.sellerRepo.GetByID(ctx, *input.SellerID)
		if err != nil {
			return nil, err
		}
		if seller == nil {
			return nil, apperror.NewNotFoundError("Seller")
		}
		sellerID = seller.ID
	} else {
		seller, err := s.sellerRepo.GetFirstActive(ctx)
		if err != nil {
			return nil, err
		}
		if seller == nil {
			return nil, apperror.NewBadRequestError("No active seller available to assign the customer to")
		}
		sellerID = seller.ID
	}

	customer := &entity.Customer{
		SellerID:         sellerID,
		Name:             input.Name,
		Phone:            input.Phone,
		Email:            input.Email,
		Address:          input.Address,
		BirthDate:        input.BirthDate,
		LastPurchaseDate: input.LastPurchaseDate,
		Active:           true,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with pagination and optional search
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID               uuid.UUID
	SellerID         *uuid.UUID
	Name             *string
	Phone            *string
	Email            *string
	Address          *string
	BirthDate        *time.Time
	LastPurchaseDate *time.Time
	Active           *bool
}

// UpdateCustomer updates a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.SellerID != nil {
		seller, err := s.sellerRepo.GetByID(ctx, *input.SellerID)
		if err != nil {
			return nil, err
		}
		if seller == nil {
			return nil, apperror.NewNotFoundError("Seller")
		}
		customer.SellerID = seller.ID
	}
	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.BirthDate != nil {
		customer.BirthDate = input.BirthDate
	}
	if input.LastPurchaseDate != nil {
		customer.LastPurchaseDate = input.LastPurchaseDate
	}
	if input.Active != nil {
		customer.Active = *input.Active
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeactivateCustomer deactivates a customer
func (s *CustomerService) DeactivateCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	return s.customerRepo.Deactivate(ctx, id)
}
