package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/domain/entity"
	"github.com/juliotite/vendas-crm/internal/domain/repository"
	"github.com/juliotite/vendas-crm/pkg/apperror"
)

// SellerService handles seller-related operations
type SellerService struct {
	sellerRepo repository.SellerRepository
}

// NewSellerService creates a new seller service
func NewSellerService(sellerRepo repository.SellerRepository) *SellerService {
	return &SellerService{sellerRepo: sellerRepo}
}

// CreateSellerInput represents the create seller input
type CreateSellerInput struct {
	Name  string
	Email *string
	Phone string
}

// CreateSeller creates a new seller
func (s *SellerService) CreateSeller(ctx context.Context, input *CreateSellerInput) (*entity.Seller, error) {
	existing, err := s.sellerRepo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Seller with this name already exists")
	}

	seller := &entity.Seller{
		Name:   input.Name,
		Email:  input.Email,
		Phone:  input.Phone,
		Active: true,
	}

	if err := s.sellerRepo.Create(ctx, seller); err != nil {
		return nil, err
	}

	return seller, nil
}

// GetSeller retrieves a seller by ID
func (s *SellerService) GetSeller(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	seller, err := s.sellerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, apperror.NewNotFoundError("Seller")
	}
	return seller, nil
}

// ListSellers lists all sellers
func (s *SellerService) ListSellers(ctx context.Context) ([]entity.Seller, error) {
	return s.sellerRepo.List(ctx)
}

// UpdateSellerInput represents the update seller input
type UpdateSellerInput struct {
	ID     uuid.UUID
	Name   *string
	Email  *string
	Phone  *string
	Active *bool
}

// UpdateSeller updates a seller
func (s *SellerService) UpdateSeller(ctx context.Context, input *UpdateSellerInput) (*entity.Seller, error) {
	seller, err := s.sellerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, apperror.NewNotFoundError("Seller")
	}

	if input.Name != nil {
		seller.Name = *input.Name
	}
	if input.Email != nil {
		seller.Email = input.Email
	}
	if input.Phone != nil {
		seller.Phone = *input.Phone
	}
	if input.Active != nil {
		seller.Active = *input.Active
	}

	if err := s.sellerRepo.Update(ctx, seller); err != nil {
		return nil, err
	}

	return seller, nil
}

// DeactivateSeller deactivates a seller
func (s *SellerService) DeactivateSeller(ctx context.Context, id uuid.UUID) error {
	seller, err := s.sellerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if seller == nil {
		return apperror.NewNotFoundError("Seller")
	}

	return s.sellerRepo.Deactivate(ctx, id)
}
