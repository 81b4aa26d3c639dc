package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/domain/entity"
)

// SellerRepository defines the interface for seller data operations
type SellerRepository interface {
	Create(ctx context.Context, seller *entity.Seller) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error)
	GetFirstActive(ctx context.Context) (*entity.Seller, error)
	FindByName(ctx context.Context, name string) (*entity.Seller, error)
	Update(ctx context.Context, seller *entity.Seller) error
	// Deactivate soft-deletes a seller by flipping its active flag.
	Deactivate(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Seller, error)
}
