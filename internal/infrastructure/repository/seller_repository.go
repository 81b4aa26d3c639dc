package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/domain/entity"
	domainRepo "github.com/juliotite/vendas-crm/internal/domain/repository"
	"gorm.io/gorm"
)

type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository creates a new seller repository
func NewSellerRepository(db *gorm.DB) domainRepo.SellerRepository {
	return &sellerRepository{db: db}
}

func (r *sellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	return r.db.WithContext(ctx).Create(seller).Error
}

func (r *sellerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	var seller entity.Seller
	err := r.db.WithContext(ctx).First(&seller, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &seller, err
}

func (r *sellerRepository) GetFirstActive(ctx context.Context) (*entity.Seller, error) {
	var seller entity.Seller
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at ASC").
		First(&seller).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &seller, err
}

func (r *sellerRepository) FindByName(ctx context.Context, name string) (*entity.Seller, error) {
	var seller entity.Seller
	err := r.db.WithContext(ctx).First(&seller, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &seller, err
}

func (r *sellerRepository) Update(ctx context.Context, seller *entity.Seller) error {
	return r.db.WithContext(ctx).Save(seller).Error
}

func (r *sellerRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.Seller{}).
		Where("id = ?", id).
		Update("active", false).Error
}

func (r *sellerRepository) List(ctx context.Context) ([]entity.Seller, error) {
	var sellers []entity.Seller
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&sellers).Error
	return sellers, err
}
