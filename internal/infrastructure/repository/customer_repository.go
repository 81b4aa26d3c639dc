package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/domain/entity"
	domainRepo "github.com/juliotite/vendas-crm/internal/domain/repository"
	"github.com/juliotite/vendas-crm/pkg/pagination"
	"gorm.io/gorm"
)

// inactivityRef resolves the customer's inactivity reference in SQL:
// last purchase date when present, creation date otherwise.
const inactivityRef = "COALESCE(last_purchase_date, created_at)"

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).Preload("Seller").First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *customerRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.Customer{}).
		Where("id = ?", id).
		Update("active", false).Error
}

func (r *customerRepository) SetLastPurchaseDate(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&entity.Customer{}).
		Where("id = ?", id).
		Update("last_purchase_date", at).Error
}

func (r *customerRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var customers []entity.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Customer{})

	if search != "" {
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Preload("Seller").
		Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&customers).Error

	return customers, total, err
}

func (r *customerRepository) ListActiveWithBirthDate(ctx context.Context) ([]entity.Customer, error) {
	var customers []entity.Customer
	err := r.db.WithContext(ctx).
		Preload("Seller").
		Where("active = ? AND birth_date IS NOT NULL", true).
		Find(&customers).Error
	return customers, err
}

func (r *customerRepository) ListInactiveBetween(ctx context.Context, start, end time.Time) ([]entity.Customer, error) {
	var customers []entity.Customer
	err := r.db.WithContext(ctx).
		Preload("Seller").
		Where("active = ?", true).
		Where(inactivityRef+" BETWEEN ? AND ?", start, end).
		Find(&customers).Error
	return customers, err
}

func (r *customerRepository) CountInactiveSince(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Where("active = ?", true).
		Where(inactivityRef+" < ?", cutoff).
		Count(&count).Error
	return count, err
}

func (r *customerRepository) ListInactiveSince(ctx context.Context, cutoff time.Time) ([]entity.Customer, error) {
	var customers []entity.Customer
	err := r.db.WithContext(ctx).
		Preload("Seller").
		Where("active = ?", true).
		Where(inactivityRef+" < ?", cutoff).
		Order(inactivityRef + " ASC").
		Find(&customers).Error
	return customers, err
}
