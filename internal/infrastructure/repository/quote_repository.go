package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/domain/entity"
	"github.com/juliotite/vendas-crm/internal/domain/enum"
	domainRepo "github.com/juliotite/vendas-crm/internal/domain/repository"
	"gorm.io/gorm"
)

type quoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository creates a new quote repository
func NewQuoteRepository(db *gorm.DB) domainRepo.QuoteRepository {
	return &quoteRepository{db: db}
}

func (r *quoteRepository) Create(ctx context.Context, quote *entity.Quote) error {
	return r.db.WithContext(ctx).Create(quote).Error
}

func (r *quoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	var quote entity.Quote
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Seller").
		First(&quote, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quote, err
}

func (r *quoteRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	var quote entity.Quote
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Seller").
		Preload("Items").
		Preload("Items.Product").
		First(&quote, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quote, err
}

func (r *quoteRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuoteStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Quote{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *quoteRepository) UpdateNotes(ctx context.Context, id uuid.UUID, notes *string) error {
	return r.db.WithContext(ctx).Model(&entity.Quote{}).
		Where("id = ?", id).
		Update("notes", notes).Error
}

func (r *quoteRepository) List(ctx context.Context, params *domainRepo.QuoteFilterParams) ([]entity.Quote, int64, error) {
	var quotes []entity.Quote
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Quote{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.SellerID != nil {
		query = query.Where("seller_id = ?", *params.SellerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Preload("Customer").
		Preload("Seller").
		Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("placed_at DESC").
		Find(&quotes).Error

	return quotes, total, err
}

func (r *quoteRepository) ListOpenPlacedBetween(ctx context.Context, start, end time.Time) ([]entity.Quote, error) {
	var quotes []entity.Quote
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("status = ?", enum.QuoteStatusOpen).
		Where("placed_at BETWEEN ? AND ?", start, end).
		Find(&quotes).Error
	return quotes, err
}

func (r *quoteRepository) GetLatestOpenByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Quote, error) {
	var quote entity.Quote
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND status = ?", customerID, enum.QuoteStatusOpen).
		Order("placed_at DESC").
		First(&quote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quote, err
}

func (r *quoteRepository) CountOpen(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Quote{}).
		Where("status = ?", enum.QuoteStatusOpen).
		Count(&count).Error
	return count, err
}

func (r *quoteRepository) CountOpenPlacedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Quote{}).
		Where("status = ? AND placed_at < ?", enum.QuoteStatusOpen, cutoff).
		Count(&count).Error
	return count, err
}

func (r *quoteRepository) ListOpenWithCustomer(ctx context.Context) ([]entity.Quote, error) {
	var quotes []entity.Quote
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Seller").
		Where("status = ?", enum.QuoteStatusOpen).
		Order("placed_at ASC").
		Find(&quotes).Error
	return quotes, err
}

func (r *quoteRepository) SumClosedSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Quote{}).
		Where("status = ? AND placed_at >= ?", enum.QuoteStatusClosed, since).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}

func (r *quoteRepository) TopSellersSince(ctx context.Context, since time.Time, limit int) ([]domainRepo.SellerSales, error) {
	var results []domainRepo.SellerSales
	err := r.db.WithContext(ctx).Model(&entity.Quote{}).
		Select("quotes.seller_id, sellers.name AS seller_name, COALESCE(SUM(quotes.total), 0) AS total, COUNT(*) AS count").
		Joins("JOIN sellers ON sellers.id = quotes.seller_id").
		Where("quotes.status = ? AND quotes.placed_at >= ?", enum.QuoteStatusClosed, since).
		Group("quotes.seller_id, sellers.name").
		Order("total DESC").
		Limit(limit).
		Scan(&results).Error
	return results, err
}

func (r *quoteRepository) TopProducts(ctx context.Context, limit int) ([]domainRepo.ProductSales, error) {
	var results []domainRepo.ProductSales
	err := r.db.WithContext(ctx).Model(&entity.QuoteItem{}).
		Select("quote_items.product_id, products.name AS product_name, COALESCE(SUM(quote_items.quantity), 0) AS quantity").
		Joins("JOIN products ON products.id = quote_items.product_id").
		Joins("JOIN quotes ON quotes.id = quote_items.quote_id").
		Where("quotes.status = ?", enum.QuoteStatusClosed).
		Group("quote_items.product_id, products.name").
		Order("quantity DESC").
		Limit(limit).
		Scan(&results).Error
	return results, err
}

func (r *quoteRepository) SellerPerformance(ctx context.Context) ([]domainRepo.SellerSales, error) {
	var results []domainRepo.SellerSales
	err := r.db.WithContext(ctx).Model(&entity.Quote{}).
		Select("quotes.seller_id, sellers.name AS seller_name, COALESCE(SUM(quotes.total), 0) AS total, COUNT(*) AS count").
		Joins("JOIN sellers ON sellers.id = quotes.seller_id").
		Where("quotes.status = ?", enum.QuoteStatusClosed).
		Group("quotes.seller_id, sellers.name").
		Order("total DESC").
		Scan(&results).Error
	return results, err
}
