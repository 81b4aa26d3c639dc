package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/domain/entity"
	"github.com/juliotite/vendas-crm/internal/domain/enum"
	"github.com/juliotite/vendas-crm/internal/domain/repository"
	"github.com/juliotite/vendas-crm/pkg/apperror"
	"github.com/juliotite/vendas-crm/pkg/pagination"
)

// QuoteService handles quote-related operations
type QuoteService struct {
	quoteRepo    repository.QuoteRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	nowFn        func() time.Time
}

// NewQuoteService creates a new quote service
func NewQuoteService(
	quoteRepo repository.QuoteRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) *QuoteService {
	return &QuoteService{
		quoteRepo:    quoteRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		nowFn:        time.Now,
	}
}

// QuoteItemInput represents one line item of a quote
type QuoteItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateQuoteInput represents the create quote input
type CreateQuoteInput struct {
	CustomerID uuid.UUID
	Items      []QuoteItemInput
	Notes      *string
	PlacedAt   *time.Time
}

// CreateQuote creates a new OPEN quote for a customer. Line totals are
// priced from the current product catalog and summed server-side.
func (s *QuoteService) CreateQuote(ctx context.Context, input *CreateQuoteInput) (*entity.Quote, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Quote must have at least one item")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	placedAt := s.nowFn()
	if input.PlacedAt != nil {
		placedAt = *input.PlacedAt
	}

	var items []entity.QuoteItem
	var total int64
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}

		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, apperror.NewNotFoundError("Product")
		}

		subTotal := product.Price * int64(item.Quantity)
		items = append(items, entity.QuoteItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
			SubTotal:  subTotal,
		})
		total += subTotal
	}

	quote := &entity.Quote{
		CustomerID: customer.ID,
		SellerID:   customer.SellerID,
		Status:     enum.QuoteStatusOpen,
		Total:      total,
		Notes:      input.Notes,
		PlacedAt:   placedAt,
		Items:      items,
	}

	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, err
	}

	return quote, nil
}

// GetQuote retrieves a quote with its items
func (s *QuoteService) GetQuote(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	return quote, nil
}

// ListQuotes lists quotes with pagination and filters
func (s *QuoteService) ListQuotes(ctx context.Context, params *repository.QuoteFilterParams) (*pagination.PaginatedResult[entity.Quote], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	quotes, total, err := s.quoteRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(quotes, pag), nil
}

// UpdateQuoteStatus transitions a quote to a new status. Only OPEN
// quotes can transition; closing one stamps the customer's last
// purchase date so the inactivity clock restarts.
func (s *QuoteService) UpdateQuoteStatus(ctx context.Context, id uuid.UUID, status enum.QuoteStatus) (*entity.Quote, error) {
	if !status.Valid() {
		return nil, apperror.NewBadRequestError("Invalid quote status")
	}

	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}

	if quote.Status != enum.QuoteStatusOpen && quote.Status != status {
		return nil, apperror.NewConflictError("Quote is no longer open")
	}

	if err := s.quoteRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	quote.Status = status

	if status == enum.QuoteStatusClosed {
		if err := s.customerRepo.SetLastPurchaseDate(ctx, quote.CustomerID, s.nowFn()); err != nil {
			return nil, err
		}
	}

	return quote, nil
}

// UpdateQuoteNotes updates the free-text notes of a quote
func (s *QuoteService) UpdateQuoteNotes(ctx context.Context, id uuid.UUID, notes *string) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}

	if err := s.quoteRepo.UpdateNotes(ctx, id, notes); err != nil {
		return nil, err
	}
	quote.Notes = notes

	return quote, nil
}
