package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/domain/entity"
	"github.com/juliotite/vendas-crm/pkg/pagination"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	// Deactivate soft-deletes a customer by flipping its active flag.
	Deactivate(ctx context.Context, id uuid.UUID) error
	// SetLastPurchaseDate stamps the customer's last purchase, called
	// when a quote transitions to CLOSED.
	SetLastPurchaseDate(ctx context.Context, id uuid.UUID, at time.Time) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)

	// ListActiveWithBirthDate returns active customers that have a
	// birth date on record, with their seller preloaded.
	ListActiveWithBirthDate(ctx context.Context) ([]entity.Customer, error)
	// ListInactiveBetween returns active customers whose inactivity
	// reference date (last purchase, or creation when never purchased)
	// falls inside [start, end].
	ListInactiveBetween(ctx context.Context, start, end time.Time) ([]entity.Customer, error)
	// CountInactiveSince counts active customers whose inactivity
	// reference date is before the cutoff.
	CountInactiveSince(ctx context.Context, cutoff time.Time) (int64, error)
	// ListInactiveSince returns active customers whose inactivity
	// reference date is before the cutoff, oldest first, with seller.
	ListInactiveSince(ctx context.Context, cutoff time.Time) ([]entity.Customer, error)
}
