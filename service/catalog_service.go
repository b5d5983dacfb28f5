package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"snackshop/models"
	"snackshop/repository"
	"snackshop/schema"
	"snackshop/simulator"
)

// Guard gates each simulated API call with latency and failure injection
type Guard interface {
	Guard(ctx context.Context, operation string) error
}

// CatalogService is the simulated remote API over the local snack catalog
type CatalogService struct {
	catalog repository.CatalogRepositoryInterface
	guard   Guard
	newID   func() string
	logger  *zap.Logger
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// Option configures a CatalogService
type Option func(*CatalogService)

// WithTransactionIDGenerator replaces the checkout transaction id source
func WithTransactionIDGenerator(gen func() string) Option {
	return func(s *CatalogService) { s.newID = gen }
}

// WithLogger sets the service logger
func WithLogger(l *zap.Logger) Option {
	return func(s *CatalogService) { s.logger = l }
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(catalog repository.CatalogRepositoryInterface, guard Guard, opts ...Option) *CatalogService {
	s := &CatalogService{
		catalog: catalog,
		guard:   guard,
		newID:   newTransactionID,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListSnacks returns the snacks matching search
func (s *CatalogService) ListSnacks(ctx context.Context, search string) ([]models.Snack, error) {
	if err := s.guard.Guard(ctx, "listSnacks"); err != nil {
		return nil, err
	}

	term := strings.ToLower(search)
	snacks := []models.Snack{}
	for _, snack := range s.catalog.All() {
		if term == "" ||
			strings.Contains(strings.ToLower(snack.Name), term) ||
			strings.Contains(strings.ToLower(snack.Description), term) {
			snacks = append(snacks, snack)
		}
	}

	if err := schema.ValidateSnacks(snacks); err != nil {
		return nil, fmt.Errorf("listSnacks: %w", err)
	}

	s.logger.Debug("listed snacks", zap.String("search", search), zap.Int("count", len(snacks)))
	return snacks, nil
}

// GetSnackByID returns the snack with the exact id
func (s *CatalogService) GetSnackByID(ctx context.Context, id string) (*models.Snack, error) {
	if err := s.guard.Guard(ctx, "getSnackById"); err != nil {
		return nil, err
	}

	snack, ok := s.catalog.FindByID(id)
	if !ok {
		s.logger.Debug("snack not found", zap.String("id", id))
		return nil, nil
	}

	if err := schema.ValidateSnack(snack); err != nil {
		return nil, fmt.Errorf("getSnackById: %w", err)
	}
	return &snack, nil
}

// Checkout submits items and returns a receipt with a fresh transaction id.
// Nothing is persisted and repeated calls produce distinct ids.
func (s *CatalogService) Checkout(ctx context.Context, items []models.CartItem) (*models.CheckoutReceipt, error) {
	if err := s.guard.Guard(ctx, "checkout"); err != nil {
		// an empty cart reports EmptyCart under any simulator settings
		if len(items) == 0 && errors.Is(err, simulator.ErrServiceUnavailable) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}

	if err := schema.ValidateCheckoutRequest(items); err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	receipt := models.CheckoutReceipt{Success: true, TransactionID: s.newID()}
	if err := schema.ValidateCheckoutResponse(receipt); err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}

	s.logger.Info("checkout completed",
		zap.String("transactionId", receipt.TransactionID),
		zap.Int("lines", len(items)))
	return &receipt, nil
}

// newTransactionID returns an id of the form txn_<unix millis>_<uuid>
func newTransactionID() string {
	return fmt.Sprintf("txn_%d_%s", time.Now().UnixMilli(), uuid.NewString())
}
