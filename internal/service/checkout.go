package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moicano/lojinha/internal/domain"
	"github.com/moicano/lojinha/internal/port"
	"github.com/moicano/lojinha/internal/repository"
)

// CatalogFactory and OrderFactory bind a repository to the checkout
// transaction, so every write of a single checkout shares one pgx.Tx.
type (
	CatalogFactory func(tx pgx.Tx) port.CatalogRepository
	OrderFactory   func(tx pgx.Tx) port.OrderRepository
)

type OrderConfirmation struct {
	OrderID   int64
	Reference uuid.UUID
	Status    domain.OrderStatus
}

// Checkout converts a cart into a persisted order with decremented stock,
// all-or-nothing.
type Checkout struct {
	pool     *pgxpool.Pool
	catalogs CatalogFactory
	orders   OrderFactory
}

func NewCheckout(pool *pgxpool.Pool, catalogs CatalogFactory, orders OrderFactory) (*Checkout, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}
	if catalogs == nil || orders == nil {
		return nil, fmt.Errorf("repository factory is nil")
	}

	return &Checkout{pool: pool, catalogs: catalogs, orders: orders}, nil
}

// Checkout validates the cart, then in a single transaction creates the
// order, persists its lines in insertion order and reserves stock per line.
// The total uses the prices captured in the cart, not current catalog
// prices. On success the cart is cleared.
func (s *Checkout) Checkout(ctx context.Context, cart *Cart, customerName string) (OrderConfirmation, error) {
	lines := cart.Lines()
	if len(lines) == 0 {
		return OrderConfirmation{}, domain.ErrEmptyCart
	}
	if strings.TrimSpace(customerName) == "" {
		return OrderConfirmation{}, domain.ErrInvalidCustomerName
	}

	order := domain.Order{
		Reference:    uuid.New(),
		CustomerName: customerName,
		Total:        cart.Total(),
		Status:       domain.OrderStatusAwaiting,
		CreatedAt:    time.Now(),
	}

	confirmation, err := repository.WithTx(ctx, s.pool, func(tx pgx.Tx) (OrderConfirmation, error) {
		orders := s.orders(tx)
		catalog := s.catalogs(tx)

		orderID, err := orders.CreateOrder(ctx, order)
		if err != nil {
			return OrderConfirmation{}, fmt.Errorf("orders.CreateOrder: %w", err)
		}

		for _, line := range lines {
			item := domain.OrderItem{
				OrderID:   orderID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
			}
			if err := orders.AddOrderItem(ctx, item); err != nil {
				return OrderConfirmation{}, fmt.Errorf("orders.AddOrderItem: %w", err)
			}

			// Authoritative re-validation: the cart's add-time stock check
			// may be stale by now.
			if err := catalog.ReserveStock(ctx, line.ProductID, line.Quantity); err != nil {
				return OrderConfirmation{}, fmt.Errorf("catalog.ReserveStock: %w", err)
			}
		}

		return OrderConfirmation{
			OrderID:   orderID,
			Reference: order.Reference,
			Status:    order.Status,
		}, nil
	})
	if err != nil {
		return OrderConfirmation{}, fmt.Errorf("%w: %w", domain.ErrCheckoutFailed, err)
	}

	cart.Clear()

	return confirmation, nil
}
