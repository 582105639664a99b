package service

import (
	"context"
	"fmt"

	"github.com/moicano/lojinha/internal/domain"
	"github.com/moicano/lojinha/internal/port"
)

// OrderQueries is the read side: history views and the delivery queue.
type OrderQueries struct {
	orders port.OrderRepository
}

func NewOrderQueries(orders port.OrderRepository) (*OrderQueries, error) {
	if orders == nil {
		return nil, fmt.Errorf("orders is nil")
	}

	return &OrderQueries{orders: orders}, nil
}

// ListAll returns every order, newest first.
func (q *OrderQueries) ListAll(ctx context.Context) ([]domain.Order, error) {
	orders, err := q.orders.ListOrders(ctx, port.OrderFilter{})
	if err != nil {
		return nil, fmt.Errorf("orders.ListOrders: %w", err)
	}

	return orders, nil
}

// ListActive returns undelivered orders, oldest first so the delivery queue
// is served first-in-first-out.
func (q *OrderQueries) ListActive(ctx context.Context) ([]domain.Order, error) {
	orders, err := q.orders.ListOrders(ctx, port.OrderFilter{
		ExcludeStatus: domain.OrderStatusDelivered,
		OldestFirst:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("orders.ListOrders: %w", err)
	}

	return orders, nil
}

// Items returns an order's lines with product names for display.
func (q *OrderQueries) Items(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	items, err := q.orders.GetOrderItems(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("orders.GetOrderItems: %w", err)
	}

	return items, nil
}
