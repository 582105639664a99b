package port

import (
	"context"

	"github.com/moicano/lojinha/internal/domain"
)

// OrderFilter narrows and orders a listing. The zero value lists every
// order, newest first.
type OrderFilter struct {
	ExcludeStatus domain.OrderStatus
	OldestFirst   bool
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (int64, error)
	AddOrderItem(ctx context.Context, item domain.OrderItem) error
	GetOrder(ctx context.Context, orderID int64) (domain.Order, error)
	GetOrderItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	SetStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error
	ListOrders(ctx context.Context, filter OrderFilter) ([]domain.Order, error)
}
