package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusAwaiting  OrderStatus = "AGUARDANDO"
	OrderStatusInTransit OrderStatus = "EM ROTA"
	OrderStatusDelivered OrderStatus = "ENTREGUE"
)

// Order is immutable after creation except for Status.
type Order struct {
	ID           int64
	Reference    uuid.UUID // customer-facing tracking code
	CustomerName string
	Total        Money
	Status       OrderStatus

	CreatedAt time.Time
}

// OrderItem keeps the unit price at time of purchase, it must not
// track later catalog price changes.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	Quantity    int32
	UnitPrice   Money
}

func (i OrderItem) Subtotal() Money {
	return i.UnitPrice.Mul(i.Quantity)
}
