package service

import (
	"context"
	"fmt"

	"github.com/moicano/lojinha/internal/domain"
	"github.com/moicano/lojinha/internal/port"
)

// StatusMachine advances a persisted order through its delivery lifecycle.
// Transitions are not forced to be sequential: delivery staff may move a
// status in either direction between the two allowed targets.
type StatusMachine struct {
	orders port.OrderRepository
}

func NewStatusMachine(orders port.OrderRepository) (*StatusMachine, error) {
	if orders == nil {
		return nil, fmt.Errorf("orders is nil")
	}

	return &StatusMachine{orders: orders}, nil
}

// Advance sets the order status to target, which must be EM ROTA or
// ENTREGUE. The initial AGUARDANDO is set once at checkout and is not a
// valid target here.
func (s *StatusMachine) Advance(ctx context.Context, orderID int64, target domain.OrderStatus) error {
	if target != domain.OrderStatusInTransit && target != domain.OrderStatusDelivered {
		return fmt.Errorf("status[%s]: %w", target, domain.ErrInvalidStatus)
	}

	if err := s.orders.SetStatus(ctx, orderID, target); err != nil {
		return fmt.Errorf("orders.SetStatus: %w", err)
	}

	return nil
}
