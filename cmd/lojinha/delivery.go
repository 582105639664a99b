package main

import (
	"context"
	"fmt"

	"github.com/moicano/lojinha/internal/domain"
)

func (a *app) deliveryMenu(ctx context.Context) {
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "--- DELIVERY PANEL ---")
		fmt.Fprintln(a.out, "1 - Active orders (awaiting / in transit)")
		fmt.Fprintln(a.out, "2 - Update order status")
		fmt.Fprintln(a.out, "0 - Back")

		choice := a.readInt("Choose an option: ")
		if a.eof {
			return
		}

		switch choice {
		case 1:
			a.listActiveOrders(ctx)
		case 2:
			a.updateOrderStatus(ctx)
		case 0:
			return
		default:
			fmt.Fprintln(a.out, "Invalid option.")
		}
	}
}

func (a *app) listActiveOrders(ctx context.Context) {
	orders, err := a.queries.ListActive(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "ERROR: could not list active orders: %v\n", err)
		return
	}
	if len(orders) == 0 {
		fmt.Fprintln(a.out, "\nNo active orders right now.")
		return
	}

	fmt.Fprintln(a.out, "\n--- ACTIVE ORDERS ---")
	for _, order := range orders {
		a.printOrder(order)
	}
}

func (a *app) updateOrderStatus(ctx context.Context) {
	orderID := a.readInt("\nOrder id to update: ")
	if orderID <= 0 {
		fmt.Fprintln(a.out, "ERROR: invalid order id.")
		return
	}

	fmt.Fprintln(a.out, "\n1 - Mark as EM ROTA")
	fmt.Fprintln(a.out, "2 - Mark as ENTREGUE")
	fmt.Fprintln(a.out, "0 - Cancel")

	var target domain.OrderStatus
	switch a.readInt("New status: ") {
	case 1:
		target = domain.OrderStatusInTransit
	case 2:
		target = domain.OrderStatusDelivered
	case 0:
		fmt.Fprintln(a.out, "Update cancelled.")
		return
	default:
		fmt.Fprintln(a.out, "Invalid option.")
		return
	}

	if err := a.status.Advance(ctx, orderID, target); err != nil {
		fmt.Fprintf(a.out, "ERROR: could not update order: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "Order #%d updated to %s.\n", orderID, target)
}

func (a *app) printOrder(order domain.Order) {
	fmt.Fprintf(a.out, "  #%d | %s | %s | %s | total: %s\n",
		order.ID, order.Status, order.CreatedAt.Format("2006-01-02 15:04"),
		order.CustomerName, order.Total)
}
