package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moicano/lojinha/internal/domain"
	"github.com/moicano/lojinha/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type orderRepository struct {
	db querier
}

func NewOrder(pool *pgxpool.Pool) (port.OrderRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &orderRepository{db: pool}, nil
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{db: tx}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (int64, error) {
	if order.CustomerName == "" {
		return 0, fmt.Errorf("customer name is empty")
	}

	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO orders (reference, customer_name, total_amount, total_currency, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		order.Reference, order.CustomerName, order.Total.Amount, order.Total.Currency.String(),
		string(order.Status), order.CreatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	return id, nil
}

func (r *orderRepository) AddOrderItem(ctx context.Context, item domain.OrderItem) error {
	if item.OrderID == 0 {
		return fmt.Errorf("order id is zero")
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO order_items (order_id, product_id, quantity, price_amount, price_currency)
		 VALUES ($1, $2, $3, $4, $5)`,
		item.OrderID, item.ProductID, item.Quantity, item.UnitPrice.Amount, item.UnitPrice.Currency.String())
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}

	return nil
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID int64) (domain.Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, reference, customer_name, total_amount, total_currency, status, created_at
		 FROM orders
		 WHERE id = $1`, orderID)

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Order{}, fmt.Errorf("order[%d]: %w", orderID, domain.ErrOrderNotFound)
		}
		return domain.Order{}, fmt.Errorf("scanOrder: %w", err)
	}

	return order, nil
}

func (r *orderRepository) GetOrderItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT oi.id, oi.order_id, oi.product_id, p.name AS product_name,
		        oi.quantity, oi.price_amount, oi.price_currency
		 FROM order_items oi
		 JOIN products p ON oi.product_id = p.id
		 WHERE oi.order_id = $1
		 ORDER BY oi.id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var (
			item          domain.OrderItem
			priceAmount   decimal.Decimal
			priceCurrency string
		)
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.Quantity, &priceAmount, &priceCurrency)
		if err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}

		parsedCurrency, err := currency.ParseISO(priceCurrency)
		if err != nil {
			return nil, fmt.Errorf("currency[%s] is not valid: %w", priceCurrency, err)
		}
		item.UnitPrice = domain.Money{Amount: priceAmount, Currency: parsedCurrency}

		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return items, nil
}

// SetStatus overwrites the status field only, every other order field is
// immutable after creation.
func (r *orderRepository) SetStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, orderID, string(status))
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order[%d]: %w", orderID, domain.ErrOrderNotFound)
	}

	return nil
}

func (r *orderRepository) ListOrders(ctx context.Context, filter port.OrderFilter) ([]domain.Order, error) {
	sql := `SELECT id, reference, customer_name, total_amount, total_currency, status, created_at
		 FROM orders`

	var args []any
	if filter.ExcludeStatus != "" {
		sql += ` WHERE status <> $1`
		args = append(args, string(filter.ExcludeStatus))
	}

	if filter.OldestFirst {
		sql += ` ORDER BY created_at ASC`
	} else {
		sql += ` ORDER BY created_at DESC`
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanOrder: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return orders, nil
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var (
		order         domain.Order
		totalAmount   decimal.Decimal
		totalCurrency string
		status        string
	)

	err := row.Scan(&order.ID, &order.Reference, &order.CustomerName,
		&totalAmount, &totalCurrency, &status, &order.CreatedAt)
	if err != nil {
		return domain.Order{}, err
	}

	parsedCurrency, err := currency.ParseISO(totalCurrency)
	if err != nil {
		return domain.Order{}, fmt.Errorf("currency[%s] is not valid: %w", totalCurrency, err)
	}

	order.Total = domain.Money{Amount: totalAmount, Currency: parsedCurrency}
	order.Status = domain.OrderStatus(status)

	return order, nil
}
