package service

import (
	"context"
	"fmt"

	"github.com/moicano/lojinha/internal/domain"
	"github.com/moicano/lojinha/internal/port"
)

// Cart accumulates candidate purchases for a single session. It is not
// persisted and never mutates stock; the stock check here is advisory,
// checkout re-validates against the catalog inside its transaction.
type Cart struct {
	catalog port.CatalogRepository
	lines   []domain.CartLine
}

func NewCart(catalog port.CatalogRepository) (*Cart, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog is nil")
	}

	return &Cart{catalog: catalog}, nil
}

// Add appends a line capturing the product's current unit price.
func (c *Cart) Add(ctx context.Context, productID int64, quantity int32) (domain.CartLine, error) {
	if quantity <= 0 {
		return domain.CartLine{}, fmt.Errorf("quantity[%d]: %w", quantity, domain.ErrInvalidQuantity)
	}

	product, err := c.catalog.GetProduct(ctx, productID)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("catalog.GetProduct: %w", err)
	}

	if quantity > product.Quantity {
		return domain.CartLine{}, fmt.Errorf("product[%d] has %d, want %d: %w",
			productID, product.Quantity, quantity, domain.ErrInsufficientStock)
	}

	line := domain.CartLine{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		UnitPrice:   product.Price,
	}
	c.lines = append(c.lines, line)

	return line, nil
}

// Lines returns the cart content in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	lines := make([]domain.CartLine, len(c.lines))
	copy(lines, c.lines)

	return lines
}

func (c *Cart) Total() domain.Money {
	var total domain.Money
	for i, line := range c.lines {
		if i == 0 {
			total = line.Subtotal()
			continue
		}
		total = total.Add(line.Subtotal())
	}

	return total
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}
