package domain

// CartLine is a candidate purchase accumulated in a session cart.
// UnitPrice is captured when the line is added and is not re-read later.
type CartLine struct {
	ProductID   int64
	ProductName string
	Quantity    int32
	UnitPrice   Money
}

func (l CartLine) Subtotal() Money {
	return l.UnitPrice.Mul(l.Quantity)
}
