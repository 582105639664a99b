package domain

import "time"

type Product struct {
	ID          int64
	Name        string
	Description string
	Price       Money
	Quantity    int32

	// CategoryID is nil for uncategorized products, never zero.
	CategoryID   *int64
	CategoryName *string

	Dosage               string
	RequiresPrescription bool

	CreatedAt time.Time
}

type Category struct {
	ID          int64
	Name        string
	Description string

	CreatedAt time.Time
}
