package main

import (
	"context"
	"fmt"

	"github.com/moicano/lojinha/internal/domain"
)

func (a *app) customerMenu(ctx context.Context) {
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "--- STORE ---")
		fmt.Fprintln(a.out, "1 - Browse products / add to cart")
		fmt.Fprintln(a.out, "2 - View cart")
		fmt.Fprintln(a.out, "3 - Checkout")
		fmt.Fprintln(a.out, "4 - Favorites")
		fmt.Fprintln(a.out, "0 - Back")

		choice := a.readInt("Choose an option: ")
		if a.eof {
			return
		}

		switch choice {
		case 1:
			a.addToCart(ctx)
		case 2:
			a.viewCart()
		case 3:
			a.finishCheckout(ctx)
		case 4:
			a.favoritesMenu(ctx)
		case 0:
			return
		default:
			fmt.Fprintln(a.out, "Invalid option.")
		}
	}
}

func (a *app) addToCart(ctx context.Context) {
	products, err := a.catalog.ListProducts(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "ERROR: could not list products: %v\n", err)
		return
	}
	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products available right now.")
		return
	}

	fmt.Fprintln(a.out, "\n--- PRODUCTS ---")
	for _, p := range products {
		a.printProduct(p)
	}

	productID := a.readInt("Product id to add (0 to cancel): ")
	if productID == 0 {
		return
	}

	quantity := a.readInt32("Quantity: ")

	line, err := a.cart.Add(ctx, productID, quantity)
	if err != nil {
		fmt.Fprintf(a.out, "ERROR: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "Added %dx %s to the cart.\n", line.Quantity, line.ProductName)
}

func (a *app) viewCart() {
	if a.cart.Empty() {
		fmt.Fprintln(a.out, "\nYour cart is empty.")
		return
	}

	fmt.Fprintln(a.out, "\n--- CART ---")
	for _, line := range a.cart.Lines() {
		fmt.Fprintf(a.out, "  - %s | qty: %d | unit: %s | subtotal: %s\n",
			line.ProductName, line.Quantity, line.UnitPrice, line.Subtotal())
	}
	fmt.Fprintf(a.out, "TOTAL: %s\n", a.cart.Total())
}

func (a *app) finishCheckout(ctx context.Context) {
	if a.cart.Empty() {
		fmt.Fprintln(a.out, "ERROR: your cart is empty, add products first.")
		return
	}

	a.viewCart()

	customerName := a.readLine("\nYour name for the order: ")

	confirmation, err := a.checkout.Checkout(ctx, a.cart, customerName)
	if err != nil {
		fmt.Fprintf(a.out, "ERROR: checkout did not go through: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "\nThank you, %s!\n", customerName)
	fmt.Fprintf(a.out, "Order #%d (ref %s) registered with status %s.\n",
		confirmation.OrderID, confirmation.Reference, confirmation.Status)
}

func (a *app) favoritesMenu(ctx context.Context) {
	for {
		fmt.Fprintln(a.out, "\n--- FAVORITES ---")

		favorites, err := a.favorites.List(ctx)
		if err != nil {
			fmt.Fprintf(a.out, "ERROR: could not list favorites: %v\n", err)
			return
		}
		if len(favorites) == 0 {
			fmt.Fprintln(a.out, "(your favorites list is empty)")
		}
		for _, p := range favorites {
			a.printProduct(p)
		}

		fmt.Fprintln(a.out, "\n1 - Add favorite")
		fmt.Fprintln(a.out, "2 - Remove favorite")
		fmt.Fprintln(a.out, "0 - Back")

		choice := a.readInt("Choose an option: ")
		if a.eof {
			return
		}

		switch choice {
		case 1:
			productID := a.readInt("Product id to favorite: ")
			if err := a.favorites.Add(ctx, productID); err != nil {
				fmt.Fprintf(a.out, "ERROR: %v\n", err)
				continue
			}
			fmt.Fprintln(a.out, "Added to favorites.")
		case 2:
			productID := a.readInt("Product id to remove: ")
			removed, err := a.favorites.Remove(ctx, productID)
			if err != nil {
				fmt.Fprintf(a.out, "ERROR: %v\n", err)
				continue
			}
			if removed {
				fmt.Fprintln(a.out, "Removed from favorites.")
			} else {
				fmt.Fprintln(a.out, "That product was not in your favorites.")
			}
		case 0:
			return
		default:
			fmt.Fprintln(a.out, "Invalid option.")
		}
	}
}

func (a *app) printProduct(p domain.Product) {
	category := "uncategorized"
	if p.CategoryName != nil {
		category = *p.CategoryName
	}

	extra := ""
	if p.Dosage != "" {
		extra = fmt.Sprintf(" (%s)", p.Dosage)
	}
	if p.RequiresPrescription {
		extra += " [prescription required]"
	}

	fmt.Fprintf(a.out, "  #%d %s%s | %s | stock: %d | %s\n",
		p.ID, p.Name, extra, p.Price, p.Quantity, category)
}
