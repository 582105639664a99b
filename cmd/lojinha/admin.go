package main

import (
	"context"
	"fmt"

	"github.com/moicano/lojinha/internal/domain"
	"github.com/shopspring/decimal"
)

func (a *app) adminMenu(ctx context.Context) {
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "--- ADMIN ---")
		fmt.Fprintln(a.out, "1 - Manage categories")
		fmt.Fprintln(a.out, "2 - Manage products")
		fmt.Fprintln(a.out, "3 - Order history")
		fmt.Fprintln(a.out, "0 - Back")

		choice := a.readInt("Choose an option: ")
		if a.eof {
			return
		}

		switch choice {
		case 1:
			a.categoryMenu(ctx)
		case 2:
			a.productMenu(ctx)
		case 3:
			a.orderHistory(ctx)
		case 0:
			return
		default:
			fmt.Fprintln(a.out, "Invalid option.")
		}
	}
}

func (a *app) categoryMenu(ctx context.Context) {
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "--- CATEGORIES ---")
		fmt.Fprintln(a.out, "1 - List categories")
		fmt.Fprintln(a.out, "2 - Add category")
		fmt.Fprintln(a.out, "3 - Update category")
		fmt.Fprintln(a.out, "4 - Find category by id")
		fmt.Fprintln(a.out, "5 - Delete category")
		fmt.Fprintln(a.out, "0 - Back")

		choice := a.readInt("Choose an option: ")
		if a.eof {
			return
		}

		switch choice {
		case 1:
			a.listCategories(ctx)
		case 2:
			a.addCategory(ctx)
		case 3:
			a.updateCategory(ctx)
		case 4:
			a.findCategory(ctx)
		case 5:
			a.deleteCategory(ctx)
		case 0:
			return
		default:
			fmt.Fprintln(a.out, "Invalid option.")
		}
	}
}

func (a *app) productMenu(ctx context.Context) {
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "--- PRODUCTS ---")
		fmt.Fprintln(a.out, "1 - List products")
		fmt.Fprintln(a.out, "2 - Add product")
		fmt.Fprintln(a.out, "3 - Update product")
		fmt.Fprintln(a.out, "4 - Find product by id")
		fmt.Fprintln(a.out, "5 - List products by category")
		fmt.Fprintln(a.out, "6 - Update product stock")
		fmt.Fprintln(a.out, "7 - Delete product")
		fmt.Fprintln(a.out, "0 - Back")

		choice := a.readInt("Choose an option: ")
		if a.eof {
			return
		}

		switch choice {
		case 1:
			a.listProducts(ctx)
		case 2:
			a.addProduct(ctx)
		case 3:
			a.updateProduct(ctx)
		case 4:
			a.findProduct(ctx)
		case 5:
			a.listProductsByCategory(ctx)
		case 6:
			a.updateStock(ctx)
		case 7:
			a.deleteProduct(ctx)
		case 0:
			return
		default:
			fmt.Fprintln(a.out, "Invalid option.")
		}
	}
}

func (a *app) listCategories(ctx context.Context) {
	categories, err := a.catalog.ListCategories(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "ERROR: could not list categories: %v\n", err)
		return
	}
	if len(categories) == 0 {
		fmt.Fprintln(a.out, "\nNo categories yet.")
		return
	}

	fmt.Fprintln(a.out, "\n--- CATEGORIES ---")
	for _, c := range categories {
		fmt.Fprintf(a.out, "  #%d %s - %s\n", c.ID, c.Name, c.Description)
	}
}

func (a *app) addCategory(ctx context.Context) {
	category := domain.Category{
		Name:        a.readLine("Category name: "),
		Description: a.readLine("Description: "),
	}

	id, err := a.catalog.CreateCategory(ctx, category)
	if err != nil {
		fmt.Fprintf(a.out, "ERROR: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "Category #%d created.\n", id)
}

func (a *app) updateCategory(ctx context.Context) {
	categoryID := a.readInt("Category id to update: ")

	category, err := a.catalog.GetCategory(ctx, categoryID)
	if err != nil {
		fmt.Fprintf(a.out, "ERROR: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Updating #%d %s - %s\n", category.ID, category.Name, category.Description)

	category.Name = a.readLine("New name: ")
	category.Description = a.readLine("New description: ")

	if err := a.catalog.UpdateCategory(ctx, category); err != nil {
		fmt.Fprintf(a.out, "ERROR: %v\n", err)
		return
	}

	fmt.Fprintln(a.out, "Category updated.")
}

func (a *app) findCategory(ctx context.Context) {
	categoryID := a.readInt("Category id: ")

	category, err := a.catalog.GetCategory(ctx, categoryID)
	if err != nil {
		fmt.Fprintf(a.out, "ERROR: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "  #%d %s - %s\n", category.ID, category.Name, category.Description)
}

func (a *app) deleteCategory(ctx context.Context) {
	categoryID := a.readInt("Category id to delete: ")

	if err := a.catalog.DeleteCategory(ctx, categoryID); err != nil {
		fmt.Fprintf(a.out, "ERROR: %v\n", err)
		return
	}

	fmt.Fprintln(a.out, "Category deleted.")
}

func (a *app) listProducts(ctx context.Context) {
	products, err := a.catalog.ListProducts(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "ERROR: could not list products: %v\n", err)
		return
	}
	if len(products) == 0 {
		fmt.Fprintln(a.out, "\nNo products yet.")
		return
	}

	fmt.Fprintln(a.out, "\n--- PRODUCTS ---")
	for _, p := range products {
		a.printProduct(p)
	}
}

func (a *app) addProduct(ctx context.Context) {
	product := domain.Product{
		Name:        a.readLine("Product name: "),
		Description: a.readLine("Description: "),
	}

	price, err := decimal.NewFromString(a.readLine("Price: "))
	if err != nil {
		fmt.Fprintf(a.out, "ERROR: invalid price: %v\n", err)
		return
	}
	product.Price = domain.Money{Amount: price, Currency: a.currency}

	stock := a.readInt32("Initial stock: ")
	if stock < 0 {
		fmt.Fprintln(a.out, "ERROR: invalid stock quantity.")
		return
	}
	product.Quantity = stock

	if categoryID := a.readInt("Category id (0 for none): "); categoryID > 0 {
		product.CategoryID = &categoryID
	}

	product.Dosage = a.readLine("Dosage (empty for none): ")
	product.RequiresPrescription = a.readLine("Requires prescription? (y/N): ") == "y"

	id, err := a.catalog.CreateProduct(ctx, product)
	if err != nil {
		fmt.Fprintf(a.out, "ERROR: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "Product #%d created.\n", id)
}

func (a *app) updateProduct(ctx context.Context) {
	productID := a.readInt("Product id to update: ")

	product, err := a.catalog.GetProduct(ctx, productID)
	if err != nil {
		fmt.Fprintf(a.out, "ERROR: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Updating:")
	a.printProduct(product)

	product.Name = a.readLine("New name: ")
	product.Description = a.readLine("New description: ")

	price, err := decimal.NewFromString(a.readLine("New price: "))
	if err != nil {
		fmt.Fprintf(a.out, "ERROR: invalid price: %v\n", err)
		return
	}
	product.Price = domain.Money{Amount: price, Currency: a.currency}

	product.CategoryID = nil
	if categoryID := a.readInt("Category id (0 for none): "); categoryID > 0 {
		product.CategoryID = &categoryID
	}

	product.Dosage = a.readLine("Dosage (empty for none): ")
	product.RequiresPrescription = a.readLine("Requires prescription? (y/N): ") == "y"

	if err := a.catalog.UpdateProduct(ctx, product); err != nil {
		fmt.Fprintf(a.out, "ERROR: %v\n", err)
		return
	}

	fmt.Fprintln(a.out, "Product updated.")
}

func (a *app) findProduct(ctx context.Context) {
	productID := a.readInt("Product id: ")

	product, err := a.catalog.GetProduct(ctx, productID)
	if err != nil {
		fmt.Fprintf(a.out, "ERROR: %v\n", err)
		return
	}

	a.printProduct(product)
}

func (a *app) listProductsByCategory(ctx context.Context) {
	categoryID := a.readInt("Category id: ")

	products, err := a.catalog.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		fmt.Fprintf(a.out, "ERROR: %v\n", err)
		return
	}
	if len(products) == 0 {
		fmt.Fprintln(a.out, "\nNo products in that category.")
		return
	}

	fmt.Fprintln(a.out)
	for _, p := range products {
		a.printProduct(p)
	}
}

func (a *app) updateStock(ctx context.Context) {
	productID := a.readInt("Product id: ")

	quantity := a.readInt32("New stock quantity: ")
	if quantity < 0 {
		fmt.Fprintln(a.out, "ERROR: invalid stock quantity.")
		return
	}

	if err := a.catalog.SetStock(ctx, productID, quantity); err != nil {
		fmt.Fprintf(a.out, "ERROR: %v\n", err)
		return
	}

	fmt.Fprintln(a.out, "Stock updated.")
}

func (a *app) deleteProduct(ctx context.Context) {
	productID := a.readInt("Product id to delete: ")

	if err := a.catalog.DeleteProduct(ctx, productID); err != nil {
		fmt.Fprintf(a.out, "ERROR: %v\n", err)
		return
	}

	fmt.Fprintln(a.out, "Product deleted.")
}

func (a *app) orderHistory(ctx context.Context) {
	orders, err := a.queries.ListAll(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "ERROR: could not list orders: %v\n", err)
		return
	}
	if len(orders) == 0 {
		fmt.Fprintln(a.out, "\nNo orders yet.")
		return
	}

	fmt.Fprintln(a.out, "\n--- ORDER HISTORY (newest first) ---")
	for _, order := range orders {
		a.printOrder(order)
	}

	orderID := a.readInt("\nOrder id to inspect (0 to skip): ")
	if orderID <= 0 {
		return
	}

	items, err := a.queries.Items(ctx, orderID)
	if err != nil {
		fmt.Fprintf(a.out, "ERROR: %v\n", err)
		return
	}
	for _, item := range items {
		fmt.Fprintf(a.out, "  - %s | qty: %d | unit: %s | subtotal: %s\n",
			item.ProductName, item.Quantity, item.UnitPrice, item.Subtotal())
	}
}
