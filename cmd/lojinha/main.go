package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moicano/lojinha/internal/config"
	"github.com/moicano/lojinha/internal/port"
	"github.com/moicano/lojinha/internal/repository"
	"github.com/moicano/lojinha/internal/service"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

type app struct {
	in  *bufio.Scanner
	out io.Writer
	// eof is set once stdin is exhausted, every menu loop exits on it
	eof bool

	catalog   port.CatalogRepository
	favorites port.FavoriteRepository
	cart      *service.Cart
	checkout  *service.Checkout
	status    *service.StatusMachine
	queries   *service.OrderQueries

	currency currency.Unit
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "zap.NewProduction: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(logger); err != nil {
		logger.Fatal("startup failed", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	catalog, err := repository.NewCatalog(pool)
	if err != nil {
		return fmt.Errorf("repository.NewCatalog: %w", err)
	}

	orders, err := repository.NewOrder(pool)
	if err != nil {
		return fmt.Errorf("repository.NewOrder: %w", err)
	}

	favorites, err := repository.NewFavorites(pool)
	if err != nil {
		return fmt.Errorf("repository.NewFavorites: %w", err)
	}

	cart, err := service.NewCart(catalog)
	if err != nil {
		return fmt.Errorf("service.NewCart: %w", err)
	}

	checkout, err := service.NewCheckout(pool, repository.NewCatalogWithTx, repository.NewOrderWithTx)
	if err != nil {
		return fmt.Errorf("service.NewCheckout: %w", err)
	}

	status, err := service.NewStatusMachine(orders)
	if err != nil {
		return fmt.Errorf("service.NewStatusMachine: %w", err)
	}

	queries, err := service.NewOrderQueries(orders)
	if err != nil {
		return fmt.Errorf("service.NewOrderQueries: %w", err)
	}

	logger.Info("store started",
		zap.String("service", config.ServiceName),
		zap.String("version", config.ServiceVersion))

	a := &app{
		in:        bufio.NewScanner(os.Stdin),
		out:       os.Stdout,
		catalog:   catalog,
		favorites: favorites,
		cart:      cart,
		checkout:  checkout,
		status:    status,
		queries:   queries,
		currency:  cfg.Currency,
	}
	a.mainMenu(ctx)

	logger.Info("store stopped")

	return nil
}

func (a *app) mainMenu(ctx context.Context) {
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, strings.Repeat("=", 50))
		fmt.Fprintln(a.out, "LOJINHA")
		fmt.Fprintln(a.out, strings.Repeat("=", 50))
		fmt.Fprintln(a.out, "1 - Customer")
		fmt.Fprintln(a.out, "2 - Delivery")
		fmt.Fprintln(a.out, "3 - Admin")
		fmt.Fprintln(a.out, "0 - Exit")

		choice := a.readInt("Choose an option: ")
		if a.eof {
			return
		}

		switch choice {
		case 1:
			a.customerMenu(ctx)
		case 2:
			a.deliveryMenu(ctx)
		case 3:
			a.adminMenu(ctx)
		case 0:
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Invalid option.")
		}
	}
}

func (a *app) readLine(prompt string) string {
	if a.eof {
		return ""
	}

	fmt.Fprint(a.out, prompt)
	if !a.in.Scan() {
		a.eof = true
		return ""
	}

	return strings.TrimSpace(a.in.Text())
}

// readInt returns -1 on unparsable input, menus treat it as invalid.
func (a *app) readInt(prompt string) int64 {
	value, err := strconv.ParseInt(a.readLine(prompt), 10, 64)
	if err != nil {
		return -1
	}

	return value
}

// readInt32 rejects values outside the int32 range instead of truncating.
func (a *app) readInt32(prompt string) int32 {
	value := a.readInt(prompt)
	if value < math.MinInt32 || value > math.MaxInt32 {
		return -1
	}

	return int32(value)
}
