package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kradzieta/warehouse-orders/config"
	"github.com/kradzieta/warehouse-orders/internal/repo/postgres"
	"github.com/kradzieta/warehouse-orders/pkg/validate"
)

// CLI-приложение для валидации и импорта каталога (товары, клиенты)
// из JSONL-файлов. Без флага -apply работает как чистая валидация.
func main() {
	productsPath := flag.String("products", "", "path to products .jsonl")
	clientsPath := flag.String("clients", "", "path to clients .jsonl")
	apply := flag.Bool("apply", false, "write valid records to postgres (otherwise validate only)")
	flag.Parse()

	if *productsPath == "" && *clientsPath == "" {
		fmt.Fprintln(os.Stderr, "usage: import-catalog [-apply] -products file.jsonl -clients file.jsonl")
		os.Exit(2)
	}

	ctx := context.Background()
	validator := validate.NewCatalogValidator()

	var catalog validate.Catalog

	if *productsPath != "" {
		res, err := validate.CollectFile(ctx, validator, *productsPath, validate.KindProducts, &catalog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "products: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "products: %s\n", res.Summary())
	}

	if *clientsPath != "" {
		res, err := validate.CollectFile(ctx, validator, *clientsPath, validate.KindClients, &catalog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "clients: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "clients: %s\n", res.Summary())
	}

	if !*apply {
		fmt.Fprintln(os.Stderr, "validation only (-apply not set), nothing written")
		return
	}

	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "postgres: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	products := postgres.NewProductRepository(pool)
	clients := postgres.NewClientRepository(pool, cfg.Orders.RegularThreshold)

	for _, p := range catalog.Products {
		if err := products.UpsertProduct(ctx, p); err != nil {
			fmt.Fprintf(os.Stderr, "upsert product %s: %v\n", p.ID, err)
			os.Exit(1)
		}
	}
	for _, c := range catalog.Clients {
		if err := clients.UpsertClient(ctx, c); err != nil {
			fmt.Fprintf(os.Stderr, "upsert client %s: %v\n", c.ID, err)
			os.Exit(1)
		}
	}

	fmt.Fprintf(os.Stderr, "imported %d products, %d clients\n", len(catalog.Products), len(catalog.Clients))
}
