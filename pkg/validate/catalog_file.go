package validate

import (
	"context"
	"fmt"
	"os"

	"github.com/kradzieta/warehouse-orders/internal/domain"
	"github.com/kradzieta/warehouse-orders/internal/ports"
)

// RecordKind — тип записей в файле импорта.
type RecordKind string

const (
	KindProducts RecordKind = "products"
	KindClients  RecordKind = "clients"
)

// Catalog — результат разбора файлов импорта.
type Catalog struct {
	Products []*domain.Product
	Clients  []*domain.Client
}

// CollectFile — читает JSONL-файл записей указанного типа в каталог.
// Возвращает статистику; невалидные строки пропускаются.
func CollectFile(ctx context.Context, validator ports.CatalogValidator, filePath string, kind RecordKind, out *Catalog) (JSONLResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return JSONLResult{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	switch kind {
	case KindProducts:
		products, res, err := CollectProductsJSONL(ctx, validator, file)
		if err != nil {
			return res, err
		}
		out.Products = append(out.Products, products...)
		return res, nil
	case KindClients:
		clients, res, err := CollectClientsJSONL(ctx, validator, file)
		if err != nil {
			return res, err
		}
		out.Clients = append(out.Clients, clients...)
		return res, nil
	default:
		return JSONLResult{}, fmt.Errorf("unknown record kind: %q", kind)
	}
}
