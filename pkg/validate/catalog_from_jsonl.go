package validate

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kradzieta/warehouse-orders/internal/domain"
	"github.com/kradzieta/warehouse-orders/internal/ports"
)

// JSONLResult — статистика валидации потока JSONL.
type JSONLResult struct {
	ValidLinesCount   int
	InvalidLinesCount int
}

// Summary — человекочитаемая сводка.
func (r JSONLResult) Summary() string {
	return fmt.Sprintf("%d valid / %d invalid", r.ValidLinesCount, r.InvalidLinesCount)
}

// CollectProductsJSONL — читает JSONL из reader'а и собирает валидные товары.
// Невалидные строки пропускаются и считаются в статистике; пустые — игнорируются.
func CollectProductsJSONL(ctx context.Context, validator ports.CatalogValidator, ir io.Reader) ([]*domain.Product, JSONLResult, error) {
	var products []*domain.Product
	res, err := scanLines(ir, func(line []byte) bool {
		product, perr := ProductFromJSON(ctx, validator, line)
		if perr != nil {
			return false
		}
		products = append(products, product)
		return true
	})
	return products, res, err
}

// CollectClientsJSONL — читает JSONL из reader'а и собирает валидных клиентов.
func CollectClientsJSONL(ctx context.Context, validator ports.CatalogValidator, ir io.Reader) ([]*domain.Client, JSONLResult, error) {
	var clients []*domain.Client
	res, err := scanLines(ir, func(line []byte) bool {
		client, cerr := ClientFromJSON(ctx, validator, line)
		if cerr != nil {
			return false
		}
		clients = append(clients, client)
		return true
	})
	return clients, res, err
}

// scanLines — общий построчный проход; fn сообщает, валидна ли строка.
func scanLines(ir io.Reader, fn func(line []byte) bool) (JSONLResult, error) {
	var res JSONLResult

	scanner := bufio.NewScanner(ir)
	// запас на большие строки
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		if fn(line) {
			res.ValidLinesCount++
		} else {
			res.InvalidLinesCount++
		}
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}
