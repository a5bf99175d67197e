package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/kradzieta/warehouse-orders/internal/domain"
	"github.com/kradzieta/warehouse-orders/internal/ports"
)

// decodeStrict — строгий разбор JSON: неизвестные поля и хвостовые данные запрещены.
func decodeStrict(raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return fmt.Errorf("invalid json: trailing data")
	}
	return nil
}

// ProductFromJSON — разбор и валидация товара из JSON.
func ProductFromJSON(ctx context.Context, validator ports.CatalogValidator, raw []byte) (*domain.Product, error) {
	var product domain.Product
	if err := decodeStrict(raw, &product); err != nil {
		return nil, err
	}
	if err := validator.ValidateProduct(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ClientFromJSON — разбор и валидация клиента из JSON.
func ClientFromJSON(ctx context.Context, validator ports.CatalogValidator, raw []byte) (*domain.Client, error) {
	var client domain.Client
	if err := decodeStrict(raw, &client); err != nil {
		return nil, err
	}
	if err := validator.ValidateClient(ctx, &client); err != nil {
		return nil, err
	}
	return &client, nil
}
