package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/template"

	"github.com/kradzieta/warehouse-orders/internal/domain"
	"github.com/kradzieta/warehouse-orders/internal/ports"
)

// Проверка, что SummaryRenderer удовлетворяет интерфейсу DocumentRenderer.
var _ ports.DocumentRenderer = (*SummaryRenderer)(nil)

// summaryTmpl — текстовая сводка заказа, уходит вложением в уведомление
// и отдаётся по HTTP как документ заказа.
var summaryTmpl = template.Must(template.New("summary").Parse(`ORDER SUMMARY
=============
Order:   {{.Order.ID}}
Status:  {{.Order.Status}}
Date:    {{.Order.OrderedAt.Format "2006-01-02 15:04:05 MST"}}

Client:  {{.Client.Name}} <{{.Client.Email}}>
{{- if .Client.Phone}}
Phone:   {{.Client.Phone}}
{{- end}}
{{- if .Client.Address}}
Address: {{.Client.Address}}
{{- end}}

Items:
{{- range .Order.Lines}}
  - {{.ProductName}} x{{.Quantity}} @ {{printf "%.2f" .PriceAtOrder}} {{.CurrencyAtOrder}}
{{- end}}

Total:   {{printf "%.2f" .Total}} {{.Currency}}
`))

// SummaryRenderer — рендер текстовой сводки заказа.
type SummaryRenderer struct{}

// NewSummaryRenderer - конструктор SummaryRenderer.
func NewSummaryRenderer() *SummaryRenderer { return &SummaryRenderer{} }

// Render — сводка по деталям заказа. Валюта итога берётся из первой позиции:
// позиции одного заказа оформляются в одной валюте.
func (r *SummaryRenderer) Render(_ context.Context, details *domain.OrderDetails) ([]byte, error) {
	if details == nil || details.Order.ID == "" {
		return nil, errors.New("order details are empty")
	}

	currency := ""
	if len(details.Order.Lines) > 0 {
		currency = details.Order.Lines[0].CurrencyAtOrder
	}

	var buf bytes.Buffer
	err := summaryTmpl.Execute(&buf, struct {
		*domain.OrderDetails
		Total    float64
		Currency string
	}{
		OrderDetails: details,
		Total:        details.Order.Total(),
		Currency:     currency,
	})
	if err != nil {
		return nil, fmt.Errorf("render order summary: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName — имя вложения для документа заказа.
func FileName(orderID string) string { return fmt.Sprintf("order-%s.txt", orderID) }
