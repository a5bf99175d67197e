package domain

// RequestedItem — запрошенная позиция из входного запроса на создание заказа.
// Дубликаты по товару допустимы — их схлопывает AggregateItems.
type RequestedItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// AggregateItems — объединяет повторяющиеся товары, суммируя количества.
// Порядок первых вхождений сохраняется. Чистая функция, валидация входа
// (пустой список, неположительные количества) — ответственность вызывающего.
func AggregateItems(items []RequestedItem) []RequestedItem {
	merged := make([]RequestedItem, 0, len(items))
	index := make(map[string]int, len(items))

	for _, item := range items {
		if pos, ok := index[item.ProductID]; ok {
			merged[pos].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}

	return merged
}
