package domain

// Client — клиент магазина. Конвейер заказов меняет только счётчик заказов
// и флаг постоянного клиента через контракт ClientStore.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`

	// OrderCount — число оформленных заказов (отмена уменьшает).
	OrderCount int `json:"order_count"`
	// IsRegular — «постоянный клиент»; ставится один раз при превышении порога
	// и не снимается, даже если счётчик потом уменьшится.
	IsRegular bool `json:"is_regular"`
}
