package models

import "time"

// Order — заказ. Владельца у заказа нет, записи только создаются и читаются.
type Order struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

// DummyOrder используется для приёма данных из JSON-запроса на создание заказа.
type DummyOrder struct {
	Name     string `json:"name" example:"Widget"`
	Quantity int    `json:"quantity" example:"3"`
}

// OrderStats — агрегаты по всем заказам.
type OrderStats struct {
	TotalOrders     int64   `json:"totalOrders"`
	TotalQuantity   int64   `json:"totalQuantity"`
	AverageQuantity float64 `json:"averageQuantity"`
}
