package models

// OrderFilter — параметры фильтрации, передаваемые в слой хранилища.
// nil означает, что фильтр не задан.
type OrderFilter struct {
	Name        *string // подстрока имени, без учёта регистра
	MinQuantity *int    // нижняя граница quantity включительно
	MaxQuantity *int    // верхняя граница quantity включительно
}

// ListParams — параметры запроса списка заказов после разбора query-строки.
type ListParams struct {
	Page   int `validate:"gte=1"`
	Limit  int `validate:"gte=1"`
	Filter OrderFilter
}

// Pagination описывает метаданные страницы в ответе списка.
type Pagination struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalCount  int64 `json:"totalCount"`
	TotalPages  int64 `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// OrderPage — страница заказов вместе с метаданными пагинации.
type OrderPage struct {
	Items      []*Order
	Pagination Pagination
}
