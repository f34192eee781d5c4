package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/order-api/internal/models"
	"github.com/magabrotheeeer/order-api/internal/storage"
)

// Условия фильтра общие для выборки страницы и подсчёта.
const orderFilterWhere = `WHERE ($1::text IS NULL OR name ILIKE $1)
			    AND ($2::int IS NULL OR quantity >= $2)
			    AND ($3::int IS NULL OR quantity <= $3)`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// CreateOrder вставляет новый заказ и возвращает его.
func (s *Storage) CreateOrder(ctx context.Context, name string, quantity int) (*models.Order, error) {
	const op = "storage.CreateOrder"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO orders (name, quantity)
			  VALUES ($1, $2)
			  RETURNING id, created_at`
	o := &models.Order{
		Name:     name,
		Quantity: quantity,
	}
	if err := s.DB.QueryRowContext(ctx, query, name, quantity).Scan(&o.ID, &o.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return o, nil
}

// GetOrder возвращает заказ по ID.
func (s *Storage) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	const op = "storage.GetOrder"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, quantity, created_at
			  FROM orders
			  WHERE id = $1`
	var o models.Order
	err := s.DB.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.Name, &o.Quantity, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrOrderNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &o, nil
}

// ListOrders возвращает страницу заказов по фильтру, от новых к старым.
func (s *Storage) ListOrders(ctx context.Context, filter models.OrderFilter, limit, offset int) ([]*models.Order, error) {
	const op = "storage.ListOrders"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, quantity, created_at
			  FROM orders
			  ` + orderFilterWhere + `
			  ORDER BY id DESC
			  LIMIT $4 OFFSET $5`
	name, minQ, maxQ := filterArgs(filter)
	rows, err := s.DB.QueryContext(ctx, query, name, minQ, maxQ, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]*models.Order, 0)
	for rows.Next() {
		var item models.Order
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountOrders считает заказы, подходящие под фильтр.
func (s *Storage) CountOrders(ctx context.Context, filter models.OrderFilter) (int64, error) {
	const op = "storage.CountOrders"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COUNT(*)
			  FROM orders
			  ` + orderFilterWhere
	name, minQ, maxQ := filterArgs(filter)
	var total int64
	if err := s.DB.QueryRowContext(ctx, query, name, minQ, maxQ).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

// OrderStats возвращает количество заказов, сумму и среднее quantity.
// Среднее не округляется; при отсутствии заказов сумма и среднее равны 0.
func (s *Storage) OrderStats(ctx context.Context) (models.OrderStats, error) {
	const op = "storage.OrderStats"
	select {
	case <-ctx.Done():
		return models.OrderStats{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COUNT(*),
			      COALESCE(SUM(quantity), 0)::bigint,
			      COALESCE(AVG(quantity), 0)::float8
			  FROM orders`
	var stats models.OrderStats
	if err := s.DB.QueryRowContext(ctx, query).Scan(
		&stats.TotalOrders, &stats.TotalQuantity, &stats.AverageQuantity); err != nil {
		return models.OrderStats{}, fmt.Errorf("%s: %w", op, err)
	}
	return stats, nil
}

// filterArgs превращает фильтр в аргументы запроса; nil означает отсутствие условия.
func filterArgs(filter models.OrderFilter) (name *string, minQuantity, maxQuantity *int) {
	if filter.Name != nil {
		pattern := "%" + likeEscaper.Replace(*filter.Name) + "%"
		name = &pattern
	}
	return name, filter.MinQuantity, filter.MaxQuantity
}
