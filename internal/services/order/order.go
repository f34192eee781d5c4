// Package services содержит бизнес-логику для работы с заказами и кешированием.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/magabrotheeeer/order-api/internal/lib/sl"
	"github.com/magabrotheeeer/order-api/internal/models"
	"github.com/magabrotheeeer/order-api/internal/rabbitmq"
)

// Статистика кешируется под ключом с номером версии. Create увеличивает версию,
// поэтому значение, записанное Stats после конкурентного Create, больше не читается.
const statsVersionKey = "orders:stats:version"

// ErrInvalidPagination возвращается при page или limit меньше 1.
var ErrInvalidPagination = errors.New("page and limit must be positive")

// OrderRepository определяет методы для работы с заказами в хранилище.
type OrderRepository interface {
	CreateOrder(ctx context.Context, name string, quantity int) (*models.Order, error)
	GetOrder(ctx context.Context, id int64) (*models.Order, error)
	ListOrders(ctx context.Context, filter models.OrderFilter, limit, offset int) ([]*models.Order, error)
	CountOrders(ctx context.Context, filter models.OrderFilter) (int64, error)
	OrderStats(ctx context.Context) (models.OrderStats, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(ctx context.Context, key string) error
	// Incr атомарно увеличивает счетчик и возвращает новое значение.
	Incr(ctx context.Context, key string) (int64, error)
}

// EventPublisher публикует доменные события.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// OrderService реализует бизнес-логику работы с заказами, включая кеширование.
type OrderService struct {
	repo     OrderRepository
	cache    Cache
	events   EventPublisher
	cacheTTL time.Duration
	log      *slog.Logger
}

// NewOrderService создает новый экземпляр OrderService.
func NewOrderService(repo OrderRepository, cache Cache, events EventPublisher, cacheTTL time.Duration, log *slog.Logger) *OrderService {
	if cacheTTL <= 0 {
		cacheTTL = time.Hour
	}
	return &OrderService{
		repo:     repo,
		cache:    cache,
		events:   events,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

func orderCacheKey(id int64) string {
	return fmt.Sprintf("order:%d", id)
}

func statsCacheKey(version int64) string {
	return fmt.Sprintf("orders:stats:%d", version)
}

// Create сохраняет заказ, сбрасывает кеш статистики и публикует order.created.
func (s *OrderService) Create(ctx context.Context, req models.DummyOrder) (*models.Order, error) {
	const op = "services.Create"

	order, err := s.repo.CreateOrder(ctx, req.Name, req.Quantity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created new order", slog.Int64("id", order.ID))

	version, err := s.cache.Incr(ctx, statsVersionKey)
	if err != nil {
		s.log.Warn("failed to bump stats version", sl.Err(err))
	} else if err := s.cache.Invalidate(ctx, statsCacheKey(version-1)); err != nil {
		s.log.Warn("failed to invalidate stats cache", sl.Err(err))
	}
	if err := s.cache.Set(ctx, orderCacheKey(order.ID), order, s.cacheTTL); err != nil {
		s.log.Warn("failed to cache order", slog.String("key", orderCacheKey(order.ID)), sl.Err(err))
	}
	if err := s.events.Publish(ctx, rabbitmq.EventOrderCreated, order); err != nil {
		s.log.Warn("failed to publish event", slog.String("event", rabbitmq.EventOrderCreated), sl.Err(err))
	}

	return order, nil
}

// Read возвращает заказ по ID, используя кеш или репозиторий.
func (s *OrderService) Read(ctx context.Context, id int64) (*models.Order, error) {
	const op = "services.Read"
	cacheKey := orderCacheKey(id)

	var cached models.Order
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cache.Set(ctx, cacheKey, order, s.cacheTTL); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), sl.Err(err))
	}
	return order, nil
}

// List возвращает страницу заказов по фильтру, от новых к старым.
func (s *OrderService) List(ctx context.Context, params models.ListParams) (*models.OrderPage, error) {
	const op = "services.List"
	if params.Page < 1 || params.Limit < 1 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidPagination)
	}

	var items []*models.Order
	// Смещение, не помещающееся в int, заведомо за последней строкой.
	if offset, ok := pageOffset(params.Page, params.Limit); ok {
		var err error
		items, err = s.repo.ListOrders(ctx, params.Filter, params.Limit, offset)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	total, err := s.repo.CountOrders(ctx, params.Filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if items == nil {
		items = []*models.Order{}
	}

	return &models.OrderPage{
		Items:      items,
		Pagination: paginate(params.Page, params.Limit, total),
	}, nil
}

// Stats возвращает агрегаты по всем заказам. Результат кешируется до следующего Create.
func (s *OrderService) Stats(ctx context.Context) (models.OrderStats, error) {
	const op = "services.Stats"

	// Версия читается до запроса к репозиторию. Без нее кеш не используется.
	var version int64
	if _, err := s.cache.Get(ctx, statsVersionKey, &version); err != nil {
		s.log.Warn("failed to read stats version", sl.Err(err))
		return s.computeStats(ctx, op)
	}
	cacheKey := statsCacheKey(version)

	var stats models.OrderStats
	found, err := s.cache.Get(ctx, cacheKey, &stats)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return stats, nil
	}

	stats, err = s.computeStats(ctx, op)
	if err != nil {
		return models.OrderStats{}, err
	}

	if err := s.cache.Set(ctx, cacheKey, stats, s.cacheTTL); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), sl.Err(err))
	}
	return stats, nil
}

func (s *OrderService) computeStats(ctx context.Context, op string) (models.OrderStats, error) {
	stats, err := s.repo.OrderStats(ctx)
	if err != nil {
		return models.OrderStats{}, fmt.Errorf("%s: %w", op, err)
	}
	stats.AverageQuantity = roundHalfUp(stats.AverageQuantity)
	return stats, nil
}

// pageOffset возвращает (page-1)*limit или false, если произведение не помещается в int.
func pageOffset(page, limit int) (int, bool) {
	if page-1 > math.MaxInt/limit {
		return 0, false
	}
	return (page - 1) * limit, true
}

func paginate(page, limit int, total int64) models.Pagination {
	l := int64(limit)
	totalPages := total / l
	if total%l != 0 {
		totalPages++
	}
	return models.Pagination{
		Page:        page,
		Limit:       limit,
		TotalCount:  total,
		TotalPages:  totalPages,
		HasNextPage: int64(page) < totalPages,
		HasPrevPage: page > 1,
	}
}

// roundHalfUp округляет до двух знаков после запятой, половина вверх.
func roundHalfUp(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
