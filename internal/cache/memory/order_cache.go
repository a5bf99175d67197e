package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/kradzieta/warehouse-orders/internal/domain"
	"github.com/kradzieta/warehouse-orders/internal/ports"
	"github.com/kradzieta/warehouse-orders/pkg/metrics"
)

// Проверка, что LRUCacheTTL удовлетворяет интерфейсу OrderCache.
var _ ports.OrderCache = (*LRUCacheTTL)(nil)

type entry struct {
	id        string
	details   *domain.OrderDetails
	expiresAt time.Time
}

// LRUCacheTTL — кэш деталей заказов: LRU по ёмкости + TTL по времени.
// ttl <= 0 отключает истечение. Наружу отдаются копии, не внутренние указатели.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

// NewLRUCacheTTL - конструктор LRUCacheTTL.
func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Get — детали заказа по id; (nil, false) при промахе или истечении.
// Попадание продлевает TTL и двигает элемент в голову LRU.
func (c *LRUCacheTTL) Get(_ context.Context, orderID string) (*domain.OrderDetails, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[orderID]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneDetails(ent.details), true
}

// Set — сохраняет/обновляет детали заказа.
func (c *LRUCacheTTL) Set(_ context.Context, details *domain.OrderDetails) error {
	if details == nil || details.Order.ID == "" {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[details.Order.ID]; ok {
		ent := elem.Value.(*entry)
		ent.details = cloneDetails(details)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		id:        details.Order.ID,
		details:   cloneDetails(details),
		expiresAt: c.expiryFrom(now),
	})
	c.index[details.Order.ID] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// Invalidate — убирает заказ из кэша (после смены статуса или удаления).
// Отсутствие ключа — no-op.
func (c *LRUCacheTTL) Invalidate(_ context.Context, orderID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[orderID]; ok {
		c.removeElement(elem)
		metrics.CacheOps.WithLabelValues("invalidated").Inc()
		metrics.CacheSize.Set(float64(len(c.index)))
	}
}

// WarmUp — массовая загрузка (прогрев на старте); уважает отмену контекста.
func (c *LRUCacheTTL) WarmUp(ctx context.Context, orders []*domain.OrderDetails) error {
	for _, details := range orders {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := c.Set(ctx, details); err != nil {
			return err
		}
	}
	return nil
}

// ------вспомогательные функции------

// evictLRU — удаляет наименее используемый элемент.
func (c *LRUCacheTTL) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("evicted").Inc()
		metrics.CacheSize.Set(float64(len(c.index)))
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (c *LRUCacheTTL) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	if ent, ok := elem.Value.(*entry); ok {
		delete(c.index, ent.id)
	}
	c.ll.Remove(elem)
}

func (c *LRUCacheTTL) isExpired(ent *entry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

func (c *LRUCacheTTL) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — вычищает протухшие элементы с хвоста перед вставкой.
func (c *LRUCacheTTL) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent := back.Value.(*entry)
		if now.After(ent.expiresAt) {
			c.removeElement(back)
			metrics.CacheOps.WithLabelValues("expired").Inc()
			metrics.CacheSize.Set(float64(len(c.index)))
			continue
		}
		return
	}
}

// cloneDetails — глубокая копия: позиции заказа копируются отдельным слайсом.
func cloneDetails(details *domain.OrderDetails) *domain.OrderDetails {
	if details == nil {
		return nil
	}
	cloned := *details
	if details.Order.Lines != nil {
		cloned.Order.Lines = append([]domain.OrderLine(nil), details.Order.Lines...)
	}
	return &cloned
}
