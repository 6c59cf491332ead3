package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tu-usuario/invoice-dashboard/internal/application/invoices"
	"github.com/tu-usuario/invoice-dashboard/internal/domain/entity"
	"github.com/tu-usuario/invoice-dashboard/pkg/config"
)

// listKey clave única del listado de facturas cacheado.
const listKey = "dashboard:invoices:list"

var _ invoices.ListCache = (*InvoiceListCache)(nil)

// NewClient inicializa el cliente Redis (singleton de proceso, se inyecta desde main).
func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// InvoiceListCache cachea la vista de listado de facturas en Redis con TTL corto.
// Las mutaciones solo invalidan; el repoblado ocurre en la siguiente lectura.
type InvoiceListCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewInvoiceListCache construye el cache del listado.
func NewInvoiceListCache(rdb *redis.Client, ttl time.Duration) *InvoiceListCache {
	return &InvoiceListCache{rdb: rdb, ttl: ttl}
}

// Get devuelve el listado cacheado. El segundo valor indica hit/miss.
func (c *InvoiceListCache) Get(ctx context.Context) ([]*entity.ListedInvoice, bool, error) {
	b, err := c.rdb.Get(ctx, listKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var list []*entity.ListedInvoice
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, false, err
	}
	return list, true, nil
}

// Set guarda el listado con el TTL configurado.
func (c *InvoiceListCache) Set(ctx context.Context, list []*entity.ListedInvoice) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, listKey, b, c.ttl).Err()
}

// Invalidate descarta el listado cacheado tras una mutación.
func (c *InvoiceListCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, listKey).Err()
}
