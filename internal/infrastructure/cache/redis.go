package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/bunx-io/salonx-api/internal/application/analytics"
	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/pkg/config"
)

var _ analytics.DashboardCache = (*Redis)(nil)

const metricsKey = "dashboard:metrics"

// Redis cache das métricas do dashboard sobre go-redis. Falhas de cache nunca
// derrubam a requisição: erro em leitura vira miss, erro em escrita vira warn.
type Redis struct {
	client *redis.Client
}

// NewRedis conecta ao Redis e devolve o cache. O ping valida a conexão na subida.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Redis{client: client}, nil
}

// GetMetrics lê as métricas do cache; qualquer erro é tratado como miss.
func (c *Redis) GetMetrics(ctx context.Context) (*dto.DashboardMetricsResponse, bool) {
	data, err := c.client.Get(ctx, metricsKey).Bytes()
	if err != nil {
		return nil, false
	}
	var metrics dto.DashboardMetricsResponse
	if err := json.Unmarshal(data, &metrics); err != nil {
		return nil, false
	}
	return &metrics, true
}

// SetMetrics grava as métricas com TTL.
func (c *Redis) SetMetrics(ctx context.Context, metrics *dto.DashboardMetricsResponse, ttl time.Duration) {
	data, err := json.Marshal(metrics)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, metricsKey, data, ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("falha ao gravar métricas no cache")
	}
}

// Close encerra a conexão com o Redis.
func (c *Redis) Close() error {
	return c.client.Close()
}
