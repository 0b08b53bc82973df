package investmentrepo

import (
	"context"
	"encoding/json"
	"time"

	"goinvest/internal/domain"
	"goinvest/internal/pkg/cache"
	"goinvest/internal/pkg/logger"
)

// listCacheKey guarda o resultado serializado de ListAll.
const listCacheKey = "investments:all"

// CachedRepository decora um domain.InvestmentRepository com a estratégia Cache-Aside
// para ListAll. Toda escrita bem-sucedida invalida a chave. Falhas do cache nunca
// falham a requisição: a leitura cai no repositório de origem.
type CachedRepository struct {
	next   domain.InvestmentRepository
	cache  cache.Client
	ttl    time.Duration
	logger logger.Logger
}

// NewCachedRepository envolve next com o cache informado.
func NewCachedRepository(next domain.InvestmentRepository, cacheClient cache.Client, ttl time.Duration, logger logger.Logger) *CachedRepository {
	return &CachedRepository{
		next:   next,
		cache:  cacheClient,
		ttl:    ttl,
		logger: logger,
	}
}

// ListAll tenta o cache antes do repositório de origem.
func (r *CachedRepository) ListAll(ctx context.Context) ([]domain.Investment, error) {
	cached, err := r.cache.Get(ctx, listCacheKey)
	if err == nil {
		var investments []domain.Investment
		if json.Unmarshal([]byte(cached), &investments) == nil && investments != nil {
			r.logger.Debug("Cache HIT para lista de investimentos.", map[string]interface{}{"key": listCacheKey})
			return investments, nil
		}
		r.logger.Warn("Conteúdo inválido no cache de investimentos; consultando o banco.", map[string]interface{}{"key": listCacheKey})
	} else if err != cache.ErrCacheMiss {
		r.logger.Warn("Falha ao ler do cache Redis.", map[string]interface{}{"key": listCacheKey, "error": err.Error()})
	}

	investments, err := r.next.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(investments)
	if err != nil {
		r.logger.Warn("Falha ao serializar investimentos para o cache.", map[string]interface{}{"error": err.Error()})
		return investments, nil
	}
	if err := r.cache.Set(ctx, listCacheKey, payload, r.ttl); err != nil {
		r.logger.Warn("Falha ao gravar no cache Redis.", map[string]interface{}{"key": listCacheKey, "error": err.Error()})
	}
	return investments, nil
}

// Create delega e invalida a lista em cache.
func (r *CachedRepository) Create(ctx context.Context, investment domain.Investment) (domain.Investment, error) {
	created, err := r.next.Create(ctx, investment)
	if err != nil {
		return domain.Investment{}, err
	}
	r.invalidate(ctx)
	return created, nil
}

// UpdateByID delega e invalida a lista em cache.
func (r *CachedRepository) UpdateByID(ctx context.Context, id string, investment domain.Investment) (domain.Investment, error) {
	updated, err := r.next.UpdateByID(ctx, id, investment)
	if err != nil {
		return domain.Investment{}, err
	}
	r.invalidate(ctx)
	return updated, nil
}

// DeleteByID delega e invalida a lista em cache.
func (r *CachedRepository) DeleteByID(ctx context.Context, id string) error {
	if err := r.next.DeleteByID(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedRepository) invalidate(ctx context.Context) {
	if err := r.cache.Delete(ctx, listCacheKey); err != nil {
		r.logger.Warn("Falha ao invalidar o cache de investimentos.", map[string]interface{}{"key": listCacheKey, "error": err.Error()})
	}
}
