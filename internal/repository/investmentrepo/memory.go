package investmentrepo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"goinvest/internal/domain"
	apperror "goinvest/internal/errors"
)

// MemoryRepository guarda os investimentos em memória, na ordem de inserção.
// Selecionado com DATABASE_URL=memory:// para desenvolvimento local; os dados
// não sobrevivem ao processo.
type MemoryRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]domain.Investment
}

// NewMemoryRepository cria um repositório vazio.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]domain.Investment)}
}

func (r *MemoryRepository) Create(_ context.Context, investment domain.Investment) (domain.Investment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	investment.ID = uuid.NewString()
	investment.Version = 0
	r.items[investment.ID] = investment
	r.order = append(r.order, investment.ID)
	return investment, nil
}

func (r *MemoryRepository) ListAll(context.Context) ([]domain.Investment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	investments := make([]domain.Investment, 0, len(r.order))
	for _, id := range r.order {
		investments = append(investments, r.items[id])
	}
	return investments, nil
}

func (r *MemoryRepository) UpdateByID(_ context.Context, id string, investment domain.Investment) (domain.Investment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[id]
	if !ok {
		return domain.Investment{}, apperror.NewNotFoundError(id, domain.MsgNotFound)
	}
	current.Name = investment.Name
	current.Type = investment.Type
	current.Value = investment.Value
	current.InvestmentDate = investment.InvestmentDate
	current.Version++
	r.items[id] = current
	return current, nil
}

func (r *MemoryRepository) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return apperror.NewNotFoundError(id, domain.MsgNotFound)
	}
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
