package investmentrepo

import (
	"context"

	"goinvest/internal/domain"
	apperror "goinvest/internal/errors"
)

// UnavailableRepository responde a todas as operações com erro de armazenamento.
// É montado quando o banco não pôde sequer ser aberto na inicialização,
// para que o servidor continue escutando e devolva 500.
type UnavailableRepository struct {
	Err error
}

// NewUnavailableRepository guarda a causa da falha de inicialização.
func NewUnavailableRepository(err error) *UnavailableRepository {
	return &UnavailableRepository{Err: err}
}

func (r *UnavailableRepository) Create(context.Context, domain.Investment) (domain.Investment, error) {
	return domain.Investment{}, apperror.NewDBError("Falha ao criar investimento.", r.Err)
}

func (r *UnavailableRepository) ListAll(context.Context) ([]domain.Investment, error) {
	return nil, apperror.NewDBError(domain.MsgListFailed, r.Err)
}

func (r *UnavailableRepository) UpdateByID(context.Context, string, domain.Investment) (domain.Investment, error) {
	return domain.Investment{}, apperror.NewDBError("Falha ao atualizar investimento.", r.Err)
}

func (r *UnavailableRepository) DeleteByID(context.Context, string) error {
	return apperror.NewDBError("Falha ao remover investimento.", r.Err)
}
