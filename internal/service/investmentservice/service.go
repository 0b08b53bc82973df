package investmentservice

import (
	"context"

	"goinvest/internal/domain"
	apperror "goinvest/internal/errors"
	"goinvest/internal/pkg/logger"
)

// Validator valida um payload e devolve um *apperror.ValidationError na primeira violação.
type Validator interface {
	Struct(s interface{}) error
}

// Service implementa domain.InvestmentService.
type Service struct {
	repo      domain.InvestmentRepository
	validator Validator
	logger    logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Investimentos.
func NewService(repo domain.InvestmentRepository, validator Validator, logger logger.Logger) *Service {
	return &Service{repo: repo, validator: validator, logger: logger}
}

// CreateInvestment valida o payload e persiste o novo investimento.
func (s *Service) CreateInvestment(ctx context.Context, req domain.InvestmentRequest) (domain.Investment, error) {
	s.logger.Debug("Iniciando criação de investimento no serviço.", map[string]interface{}{"name": req.Name, "type": req.Type})

	investment, err := s.prepare(req)
	if err != nil {
		return domain.Investment{}, err
	}

	created, err := s.repo.Create(ctx, investment)
	if err != nil {
		s.logger.Error("Falha ao criar investimento no repositório.", err)
		return domain.Investment{}, translate(err, "Falha interna ao criar investimento.")
	}

	s.logger.Info("Investimento criado com sucesso.", map[string]interface{}{"id": created.ID, "name": created.Name})
	return created, nil
}

// ListInvestments devolve todos os investimentos, sem paginação nem filtros.
func (s *Service) ListInvestments(ctx context.Context) ([]domain.Investment, error) {
	s.logger.Debug("Iniciando listagem de investimentos no serviço.", nil)

	investments, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("Falha ao listar investimentos no repositório.", err)
		return nil, translate(err, domain.MsgListFailed)
	}
	if investments == nil {
		investments = []domain.Investment{}
	}

	s.logger.Info("Investimentos listados com sucesso.", map[string]interface{}{"count": len(investments)})
	return investments, nil
}

// UpdateInvestment revalida o payload e substitui os quatro campos de negócio.
func (s *Service) UpdateInvestment(ctx context.Context, id string, req domain.InvestmentRequest) (domain.Investment, error) {
	s.logger.Debug("Iniciando atualização de investimento no serviço.", map[string]interface{}{"id": id})

	investment, err := s.prepare(req)
	if err != nil {
		return domain.Investment{}, err
	}

	updated, err := s.repo.UpdateByID(ctx, id, investment)
	if err != nil {
		s.logger.Warn("Falha ao atualizar investimento no repositório.", map[string]interface{}{"id": id, "error": err.Error()})
		return domain.Investment{}, translate(err, "Falha interna ao atualizar investimento.")
	}

	s.logger.Info("Investimento atualizado com sucesso.", map[string]interface{}{"id": updated.ID, "version": updated.Version})
	return updated, nil
}

// DeleteInvestment remove o investimento pelo ID.
func (s *Service) DeleteInvestment(ctx context.Context, id string) error {
	s.logger.Debug("Iniciando exclusão de investimento no serviço.", map[string]interface{}{"id": id})

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.Warn("Falha ao remover investimento no repositório.", map[string]interface{}{"id": id, "error": err.Error()})
		return translate(err, "Falha interna ao remover investimento.")
	}

	s.logger.Info("Investimento removido com sucesso.", map[string]interface{}{"id": id})
	return nil
}

// prepare normaliza o tipo, valida e converte o payload na entidade.
// Nenhuma chamada ao repositório acontece se a validação falhar.
func (s *Service) prepare(req domain.InvestmentRequest) (domain.Investment, error) {
	req.Type = domain.NormalizeInvestmentType(req.Type)

	if err := s.validator.Struct(req); err != nil {
		s.logger.Warn("Falha na validação do investimento.", map[string]interface{}{"error": err.Error()})
		return domain.Investment{}, err
	}

	investment, err := req.ToInvestment()
	if err != nil {
		// Inalcançável após a validação.
		return domain.Investment{}, apperror.NewFieldValidationError("investmentDate", "A data do investimento é inválida.")
	}
	return investment, nil
}

// translate preserva erros já tipados e encapsula os demais como InternalError.
func translate(err error, msg string) error {
	if _, ok := err.(apperror.AppError); ok {
		return err
	}
	return apperror.NewInternalError(msg, err)
}
