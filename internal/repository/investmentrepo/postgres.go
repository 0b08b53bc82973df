package investmentrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"goinvest/internal/domain"
	apperror "goinvest/internal/errors"
	"goinvest/internal/pkg/logger"
)

const investmentColumns = `id, name, type, value, investment_date, version`

// PostgresRepository implementa domain.InvestmentRepository sobre a tabela investments.
type PostgresRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewPostgresRepository cria e retorna uma nova instância do Repositório PostgreSQL.
func NewPostgresRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *PostgresRepository {
	return &PostgresRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// rowScanner é satisfeito por *sql.Row e *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInvestment(row rowScanner) (domain.Investment, error) {
	var (
		inv     domain.Investment
		invType string
	)
	if err := row.Scan(&inv.ID, &inv.Name, &invType, &inv.Value, &inv.InvestmentDate, &inv.Version); err != nil {
		return domain.Investment{}, err
	}
	inv.Type = domain.InvestmentType(invType)
	inv.InvestmentDate = inv.InvestmentDate.UTC()
	return inv, nil
}

// Create insere um novo investimento com um UUID gerado e revisão 0.
func (r *PostgresRepository) Create(ctx context.Context, investment domain.Investment) (domain.Investment, error) {
	r.logger.Debug("Iniciando Create no repositório PostgreSQL.", map[string]interface{}{"name": investment.Name})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        INSERT INTO investments (id, name, type, value, investment_date, version)
        VALUES ($1, $2, $3, $4, $5, 0)
        RETURNING ` + investmentColumns

	created, err := scanInvestment(r.DB.QueryRowContext(ctxTimeout, query,
		uuid.NewString(), investment.Name, string(investment.Type), investment.Value, investment.InvestmentDate,
	))
	if err != nil {
		r.logger.Error("Falha ao inserir investimento no DB.", err)
		return domain.Investment{}, apperror.NewDBError("Falha ao criar investimento.", err)
	}

	r.logger.Info("Investimento criado com sucesso.", map[string]interface{}{"id": created.ID})
	return created, nil
}

// ListAll busca todos os investimentos. Nenhuma ordenação é imposta.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]domain.Investment, error) {
	r.logger.Debug("Iniciando ListAll no repositório PostgreSQL.", nil)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, `SELECT `+investmentColumns+` FROM investments`)
	if err != nil {
		r.logger.Error("Falha ao executar ListAll query.", err)
		return nil, apperror.NewDBError(domain.MsgListFailed, err)
	}
	defer rows.Close()

	investments := make([]domain.Investment, 0)
	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			r.logger.Error("Falha ao mapear investimento na iteração de ListAll.", err)
			return nil, apperror.NewDBError(domain.MsgListFailed, err)
		}
		investments = append(investments, inv)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de investimentos.", err)
		return nil, apperror.NewDBError(domain.MsgListFailed, err)
	}

	r.logger.Info("ListAll concluído com sucesso.", map[string]interface{}{"total_investments": len(investments)})
	return investments, nil
}

// UpdateByID substitui os campos de negócio e incrementa a versão.
func (r *PostgresRepository) UpdateByID(ctx context.Context, id string, investment domain.Investment) (domain.Investment, error) {
	r.logger.Debug("Iniciando UpdateByID no repositório PostgreSQL.", map[string]interface{}{"id": id})

	if _, err := uuid.Parse(id); err != nil {
		r.logger.Info("ID de investimento malformado para atualização.", map[string]interface{}{"id": id})
		return domain.Investment{}, apperror.NewNotFoundError(id, domain.MsgNotFound)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        UPDATE investments
        SET name = $1, type = $2, value = $3, investment_date = $4, version = version + 1
        WHERE id = $5
        RETURNING ` + investmentColumns

	updated, err := scanInvestment(r.DB.QueryRowContext(ctxTimeout, query,
		investment.Name, string(investment.Type), investment.Value, investment.InvestmentDate, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Investimento não encontrado para atualização.", map[string]interface{}{"id": id})
		return domain.Investment{}, apperror.NewNotFoundError(id, domain.MsgNotFound)
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar investimento no DB.", err)
		return domain.Investment{}, apperror.NewDBError("Falha ao atualizar investimento.", err)
	}

	r.logger.Info("Investimento atualizado com sucesso.", map[string]interface{}{"id": updated.ID, "version": updated.Version})
	return updated, nil
}

// DeleteByID remove um investimento pelo ID.
func (r *PostgresRepository) DeleteByID(ctx context.Context, id string) error {
	r.logger.Debug("Iniciando DeleteByID no repositório PostgreSQL.", map[string]interface{}{"id": id})

	if _, err := uuid.Parse(id); err != nil {
		r.logger.Info("ID de investimento malformado para exclusão.", map[string]interface{}{"id": id})
		return apperror.NewNotFoundError(id, domain.MsgNotFound)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM investments WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar investimento do DB.", err)
		return apperror.NewDBError("Falha ao remover investimento.", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Falha ao verificar linhas afetadas após DeleteByID.", err)
		return apperror.NewDBError("Falha ao remover investimento.", err)
	}
	if rowsAffected == 0 {
		r.logger.Info("Investimento não encontrado para exclusão.", map[string]interface{}{"id": id})
		return apperror.NewNotFoundError(id, domain.MsgNotFound)
	}

	r.logger.Info("Investimento deletado com sucesso.", map[string]interface{}{"id": id})
	return nil
}
