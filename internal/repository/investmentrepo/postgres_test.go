package investmentrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goinvest/internal/domain"
	apperror "goinvest/internal/errors"
	"goinvest/internal/pkg/logger"
	"goinvest/internal/repository/investmentrepo"
)

var columns = []string{"id", "name", "type", "value", "investment_date", "version"}

var investmentDate = time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)

func newPostgresRepo(t *testing.T) (*investmentrepo.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return investmentrepo.NewPostgresRepository(db, time.Second, logger.Nop()), mock
}

func sampleInvestment() domain.Investment {
	return domain.Investment{Name: "Fundo X", Type: domain.TypeFund, Value: 1000, InvestmentDate: investmentDate}
}

func TestPostgresCreate_Success(t *testing.T) {
	repo, mock := newPostgresRepo(t)
	id := uuid.NewString()

	mock.ExpectQuery("INSERT INTO investments").
		WithArgs(sqlmock.AnyArg(), "Fundo X", "Fundo", 1000.0, investmentDate).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(id, "Fundo X", "Fundo", 1000.0, investmentDate, 0))

	created, err := repo.Create(context.Background(), sampleInvestment())

	require.NoError(t, err)
	assert.Equal(t, id, created.ID)
	assert.Equal(t, domain.TypeFund, created.Type)
	assert.Equal(t, 0, created.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreate_DBError(t *testing.T) {
	repo, mock := newPostgresRepo(t)

	mock.ExpectQuery("INSERT INTO investments").WillReturnError(errors.New("connection refused"))

	_, err := repo.Create(context.Background(), sampleInvestment())

	assert.IsType(t, &apperror.InternalError{}, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListAll(t *testing.T) {
	repo, mock := newPostgresRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM investments").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(uuid.NewString(), "A", "Ação", 10.5, investmentDate, 0).
			AddRow(uuid.NewString(), "B", "Título", 20.0, investmentDate, 3))

	investments, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, investments, 2)
	assert.Equal(t, domain.TypeStock, investments[0].Type)
	assert.Equal(t, 3, investments[1].Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListAll_EmptyIsNotNil(t *testing.T) {
	repo, mock := newPostgresRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM investments").WillReturnRows(sqlmock.NewRows(columns))

	investments, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, investments)
	assert.Empty(t, investments)
}

func TestPostgresListAll_DBError(t *testing.T) {
	repo, mock := newPostgresRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM investments").WillReturnError(errors.New("boom"))

	_, err := repo.ListAll(context.Background())

	var internalErr *apperror.InternalError
	require.True(t, errors.As(err, &internalErr))
	assert.Equal(t, domain.MsgListFailed, internalErr.Msg)
}

func TestPostgresUpdate_Success(t *testing.T) {
	repo, mock := newPostgresRepo(t)
	id := uuid.NewString()
	changes := sampleInvestment()
	changes.Name = "Fundo Y"
	changes.Value = 1500

	mock.ExpectQuery("UPDATE investments").
		WithArgs("Fundo Y", "Fundo", 1500.0, investmentDate, id).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(id, "Fundo Y", "Fundo", 1500.0, investmentDate, 1))

	updated, err := repo.UpdateByID(context.Background(), id, changes)

	require.NoError(t, err)
	assert.Equal(t, "Fundo Y", updated.Name)
	assert.Equal(t, 1500.0, updated.Value)
	assert.Equal(t, 1, updated.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdate_NotFound(t *testing.T) {
	repo, mock := newPostgresRepo(t)
	id := uuid.NewString()

	mock.ExpectQuery("UPDATE investments").WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.UpdateByID(context.Background(), id, sampleInvestment())

	assert.IsType(t, &apperror.NotFoundError{}, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdate_MalformedIDIsNotFound(t *testing.T) {
	repo, mock := newPostgresRepo(t)

	_, err := repo.UpdateByID(context.Background(), "nao-e-uuid", sampleInvestment())

	assert.IsType(t, &apperror.NotFoundError{}, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDelete(t *testing.T) {
	repo, mock := newPostgresRepo(t)
	id := uuid.NewString()

	mock.ExpectExec("DELETE FROM investments").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM investments").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteByID(context.Background(), id))

	err := repo.DeleteByID(context.Background(), id)
	assert.IsType(t, &apperror.NotFoundError{}, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDelete_DBError(t *testing.T) {
	repo, mock := newPostgresRepo(t)
	id := uuid.NewString()

	mock.ExpectExec("DELETE FROM investments").WithArgs(id).WillReturnError(errors.New("boom"))

	err := repo.DeleteByID(context.Background(), id)

	assert.IsType(t, &apperror.InternalError{}, err)
}
