package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goinvest/internal/domain"
)

func TestNormalizeInvestmentType(t *testing.T) {
	assert.Equal(t, domain.TypeStock, domain.NormalizeInvestmentType("Stock"))
	assert.Equal(t, domain.TypeFund, domain.NormalizeInvestmentType("fund"))
	assert.Equal(t, domain.TypeBond, domain.NormalizeInvestmentType(" BOND "))
	assert.Equal(t, domain.TypeFund, domain.NormalizeInvestmentType("Fundo"))
	assert.Equal(t, domain.InvestmentType("Cripto"), domain.NormalizeInvestmentType("Cripto"))
}

func TestParseInvestmentDate(t *testing.T) {
	want := time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{"2023-10-01", "2023-10-01T00:00:00Z", "2023-10-01T00:00:00.000Z", "2023-10-01T00:00:00"} {
		got, err := domain.ParseInvestmentDate(raw)
		require.NoError(t, err, raw)
		assert.True(t, want.Equal(got), raw)
	}

	got, err := domain.ParseInvestmentDate("2023-10-01T03:00:00+03:00")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
	assert.Equal(t, time.UTC, got.Location())

	_, err = domain.ParseInvestmentDate("01/10/2023")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestInvestmentRequest_ToInvestment(t *testing.T) {
	value := 1000.0
	req := domain.InvestmentRequest{Name: "Fundo X", Type: domain.TypeFund, Value: &value, InvestmentDate: "2023-10-01"}

	inv, err := req.ToInvestment()

	require.NoError(t, err)
	assert.Equal(t, "Fundo X", inv.Name)
	assert.Equal(t, domain.TypeFund, inv.Type)
	assert.Equal(t, 1000.0, inv.Value)
	assert.Equal(t, "2023-10-01", inv.InvestmentDate.Format("2006-01-02"))
	assert.Empty(t, inv.ID)
	assert.Zero(t, inv.Version)
}
