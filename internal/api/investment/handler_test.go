package investment_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"goinvest/internal/api/investment"
	"goinvest/internal/domain"
	apperror "goinvest/internal/errors"
	"goinvest/internal/pkg/logger"
)

// MockInvestmentService simula a camada de serviço para os testes de Handler.
type MockInvestmentService struct {
	mock.Mock
}

func (m *MockInvestmentService) CreateInvestment(ctx context.Context, req domain.InvestmentRequest) (domain.Investment, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.Investment), args.Error(1)
}

func (m *MockInvestmentService) ListInvestments(ctx context.Context) ([]domain.Investment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Investment), args.Error(1)
}

func (m *MockInvestmentService) UpdateInvestment(ctx context.Context, id string, req domain.InvestmentRequest) (domain.Investment, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(domain.Investment), args.Error(1)
}

func (m *MockInvestmentService) DeleteInvestment(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestRouter(svc domain.InvestmentService) http.Handler {
	h := investment.NewHandler(svc, logger.Nop())
	r := chi.NewRouter()
	r.Post("/api/investments", h.CreateInvestmentHandler)
	r.Get("/api/investments", h.ListInvestmentsHandler)
	r.Put("/api/investments/{id}", h.UpdateInvestmentHandler)
	r.Delete("/api/investments/{id}", h.DeleteInvestmentHandler)
	return r
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) domain.ErrorResponse {
	t.Helper()
	var resp domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

const fundXBody = `{"name":"Fund X","type":"Fund","value":1000,"investmentDate":"2023-10-01"}`

func TestCreateInvestmentHandler_Created(t *testing.T) {
	svc := new(MockInvestmentService)
	stored := domain.Investment{
		ID:             "67b3bfc44cd613d3e360b9f6",
		Name:           "Fund X",
		Type:           domain.TypeFund,
		Value:          1000,
		InvestmentDate: time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC),
	}
	svc.On("CreateInvestment", mock.Anything, mock.MatchedBy(func(req domain.InvestmentRequest) bool {
		return req.Name == "Fund X" && req.Type == "Fund" && req.Value != nil && *req.Value == 1000
	})).Return(stored, nil)

	rec := do(t, newTestRouter(svc), http.MethodPost, "/api/investments", fundXBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, stored.ID, body["id"])
	assert.Equal(t, "Fundo", body["type"])
	assert.Equal(t, "2023-10-01T00:00:00Z", body["investmentDate"])
	assert.EqualValues(t, 0, body["version"])
	svc.AssertExpectations(t)
}

func TestCreateInvestmentHandler_ValidationError(t *testing.T) {
	svc := new(MockInvestmentService)
	svc.On("CreateInvestment", mock.Anything, mock.Anything).
		Return(domain.Investment{}, apperror.NewFieldValidationError("value", "O valor deve ser maior que 0."))

	rec := do(t, newTestRouter(svc), http.MethodPost, "/api/investments",
		`{"name":"Bad","type":"Fund","value":-5,"investmentDate":"2023-10-01"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", resp.Category)
	assert.Equal(t, "O valor deve ser maior que 0.", resp.Message)
}

func TestCreateInvestmentHandler_InvalidJSON(t *testing.T) {
	svc := new(MockInvestmentService)

	rec := do(t, newTestRouter(svc), http.MethodPost, "/api/investments", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.MsgInvalidJSON, decodeError(t, rec).Message)
	svc.AssertNotCalled(t, "CreateInvestment", mock.Anything, mock.Anything)
}

func TestListInvestmentsHandler_EmptyArray(t *testing.T) {
	svc := new(MockInvestmentService)
	svc.On("ListInvestments", mock.Anything).Return([]domain.Investment{}, nil)

	rec := do(t, newTestRouter(svc), http.MethodGet, "/api/investments", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestListInvestmentsHandler_InternalError(t *testing.T) {
	svc := new(MockInvestmentService)
	svc.On("ListInvestments", mock.Anything).
		Return([]domain.Investment(nil), apperror.NewInternalError(domain.MsgListFailed, errors.New("timeout")))

	rec := do(t, newTestRouter(svc), http.MethodGet, "/api/investments", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, domain.MsgListFailed, resp.Message)
	assert.NotContains(t, rec.Body.String(), "timeout")
}

func TestUpdateInvestmentHandler_Success(t *testing.T) {
	svc := new(MockInvestmentService)
	updated := domain.Investment{ID: "abc", Name: "Fund X", Type: domain.TypeFund, Value: 1000, Version: 1}
	svc.On("UpdateInvestment", mock.Anything, "abc", mock.Anything).Return(updated, nil)

	rec := do(t, newTestRouter(svc), http.MethodPut, "/api/investments/abc", fundXBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body domain.Investment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Version)
	svc.AssertExpectations(t)
}

func TestUpdateInvestmentHandler_NotFound(t *testing.T) {
	svc := new(MockInvestmentService)
	svc.On("UpdateInvestment", mock.Anything, "missing", mock.Anything).
		Return(domain.Investment{}, apperror.NewNotFoundError("missing", domain.MsgNotFound))

	rec := do(t, newTestRouter(svc), http.MethodPut, "/api/investments/missing", fundXBody)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domain.MsgNotFound, decodeError(t, rec).Message)
}

func TestDeleteInvestmentHandler_TwiceYieldsNotFound(t *testing.T) {
	svc := new(MockInvestmentService)
	svc.On("DeleteInvestment", mock.Anything, "abc").Return(nil).Once()
	svc.On("DeleteInvestment", mock.Anything, "abc").Return(apperror.NewNotFoundError("abc", domain.MsgNotFound)).Once()
	router := newTestRouter(svc)

	first := do(t, router, http.MethodDelete, "/api/investments/abc", "")
	assert.Equal(t, http.StatusOK, first.Code)
	var msg domain.MessageResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &msg))
	assert.Equal(t, domain.MsgDeleted, msg.Message)

	second := do(t, router, http.MethodDelete, "/api/investments/abc", "")
	assert.Equal(t, http.StatusNotFound, second.Code)
	assert.Equal(t, domain.MsgNotFound, decodeError(t, second).Message)
	svc.AssertExpectations(t)
}

func TestDeleteInvestmentHandler_UnknownError(t *testing.T) {
	svc := new(MockInvestmentService)
	svc.On("DeleteInvestment", mock.Anything, "abc").Return(errors.New("panic-ish"))

	rec := do(t, newTestRouter(svc), http.MethodDelete, "/api/investments/abc", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "UNKNOWN_ERROR", decodeError(t, rec).Category)
}
