package investment

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"goinvest/internal/domain"
	apperror "goinvest/internal/errors"
	"goinvest/internal/pkg/logger"
)

// Handler agrupa todos os métodos de Handler de investimentos.
type Handler struct {
	Service domain.InvestmentService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc domain.InvestmentService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// handleServiceResponse processa erros de serviço e envia respostas padronizadas ao cliente.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if data != nil {
			if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
				h.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
			}
		}
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		h.Logger.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		h.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	})
}

// decodeRequest lê o corpo JSON do investimento.
func decodeRequest(r *http.Request) (domain.InvestmentRequest, error) {
	var req domain.InvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return domain.InvestmentRequest{}, apperror.NewValidationError(domain.MsgInvalidJSON)
	}
	return req, nil
}

// CreateInvestmentHandler lida com a requisição POST /api/investments.
// @Summary Cria um novo investimento
// @Description Valida e persiste um novo investimento. O tipo aceita Ação, Fundo ou Título (ou Stock, Fund, Bond).
// @Tags Investimentos
// @Accept json
// @Produce json
// @Param investment body domain.InvestmentRequest true "Dados do investimento"
// @Success 201 {object} domain.Investment "Investimento criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Erro de validação"
// @Failure 500 {object} domain.ErrorResponse "Erro interno no servidor"
// @Router /investments [post]
func (h *Handler) CreateInvestmentHandler(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateInvestment(r.Context(), req)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusCreated)
		return
	}

	h.handleServiceResponse(w, r, created, nil, http.StatusCreated)
}

// ListInvestmentsHandler lida com a requisição GET /api/investments.
// @Summary Retorna todos os investimentos
// @Description Lista todos os investimentos cadastrados, sem paginação nem filtros.
// @Tags Investimentos
// @Produce json
// @Success 200 {array} domain.Investment "Lista de investimentos"
// @Failure 500 {object} domain.ErrorResponse "Erro interno no servidor"
// @Router /investments [get]
func (h *Handler) ListInvestmentsHandler(w http.ResponseWriter, r *http.Request) {
	investments, err := h.Service.ListInvestments(r.Context())
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, investments, nil, http.StatusOK)
}

// UpdateInvestmentHandler lida com a requisição PUT /api/investments/{id}.
// @Summary Atualiza um investimento existente
// @Description Substitui os quatro campos de negócio do investimento e incrementa a versão.
// @Tags Investimentos
// @Accept json
// @Produce json
// @Param id path string true "ID do investimento a ser atualizado"
// @Param investment body domain.InvestmentRequest true "Novos dados do investimento"
// @Success 200 {object} domain.Investment "Investimento atualizado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Erro de validação"
// @Failure 404 {object} domain.ErrorResponse "Investimento não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno no servidor"
// @Router /investments/{id} [put]
func (h *Handler) UpdateInvestmentHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req, err := decodeRequest(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusBadRequest)
		return
	}

	updated, err := h.Service.UpdateInvestment(r.Context(), id, req)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, updated, nil, http.StatusOK)
}

// DeleteInvestmentHandler lida com a requisição DELETE /api/investments/{id}.
// @Summary Remove um investimento
// @Description Remove o investimento pelo seu ID.
// @Tags Investimentos
// @Produce json
// @Param id path string true "ID do investimento a ser removido"
// @Success 200 {object} domain.MessageResponse "Investimento removido com sucesso"
// @Failure 404 {object} domain.ErrorResponse "Investimento não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno no servidor"
// @Router /investments/{id} [delete]
func (h *Handler) DeleteInvestmentHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Service.DeleteInvestment(r.Context(), id); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, domain.MessageResponse{Message: domain.MsgDeleted}, nil, http.StatusOK)
}
