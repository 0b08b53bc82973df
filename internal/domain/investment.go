package domain

import (
	"context"
	"errors"
	"strings"
	"time"
)

// InvestmentType é o tipo do investimento. Os valores canônicos são os nomes em português.
type InvestmentType string

const (
	TypeStock InvestmentType = "Ação"
	TypeFund  InvestmentType = "Fundo"
	TypeBond  InvestmentType = "Título"
)

// InvestmentTypes lista os tipos aceitos, na ordem usada nas mensagens e na documentação.
var InvestmentTypes = []InvestmentType{TypeStock, TypeFund, TypeBond}

// aliases em inglês aceitos na entrada
var typeAliases = map[string]InvestmentType{
	"stock": TypeStock,
	"fund":  TypeFund,
	"bond":  TypeBond,
}

// NormalizeInvestmentType converte nomes em inglês (Stock, Fund, Bond) no valor canônico.
// Qualquer outro valor é devolvido sem alteração para que a validação o rejeite.
func NormalizeInvestmentType(raw InvestmentType) InvestmentType {
	if t, ok := typeAliases[strings.ToLower(strings.TrimSpace(string(raw)))]; ok {
		return t
	}
	return raw
}

// Investment representa um registro de investimento (a Entidade).
type Investment struct {
	ID             string         `json:"id" example:"67b3bfc44cd613d3e360b9f6"`
	Name           string         `json:"name" example:"Fundo X"`
	Type           InvestmentType `json:"type" enums:"Ação,Fundo,Título" example:"Fundo"`
	Value          float64        `json:"value" example:"1000"`
	InvestmentDate time.Time      `json:"investmentDate" example:"2023-10-01T00:00:00Z"`
	Version        int            `json:"version" example:"0"` // Revisão mantida pela persistência
}

// InvestmentRequest é o payload de criação e atualização.
// Os quatro campos de negócio são sempre substituídos por completo.
type InvestmentRequest struct {
	Name           string         `json:"name" validate:"required,notblank" example:"Fundo X"`
	Type           InvestmentType `json:"type" validate:"required,oneof=Ação Fundo Título" enums:"Ação,Fundo,Título" example:"Fundo"`
	Value          *float64       `json:"value" validate:"required,gt=0" example:"1000"`
	InvestmentDate string         `json:"investmentDate" validate:"required,investmentdate,notfuture" example:"2023-10-01"`
}

// ErrInvalidDate indica que a data do investimento não está em um formato aceito.
var ErrInvalidDate = errors.New("data do investimento inválida")

// dateLayouts são os formatos aceitos para investmentDate, do mais curto ao mais completo.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano, // cobre RFC3339 com e sem frações de segundo
	"2006-01-02T15:04:05",
}

// ParseInvestmentDate interpreta a data do investimento. Datas sem fuso são tratadas como UTC.
func ParseInvestmentDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// ToInvestment converte um payload já validado na entidade, sem ID nem versão.
func (r InvestmentRequest) ToInvestment() (Investment, error) {
	date, err := ParseInvestmentDate(r.InvestmentDate)
	if err != nil {
		return Investment{}, err
	}
	var value float64
	if r.Value != nil {
		value = *r.Value
	}
	return Investment{
		Name:           r.Name,
		Type:           r.Type,
		Value:          value,
		InvestmentDate: date,
	}, nil
}

// --- Interfaces de Contrato ---

// InvestmentRepository é o Persistence Gateway: o que o Serviço pode pedir ao armazenamento.
type InvestmentRepository interface {
	Create(ctx context.Context, investment Investment) (Investment, error)
	ListAll(ctx context.Context) ([]Investment, error)
	UpdateByID(ctx context.Context, id string, investment Investment) (Investment, error)
	DeleteByID(ctx context.Context, id string) error
}

// InvestmentService é o que a camada de API pode pedir para a camada de Serviço fazer.
type InvestmentService interface {
	CreateInvestment(ctx context.Context, req InvestmentRequest) (Investment, error)
	ListInvestments(ctx context.Context) ([]Investment, error)
	UpdateInvestment(ctx context.Context, id string, req InvestmentRequest) (Investment, error)
	DeleteInvestment(ctx context.Context, id string) error
}

// Mensagens públicas fixas compartilhadas pelas camadas.
const (
	MsgNotFound    = "Investimento não encontrado."
	MsgDeleted     = "Investimento removido com sucesso."
	MsgListFailed  = "Erro ao buscar investimentos."
	MsgInvalidJSON = "Payload inválido. Verifique o formato JSON."
)
