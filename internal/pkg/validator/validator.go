package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"goinvest/internal/domain"
	apperror "goinvest/internal/errors"
)

// Validator aplica as regras declaradas nas tags `validate` dos payloads
// e devolve o primeiro campo violado como apperror.ValidationError.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// Option configura o Validator.
type Option func(*Validator)

// WithClock substitui o relógio usado pela regra notfuture (útil em testes).
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

// New cria o Validator e registra as regras customizadas do domínio.
func New(opts ...Option) *Validator {
	v := &Validator{
		validate: validator.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}

	// Reporta o nome JSON do campo em vez do nome Go.
	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// As funções são registradas uma única vez; erros aqui são bugs de programação.
	mustRegister(v.validate, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v.validate, "investmentdate", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseInvestmentDate(fl.Field().String())
		return err == nil
	})
	mustRegister(v.validate, "notfuture", func(fl validator.FieldLevel) bool {
		t, err := domain.ParseInvestmentDate(fl.Field().String())
		if err != nil {
			return false
		}
		return !t.After(v.now())
	})

	return v
}

func mustRegister(validate *validator.Validate, tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validator: falha ao registrar a regra %q: %v", tag, err))
	}
}

// Struct valida s e devolve nil ou um *apperror.ValidationError com o primeiro campo violado.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperror.NewInternalError("Falha ao validar o payload.", err)
	}

	first := fieldErrs[0]
	return apperror.NewFieldValidationError(first.Field(), messageFor(first.Field(), first.Tag()))
}

// messages mapeia "campo.regra" para a mensagem exibida ao cliente.
var messages = map[string]string{
	"name.required":                 "O nome do investimento é obrigatório.",
	"name.notblank":                 "O nome do investimento é obrigatório.",
	"type.required":                 "O tipo do investimento é obrigatório.",
	"type.oneof":                    "O tipo do investimento deve ser Ação, Fundo ou Título.",
	"value.required":                "O valor investido é obrigatório.",
	"value.gt":                      "O valor investido deve ser maior que 0.",
	"investmentDate.required":       "A data do investimento é obrigatória.",
	"investmentDate.investmentdate": "A data do investimento é inválida. Use o formato AAAA-MM-DD.",
	"investmentDate.notfuture":      "A data do investimento não pode estar no futuro.",
}

func messageFor(field, tag string) string {
	if msg, ok := messages[field+"."+tag]; ok {
		return msg
	}
	return fmt.Sprintf("O campo '%s' é inválido (regra: %s).", field, tag)
}
