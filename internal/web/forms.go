package web

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"poker-stack-go/internal/api"
	"poker-stack-go/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

const DecimalTag = "decimal"

// PlayerForm is the body of POST /players
type PlayerForm struct {
	Name             string `form:"name" validate:"required"`
	TelegramUsername string `form:"telegram_username"`
}

// TransactionForm is the body of POST /transactions. Numeric fields arrive as
// text so that malformed input is reported per field.
type TransactionForm struct {
	PlayerId string `form:"player_id" validate:"required,number"`
	Amount   string `form:"amount" validate:"required,max=32,decimal"`
	Type     string `form:"type" validate:"required"`
	Note     string `form:"note"`
}

var customValidations = map[string]validator.Func{
	DecimalTag: validateDecimal,
}

func validateDecimal(fl validator.FieldLevel) bool {
	_, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	return err == nil
}

// XValidator checks parsed forms and reports failures as validation errors
type XValidator struct {
	validator *validator.Validate
}

func NewXValidator() *XValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	for tag, fn := range customValidations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register validation %s: %v", tag, err))
		}
	}
	return &XValidator{validator: v}
}

// FieldError describes one rejected field
type FieldError struct {
	Field string
	Tag   string
}

func (x *XValidator) Validate(data any) []FieldError {
	err := x.validator.Struct(data)
	if err == nil {
		return nil
	}
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "form", Tag: "invalid"}}
	}
	result := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		result = append(result, FieldError{Field: fe.Field(), Tag: fe.Tag()})
	}
	return result
}

// parseForm binds the request body into form and validates it. The returned
// error is always an api.Error with the validation code.
func (h *Handler) parseForm(c *fiber.Ctx, form any) error {
	if err := c.BodyParser(form); err != nil {
		h.metrics.RecordValidationError("form", "parse")
		return api.NewError(api.ErrCodeValidationFailed,
			&models.ValidationError{Field: "form", Err: err})
	}
	if errs := h.validator.Validate(form); len(errs) > 0 {
		for _, fe := range errs {
			h.metrics.RecordValidationError(fe.Field, fe.Tag)
		}
		first := errs[0]
		return api.NewError(api.ErrCodeValidationFailed,
			&models.ValidationError{Field: first.Field, Err: fmt.Errorf("failed %q check", first.Tag)})
	}
	return nil
}

func (f PlayerForm) toCreate() models.PlayerCreate {
	return models.PlayerCreate{
		Name:             f.Name,
		TelegramUsername: optional(f.TelegramUsername),
	}
}

// toCreate converts a validated form. Type parsing failures are left to the
// ledger service so every entry point reports them the same way.
func (f TransactionForm) toCreate() (models.TransactionCreate, error) {
	playerId, err := strconv.ParseInt(strings.TrimSpace(f.PlayerId), 10, 64)
	if err != nil {
		return models.TransactionCreate{}, api.NewError(api.ErrCodeValidationFailed,
			&models.ValidationError{Field: "player_id", Err: err})
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(f.Amount))
	if err != nil {
		return models.TransactionCreate{}, api.NewError(api.ErrCodeValidationFailed,
			&models.ValidationError{Field: "amount", Err: err})
	}
	txType, err := models.ParseTransactionType(f.Type)
	if err != nil {
		return models.TransactionCreate{}, api.NewError(api.ErrCodeValidationFailed, err)
	}
	return models.TransactionCreate{
		PlayerId: playerId,
		Type:     txType,
		Amount:   amount,
		Note:     optional(f.Note),
	}, nil
}

func optional(value string) *string {
	return models.NormalizeOptional(&value)
}
