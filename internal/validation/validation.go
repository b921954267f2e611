// Package validation checks generated documents against the field contracts
// declared in the models' `validate` struct tags.
//
// Besides the go-playground built-ins, three custom tags are registered:
//
//	decimals=N   a float carries at most N decimal places
//	catalog=K    a string belongs to models.Catalogs[K]
//	pattern=P    a string matches one of the named identifier patterns
//
// Temporal ordering between fields of the same document is enforced with
// struct-level rules.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/guttosm/tradeseed/internal/domain/models"
)

var patterns = map[string]*regexp.Regexp{
	"agent_id":  regexp.MustCompile(`^AG\d{4}$`),
	"ticket_id": regexp.MustCompile(`^TICK-\d{1,5}$`),
	"user_id":   regexp.MustCompile(`^user_\d{1,3}$`),
}

// Error reports the first rule a document broke.
type Error struct {
	Collection string
	Index      int
	Field      string
	Tag        string
	Err        error
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s[%d]: %v", e.Collection, e.Index, e.Err)
	}
	return fmt.Sprintf("%s[%d].%s failed %q: %v", e.Collection, e.Index, e.Field, e.Tag, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Validator wraps a configured go-playground validator.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator with the custom tags and struct rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	mustRegister(v, "decimals", validateDecimals)
	mustRegister(v, "catalog", validateCatalog)
	mustRegister(v, "pattern", validatePattern)

	v.RegisterStructValidation(supportRequestRules, models.SupportRequest{})
	v.RegisterStructValidation(tradingAlertRules, models.TradingAlert{})

	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// Struct validates a single value.
func (v *Validator) Struct(s any) error {
	return v.v.Struct(s)
}

// Documents validates every element of docs and returns an *Error for the
// first document that fails.
func (v *Validator) Documents(collection string, docs []any) error {
	for i, doc := range docs {
		err := v.v.Struct(doc)
		if err == nil {
			continue
		}

		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &Error{
				Collection: collection,
				Index:      i,
				Field:      fe.Namespace(),
				Tag:        fe.Tag(),
				Err:        fmt.Errorf("value %v does not satisfy %s", fe.Value(), describe(fe)),
			}
		}
		return &Error{Collection: collection, Index: i, Err: err}
	}
	return nil
}

func describe(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

func validateDecimals(fl validator.FieldLevel) bool {
	places, err := strconv.Atoi(fl.Param())
	if err != nil || places < 0 {
		return false
	}

	var f float64
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		f = fl.Field().Float()
	default:
		return false
	}

	d := decimal.NewFromFloat(f)
	return d.Equal(d.Round(int32(places)))
}

func validateCatalog(fl validator.FieldLevel) bool {
	values, ok := models.Catalogs[fl.Param()]
	if !ok || fl.Field().Kind() != reflect.String {
		return false
	}
	s := fl.Field().String()
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

func validatePattern(fl validator.FieldLevel) bool {
	re, ok := patterns[fl.Param()]
	if !ok || fl.Field().Kind() != reflect.String {
		return false
	}
	return re.MatchString(fl.Field().String())
}

func supportRequestRules(sl validator.StructLevel) {
	r := sl.Current().Interface().(models.SupportRequest)

	if r.UpdatedAt.Before(r.CreatedAt) {
		sl.ReportError(r.UpdatedAt, "updated_at", "UpdatedAt", "after_created_at", "")
	}
	if r.ResolvedAt != nil && r.ResolvedAt.Before(r.UpdatedAt) {
		sl.ReportError(r.ResolvedAt, "resolved_at", "ResolvedAt", "after_updated_at", "")
	}
}

func tradingAlertRules(sl validator.StructLevel) {
	a := sl.Current().Interface().(models.TradingAlert)
	if a.SentAt == nil {
		return
	}

	latest := a.GeneratedAt.Add(models.AlertDeliveryWindow)
	if a.SentAt.Before(a.GeneratedAt) || a.SentAt.After(latest) {
		sl.ReportError(a.SentAt, "sent_at", "SentAt", "delivery_window", models.AlertDeliveryWindow.String())
	}
}
