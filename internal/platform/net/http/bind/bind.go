// Package bind decodes request bodies and query strings into structs and
// validates them with go-playground/validator
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "gadash/internal/platform/errors"
	"gadash/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
)

// FieldLevel is what custom tag functions receive
type FieldLevel = validator.FieldLevel

type engine struct {
	v  *validator.Validate
	tr ut.Translator
}

var (
	engineOnce sync.Once
	eng        *engine
)

// shortMessages replace the default english text for these tags
// {0} is the field, {1} the tag parameter
var shortMessages = map[string]string{
	"min": "{0} must be at least {1}",
	"max": "{0} must be at most {1}",
	"len": "{0} must be {1} characters long",
}

func get() *engine {
	engineOnce.Do(func() {
		loc := en.New()
		tr, _ := ut.New(loc, loc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, key := range []string{"query", "json"} {
				if name := fieldName(f, key); name != "" {
					return name
				}
			}
			return f.Name
		})
		_ = entrans.RegisterDefaultTranslations(v, tr)
		for tag, msg := range shortMessages {
			translate(v, tr, tag, msg, true)
		}
		eng = &engine{v: v, tr: tr}
	})
	return eng
}

func translate(v *validator.Validate, tr ut.Translator, tag, msg string, withParam bool) {
	_ = v.RegisterTranslation(tag, tr,
		func(t ut.Translator) error { return t.Add(tag, msg, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			params := []string{fe.Field()}
			if withParam {
				params = append(params, fe.Param())
			}
			out, _ := t.T(tag, params...)
			return out
		},
	)
}

// RegisterTag adds a custom validation tag with an english message, {0} is the field
// it panics on a bad registration, call it from package init
func RegisterTag(tag string, fn func(FieldLevel) bool, message string) {
	e := get()
	if err := e.v.RegisterValidation(tag, fn); err != nil {
		panic("bind: register " + tag + ": " + err.Error())
	}
	translate(e.v, e.tr, tag, message, false)
}

// fieldName returns the name part of a struct tag, empty for "-" or no tag
func fieldName(f reflect.StructField, key string) string {
	name, _, _ := strings.Cut(f.Tag.Get(key), ",")
	if name == "-" {
		return ""
	}
	return name
}

// JSONOptions tunes ParseJSON
type JSONOptions struct {
	// MaxBytes caps the body, 0 means 1MB
	MaxBytes int64
	// AllowUnknown accepts fields T does not declare
	AllowUnknown bool
	// AllowEmpty accepts an empty body on any method
	AllowEmpty bool
}

// ParseJSON decodes the body into T and validates it
// an empty body is fine for GET, HEAD, DELETE and OPTIONS and an error otherwise
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var dst, zero T
	var o JSONOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = 1 << 20
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Warn().Err(err).Msg("close request body")
		}
	}()

	dec := json.NewDecoder(io.LimitReader(r.Body, o.MaxBytes))
	if !o.AllowUnknown {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&dst); err != nil {
		if errors.Is(err, io.EOF) {
			if o.AllowEmpty || emptyBodyOK(r.Method) {
				return zero, nil
			}
			return zero, perr.JSONErrf("empty body")
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}
	if err := validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

func emptyBodyOK(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodDelete, http.MethodOptions:
		return true
	}
	return false
}

// validate maps the first violation to a VALIDATION error carrying the field name
func validate(dst any) error {
	err := get().v.Struct(dst)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		return perr.Wrap(inv, perr.ErrorCodeUnknown, "bind: cannot validate target")
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return perr.WithField(perr.New(perr.ErrorCodeValidation, fe.Translate(get().tr)), fe.Field())
	}
	return perr.Wrap(err, perr.ErrorCodeValidation, err.Error())
}
