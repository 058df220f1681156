package bind

import (
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	perr "gadash/internal/platform/errors"
)

// ParseQuery decodes query parameters into the `query` tagged fields of T and validates it
// string, int, bool and embedded struct fields are supported; absent keys keep the zero value
func ParseQuery[T any](r *http.Request) (T, error) {
	var dst T
	rv := reflect.ValueOf(&dst).Elem()
	if rv.Kind() != reflect.Struct {
		return dst, perr.Internalf("bind: query target must be a struct, got %s", rv.Kind())
	}
	if err := fillQuery(rv, r.URL.Query()); err != nil {
		var zero T
		return zero, err
	}
	if err := validate(dst); err != nil {
		var zero T
		return zero, err
	}
	return dst, nil
}

func fillQuery(rv reflect.Value, q url.Values) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		fv := rv.Field(i)
		if sf.Anonymous && fv.Kind() == reflect.Struct {
			if err := fillQuery(fv, q); err != nil {
				return err
			}
			continue
		}
		name := fieldName(sf, "query")
		if name == "" || !sf.IsExported() {
			continue
		}
		raw := strings.TrimSpace(q.Get(name))
		if raw == "" {
			continue
		}
		switch fv.Kind() {
		case reflect.String:
			fv.SetString(raw)
		case reflect.Int, reflect.Int32, reflect.Int64:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || fv.OverflowInt(n) {
				return perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s must be an integer", name), name)
			}
			fv.SetInt(n)
		case reflect.Bool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s must be true or false", name), name)
			}
			fv.SetBool(b)
		default:
			return perr.Internalf("bind: unsupported query field %s of kind %s", sf.Name, fv.Kind())
		}
	}
	return nil
}
