package validate

import (
	"errors"
	"sort"
	"strings"

	"github.com/jellydator/validation"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

// Errs lists every offending field of a payload, sorted by field name.
type Errs []ErrField

func (e Errs) Error() string {
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Check runs v.Validate and flattens field errors into Errs. Internal rule
// failures are returned unchanged.
func Check(v validation.Validatable) error {
	err := v.Validate()
	if err == nil {
		return nil
	}
	var fields validation.Errors
	if !errors.As(err, &fields) {
		return err
	}
	out := Errs{}
	flatten("", fields, &out)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

func flatten(prefix string, fields validation.Errors, out *Errs) {
	for name, err := range fields {
		if err == nil {
			continue
		}
		field := name
		if prefix != "" {
			field = prefix + "." + name
		}
		var nested validation.Errors
		if errors.As(err, &nested) {
			flatten(field, nested, out)
			continue
		}
		*out = append(*out, ErrField{Field: field, Msg: err.Error()})
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
