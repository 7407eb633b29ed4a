// Package validation implements the request sanitization and schema
// validation pipeline. Schemas are built from small composable rules: each
// rule is a pure func(any) (normalized any, error), combined by an
// object-shape combinator that collects errors per field path.
package validation

import (
	"fmt"
	"math"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DianaCarolina3/recipes/internal/apperr"
)

// Rule validates a single value and returns its normalized form.
type Rule func(v any) (any, error)

// Field binds a rule to a key of an object schema.
type Field struct {
	Rule     Rule
	Required bool
	// Default is applied when the field is absent and the field is optional.
	Default any
}

// Object validates a raw map field by field. Refine, when set, runs after all
// field rules pass and may reject the object as a whole.
type Object struct {
	Fields map[string]Field
	Refine func(out map[string]any) error
}

// nestedError carries field errors produced by a nested object or array rule
// so the parent can prefix them with its own path.
type nestedError struct {
	fields apperr.FieldErrors
}

func (e nestedError) Error() string { return "invalid value" }

// Validate checks in against the object shape. On success it returns the
// normalized map; on failure a mapping from field path to ordered messages.
func (o Object) Validate(in map[string]any) (map[string]any, apperr.FieldErrors) {
	out := make(map[string]any, len(o.Fields))
	errs := apperr.FieldErrors{}

	for name, f := range o.Fields {
		raw, present := in[name]
		if !present {
			if f.Required {
				errs[name] = append(errs[name], "Required")
			} else if f.Default != nil {
				out[name] = f.Default
			}
			continue
		}
		norm, err := f.Rule(raw)
		if err != nil {
			if ne, ok := err.(nestedError); ok {
				for path, msgs := range ne.fields {
					errs[name+"."+path] = msgs
				}
			} else {
				errs[name] = append(errs[name], err.Error())
			}
			continue
		}
		out[name] = norm
	}

	if len(errs) > 0 {
		return nil, errs
	}
	if o.Refine != nil {
		if err := o.Refine(out); err != nil {
			errs[""] = append(errs[""], err.Error())
			return nil, errs
		}
	}
	return out, nil
}

// Chain applies rules left to right, feeding each the previous normalization.
func Chain(rules ...Rule) Rule {
	return func(v any) (any, error) {
		var err error
		for _, r := range rules {
			if v, err = r(v); err != nil {
				return nil, err
			}
		}
		return v, nil
	}
}

// String requires a string of at least min characters.
func String(min int) Rule {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("Must be a string")
		}
		if len(s) < min {
			if min == 1 {
				return nil, fmt.Errorf("Must not be empty")
			}
			return nil, fmt.Errorf("Required minimum %d characters", min)
		}
		return s, nil
	}
}

// TrimmedString trims surrounding whitespace then enforces min length.
func TrimmedString(min int) Rule {
	return Chain(func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("Must be a string")
		}
		return strings.TrimSpace(s), nil
	}, String(min))
}

// Lowercase lowercases an already validated string.
func Lowercase() Rule {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("Must be a string")
		}
		return strings.ToLower(s), nil
	}
}

// Email validates an address and normalizes it to lowercase.
func Email() Rule {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("Must be a string")
		}
		s = strings.TrimSpace(s)
		addr, err := mail.ParseAddress(s)
		if err != nil || addr.Address != s {
			return nil, fmt.Errorf("Must be a valid email")
		}
		return strings.ToLower(s), nil
	}
}

// PositiveInt accepts integral JSON numbers strictly greater than zero.
// Zero, negatives, fractions, and non-numbers are all rejected.
func PositiveInt() Rule {
	return func(v any) (any, error) {
		var f float64
		switch n := v.(type) {
		case float64:
			f = n
		case int:
			f = float64(n)
		default:
			return nil, fmt.Errorf("Must be a number")
		}
		if f != math.Trunc(f) {
			return nil, fmt.Errorf("Must be an integer")
		}
		if f <= 0 {
			return nil, fmt.Errorf("Must be a positive integer")
		}
		return int(f), nil
	}
}

// Enum requires membership in the allowed set.
func Enum(allowed ...string) Rule {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("Must be a string")
		}
		for _, a := range allowed {
			if s == a {
				return s, nil
			}
		}
		return nil, fmt.Errorf("Must be one of: %s", strings.Join(allowed, ", "))
	}
}

// UUIDString requires a well-formed identifier and normalizes it.
func UUIDString() Rule {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("Must be a string")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("Must be a valid id")
		}
		return id.String(), nil
	}
}

// StringOrNumber coerces a number to its text form; phone fields accept both.
func StringOrNumber() Rule {
	return func(v any) (any, error) {
		switch n := v.(type) {
		case string:
			return strings.TrimSpace(n), nil
		case float64:
			if n == math.Trunc(n) {
				return strconv.FormatInt(int64(n), 10), nil
			}
			return strconv.FormatFloat(n, 'f', -1, 64), nil
		case int:
			return strconv.Itoa(n), nil
		default:
			return nil, fmt.Errorf("Must be a string or a number")
		}
	}
}

// ISODate parses a YYYY-MM-DD calendar date.
func ISODate() Rule {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("Must be a string")
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("Must be an ISO date (YYYY-MM-DD)")
		}
		return t, nil
	}
}

// HTTPSURL requires a well-formed https URL.
func HTTPSURL() Rule {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("Must be a string")
		}
		s = strings.TrimSpace(s)
		u, err := url.Parse(s)
		if err != nil || u.Scheme != "https" || u.Host == "" {
			return nil, fmt.Errorf("Must be URL image or a secure version of HTTP")
		}
		return s, nil
	}
}

// Array requires a slice with at least min elements, validating each with
// elem. Element errors are reported under "<index>" or "<index>.<field>".
func Array(min int, minMsg string, elem Rule) Rule {
	return func(v any) (any, error) {
		items, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("Must be an array")
		}
		if len(items) < min {
			return nil, fmt.Errorf("%s", minMsg)
		}
		out := make([]any, 0, len(items))
		errs := apperr.FieldErrors{}
		for i, item := range items {
			norm, err := elem(item)
			if err != nil {
				idx := strconv.Itoa(i)
				if ne, ok := err.(nestedError); ok {
					for path, msgs := range ne.fields {
						errs[idx+"."+path] = msgs
					}
				} else {
					errs[idx] = append(errs[idx], err.Error())
				}
				continue
			}
			out = append(out, norm)
		}
		if len(errs) > 0 {
			return nil, nestedError{fields: errs}
		}
		return out, nil
	}
}

// Nested turns an object schema into a rule usable inside arrays and objects.
func Nested(o Object) Rule {
	return func(v any) (any, error) {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("Must be an object")
		}
		out, errs := o.Validate(m)
		if errs != nil {
			return nil, nestedError{fields: errs}
		}
		return out, nil
	}
}
