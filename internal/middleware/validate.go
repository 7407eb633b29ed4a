package middleware

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/DianaCarolina3/recipes/internal/apperr"
	"github.com/DianaCarolina3/recipes/internal/validation"
)

// Target selects which part of the request a schema validates.
type Target int

const (
	TargetBody Target = iota
	TargetQuery
	TargetParams
)

// Context slots populated by the gateway. The raw request is never modified;
// handlers read the normalized value from the matching slot.
const (
	ValidatedBodyKey   = "validated_body"
	ValidatedQueryKey  = "validated_query"
	ValidatedParamsKey = "validated_params"
)

// Validate builds the required-mode validation gateway: sanitize (body only),
// validate, and either set the typed context slot or abort with 422 and the
// field-error map.
func Validate(schema validation.Schema, target Target) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := extract(c, target)
		if err != nil {
			apperr.Abort(c, apperr.Validation(apperr.FieldErrors{"": {"Invalid JSON body"}}))
			return
		}
		run(c, schema, target, raw)
	}
}

// ValidateOptional behaves like Validate except that an empty input object
// skips validation entirely. Used for optional filter queries.
func ValidateOptional(schema validation.Schema, target Target) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := extract(c, target)
		if err != nil {
			apperr.Abort(c, apperr.Validation(apperr.FieldErrors{"": {"Invalid JSON body"}}))
			return
		}
		if len(raw) == 0 {
			c.Next()
			return
		}
		run(c, schema, target, raw)
	}
}

func run(c *gin.Context, schema validation.Schema, target Target, raw map[string]any) {
	if target == TargetBody {
		raw = validation.Sanitize(raw, schema.BulkFields())
	}
	typed, ferrs := schema.Validate(raw)
	if ferrs != nil {
		apperr.Abort(c, apperr.Validation(ferrs))
		return
	}
	switch target {
	case TargetBody:
		c.Set(ValidatedBodyKey, typed)
	case TargetQuery:
		c.Set(ValidatedQueryKey, typed)
	case TargetParams:
		c.Set(ValidatedParamsKey, typed)
	}
	c.Next()
}

func extract(c *gin.Context, target Target) (map[string]any, error) {
	switch target {
	case TargetBody:
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return nil, err
		}
		if len(body) == 0 {
			return map[string]any{}, nil
		}
		var m map[string]any
		if err := json.Unmarshal(body, &m); err != nil {
			return nil, err
		}
		return m, nil
	case TargetQuery:
		m := map[string]any{}
		for k, vs := range c.Request.URL.Query() {
			if len(vs) > 0 {
				m[k] = vs[0]
			}
		}
		return m, nil
	default:
		m := map[string]any{}
		for _, p := range c.Params {
			m[p.Key] = p.Value
		}
		return m, nil
	}
}

// ValidatedBody returns the typed value the gateway stored for the body slot.
func ValidatedBody[T any](c *gin.Context) (T, bool) {
	return slot[T](c, ValidatedBodyKey)
}

// ValidatedQuery returns the typed value stored for the query slot.
func ValidatedQuery[T any](c *gin.Context) (T, bool) {
	return slot[T](c, ValidatedQueryKey)
}

// ValidatedParams returns the typed value stored for the params slot.
func ValidatedParams[T any](c *gin.Context) (T, bool) {
	return slot[T](c, ValidatedParamsKey)
}

func slot[T any](c *gin.Context, key string) (T, bool) {
	var zero T
	v, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
