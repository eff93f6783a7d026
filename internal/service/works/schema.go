package works

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/heartmarshall/libra-works/internal/domain"
)

//go:embed patch.schema.json
var patchSchemaJSON string

const patchSchemaURL = "https://libra.schemas.local/works/patch.schema.json"

var patchSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	c.AssertFormat = true
	if err := c.AddResource(patchSchemaURL, strings.NewReader(patchSchemaJSON)); err != nil {
		return nil, fmt.Errorf("patch schema load failed: %w", err)
	}
	compiled, err := c.Compile(patchSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("patch schema compile failed: %w", err)
	}
	return compiled, nil
})

// ParsePatch decodes an update request body. The body is checked against the
// patch schema before it is decoded; unknown fields and values of the wrong
// type are rejected as validation errors.
func ParsePatch(body []byte) (Patch, Envelope, error) {
	schema, err := patchSchema()
	if err != nil {
		return Patch{}, Envelope{}, err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return Patch{}, Envelope{}, domain.NewValidationError("body", "malformed JSON")
	}

	if err := schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return Patch{}, Envelope{}, schemaErrors(verr)
		}
		return Patch{}, Envelope{}, fmt.Errorf("validate patch: %w", err)
	}

	var req struct {
		Envelope
		Work Patch `json:"work"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return Patch{}, Envelope{}, domain.NewValidationError("body", "malformed JSON")
	}
	return req.Work.normalize(), req.Envelope, nil
}

// schemaErrors flattens the schema error tree into field errors.
func schemaErrors(verr *jsonschema.ValidationError) *domain.ValidationError {
	var errs []domain.FieldError
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			errs = append(errs, domain.FieldError{Field: fieldOf(e.InstanceLocation), Message: e.Message})
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(verr)
	return domain.NewValidationErrors(errs)
}

func fieldOf(location string) string {
	field := strings.TrimPrefix(location, "/work")
	field = strings.Trim(field, "/")
	if field == "" {
		return "body"
	}
	return strings.ReplaceAll(field, "/", ".")
}
