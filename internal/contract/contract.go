// Package contract is the single source of truth for the HTTP API surface.
// It enumerates every endpoint as a data value: method, URL template, the
// schema of the accepted request body, and one schema per response status
// code. The server validates inbound bodies against Input; the typed client
// in pkg/client builds requests from the same registry and refuses responses
// that disagree with their declared schema. Because both sides consume this
// one package, the wire format cannot drift.
package contract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Endpoint describes one API route.
//
// Input is nil for endpoints without a validated JSON body (GET/DELETE, and
// the multipart service-request create, which is validated field-by-field
// after parsing). A nil schema inside Responses means the status carries no
// body at all (204).
type Endpoint struct {
	Method    string
	Path      string
	Input     *openapi3.Schema
	Responses map[int]*openapi3.Schema
}

// BuildURL substitutes :name placeholders in a path template. Placeholders
// without a matching param are left literal.
func BuildURL(path string, params map[string]string) string {
	for name, value := range params {
		path = strings.ReplaceAll(path, ":"+name, value)
	}
	return path
}

// URL builds a concrete URL for the endpoint's path template.
func (e Endpoint) URL(params map[string]string) string {
	return BuildURL(e.Path, params)
}

// ValidationError describes the first schema violation found in a body.
// Field is the dotted path of the offending property, empty when the
// violation cannot be pinned to a single property.
type ValidationError struct {
	Message string
	Field   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateInput checks a decoded JSON body against the endpoint's input
// schema. body must be the result of a json.Unmarshal into any. Returns a
// *ValidationError on violation, nil when the endpoint has no input schema.
func (e Endpoint) ValidateInput(body any) error {
	if e.Input == nil {
		return nil
	}
	if err := e.Input.VisitJSON(body); err != nil {
		return asValidationError(err)
	}
	return nil
}

// ValidateResponse checks a decoded JSON response body against the schema
// registered for the given status code. A status the endpoint does not
// declare is an error: the caller is seeing a response outside the contract.
func (e Endpoint) ValidateResponse(status int, body any) error {
	schema, ok := e.Responses[status]
	if !ok {
		return fmt.Errorf("%s %s: no response schema for status %d", e.Method, e.Path, status)
	}
	if schema == nil {
		if body != nil {
			return fmt.Errorf("%s %s: unexpected body for status %d", e.Method, e.Path, status)
		}
		return nil
	}
	if err := schema.VisitJSON(body); err != nil {
		return fmt.Errorf("%s %s: response for status %d violates contract: %w", e.Method, e.Path, status, err)
	}
	return nil
}

func asValidationError(err error) *ValidationError {
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		msg := schemaErr.Reason
		if msg == "" {
			msg = schemaErr.Error()
		}
		return &ValidationError{
			Message: msg,
			Field:   strings.Join(schemaErr.JSONPointer(), "."),
		}
	}
	return &ValidationError{Message: err.Error()}
}
