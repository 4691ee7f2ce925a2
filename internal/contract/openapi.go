package contract

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Document renders the endpoint registry as an OpenAPI 3 document. The
// document is derived, never hand-maintained; whatever the registry says is
// what gets published at /openapi.json.
func Document() *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Cyber Corner API",
			Description: "Service-intake API for the Cyber Corner digital services storefront.",
			Version:     "1.0.0",
		},
		Paths: openapi3.NewPaths(),
	}

	for _, ep := range All() {
		path, params := openAPIPath(ep.Path)

		item := doc.Paths.Value(path)
		if item == nil {
			item = &openapi3.PathItem{}
			doc.Paths.Set(path, item)
		}

		op := openapi3.NewOperation()
		op.Responses = openapi3.NewResponses()
		for _, name := range params {
			op.AddParameter(openapi3.NewPathParameter(name).WithSchema(openapi3.NewStringSchema()))
		}
		if ep.Input != nil {
			op.RequestBody = &openapi3.RequestBodyRef{
				Value: openapi3.NewRequestBody().WithJSONSchema(ep.Input).WithRequired(true),
			}
		}
		for status, schema := range ep.Responses {
			resp := openapi3.NewResponse().WithDescription(http.StatusText(status))
			if schema != nil {
				resp = resp.WithJSONSchema(schema)
			}
			op.Responses.Set(strconv.Itoa(status), &openapi3.ResponseRef{Value: resp})
		}

		item.SetOperation(ep.Method, op)
	}

	return doc
}

// openAPIPath converts a :name template into the {name} form and collects the
// parameter names.
func openAPIPath(path string) (string, []string) {
	segments := strings.Split(path, "/")
	var params []string
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			name := seg[1:]
			params = append(params, name)
			segments[i] = "{" + name + "}"
		}
	}
	return strings.Join(segments, "/"), params
}
