package contract

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

func init() {
	// kin-openapi only enforces string formats that have been registered,
	// so register email explicitly.
	openapi3.DefineStringFormat("email", openapi3.FormatOfStringForEmail)
}

// Entity schemas. These mirror the persisted rows exactly as the API emits
// them; the admin schema deliberately has no password property.
var (
	adminSchema = required(openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewInt64Schema()).
		WithProperty("username", openapi3.NewStringSchema()).
		WithProperty("email", openapi3.NewStringSchema().WithFormat("email")),
		"id", "username", "email")

	serviceRequestSchema = required(openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewInt64Schema()).
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("phone", openapi3.NewStringSchema()).
		WithProperty("serviceType", openapi3.NewStringSchema()).
		WithProperty("message", openapi3.NewStringSchema().WithNullable()).
		WithProperty("documentFile", openapi3.NewStringSchema().WithNullable()).
		WithProperty("status", openapi3.NewStringSchema().WithEnum("Pending", "Completed")).
		WithProperty("createdAt", openapi3.NewDateTimeSchema()),
		"id", "name", "phone", "serviceType", "status", "createdAt")

	noticeSchema = required(openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewInt64Schema()).
		WithProperty("title", openapi3.NewStringSchema()).
		WithProperty("message", openapi3.NewStringSchema()).
		WithProperty("createdAt", openapi3.NewDateTimeSchema()),
		"id", "title", "message", "createdAt")
)

// Error body schemas. Every error response is {message, field?}; field is
// only present on validation failures.
var (
	errorSchema = required(openapi3.NewObjectSchema().
		WithProperty("message", openapi3.NewStringSchema()),
		"message")

	validationErrorSchema = required(openapi3.NewObjectSchema().
		WithProperty("message", openapi3.NewStringSchema()).
		WithProperty("field", openapi3.NewStringSchema()),
		"message")
)

// The endpoint registry.
var (
	AuthLogin = Endpoint{
		Method: http.MethodPost,
		Path:   "/api/auth/login",
		Input: required(openapi3.NewObjectSchema().
			WithProperty("email", openapi3.NewStringSchema().WithFormat("email")).
			WithProperty("password", openapi3.NewStringSchema().WithMinLength(1)),
			"email", "password"),
		Responses: map[int]*openapi3.Schema{
			http.StatusOK: required(openapi3.NewObjectSchema().
				WithProperty("message", openapi3.NewStringSchema()).
				WithProperty("user", adminSchema),
				"message", "user"),
			http.StatusBadRequest:   validationErrorSchema,
			http.StatusUnauthorized: errorSchema,
		},
	}

	AuthLogout = Endpoint{
		Method: http.MethodPost,
		Path:   "/api/auth/logout",
		Responses: map[int]*openapi3.Schema{
			http.StatusOK: required(openapi3.NewObjectSchema().
				WithProperty("message", openapi3.NewStringSchema()),
				"message"),
		},
	}

	AuthMe = Endpoint{
		Method: http.MethodGet,
		Path:   "/api/auth/me",
		Responses: map[int]*openapi3.Schema{
			http.StatusOK: required(openapi3.NewObjectSchema().
				WithProperty("user", adminSchema),
				"user"),
			http.StatusUnauthorized: errorSchema,
		},
	}

	ServiceRequestList = Endpoint{
		Method: http.MethodGet,
		Path:   "/api/service-requests",
		Responses: map[int]*openapi3.Schema{
			http.StatusOK:           openapi3.NewArraySchema().WithItems(serviceRequestSchema),
			http.StatusUnauthorized: errorSchema,
		},
	}

	// The create endpoint takes multipart/form-data, so it carries no input
	// schema; the handler validates the parsed form field-by-field.
	ServiceRequestCreate = Endpoint{
		Method: http.MethodPost,
		Path:   "/api/service-requests",
		Responses: map[int]*openapi3.Schema{
			http.StatusCreated:    serviceRequestSchema,
			http.StatusBadRequest: validationErrorSchema,
		},
	}

	ServiceRequestUpdateStatus = Endpoint{
		Method: http.MethodPatch,
		Path:   "/api/service-requests/:id/status",
		Input: required(openapi3.NewObjectSchema().
			WithProperty("status", openapi3.NewStringSchema().WithEnum("Pending", "Completed")),
			"status"),
		Responses: map[int]*openapi3.Schema{
			http.StatusOK:           serviceRequestSchema,
			http.StatusBadRequest:   validationErrorSchema,
			http.StatusUnauthorized: errorSchema,
			http.StatusNotFound:     errorSchema,
		},
	}

	ServiceRequestDelete = Endpoint{
		Method: http.MethodDelete,
		Path:   "/api/service-requests/:id",
		Responses: map[int]*openapi3.Schema{
			http.StatusNoContent:    nil,
			http.StatusUnauthorized: errorSchema,
		},
	}

	NoticeList = Endpoint{
		Method: http.MethodGet,
		Path:   "/api/notices",
		Responses: map[int]*openapi3.Schema{
			http.StatusOK: openapi3.NewArraySchema().WithItems(noticeSchema),
		},
	}

	NoticeCreate = Endpoint{
		Method: http.MethodPost,
		Path:   "/api/notices",
		Input: required(openapi3.NewObjectSchema().
			WithProperty("title", openapi3.NewStringSchema().WithMinLength(1)).
			WithProperty("message", openapi3.NewStringSchema().WithMinLength(1)),
			"title", "message"),
		Responses: map[int]*openapi3.Schema{
			http.StatusCreated:      noticeSchema,
			http.StatusBadRequest:   validationErrorSchema,
			http.StatusUnauthorized: errorSchema,
		},
	}

	NoticeDelete = Endpoint{
		Method: http.MethodDelete,
		Path:   "/api/notices/:id",
		Responses: map[int]*openapi3.Schema{
			http.StatusNoContent:    nil,
			http.StatusUnauthorized: errorSchema,
		},
	}
)

// All returns every registered endpoint; the OpenAPI document is rendered
// from this list.
func All() []Endpoint {
	return []Endpoint{
		AuthLogin, AuthLogout, AuthMe,
		ServiceRequestList, ServiceRequestCreate, ServiceRequestUpdateStatus, ServiceRequestDelete,
		NoticeList, NoticeCreate, NoticeDelete,
	}
}

func required(s *openapi3.Schema, names ...string) *openapi3.Schema {
	s.Required = names
	return s
}
