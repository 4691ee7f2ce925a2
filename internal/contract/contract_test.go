package contract

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestBuildURL(t *testing.T) {
	t.Run("substitutes placeholders", func(t *testing.T) {
		url := BuildURL("/api/service-requests/:id/status", map[string]string{"id": "42"})
		assert.Equal(t, "/api/service-requests/42/status", url)
	})

	t.Run("unknown placeholders stay literal", func(t *testing.T) {
		url := BuildURL("/api/service-requests/:id/status", map[string]string{"other": "42"})
		assert.Equal(t, "/api/service-requests/:id/status", url)
	})

	t.Run("nil params", func(t *testing.T) {
		assert.Equal(t, "/api/notices", BuildURL("/api/notices", nil))
	})
}

func TestLoginInput(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		body := decode(t, `{"email":"admin@cybercorner.com","password":"admin123"}`)
		assert.NoError(t, AuthLogin.ValidateInput(body))
	})

	t.Run("missing password", func(t *testing.T) {
		body := decode(t, `{"email":"admin@cybercorner.com"}`)
		err := AuthLogin.ValidateInput(body)
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "password", verr.Field)
	})

	t.Run("bad email", func(t *testing.T) {
		body := decode(t, `{"email":"not-an-email","password":"x"}`)
		err := AuthLogin.ValidateInput(body)
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "email", verr.Field)
	})

	t.Run("empty password", func(t *testing.T) {
		body := decode(t, `{"email":"admin@cybercorner.com","password":""}`)
		assert.Error(t, AuthLogin.ValidateInput(body))
	})
}

func TestUpdateStatusInput(t *testing.T) {
	assert.NoError(t, ServiceRequestUpdateStatus.ValidateInput(decode(t, `{"status":"Completed"}`)))
	assert.NoError(t, ServiceRequestUpdateStatus.ValidateInput(decode(t, `{"status":"Pending"}`)))
	assert.Error(t, ServiceRequestUpdateStatus.ValidateInput(decode(t, `{"status":"Banana"}`)))
	assert.Error(t, ServiceRequestUpdateStatus.ValidateInput(decode(t, `{}`)))
}

func TestNoticeCreateInput(t *testing.T) {
	assert.NoError(t, NoticeCreate.ValidateInput(decode(t, `{"title":"t","message":"m"}`)))
	assert.Error(t, NoticeCreate.ValidateInput(decode(t, `{"title":"","message":"m"}`)))
	assert.Error(t, NoticeCreate.ValidateInput(decode(t, `{"title":"t"}`)))
}

func TestNoInputSchemaAccepted(t *testing.T) {
	// Multipart create is validated field-by-field, not by the contract.
	assert.NoError(t, ServiceRequestCreate.ValidateInput(decode(t, `{"anything":true}`)))
}

func TestValidateResponse(t *testing.T) {
	t.Run("login success body", func(t *testing.T) {
		body := decode(t, `{"message":"Logged in successfully","user":{"id":1,"username":"admin","email":"admin@cybercorner.com"}}`)
		assert.NoError(t, AuthLogin.ValidateResponse(http.StatusOK, body))
	})

	t.Run("login body missing user", func(t *testing.T) {
		body := decode(t, `{"message":"Logged in successfully"}`)
		assert.Error(t, AuthLogin.ValidateResponse(http.StatusOK, body))
	})

	t.Run("undeclared status", func(t *testing.T) {
		err := AuthLogout.ValidateResponse(http.StatusTeapot, decode(t, `{}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no response schema")
	})

	t.Run("service request row with nulls", func(t *testing.T) {
		body := decode(t, `{"id":3,"name":"Asha","phone":"9999999999","serviceType":"PAN Card",
			"message":null,"documentFile":null,"status":"Pending","createdAt":"2026-01-02T15:04:05Z"}`)
		assert.NoError(t, ServiceRequestCreate.ValidateResponse(http.StatusCreated, body))
	})

	t.Run("empty 204", func(t *testing.T) {
		assert.NoError(t, NoticeDelete.ValidateResponse(http.StatusNoContent, nil))
		assert.Error(t, NoticeDelete.ValidateResponse(http.StatusNoContent, decode(t, `{"x":1}`)))
	})

	t.Run("notice list ordering is schema-level only", func(t *testing.T) {
		body := decode(t, `[{"id":2,"title":"b","message":"m","createdAt":"2026-01-02T00:00:00Z"},
			{"id":1,"title":"a","message":"m","createdAt":"2026-01-01T00:00:00Z"}]`)
		assert.NoError(t, NoticeList.ValidateResponse(http.StatusOK, body))
	})
}

func TestDocumentCoversEveryEndpoint(t *testing.T) {
	doc := Document()
	require.NotNil(t, doc.Paths)

	for _, ep := range All() {
		path, _ := openAPIPath(ep.Path)
		item := doc.Paths.Value(path)
		require.NotNilf(t, item, "missing path %s", path)
		assert.NotNilf(t, item.GetOperation(ep.Method), "missing %s %s", ep.Method, path)
	}
}
