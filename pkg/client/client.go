// Package client is a typed HTTP client for the CYBER CORNER API. It is
// driven by the same endpoint contract the server registers its routes
// from, and checks every response against that contract before decoding.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/textproto"
	"path/filepath"
	"strconv"
	"strings"

	"cybercorner/internal/contract"
	"cybercorner/internal/model"
	"cybercorner/internal/upload"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
	Field   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client rooted at baseURL. The underlying http.Client keeps
// the session cookie issued by Login, so one Client is one admin session.
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar},
	}, nil
}

// NewWithHTTPClient uses the provided http.Client, typically one built
// around httptest or a custom transport. A cookie jar is attached when the
// client has none.
func NewWithHTTPClient(baseURL string, hc *http.Client) (*Client, error) {
	if hc.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		hc.Jar = jar
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*model.Admin, error) {
	var out struct {
		User *model.Admin `json:"user"`
	}
	in := map[string]any{"email": email, "password": password}
	if err := c.do(ctx, contract.AuthLogin, nil, in, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, contract.AuthLogout, nil, nil, nil)
}

func (c *Client) Me(ctx context.Context) (*model.Admin, error) {
	var out struct {
		User *model.Admin `json:"user"`
	}
	if err := c.do(ctx, contract.AuthMe, nil, nil, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *Client) ListServiceRequests(ctx context.Context) ([]model.ServiceRequest, error) {
	var out []model.ServiceRequest
	if err := c.do(ctx, contract.ServiceRequestList, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateServiceRequestParams mirrors the public intake form. Document and
// DocumentName are both optional; when set the file is attached as the
// documentFile part.
type CreateServiceRequestParams struct {
	Name         string
	Phone        string
	ServiceType  string
	Message      string
	Document     io.Reader
	DocumentName string
}

func (c *Client) CreateServiceRequest(ctx context.Context, p CreateServiceRequestParams) (*model.ServiceRequest, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := map[string]string{
		"name":        p.Name,
		"phone":       p.Phone,
		"serviceType": p.ServiceType,
	}
	if p.Message != "" {
		fields["message"] = p.Message
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	if p.Document != nil {
		fw, err := createDocumentPart(w, p.DocumentName)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(fw, p.Document); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	ep := contract.ServiceRequestCreate
	req, err := http.NewRequestWithContext(ctx, ep.Method, c.baseURL+ep.URL(nil), &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out model.ServiceRequest
	if err := c.send(req, ep, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// createDocumentPart builds the documentFile part with a Content-Type
// derived from the filename extension. CreateFormFile is not usable here:
// it stamps application/octet-stream, which the server's upload policy
// rejects regardless of the actual file.
func createDocumentPart(w *multipart.Writer, filename string) (io.Writer, error) {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, upload.FieldName, filename))
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		h.Set("Content-Type", ct)
	} else {
		h.Set("Content-Type", "application/octet-stream")
	}
	return w.CreatePart(h)
}

func (c *Client) UpdateServiceRequestStatus(ctx context.Context, id int64, status model.Status) (*model.ServiceRequest, error) {
	var out model.ServiceRequest
	params := map[string]string{"id": strconv.FormatInt(id, 10)}
	in := map[string]any{"status": string(status)}
	if err := c.do(ctx, contract.ServiceRequestUpdateStatus, params, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteServiceRequest(ctx context.Context, id int64) error {
	params := map[string]string{"id": strconv.FormatInt(id, 10)}
	return c.do(ctx, contract.ServiceRequestDelete, params, nil, nil)
}

func (c *Client) ListNotices(ctx context.Context) ([]model.Notice, error) {
	var out []model.Notice
	if err := c.do(ctx, contract.NoticeList, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateNotice(ctx context.Context, title, message string) (*model.Notice, error) {
	var out model.Notice
	in := map[string]any{"title": title, "message": message}
	if err := c.do(ctx, contract.NoticeCreate, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteNotice(ctx context.Context, id int64) error {
	params := map[string]string{"id": strconv.FormatInt(id, 10)}
	return c.do(ctx, contract.NoticeDelete, params, nil, nil)
}

// do runs one JSON round trip for ep. The request body is validated against
// the endpoint's input schema before it leaves the process, so a client bug
// fails fast instead of as a server side 400.
func (c *Client) do(ctx context.Context, ep contract.Endpoint, params map[string]string, in, out any) error {
	var body io.Reader
	if in != nil {
		if ep.Input != nil {
			raw, err := json.Marshal(in)
			if err != nil {
				return err
			}
			var v any
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			if err := ep.ValidateInput(v); err != nil {
				return err
			}
			body = bytes.NewReader(raw)
		} else {
			raw, err := json.Marshal(in)
			if err != nil {
				return err
			}
			body = bytes.NewReader(raw)
		}
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method, c.baseURL+ep.URL(params), body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, ep, out)
}

func (c *Client) send(req *http.Request, ep contract.Endpoint, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var decoded any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return fmt.Errorf("api: %d with non-JSON body", resp.StatusCode)
		}
	}
	if err := ep.ValidateResponse(resp.StatusCode, decoded); err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var eb struct {
			Message string `json:"message"`
			Field   string `json:"field"`
		}
		if json.Unmarshal(raw, &eb) == nil {
			apiErr.Message = eb.Message
			apiErr.Field = eb.Field
		}
		return apiErr
	}

	if out != nil && len(raw) > 0 {
		return json.Unmarshal(raw, out)
	}
	return nil
}
