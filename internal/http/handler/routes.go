package handler

import (
	"context"
	"database/sql"
	"errors"
	"mime"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"

	"cybercorner/internal/contract"
	"cybercorner/internal/http/middleware"
	"cybercorner/internal/service"
	"cybercorner/internal/storage"
)

// RegisterRoutes attaches all HTTP routes to the provided Fiber app. Paths
// for the API endpoints come from the shared contract so the server, the
// client, and the published OpenAPI document cannot drift apart.
func RegisterRoutes(
	app *fiber.App,
	db *sql.DB,
	auth service.AuthService,
	requests service.ServiceRequestService,
	notices service.NoticeService,
	store storage.Storage,
	secureCookies bool,
) {
	// Serve the OpenAPI document and Swagger UI.
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		return c.JSON(contract.Document())
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>CYBER CORNER API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.json',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health endpoint: checks DB connectivity only.
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "Service unavailable")
		}
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	// Simple liveness probe.
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// Stored intake documents. The filename is generated server side so a
	// plain prefix route is enough; the storage layer rejects traversal.
	app.Get("/uploads/:filename", func(c *fiber.Ctx) error {
		name := c.Params("filename")
		rc, err := store.Open(c.UserContext(), name)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "Not found")
			}
			return internalError(c, err)
		}
		if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
			c.Set(fiber.HeaderContentType, ct)
		}
		// SendStream closes rc when the body has been written.
		return c.SendStream(rc)
	})

	authRequired := middleware.Auth(auth)

	app.Post(contract.AuthLogin.Path, Login(auth, secureCookies))
	app.Post(contract.AuthLogout.Path, Logout())
	app.Get(contract.AuthMe.Path, authRequired, Me())

	app.Get(contract.ServiceRequestList.Path, authRequired, ListServiceRequests(requests))
	app.Post(contract.ServiceRequestCreate.Path, CreateServiceRequest(requests))
	app.Patch(contract.ServiceRequestUpdateStatus.Path, authRequired, UpdateServiceRequestStatus(requests))
	app.Delete(contract.ServiceRequestDelete.Path, authRequired, DeleteServiceRequest(requests))

	app.Get(contract.NoticeList.Path, ListNotices(notices))
	app.Post(contract.NoticeCreate.Path, authRequired, CreateNotice(notices))
	app.Delete(contract.NoticeDelete.Path, authRequired, DeleteNotice(notices))
}
