package middleware

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
)

// maxLoggedBody caps how much of the JSON response makes it into the log
// line; bigger payloads are cut with an ellipsis.
const maxLoggedBody = 80

// Logger emits one line per API response to stdout, in the form
//
//	3:04:05 PM [api] GET /api/notices 200 in 3ms :: [{"id":1,...}]
//
// Paths outside /api are not logged.
func Logger() fiber.Handler {
	return NewLogger(os.Stdout)
}

// NewLogger is Logger with an explicit sink, for tests.
func NewLogger(out io.Writer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Path()
		if !strings.HasPrefix(path, "/api") {
			return err
		}

		line := fmt.Sprintf("%s %s %d in %dms",
			c.Method(), path, c.Response().StatusCode(), time.Since(start).Milliseconds())

		if body := c.Response().Body(); len(body) > 0 {
			line += " :: " + truncateBody(string(body))
		}

		fmt.Fprintf(out, "%s [api] %s\n", time.Now().Format("3:04:05 PM"), line)
		return err
	}
}

// truncateBody cuts an overlong body with an ellipsis, stepping back to a
// rune boundary so a multi-byte character is never split mid-sequence.
func truncateBody(s string) string {
	if len(s) <= maxLoggedBody {
		return s
	}
	cut := maxLoggedBody - 1
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
