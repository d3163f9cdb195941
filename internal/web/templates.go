package web

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"money": func(d decimal.Decimal) string {
		return d.StringFixed(2)
	},
	"timestamp": func(t time.Time) string {
		return t.UTC().Format("2006-01-02 15:04")
	},
	"negative": func(d decimal.Decimal) bool {
		return d.IsNegative()
	},
}).ParseFS(templateFS, "templates/*.html"))

func render(c *fiber.Ctx, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

func staticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
