package main

import (
	"embed"
	"encoding/json"
	"html/template"
	"io"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/isafmcl/Integra-o-com-ERP/internal/config"
	"github.com/isafmcl/Integra-o-com-ERP/internal/dashboard"
)

//go:embed templates/index.html.tmpl
var templatesFS embed.FS

type renderer struct {
	t *template.Template
}

func (r *renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	return r.t.ExecuteTemplate(w, name, data)
}

// chartJSON feeds panel rows into the inline Chart.js calls.
func chartJSON(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg := config.LoadDashboard()

	client := dashboard.NewClient(cfg.APIURL)

	t := template.Must(
		template.New("").
			Funcs(template.FuncMap{"chartJSON": chartJSON}).
			ParseFS(templatesFS, "templates/*.tmpl"),
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Renderer = &renderer{t: t}

	e.GET("/", func(c echo.Context) error {
		view := dashboard.BuildView(c.Request().Context(), client)
		return c.Render(http.StatusOK, "index.html.tmpl", view)
	})

	if err := e.Start(":" + cfg.DashboardPort); err != nil {
		log.Fatalf("dashboard: %v", err)
	}
}
