// Package views embeds the HTML pages and the stylesheet served by the app.
package views

import (
	"embed"
	"net/http"

	"patientgift/services/gift/render"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var pages embed.FS

//go:embed static
var Static embed.FS

// New returns the fiber view engine over the embedded pages.
func New() *html.Engine {
	engine := html.NewFileSystem(http.FS(pages), ".html")
	engine.AddFunc("tokenQuery", render.TokenQuery)
	return engine
}
