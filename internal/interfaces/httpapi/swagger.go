package httpapi

import (
	_ "embed"
	"fmt"
	"html"
	"html/template"
	"net/http"
)

const (
	openAPIPath   = "/openapi.yaml"
	docsBaseTitle = "DriveAhead F1 API"
)

//go:embed openapi.yaml
var openAPISpec []byte

func (h *Handler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.OpenAPI")
	defer span.End()

	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	_, _ = w.Write(openAPISpec)
}

func (h *Handler) SwaggerUI(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.SwaggerUI")
	defer span.End()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(swaggerHTML(docsTitle(h.serviceVersion), openAPIPath)))
}

// docsTitle labels the docs page with the running build, e.g. "DriveAhead F1 API (1.4.0)".
func docsTitle(version string) string {
	if version == "" {
		return docsBaseTitle
	}
	return fmt.Sprintf("%s (%s)", docsBaseTitle, version)
}

func swaggerHTML(title, specURL string) string {
	return fmt.Sprintf(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>%s</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
    <style>
      html, body { margin: 0; padding: 0; }
      #swagger-ui { max-width: 1200px; margin: 0 auto; }
    </style>
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '%s',
        dom_id: '#swagger-ui',
        deepLinking: true,
        docExpansion: 'list',
        tagsSorter: 'alpha',
        presets: [SwaggerUIBundle.presets.apis],
      });
    </script>
  </body>
</html>`, html.EscapeString(title), template.JSEscapeString(specURL))
}
