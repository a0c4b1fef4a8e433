package http

import (
	"embed"
	"html/template"
)

// PostToExtensionTemplate hands a stored token to the browser extension.
const PostToExtensionTemplate = "post_to_extension.html"

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded HTML pages for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}
