package httpserver

import "net/http"

// Controller registers its handlers on the shared mux. Patterns use the
// method and wildcard syntax of net/http, e.g. "POST /sensors/{id}/toggle".
type Controller interface {
	AddRoutes(router *http.ServeMux)
}
