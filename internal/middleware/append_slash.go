package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

var knownMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
	http.MethodConnect,
	http.MethodTrace,
}

// AppendSlash redirige con 301 "/people/1" -> "/people/1/" cuando el path sin barra
// no tiene ruta y la versión con barra sí. La query se conserva.
//
// Se evalúa sin mirar el método: un PUT a "/people/1" también se redirige.
func AppendSlash(routes chi.Routes) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := r.URL.Path
			if p != "" && !strings.HasSuffix(p, "/") &&
				len(AllowedMethods(routes, p)) == 0 &&
				len(AllowedMethods(routes, p+"/")) > 0 {

				target := p + "/"
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				http.Redirect(w, r, target, http.StatusMovedPermanently)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AllowedMethods devuelve los métodos que tienen handler registrado para path.
func AllowedMethods(routes chi.Routes, path string) []string {
	var out []string
	for _, m := range knownMethods {
		if routes.Match(chi.NewRouteContext(), m, path) {
			out = append(out, m)
		}
	}
	return out
}
