package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"

	"courier-dispatch/internal/logx"
)

func testLogger() logx.Logger { return logx.Nop() }

// newRequest builds a request carrying chi URL params given as key/value pairs.
func newRequest(method, target, body string, params ...string) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	routeCtx := chi.NewRouteContext()
	for i := 0; i+1 < len(params); i += 2 {
		routeCtx.URLParams.Add(params[i], params[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}
