package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/socialai-lab/backend/pkg/errorx"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	Name  string `json:"name"`
	Count int    `json:"count,omitempty"`
}

type echoResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestEndpoint_postBody(t *testing.T) {
	mux := http.NewServeMux()
	endpoint := &Endpoint[echoRequest, echoResponse]{
		Method: http.MethodPost,
		Path:   "/echo",
		Handle: func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
			return &echoResponse{Name: req.Name, Count: req.Count}, nil
		},
	}
	endpoint.Register(mux)

	r := httptest.NewRequest(http.MethodPost, "/echo",
		strings.NewReader(`{"name":"toast","count":3}`))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp echoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "toast", resp.Name)
	require.Equal(t, 3, resp.Count)
}

func TestEndpoint_getQuery(t *testing.T) {
	mux := http.NewServeMux()
	endpoint := &Endpoint[echoRequest, echoResponse]{
		Method: http.MethodGet,
		Path:   "/echo",
		Handle: func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
			return &echoResponse{Name: req.Name, Count: req.Count}, nil
		},
	}
	endpoint.Register(mux)

	r := httptest.NewRequest(http.MethodGet, "/echo?name=toast&count=7", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp echoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "toast", resp.Name)
	require.Equal(t, 7, resp.Count)
}

func TestEndpoint_methodNotAllowed(t *testing.T) {
	mux := http.NewServeMux()
	endpoint := &Endpoint[echoRequest, echoResponse]{
		Method: http.MethodPost,
		Path:   "/echo",
		Handle: func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
			return &echoResponse{}, nil
		},
	}
	endpoint.Register(mux)

	r := httptest.NewRequest(http.MethodGet, "/echo", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestEndpoint_errorMapping(t *testing.T) {
	mux := http.NewServeMux()
	endpoint := &Endpoint[echoRequest, echoResponse]{
		Method: http.MethodPost,
		Path:   "/echo",
		Handle: func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
			return nil, errorx.New(errorx.PaymentDeclined, "Payment declined. Please try another card.")
		},
	}
	endpoint.Register(mux)

	r := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	require.Equal(t, http.StatusPaymentRequired, w.Code)

	var body map[string]errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, errorx.PaymentDeclined, body["error"].Code)
	require.Equal(t, "Payment declined. Please try another card.", body["error"].Message)
}

func TestEndpoint_middlewareAbort(t *testing.T) {
	mux := http.NewServeMux()
	endpoint := &Endpoint[echoRequest, echoResponse]{
		Method: http.MethodPost,
		Path:   "/echo",
		Before: []Handler{
			func(ctx *Context) {
				http.Error(ctx.w, "not authenticated", http.StatusUnauthorized)
				ctx.Abort()
			},
		},
		Handle: func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
			t.Fatal("handler must not run after abort")
			return nil, nil
		},
	}
	endpoint.Register(mux)

	r := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
