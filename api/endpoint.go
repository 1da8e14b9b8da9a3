package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/socialai-lab/backend/pkg/errorx"
	"github.com/socialai-lab/backend/pkg/xcontext"
)

// Endpoint binds one route to a domain handler. GET and DELETE requests fill
// the request struct from query parameters; other methods decode the body as
// JSON.
type Endpoint[Request, Response any] struct {
	Method string
	Path   string
	Before []Handler
	Handle func(ctx context.Context, req *Request) (*Response, error)
	After  []Handler
}

func (e *Endpoint[Request, Response]) Register(mux *http.ServeMux) {
	mux.HandleFunc(e.Path, func(w http.ResponseWriter, r *http.Request) {
		if e.Method != "" && r.Method != e.Method {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		ctx := &Context{Context: r.Context(), r: r, w: w}
		for _, h := range e.Before {
			h(ctx)
			if ctx.aborted {
				return
			}
		}

		var req Request
		if err := e.readRequest(ctx, &req); err != nil {
			writeError(w, errorx.New(errorx.BadRequest, "Cannot parse request"))
			return
		}

		resp, err := e.Handle(ctx, &req)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Endpoint %s failed: %v", e.Path, err)
			writeError(w, err)
			return
		}

		writeJSON(ctx.w, resp)

		for _, h := range e.After {
			h(ctx)
			if ctx.aborted {
				return
			}
		}
	})
}

func (e *Endpoint[Request, Response]) readRequest(ctx *Context, req *Request) error {
	switch e.Method {
	case http.MethodGet, http.MethodDelete:
		v := reflect.ValueOf(req).Elem()
		for i := 0; i < v.NumField(); i++ {
			name := v.Type().Field(i).Tag.Get("json")
			if idx := indexComma(name); idx >= 0 {
				name = name[:idx]
			}

			queryVal := ctx.r.URL.Query().Get(name)
			if queryVal == "" {
				continue
			}

			switch v.Field(i).Kind() {
			case reflect.String:
				v.Field(i).SetString(queryVal)
			case reflect.Int:
				n, err := strconv.Atoi(queryVal)
				if err != nil {
					return err
				}
				v.Field(i).SetInt(int64(n))
			}
		}

		return nil

	default:
		b, err := io.ReadAll(ctx.r.Body)
		if err != nil {
			return err
		}

		if len(b) == 0 {
			return nil
		}

		return json.Unmarshal(b, req)
	}
}

func indexComma(s string) int {
	for i := range s {
		if s[i] == ',' {
			return i
		}
	}

	return -1
}

func writeJSON(w http.ResponseWriter, resp any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type errorBody struct {
	Code    errorx.Code `json:"code"`
	Message string      `json:"message"`
}

func writeError(w http.ResponseWriter, err error) {
	var xerr errorx.Error
	if !errors.As(err, &xerr) {
		xerr = errorx.Unknown
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus(xerr.Code))
	json.NewEncoder(w).Encode(map[string]errorBody{
		"error": {Code: xerr.Code, Message: xerr.Message},
	})
}

func httpStatus(code errorx.Code) int {
	switch code {
	case errorx.BadRequest:
		return http.StatusBadRequest
	case errorx.PermissionDenied:
		return http.StatusForbidden
	case errorx.NotFound:
		return http.StatusNotFound
	case errorx.Unauthenticated:
		return http.StatusUnauthorized
	case errorx.AlreadyExists:
		return http.StatusConflict
	case errorx.Unavailable:
		return http.StatusServiceUnavailable
	case errorx.PaymentDeclined:
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}
