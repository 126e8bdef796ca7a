package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/trip-flight-planner/internal/pkg/exception"
)

type DecodeRequestFunc func(ctx context.Context, r *http.Request) (interface{}, error)

type EncodeResponseFunc func(ctx context.Context, w http.ResponseWriter, response interface{}) error

var ErrInvalidRequestBody = exception.ApplicationError{
	StatusCode: http.StatusBadRequest,
	Message:    "invalid request body",
}

// MakeHandlerFunc adapts a go-kit endpoint to an http.HandlerFunc.
func MakeHandlerFunc(e endpoint.Endpoint, decode DecodeRequestFunc, encode EncodeResponseFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		request, err := decode(ctx, r)
		if err != nil {
			ErrorResponse(ctx, err, w)
			return
		}

		response, err := e(ctx, request)
		if err != nil {
			ErrorResponse(ctx, err, w)
			return
		}

		if err := encode(ctx, w, response); err != nil {
			slog.ErrorContext(ctx, "failed to encode response", slog.Any("error", err))
		}
	}
}

// DecodeRequest decodes and validates the body into a *T through render.Bind.
func DecodeRequest[T any, PT interface {
	*T
	render.Binder
}](_ context.Context, r *http.Request) (interface{}, error) {
	request := PT(new(T))

	if err := render.Bind(r, request); err != nil {
		var appErr exception.ApplicationError
		if errors.As(err, &appErr) {
			return nil, appErr
		}

		return nil, ErrInvalidRequestBody.Wrap(err)
	}

	return request, nil
}
