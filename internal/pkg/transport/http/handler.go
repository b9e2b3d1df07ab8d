package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/ijalalfrz/hotel-price-query-service/internal/app/dto"
	"github.com/ijalalfrz/hotel-price-query-service/internal/pkg/exception"
)

var (
	ErrMethodNotAllowed = exception.ApplicationError{
		Message:    "Method not allowed.",
		StatusCode: http.StatusMethodNotAllowed,
	}

	ErrPostOnly = exception.ApplicationError{
		Message:    "Method not allowed. Use POST.",
		StatusCode: http.StatusMethodNotAllowed,
	}

	ErrInvalidBody = exception.BadRequest("Invalid request body.")
)

// MakeHandlerFunc serves a go-kit endpoint with the given codecs and the
// common error encoder.
func MakeHandlerFunc(
	ep endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(ep, dec, enc,
		kithttp.ServerErrorEncoder(ErrorResponse),
	).ServeHTTP
}

// DecodeRequest decodes the JSON body into a new T and runs its Bind.
func DecodeRequest[T any, PT interface {
	*T
	render.Binder
}](_ context.Context, r *http.Request) (interface{}, error) {
	req := PT(new(T))

	if err := render.Bind(r, req); err != nil {
		var appErr exception.ApplicationError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, exception.ApplicationError{
			Message:    ErrInvalidBody.Message,
			StatusCode: ErrInvalidBody.StatusCode,
			Cause:      err,
		}
	}

	return req, nil
}

// DecodeHotelInfoRequest reads the {hotelId} URL parameter.
func DecodeHotelInfoRequest(_ context.Context, r *http.Request) (interface{}, error) {
	hotelID, err := strconv.Atoi(chi.URLParam(r, "hotelId"))
	if err != nil {
		return nil, dto.ErrInvalidHotelID
	}

	req := &dto.HotelInfoRequest{HotelID: hotelID}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}

func DecodeNothing(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}

// MethodNotAllowed renders err as the 405 response of a router.
func MethodNotAllowed(err exception.ApplicationError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ErrorResponse(r.Context(), err, w)
	}
}
