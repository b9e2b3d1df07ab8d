package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/hotel-price-query-service/internal/app/config"
	"github.com/ijalalfrz/hotel-price-query-service/internal/app/dto"
	"github.com/ijalalfrz/hotel-price-query-service/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/hotel-price-query-service/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	_ *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Preflight(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)
		router.MethodNotAllowed(httptransport.MethodNotAllowed(httptransport.ErrMethodNotAllowed))

		router.Route("/hotel-prices", func(router chi.Router) {
			router.MethodNotAllowed(httptransport.MethodNotAllowed(httptransport.ErrPostOnly))

			router.Post("/", httptransport.MakeHandlerFunc(
				endpts.HotelEndpoint.SearchPrices,
				httptransport.DecodeRequest[dto.SearchRequest],
				httptransport.ResponseWithBody,
			))
		})

		router.Get("/hotel-info/{hotelId}", httptransport.MakeHandlerFunc(
			endpts.HotelEndpoint.GetHotelInfo,
			httptransport.DecodeHotelInfoRequest,
			httptransport.ResponseWithBody,
		))

		router.Get("/hotels", httptransport.MakeHandlerFunc(
			endpts.HotelEndpoint.ListHotels,
			httptransport.DecodeNothing,
			httptransport.ResponseWithBody,
		))
	})

	return router
}
