package http

import (
	"context"
	"net/http"

	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/bobinette/pdfroulette"
	"github.com/bobinette/pdfroulette/endpoints"
	"github.com/bobinette/pdfroulette/services"
)

func RegisterPickerEndpoints(srv Server, service *services.PickerService) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
	}

	ep := endpoints.NewPickerEndpoint(service)

	// Random pdf handler
	randomHandler := kithttp.NewServer(
		ep.Random,
		decodeRandomRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// History reset handler
	resetHandler := kithttp.NewServer(
		ep.ResetHistory,
		decodeEmptyRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Categories handler
	categoriesHandler := kithttp.NewServer(
		ep.Categories,
		decodeEmptyRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Register all handlers
	srv.RegisterHandler("/pdfroulette/random", "GET", randomHandler)
	srv.RegisterHandler("/pdfroulette/history", "DELETE", resetHandler)
	srv.RegisterHandler("/pdfroulette/categories", "GET", categoriesHandler)
}

func decodeRandomRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	query := r.URL.Query()
	req := services.RandomRequest{
		Filter: pdfroulette.FilterFromQueryParams(query),
	}
	for _, key := range pdfroulette.FilterParamKeys {
		if query.Has(key) {
			req.HasParams = true
			break
		}
	}

	return req, nil
}

func decodeEmptyRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	return nil, nil
}
