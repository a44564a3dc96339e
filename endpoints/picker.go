package endpoints

import (
	"context"

	"github.com/bobinette/pdfroulette/errors"
	"github.com/bobinette/pdfroulette/services"
)

var errInvalidRequest = errors.New("invalid request", errors.BadRequest())

type PickerEndpoint struct {
	service *services.PickerService
}

func NewPickerEndpoint(service *services.PickerService) *PickerEndpoint {
	return &PickerEndpoint{
		service: service,
	}
}

func (ep *PickerEndpoint) Random(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(services.RandomRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	pdf, err := ep.service.Random(req)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": pdf,
	}, nil
}

func (ep *PickerEndpoint) ResetHistory(ctx context.Context, r interface{}) (interface{}, error) {
	ep.service.ResetHistory()

	return map[string]interface{}{
		"data": "ok",
	}, nil
}

func (ep *PickerEndpoint) Categories(ctx context.Context, r interface{}) (interface{}, error) {
	categories, err := ep.service.Categories()
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": categories,
	}, nil
}
