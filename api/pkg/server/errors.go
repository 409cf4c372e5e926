package server

import (
	"errors"
	"net/http"

	"github.com/Artox/open-build-service/api/pkg/backend"
	"github.com/Artox/open-build-service/api/pkg/controller"
	"github.com/Artox/open-build-service/api/pkg/cycles"
	"github.com/Artox/open-build-service/api/pkg/diststats"
	"github.com/Artox/open-build-service/api/pkg/store"
	"github.com/Artox/open-build-service/api/pkg/system"
)

// httpErrorFrom maps the errors of the controller and the layers below it to a status code
func httpErrorFrom(err error) *system.HTTPError {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, controller.ErrUnauthorized):
		return system.NewHTTPError401(err.Error())
	case errors.Is(err, controller.ErrForbidden):
		return system.NewHTTPError403(err.Error())
	case errors.Is(err, controller.ErrInvalidRequest), errors.Is(err, diststats.ErrInvalidScheduler):
		return system.NewHTTPError400(err.Error())
	case errors.Is(err, controller.ErrNotFound), errors.Is(err, store.ErrNotFound), errors.Is(err, cycles.ErrRepositoryNotFound):
		return system.NewHTTPError404(err.Error())
	}

	var backendErr *backend.Error
	if errors.As(err, &backendErr) {
		switch {
		case backendErr.StatusCode == http.StatusNotFound:
			return system.NewHTTPError404(err.Error())
		case backendErr.StatusCode == http.StatusForbidden:
			return system.NewHTTPError403(err.Error())
		case backendErr.StatusCode >= 400 && backendErr.StatusCode < 500:
			return system.NewHTTPError400(err.Error())
		default:
			return &system.HTTPError{StatusCode: http.StatusBadGateway, Message: err.Error()}
		}
	}
	return system.NewHTTPError500(err.Error())
}

// result adapts a controller call to the handler signature of system.Wrapper
func result[T any](data T, err error) (T, *system.HTTPError) {
	if err != nil {
		return data, httpErrorFrom(err)
	}
	return data, nil
}
