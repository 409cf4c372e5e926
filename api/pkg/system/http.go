package system

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	stdlog "log"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"
)

// the sub path any API's are served over
const APISubPath = "/api/v1"

type ClientOptions struct {
	Host string
	// User is sent in the auth proxy header
	User       string
	UserHeader string
}

func URL(options ClientOptions, path string) string {
	return fmt.Sprintf("%s%s", options.Host, path)
}

type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

func NewHTTPError400(message string) *HTTPError {
	return &HTTPError{
		StatusCode: http.StatusBadRequest,
		Message:    message,
	}
}

func NewHTTPError401(message string) *HTTPError {
	return &HTTPError{
		StatusCode: http.StatusUnauthorized,
		Message:    message,
	}
}

func NewHTTPError403(message string) *HTTPError {
	return &HTTPError{
		StatusCode: http.StatusForbidden,
		Message:    message,
	}
}

func NewHTTPError404(message string) *HTTPError {
	return &HTTPError{
		StatusCode: http.StatusNotFound,
		Message:    message,
	}
}

func NewHTTPError500(message string) *HTTPError {
	return &HTTPError{
		StatusCode: http.StatusInternalServerError,
		Message:    message,
	}
}

type httpErrorHandler func(err *HTTPError, req *http.Request)

var HTTPErrorHandler httpErrorHandler

// functions that understand they need to return a http error
type httpWrapper[T any] func(res http.ResponseWriter, req *http.Request) (T, *HTTPError)

// normal functions that return just an error
// which will be translated into a 500
type defaultWrapper[T any] func(res http.ResponseWriter, req *http.Request) (T, error)

type WrapperConfig struct {
	SilenceErrors bool
}

func SetHTTPErrorHandler(handler httpErrorHandler) {
	HTTPErrorHandler = handler
}

// wrap a http handler with some error handling
// so if it returns an error we handle it
func Wrapper[T any](handler httpWrapper[T]) func(res http.ResponseWriter, req *http.Request) {
	return WrapperWithConfig(handler, WrapperConfig{})
}

func WrapperWithConfig[T any](handler httpWrapper[T], config WrapperConfig) func(res http.ResponseWriter, req *http.Request) {
	ret := func(res http.ResponseWriter, req *http.Request) {
		data, err := handler(res, req)
		if err != nil {
			statusCode := err.StatusCode
			if statusCode == 0 {
				statusCode = http.StatusInternalServerError
			}
			if HTTPErrorHandler != nil && statusCode >= http.StatusInternalServerError {
				HTTPErrorHandler(err, req)
			}
			if !config.SilenceErrors {
				log.Ctx(req.Context()).Error().Int("status", statusCode).Msgf("error for route: %s", err.Error())
			}
			http.Error(res, err.Error(), statusCode)
			return
		}
		res.Header().Set("Content-Type", "application/json")
		jsonError := json.NewEncoder(res).Encode(data)
		if jsonError != nil {
			log.Ctx(req.Context()).Error().Msgf("error for json encoding: %s", jsonError.Error())
			http.Error(res, jsonError.Error(), http.StatusInternalServerError)
			return
		}
	}
	return ret
}

// DefaultController turns a plain error into a 500, for handlers that do not
// care about the status code
func DefaultController[T any](result T, err error) (T, *HTTPError) {
	if err != nil {
		return result, NewHTTPError500(err.Error())
	}
	return result, nil
}

func DefaultWrapper[T any](handler defaultWrapper[T]) func(res http.ResponseWriter, req *http.Request) {
	return Wrapper(func(res http.ResponseWriter, req *http.Request) (T, *HTTPError) {
		return DefaultController(handler(res, req))
	})
}

func AddAuthHeadersRetryable(
	req *retryablehttp.Request,
	token string,
) error {
	if token != "" {
		req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	return nil
}

func NewRetryClient(retryMax int, tlsSkipVerify bool, timeout time.Duration) *retryablehttp.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = retryMax
	retryClient.RetryWaitMin = 200 * time.Millisecond
	retryClient.RetryWaitMax = 2 * time.Second
	if timeout > 0 {
		retryClient.HTTPClient.Timeout = timeout
	}

	if tlsSkipVerify {
		retryClient.HTTPClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	retryClient.Logger = stdlog.New(io.Discard, "", stdlog.LstdFlags)
	retryClient.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		log.Trace().
			Str(req.Method, req.URL.String()).
			Int("attempt", attempt).
			Msgf("")
	}
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		if resp == nil {
			return true, err
		}
		log.Trace().
			Str(resp.Request.Method, resp.Request.URL.String()).
			Int("code", resp.StatusCode).
			Msgf("")
		// 4xx answers are final
		return resp.StatusCode >= 500, nil
	}
	// hand the last response back to the caller instead of a generic error
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return retryClient
}
