package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/lintang-b-s/grasp-maxcut/pkg/util"
	"go.uber.org/zap"
)

type envelope map[string]interface{}

func (api *maxCutAPI) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

// readJSON decodes exactly one JSON value of at most maxBodyBytes bytes, rejecting unknown fields.
func (api *maxCutAPI) readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, api.maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var (
			syntaxError        *json.SyntaxError
			unmarshalTypeError *json.UnmarshalTypeError
			maxBytesError      *http.MaxBytesError
		)
		switch {
		case errors.As(err, &syntaxError):
			return util.WrapErrorf(err, util.ErrBadParamInput, "body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return util.WrapErrorf(err, util.ErrBadParamInput, "body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			return util.WrapErrorf(err, util.ErrBadParamInput, "body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
		case errors.Is(err, io.EOF):
			return util.WrapErrorf(err, util.ErrBadParamInput, "body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			return util.WrapErrorf(err, util.ErrBadParamInput, "body contains unknown field %s",
				strings.TrimPrefix(err.Error(), "json: unknown field "))
		case errors.As(err, &maxBytesError):
			return util.WrapErrorf(err, util.ErrTooLarge, "body must not be larger than %d bytes", maxBytesError.Limit)
		default:
			return util.WrapErrorf(err, util.ErrBadParamInput, "invalid body")
		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return util.WrapErrorf(nil, util.ErrBadParamInput, "body must only contain a single JSON value")
	}
	return nil
}

func (api *maxCutAPI) logError(r *http.Request, err error) {
	api.log.Error("request failed", zap.Error(err),
		zap.String("request_method", r.Method),
		zap.String("request_url", r.URL.String()))
}

func (api *maxCutAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	resp := errorResponse{}
	resp.Error.Code = http.StatusText(status)
	resp.Error.Message = fmt.Sprint(message)

	if err := api.writeJSON(w, status, envelope{"error": resp.Error}, nil); err != nil {
		api.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *maxCutAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.logError(r, err)
	api.errorResponse(w, r, http.StatusInternalServerError, util.MessageInternalServerError)
}

func (api *maxCutAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func statusOf(err error) int {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}

	code := util.ErrorCode(err)
	switch {
	case errors.Is(code, util.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(code, util.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(code, util.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCode writes the error response matching the code attached with util.WrapErrorf.
func (api *maxCutAPI) getStatusCode(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		api.ServerErrorResponse(w, r, err)
		return
	}
	api.errorResponse(w, r, status, err.Error())
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
