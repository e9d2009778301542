// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

The body is capped at [constants.MaxJSONBodyBytes] and must hold exactly
one JSON value; trailing content is rejected.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	request.Body = http.MaxBytesReader(writer, request.Body, constants.MaxJSONBodyBytes)
	decoder := json.NewDecoder(request.Body)

	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}

	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return validate.ErrInvalidJSON
	}

	return nil
}

/*
Body decodes the request body into a freshly allocated T.

An empty body, a literal JSON null, or malformed JSON all yield
validate.ErrInvalidJSON so that handlers never see a nil payload.
*/
func Body[T any](writer http.ResponseWriter, request *http.Request) (*T, error) {
	var payload *T
	if err := DecodeJSON(writer, request, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, validate.ErrInvalidJSON
	}
	return payload, nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntID parses a named URL parameter as a positive integer identifier.

Identifiers are Postgres INTEGER columns, so values beyond
[constants.MaxID] are rejected like non-numeric ones.

Returns:
  - int: The identifier
  - error: apperr.BadRequest if the parameter is missing, non-numeric, out of range, or not positive
*/
func IntID(request *http.Request, name string) (int, error) {
	raw := chi.URLParam(request, name)

	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, apperr.BadRequest("Invalid " + name + ": " + strconv.Quote(raw))
	}

	return int(id), nil
}
