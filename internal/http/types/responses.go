// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"

	v0Types "github.com/canonical/identity-platform-api/v0/http"
	"google.golang.org/protobuf/encoding/protojson"
)

var errorMarshaler = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}

// NewErrorResponse builds the standard error body shared with the identity platform UIs
func NewErrorResponse(status int, message string) *v0Types.ErrorResponse {
	if message == "" {
		message = http.StatusText(status)
	}

	return &v0Types.ErrorResponse{
		Status:  int32(status),
		Message: message,
	}
}

// WriteError writes the error body with the given status code
func WriteError(w http.ResponseWriter, status int, message string) {
	body, err := errorMarshaler.Marshal(NewErrorResponse(status, message))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// WriteJSON encodes v as the response body
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	_ = json.NewEncoder(w).Encode(v)
}
