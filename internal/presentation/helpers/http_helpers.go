package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	presentationProtocols "github.com/budgify/backend/internal/presentation/protocols"
)

func CreateResponse(body any, statusCode int) *presentationProtocols.HttpResponse {
	encoded, err := json.Marshal(body)
	if err != nil {
		return &presentationProtocols.HttpResponse{
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"error":"error encoding response"}`))),
			StatusCode: http.StatusInternalServerError,
		}
	}

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(encoded)),
		StatusCode: statusCode,
	}
}

// GetUserId reads the user id the authentication middleware stored on the
// request headers.
func GetUserId(r presentationProtocols.HttpRequest) (int64, *presentationProtocols.HttpResponse) {
	userId, err := strconv.ParseInt(r.Header.Get("UserId"), 10, 64)
	if err != nil {
		return 0, CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user id",
		}, http.StatusBadRequest)
	}

	return userId, nil
}
