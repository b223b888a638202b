package utils

import (
	"context"
	"io"
	"pacientes-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

func DecodeJSONBody(body io.Reader, dst interface{}) error {
	return json.NewDecoder(body).Decode(dst)
}

func GetRequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
