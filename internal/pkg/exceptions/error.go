package exceptions

import (
	"errors"
	"fmt"
	"pacientes-service/internal/pkg/constvars"
	"runtime"
)

type CustomError struct {
	StatusCode    int          `json:"status_code"`
	Success       bool         `json:"success"`
	ClientMessage string       `json:"message"`
	Errors        []FieldError `json:"errors,omitempty"`
	DevMessage    string       `json:"-"`
	Locations     []Location   `json:"-"`
	Err           error        `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

// FieldError names a single rejected field of a request payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// BuildNewCustomError records the caller of the exported constructor, so the location
// points at the code that raised the error rather than at this package.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	customErr := &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Err:           err,
	}

	var wrapped *CustomError
	if errors.As(err, &wrapped) {
		customErr.Locations = append(customErr.Locations, wrapped.Locations...)
	}
	if err != nil {
		customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}

	customErr.Locations = append([]Location{getLocation(3)}, customErr.Locations...)
	return customErr
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
