package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tidwall/gjson"

	apperrors "adminconsole/pkg/errors"
)

// Response is the API envelope.
type Response struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ErrorInfo  `json:"error,omitempty"`
	Message   string      `json:"message,omitempty"`
	Timestamp string      `json:"timestamp"`
}

type ErrorInfo struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Data unwraps the {success, data} envelope. Bodies without one are returned unchanged.
func Data(body []byte) []byte {
	if !gjson.ValidBytes(body) {
		return body
	}
	r := gjson.ParseBytes(body)
	if !r.IsObject() {
		return body
	}
	data := r.Get("data")
	if r.Get("success").Exists() && data.Exists() {
		return []byte(data.Raw)
	}
	return body
}

// Field returns the value stored under key, or the whole body when the server
// answered with the bare entity instead of {key: entity}.
func Field(body []byte, key string) []byte {
	body = Data(body)
	v := gjson.GetBytes(body, key)
	if v.Exists() && v.IsObject() {
		return []byte(v.Raw)
	}
	return body
}

// Items returns the collection under key, the body itself when it is a bare
// array, or an empty array.
func Items(body []byte, key string) []byte {
	body = Data(body)
	r := gjson.ParseBytes(body)
	if r.IsArray() {
		return body
	}
	if v := r.Get(key); v.IsArray() {
		return []byte(v.Raw)
	}
	return []byte("[]")
}

// Total reads the server-side count of a list payload, falling back to the
// number of items returned.
func Total(body []byte, fallback int) int {
	body = Data(body)
	r := gjson.ParseBytes(body)
	for _, path := range []string{"total", "pagination.total", "count"} {
		if v := r.Get(path); v.Exists() && v.Type == gjson.Number && v.Int() > 0 {
			return int(v.Int())
		}
	}
	return fallback
}

// ErrorMessage extracts the human-readable message of an error body.
func ErrorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	r := gjson.ParseBytes(body)
	for _, path := range []string{"message", "error.message", "error"} {
		if v := r.Get(path); v.Exists() && v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

// Decode unmarshals body into v.
func Decode(body []byte, v interface{}) error {
	if err := json.Unmarshal(body, v); err != nil {
		return apperrors.Internal("Unexpected response from server", err)
	}
	return nil
}

// Success writes data in a 200 envelope.
func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Created writes data in a 201 envelope.
func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Response{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Error writes err with the status it carries.
func Error(c echo.Context, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, Response{
			Success:   false,
			Message:   appErr.Message,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Error: &ErrorInfo{
				Code:    appErr.Code,
				Message: appErr.Message,
			},
		})
	}

	return c.JSON(http.StatusInternalServerError, Response{
		Success:   false,
		Message:   "An unexpected error occurred",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Error: &ErrorInfo{
			Code:    apperrors.CodeInternal,
			Message: "An unexpected error occurred",
		},
	})
}
