package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/KOFI-GYIMAH/uc-orb/pkg/logger"
)

type ErrorLevel int

const (
	LevelFatal ErrorLevel = iota + 1
	LevelError
	LevelWarning
	LevelInfo
)

func (l ErrorLevel) String() string {
	return [...]string{"", "Fatal", "Error", "Warning", "Info"}[l]
}

// * References used across the catalog
const (
	RefDataUnavailable  = "DATA_UNAVAILABLE"
	RefInvalidParameter = "INVALID_PARAMETER"
	RefNotFound         = "REPOSITORY_NOT_FOUND"
)

type ApplicationError struct {
	Reference   string
	Title       string
	Detail      string
	RootCause   error
	Level       ErrorLevel
	OccurredAt  time.Time
	CallerTrace []string
}

func (e *ApplicationError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s][%s] %s", e.OccurredAt.Format(time.RFC3339), e.Reference, e.Title)

	if e.Detail != "" {
		fmt.Fprintf(&b, " - %s", e.Detail)
	}

	if e.RootCause != nil {
		fmt.Fprintf(&b, " (caused by: %v)", e.RootCause)
	}

	return b.String()
}

func (e *ApplicationError) Unwrap() error {
	return e.RootCause
}

func New(ref, title, detail string, cause error, level ErrorLevel) *ApplicationError {
	return &ApplicationError{
		Reference:   ref,
		Title:       title,
		Detail:      detail,
		RootCause:   cause,
		Level:       level,
		OccurredAt:  time.Now().UTC(),
		CallerTrace: captureCallerInfo(3),
	}
}

// * DataUnavailable reports a backing store that is missing, unreadable or malformed
func DataUnavailable(detail string, cause error) *ApplicationError {
	return New(RefDataUnavailable, "Repository data unavailable", detail, cause, LevelFatal)
}

// * InvalidParameter reports a request parameter that could not be bound
func InvalidParameter(detail string, cause error) *ApplicationError {
	return New(RefInvalidParameter, "Invalid request parameter", detail, cause, LevelError)
}

func NotFound(detail string) *ApplicationError {
	return New(RefNotFound, "Repository not found", detail, nil, LevelInfo)
}

// * HasReference reports whether any ApplicationError in err's chain carries ref
func HasReference(err error, ref string) bool {
	var appErr *ApplicationError
	return errors.As(err, &appErr) && appErr.Reference == ref
}

func IsDataUnavailable(err error) bool {
	return HasReference(err, RefDataUnavailable)
}

func captureCallerInfo(skip int) []string {
	pc := make([]uintptr, 10)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return nil
	}

	pc = pc[:n]
	frames := runtime.CallersFrames(pc)

	var trace []string
	for {
		frame, more := frames.Next()
		trace = append(trace, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		if !more {
			break
		}
	}

	return trace
}

type HTTPErrorResponse struct {
	Status     int       `json:"status"`
	ErrorRef   string    `json:"error_reference,omitempty"`
	Title      string    `json:"title"`
	Detail     string    `json:"detail,omitempty"`
	Resolution string    `json:"resolution,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

func WriteHTTPError(w http.ResponseWriter, err error) {
	var appErr *ApplicationError

	resp := HTTPErrorResponse{
		Status:    http.StatusInternalServerError,
		Title:     "An unexpected error occurred",
		Timestamp: time.Now().UTC(),
	}

	if errors.As(err, &appErr) {
		resp.ErrorRef = appErr.Reference
		resp.Title = appErr.Title
		resp.Detail = appErr.Detail

		switch appErr.Level {
		case LevelFatal:
			resp.Status = http.StatusInternalServerError
			resp.Resolution = "Please contact support with the error reference"
		case LevelError:
			resp.Status = http.StatusBadRequest
			resp.Resolution = "Please review your request and try again"
		case LevelWarning:
			resp.Status = http.StatusConflict
			resp.Resolution = "Please review your request and try again"
		case LevelInfo:
			resp.Status = http.StatusNotFound
		}
	} else {
		resp.Detail = err.Error()
	}

	// * expected outcomes are not errors
	if resp.Status < http.StatusInternalServerError {
		logger.Info("%v", err)
	} else {
		logger.Error("%v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	json.NewEncoder(w).Encode(resp)
}
