package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Kind classifies client errors
type Kind int

// error kinds
const (
	KindNetwork      Kind = iota + 1 // no response received
	KindValidation                   // 4xx with field-keyed body
	KindNotFound                     // 404, the resource doesn't exist
	KindServer                       // 5xx or malformed response
	KindPrecondition                 // rejected before any request was sent
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not found"
	case KindServer:
		return "server"
	case KindPrecondition:
		return "precondition"
	}
	return "unknown"
}

// Error is returned by all client calls. Fields is set for validation errors, keyed by field name.
type Error struct {
	Kind   Kind
	Status int
	Fields map[string][]string
	Msg    string
	Err    error
}

// Error renders validation errors as "key: msg1, msg2" pairs sorted by key and joined with "; "
func (e *Error) Error() string {
	if e.Kind == KindValidation && len(e.Fields) > 0 {
		return RenderFields(e.Fields)
	}
	msg := e.Msg
	switch {
	case e.Err != nil && msg == "":
		msg = e.Err.Error()
	case e.Err != nil:
		msg += ": " + e.Err.Error()
	}
	switch e.Kind {
	case KindNetwork:
		return "network error: " + msg
	case KindServer:
		if e.Status > 0 {
			return fmt.Sprintf("server error %d: %s", e.Status, msg)
		}
		return "server error: " + msg
	case KindNotFound:
		return "not found: " + msg
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a client error, zero for foreign errors
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsNotFound reports whether err means the requested record doesn't exist
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// RenderFields joins field messages sorted by field name
func RenderFields(fields map[string][]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(fields[k], ", "))
	}
	return strings.Join(parts, "; ")
}

func preconditionErr(format string, args ...any) error {
	return &Error{Kind: KindPrecondition, Msg: fmt.Sprintf(format, args...)}
}

// responseError maps non-2xx response to an Error, body shape is not trusted
func responseError(status int, body []byte) error {
	fields, ok := parseFields(body)
	switch {
	case status == http.StatusNotFound:
		res := &Error{Kind: KindNotFound, Status: status, Msg: "resource doesn't exist"}
		if detail := fields["detail"]; len(detail) > 0 {
			res.Msg = strings.Join(detail, ", ")
		}
		return res
	case status >= 400 && status < 500 && ok && len(fields) > 0:
		return &Error{Kind: KindValidation, Status: status, Fields: fields}
	case status >= 400 && status < 500:
		return &Error{Kind: KindServer, Status: status, Msg: "malformed error response"}
	}

	msg := http.StatusText(status)
	if detail := fields["detail"]; len(detail) > 0 {
		msg = strings.Join(detail, ", ")
	}
	return &Error{Kind: KindServer, Status: status, Msg: msg}
}

// parseFields converts a JSON object of arbitrary values into field messages
func parseFields(body []byte) (map[string][]string, bool) {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, false
	}
	res := make(map[string][]string, len(raw))
	for k, v := range raw {
		res[k] = messages(v)
	}
	return res, true
}

func messages(v any) []string {
	switch val := v.(type) {
	case string:
		return []string{val}
	case []any:
		res := make([]string, 0, len(val))
		for _, item := range val {
			res = append(res, messages(item)...)
		}
		return res
	case map[string]any:
		nested := make(map[string][]string, len(val))
		for k, item := range val {
			nested[k] = messages(item)
		}
		return []string{RenderFields(nested)}
	case nil:
		return nil
	}
	return []string{fmt.Sprint(v)}
}
