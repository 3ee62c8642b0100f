package model

import (
	"errors"
	"strings"
)

// ErrorKind categorizes failures for logs and response mapping
type ErrorKind string

const (
	ErrorKindValidation         ErrorKind = "validation"
	ErrorKindUpstreamFetch      ErrorKind = "upstream_fetch"
	ErrorKindNotFound           ErrorKind = "not_found"
	ErrorKindInternalExtraction ErrorKind = "internal_extraction"
	ErrorKindNotification       ErrorKind = "notification"
	ErrorKindStorage            ErrorKind = "storage"
	ErrorKindUnknown            ErrorKind = "unknown"
)

// Kinded is implemented by errors that know their own category
type Kinded interface {
	Kind() ErrorKind
}

// ClassifyError categorizes an error. Errors implementing Kinded anywhere in
// the chain win; otherwise the message is inspected.
func ClassifyError(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var k Kinded
	if errors.As(err, &k) {
		return k.Kind()
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, "connection", "timeout", "network", "dial", "no such host"):
		return ErrorKindUpstreamFetch
	case containsAny(msg, "sql", "pgx", "database"):
		return ErrorKindStorage
	default:
		return ErrorKindUnknown
	}
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
