package errors

// ClickHouse helpers mapping driver exceptions onto ErrorCode for the pattern event sink

import (
	"context"
	stderrs "errors"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// server exception codes the event sink can hit
const (
	chErrUnknownTable      = 60
	chErrTooManyParts      = 252
	chErrTooManySimQueries = 202
	chErrTimeoutExceeded   = 159
	chErrReadonly          = 164
)

// ExtractCHException returns the server exception at the root of err
func ExtractCHException(err error) (*clickhouse.Exception, bool) {
	var ex *clickhouse.Exception
	if stderrs.As(err, &ex) {
		return ex, true
	}
	return nil, false
}

// FromClickHouse wraps a ClickHouse error with a mapped ErrorCode and message.
// If err is nil, returns nil
func FromClickHouse(err error, msg string) error {
	if err == nil {
		return nil
	}
	ex, ok := ExtractCHException(err)
	if !ok {
		return Wrap(err, ErrorCodeDB, msg)
	}
	switch ex.Code {
	case chErrUnknownTable, chErrReadonly:
		return Wrap(err, ErrorCodeUnavailable, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}

// IsRetryableCH reports transient ClickHouse server conditions
func IsRetryableCH(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	ex, ok := ExtractCHException(err)
	if !ok {
		return false
	}
	switch ex.Code {
	case chErrTooManyParts, chErrTooManySimQueries, chErrTimeoutExceeded:
		return true
	}
	return false
}
