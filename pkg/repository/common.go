package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// errCritical matches any criticalError, repeater stops on it
var errCritical = errors.New("critical error")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Is(target error) bool { return target == errCritical }

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// withLockRetry runs a write, retrying with backoff while SQLite reports a lock.
// Any other error stops retries and is returned as is.
func withLockRetry(ctx context.Context, op string, fn func() error) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		if err := fn(); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: err}
		}
		return nil
	}, errCritical)
	if err == nil {
		return nil
	}
	var ce *criticalError
	if errors.As(err, &ce) {
		err = ce.err
	}
	return fmt.Errorf("%s: %w", op, err)
}

// jsonColumn stores a slice as JSON text. Nil is kept as NULL so absent and empty stay different.
type jsonColumn[T any] struct {
	vals []T
}

// Value implements driver.Valuer for database storage
func (j jsonColumn[T]) Value() (driver.Value, error) {
	if j.vals == nil {
		return nil, nil
	}
	data, err := json.Marshal(j.vals)
	if err != nil {
		return nil, fmt.Errorf("marshal json column: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (j *jsonColumn[T]) Scan(value any) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		j.vals = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported json column type %T", value)
	}
	vals := []T{}
	if err := json.Unmarshal(data, &vals); err != nil {
		return fmt.Errorf("unmarshal json column: %w", err)
	}
	j.vals = vals
	return nil
}
