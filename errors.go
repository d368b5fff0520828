// errors.go: structured errors for pondus cache operations
//
// The cache itself only ever fails in two ways: construction with nonsense
// limits and insertion of a value heavier than the item limit. The remaining
// codes belong to the loading and hot-reload helpers built on top of it.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package pondus

import (
	goerrors "errors"
	"fmt"
	"strconv"

	"github.com/agilira/go-errors"
)

// Error codes for Pondus cache operations
const (
	// Configuration errors
	ErrCodeNonsenseParameters errors.ErrorCode = "PONDUS_NONSENSE_PARAMETERS"
	ErrCodeInvalidConfig      errors.ErrorCode = "PONDUS_INVALID_CONFIG"

	// Operation errors
	ErrCodeExceedsMaximumWeight errors.ErrorCode = "PONDUS_EXCEEDS_MAXIMUM_WEIGHT"

	// Loader errors
	ErrCodeLoaderFailed  errors.ErrorCode = "PONDUS_LOADER_FAILED"
	ErrCodeInvalidLoader errors.ErrorCode = "PONDUS_INVALID_LOADER"

	// Internal errors
	ErrCodePanicRecovered errors.ErrorCode = "PONDUS_PANIC_RECOVERED"
)

// Common error messages
const (
	msgNonsenseParameters   = "nonsense cache parameters"
	msgInvalidConfig        = "invalid cache configuration"
	msgExceedsMaximumWeight = "value exceeds maximum item weight"
	msgLoaderFailed         = "loader function failed"
	msgInvalidLoader        = "loader function cannot be nil"
	msgPanicRecovered       = "panic recovered in cache operation"
)

// Reasons attached to PONDUS_NONSENSE_PARAMETERS
const (
	reasonNonPositiveLimit = "max_count and max_item_weight must be greater than 0"
	reasonTotalOverflow    = "max_count * max_item_weight overflows int"
	reasonNilWeightFunc    = "weight function cannot be nil"
)

// =============================================================================
// CONFIGURATION ERRORS
// =============================================================================

// NewErrNonsenseParameters creates an error for limits no cache can be built with
func NewErrNonsenseParameters(maxCount, maxItemWeight int, reason string) error {
	return errors.NewWithContext(ErrCodeNonsenseParameters, msgNonsenseParameters, map[string]interface{}{
		"max_count":       maxCount,
		"max_item_weight": maxItemWeight,
		"reason":          reason,
	})
}

// NewErrInvalidConfig creates an error for an unusable configuration source
func NewErrInvalidConfig(source string, details string) error {
	return errors.NewWithContext(ErrCodeInvalidConfig, msgInvalidConfig, map[string]interface{}{
		"source":  source,
		"details": details,
	})
}

// =============================================================================
// OPERATION ERRORS
// =============================================================================

// NewErrExceedsMaximumWeight creates an error when a value is heavier than the item limit
func NewErrExceedsMaximumWeight(weight, maxItemWeight int) error {
	return errors.NewWithContext(ErrCodeExceedsMaximumWeight, msgExceedsMaximumWeight, map[string]interface{}{
		"weight":          weight,
		"max_item_weight": maxItemWeight,
	})
}

// =============================================================================
// LOADER ERRORS
// =============================================================================

// NewErrLoaderFailed creates an error when loader function fails
func NewErrLoaderFailed(key string, cause error) error {
	return errors.Wrap(cause, ErrCodeLoaderFailed, msgLoaderFailed).
		WithContext("key", key).
		AsRetryable()
}

// NewErrInvalidLoader creates an error when loader function is nil
func NewErrInvalidLoader(key string) error {
	return errors.NewWithField(ErrCodeInvalidLoader, msgInvalidLoader, "key", key)
}

// =============================================================================
// INTERNAL ERRORS
// =============================================================================

// NewErrPanicRecovered creates an error when a panic is recovered
func NewErrPanicRecovered(operation string, panicValue interface{}) error {
	return errors.NewWithContext(ErrCodePanicRecovered, msgPanicRecovered, map[string]interface{}{
		"operation":   operation,
		"panic_value": fmt.Sprintf("%v", panicValue),
	}).WithSeverity("critical")
}

// =============================================================================
// ERROR CHECKING HELPERS
// =============================================================================

// IsNonsenseParameters checks if error is a nonsense parameters error
func IsNonsenseParameters(err error) bool {
	return errors.HasCode(err, ErrCodeNonsenseParameters)
}

// IsExceedsMaximumWeight checks if error is an oversized value error
func IsExceedsMaximumWeight(err error) bool {
	return errors.HasCode(err, ErrCodeExceedsMaximumWeight)
}

// IsConfigError checks if error is a configuration error
func IsConfigError(err error) bool {
	code := GetErrorCode(err)
	return code == ErrCodeNonsenseParameters || code == ErrCodeInvalidConfig
}

// IsLoaderError checks if error is a loader error
func IsLoaderError(err error) bool {
	code := GetErrorCode(err)
	return code == ErrCodeLoaderFailed || code == ErrCodeInvalidLoader || code == ErrCodePanicRecovered
}

// IsRetryable checks if the error can be retried
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var retryable errors.Retryable
	if goerrors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

// GetErrorContext extracts context from an error
func GetErrorContext(err error) map[string]interface{} {
	if err == nil {
		return nil
	}
	var pondusErr *errors.Error
	if goerrors.As(err, &pondusErr) {
		return pondusErr.Context
	}
	return nil
}

// keyToString renders a cache key for error context.
// Common key types are formatted without going through fmt.
func keyToString[K comparable](key K) string {
	switch v := any(key).(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	default:
		return fmt.Sprintf("%v", key)
	}
}
