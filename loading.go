// loading.go: GetOrLoad, cache-aside on top of WeightedCache
//
// The cache is single-goroutine, so there is no deduplication of concurrent
// loads here: a miss simply runs the loader and inserts its result.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package pondus

import "context"

// GetOrLoad returns the value cached under key, or loads it with loader and
// inserts it.
//
// A hit does not change recency, exactly like Get. On a miss the loaded value
// is inserted and becomes the most recently used entry.
//
// Returns:
//   - value: The cached or loaded value (zero value on loader error)
//   - error: PONDUS_INVALID_LOADER if loader is nil,
//     PONDUS_PANIC_RECOVERED if loader panics,
//     PONDUS_LOADER_FAILED wrapping the loader error,
//     PONDUS_EXCEEDS_MAXIMUM_WEIGHT if the loaded value is too heavy to cache
//     (the loaded value is still returned in that case)
//
// Example:
//
//	doc, err := cache.GetOrLoad("doc:42", func() (string, error) {
//	    return fetchDocument(42)
//	})
func (c *WeightedCache[K, V]) GetOrLoad(key K, loader func() (V, error)) (V, error) {
	if value, found := c.Get(key); found {
		return value, nil
	}

	var zero V
	if loader == nil {
		return zero, NewErrInvalidLoader(keyToString(key))
	}

	value, err := runLoader(key, "GetOrLoad", loader)
	if err != nil {
		return zero, err
	}
	return value, c.Insert(key, value)
}

// GetOrLoadWithContext is like GetOrLoad but passes ctx to the loader and
// refuses to start loading once ctx is done.
//
// Returns:
//   - value: The cached or loaded value (zero value on error)
//   - error: Context error (Canceled, DeadlineExceeded), or any GetOrLoad error
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//	doc, err := cache.GetOrLoadWithContext(ctx, "doc:42", func(ctx context.Context) (string, error) {
//	    return fetchDocumentWithContext(ctx, 42)
//	})
func (c *WeightedCache[K, V]) GetOrLoadWithContext(ctx context.Context, key K, loader func(context.Context) (V, error)) (V, error) {
	if value, found := c.Get(key); found {
		return value, nil
	}

	var zero V
	if loader == nil {
		return zero, NewErrInvalidLoader(keyToString(key))
	}

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	value, err := runLoader(key, "GetOrLoadWithContext", func() (V, error) {
		return loader(ctx)
	})
	if err != nil {
		return zero, err
	}

	// A loader that ignored cancellation must not populate the cache.
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	return value, c.Insert(key, value)
}

// runLoader executes loader with panic recovery and wraps its error.
// Context errors are passed through untouched so callers can match them.
func runLoader[K comparable, V any](key K, operation string, loader func() (V, error)) (value V, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero V
			value = zero
			err = NewErrPanicRecovered(operation+":"+keyToString(key), r)
		}
	}()

	value, err = loader()
	if err != nil {
		if err == context.Canceled || err == context.DeadlineExceeded {
			return value, err
		}
		return value, NewErrLoaderFailed(keyToString(key), err)
	}
	return value, nil
}
