// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// response.go provides a Valkey-backed cache for public JSON list
// responses. Content changes rarely relative to reads, so list endpoints
// serve from cache and every mutation invalidates its resource's keys.
package cache

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// respKeyPrefix is the Valkey key prefix for cached responses.
	respKeyPrefix = "resp:"

	// DefaultResponseTTL is how long a cached list response stays valid.
	DefaultResponseTTL = 5 * time.Minute
)

// ResponseCache manages cached JSON response bodies in Valkey. Keys are
// namespaced per resource so a mutation invalidates only its own lists.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache creates a response cache backed by the given Valkey client.
func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl == 0 {
		ttl = DefaultResponseTTL
	}
	return &ResponseCache{client: client, ttl: ttl}
}

// Get retrieves a cached response body. Returns (nil, false) on miss or
// on any Valkey error; a degraded cache never fails a read.
func (rc *ResponseCache) Get(ctx context.Context, resource, key string) ([]byte, bool) {
	val, err := rc.client.Get(ctx, respKey(resource, key)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("response cache get error", "resource", resource, "key", key, "error", err)
		return nil, false
	}
	return val, true
}

// Set stores a response body with the configured TTL.
func (rc *ResponseCache) Set(ctx context.Context, resource, key string, body []byte) {
	if err := rc.client.Set(ctx, respKey(resource, key), body, rc.ttl).Err(); err != nil {
		slog.Warn("response cache set error", "resource", resource, "key", key, "error", err)
	}
}

// Invalidate removes every cached response for a resource by scanning its
// key prefix. Called after any mutation of that resource.
func (rc *ResponseCache) Invalidate(ctx context.Context, resource string) {
	prefix := respKeyPrefix + resource + ":"
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := rc.client.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			slog.Warn("response cache scan error", "resource", resource, "error", err)
			return
		}
		if len(keys) > 0 {
			if err := rc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("response cache bulk delete error", "resource", resource, "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Debug("response cache invalidated", "resource", resource, "deleted", deleted)
	}
}

// Middleware serves GET requests for a resource from cache, keyed by path
// and query string. Only 200 responses are stored. A nil receiver is a
// transparent pass-through so routes need no configuration checks.
func (rc *ResponseCache) Middleware(resource string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rc == nil || r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := r.URL.Path
			if r.URL.RawQuery != "" {
				key += "?" + r.URL.RawQuery
			}

			if body, ok := rc.Get(r.Context(), resource, key); ok {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "HIT")
				w.WriteHeader(http.StatusOK)
				w.Write(body)
				return
			}

			rec := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.status == http.StatusOK && rec.buf.Len() > 0 {
				rc.Set(r.Context(), resource, key, rec.buf.Bytes())
			}
		})
	}
}

// captureWriter tees the response body so a 200 can be cached after it is
// written to the client.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if cw.status == http.StatusOK {
		cw.buf.Write(b)
	}
	return cw.ResponseWriter.Write(b)
}

// respKey builds the namespaced Valkey key for a resource + query key.
func respKey(resource, key string) string {
	return respKeyPrefix + resource + ":" + key
}
