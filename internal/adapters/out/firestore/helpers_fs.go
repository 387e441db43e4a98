// internal/adapters/out/firestore/helpers_fs.go
package firestore

import (
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dreamweave/internal/domain/common"
)

func asString(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	default:
		return fmt.Sprint(v)
	}
}

func asInt(v any) int {
	if v == nil {
		return 0
	}
	switch t := v.(type) {
	case int:
		return t
	case int32:
		return int(t)
	case int64:
		return int(t)
	case float32:
		return int(t)
	case float64:
		return int(t)
	case string:
		tt := strings.TrimSpace(t)
		if tt == "" {
			return 0
		}
		var n int
		_, _ = fmt.Sscanf(tt, "%d", &n)
		return n
	default:
		s := strings.TrimSpace(fmt.Sprint(v))
		if s == "" {
			return 0
		}
		var n int
		_, _ = fmt.Sscanf(s, "%d", &n)
		return n
	}
}

func asFloat(v any) float64 {
	if v == nil {
		return 0
	}
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	default:
		var f float64
		_, _ = fmt.Sscanf(strings.TrimSpace(fmt.Sprint(v)), "%g", &f)
		return f
	}
}

// asTime returns (time, ok). RTDB-era records stored ISO-8601 strings, so
// accept those alongside native timestamps.
func asTime(v any) (time.Time, bool) {
	if v == nil {
		return time.Time{}, false
	}
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		if tt, err := time.Parse(time.RFC3339, strings.TrimSpace(t)); err == nil {
			return tt, true
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

func asStringSlice(v any) []string {
	if v == nil {
		return nil
	}
	xs, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		if s := strings.TrimSpace(asString(x)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// wrapIOErr attaches an error kind derived from the gRPC status so the
// layers above can distinguish transient datastore trouble from logic bugs.
func wrapIOErr(op string, err error) error {
	if err == nil {
		return nil
	}
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted, codes.Aborted:
		return common.E(common.KindTransientIO, op, err)
	case codes.NotFound:
		return common.E(common.KindNotFound, op, err)
	case codes.PermissionDenied, codes.Unauthenticated:
		return common.E(common.KindUnauthorized, op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
