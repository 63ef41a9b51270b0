package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.RecordError("/api/v1/posts", "GET", "jwt_required")
	m.RecordError("/api/v1/posts", "GET", "jwt_required")
	m.RecordError("/api/v1/refresh", "POST", "invalid_token_type")
	m.RecordRequest("/api/v1/token", "POST", 200, 5*time.Millisecond)

	assert.Equal(t, int64(2), m.ErrorCount("/api/v1/posts", "GET", "jwt_required"))
	assert.Equal(t, int64(1), m.ErrorCount("/api/v1/refresh", "POST", "invalid_token_type"))
	assert.Equal(t, int64(0), m.ErrorCount("/api/v1/posts", "GET", "invalid_token"))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, 0)
	m.RecordError("/", "GET", "internal_error")
	assert.Equal(t, int64(0), m.ErrorCount("/", "GET", "internal_error"))
}
