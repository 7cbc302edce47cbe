package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordAuthEvent(t *testing.T) {
	before := testutil.ToFloat64(AuthEventsTotal.WithLabelValues("login", "failure"))
	RecordAuthEvent("login", false)
	after := testutil.ToFloat64(AuthEventsTotal.WithLabelValues("login", "failure"))
	assert.Equal(t, before+1, after)
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/profile", "200"))
	RecordAPIRequest("GET", "/api/profile", 200, 5*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/profile", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordCreated(t *testing.T) {
	before := testutil.ToFloat64(RecordsCreatedTotal.WithLabelValues("sleep"))
	RecordCreated("sleep")
	assert.Equal(t, before+1, testutil.ToFloat64(RecordsCreatedTotal.WithLabelValues("sleep")))
}
