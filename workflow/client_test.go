package workflow

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/blogem/permit-tracker/config"
	"github.com/blogem/permit-tracker/metrics"
	"github.com/blogem/permit-tracker/models"
)

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

type testEndpoint struct {
	server *httptest.Server
	calls  atomic.Int32
	last   atomic.Pointer[http.Request]
	body   atomic.Pointer[[]byte]
}

func newTestEndpoint(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *testEndpoint {
	e := &testEndpoint{}
	e.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e.calls.Add(1)
		data, _ := io.ReadAll(r.Body)
		e.body.Store(&data)
		e.last.Store(r)
		handler(w, r)
	}))
	t.Cleanup(e.server.Close)
	return e
}

func newTestClient(t *testing.T, url, token string, m *metrics.Metrics, tweak ...func(*Config)) *Client {
	cfg := Config{
		TriggerURL:     url,
		SubmitterEmail: "default@example.gov",
		Timeout:        2 * time.Second,
		BreakerTimeout: time.Minute,
	}
	for _, fn := range tweak {
		fn(&cfg)
	}
	if m == nil {
		m = metrics.NewNop()
	}
	return NewClient(cfg, config.NewCredentials("acct", "wf", token), zaptest.NewLogger(t), m,
		WithClock(func() time.Time { return fixedNow }))
}

func sampleRequest() TriggerRequest {
	return TriggerRequest{
		ProjectName: "Riverside Levee Upgrade",
		Applicant:   "Delta Works",
		Agencies:    []string{"USACE", "EPA", "FEMA"},
	}
}

func TestTrigger_NoAccessTokenSimulates(t *testing.T) {
	endpoint := newTestEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	m := metrics.NewNop()
	client := newTestClient(t, endpoint.server.URL, "", m)

	result := client.Trigger(context.Background(), sampleRequest())

	assert.Equal(t, int32(0), endpoint.calls.Load(), "no network call expected")
	assert.Equal(t, OutcomeSimulated, result.Outcome)
	assert.True(t, result.Success())
	assert.True(t, result.SimulationMode())
	assert.Equal(t, "SIM-1792324800000", result.InstanceID)
	assert.Nil(t, result.ResponseStatus)
	assert.JSONEq(t, `{"message":"Simulation mode - no access token configured"}`, string(result.ResponseBody))

	assert.Equal(t, "Permit_1792324800000", result.Payload.InstanceName)
	assert.Equal(t, []string{"USACE", "EPA", "FEMA"}, result.Payload.Payload.ParticipatingAgencies)
	assert.Equal(t, "default@example.gov", result.Payload.Participants[SubmitterRole].Email)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.WorkflowTriggers.WithLabelValues("simulated")))
}

func TestTrigger_LiveSuccess(t *testing.T) {
	endpoint := newTestEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"instanceId":"inst-42","status":"started"}`))
	})
	m := metrics.NewNop()
	client := newTestClient(t, endpoint.server.URL, "secret-token", m)

	req := sampleRequest()
	req.SubmitterEmail = "clerk@city.gov"
	result := client.Trigger(context.Background(), req)

	require.Equal(t, int32(1), endpoint.calls.Load())
	assert.Equal(t, OutcomeLive, result.Outcome)
	assert.True(t, result.Success())
	assert.False(t, result.SimulationMode())
	assert.Equal(t, "inst-42", result.InstanceID)
	require.NotNil(t, result.ResponseStatus)
	assert.Equal(t, http.StatusCreated, *result.ResponseStatus)
	assert.JSONEq(t, `{"instanceId":"inst-42","status":"started"}`, string(result.ResponseBody))

	sent := endpoint.last.Load()
	assert.Equal(t, http.MethodPost, sent.Method)
	assert.Equal(t, "Bearer secret-token", sent.Header.Get("Authorization"))
	assert.Equal(t, "application/json", sent.Header.Get("Content-Type"))

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(*endpoint.body.Load(), &payload))
	assert.Equal(t, "Permit_1792324800000", payload["instance_name"])
	assert.Equal(t, map[string]interface{}{"Submitter Email": map[string]interface{}{"email": "clerk@city.gov"}}, payload["participants"])
	assert.Equal(t, map[string]interface{}{
		"originating_applicant":  "Delta Works",
		"project_name":           "Riverside Levee Upgrade",
		"participating_agencies": []interface{}{"USACE", "EPA", "FEMA"},
	}, payload["payload"])

	assert.Equal(t, float64(1), testutil.ToFloat64(m.WorkflowTriggers.WithLabelValues("live")))
}

func TestTrigger_InstanceIDFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"workflowInstanceId", `{"workflowInstanceId":"wf-inst-7"}`, "wf-inst-7"},
		{"instanceId wins", `{"instanceId":"a","workflowInstanceId":"b"}`, "a"},
		{"no id fields", `{"ok":true}`, "Permit_1792324800000"},
		{"not an object", `["x"]`, "Permit_1792324800000"},
		{"not json", `accepted`, "Permit_1792324800000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			endpoint := newTestEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})
			client := newTestClient(t, endpoint.server.URL, "token", nil)

			result := client.Trigger(context.Background(), sampleRequest())

			assert.Equal(t, OutcomeLive, result.Outcome)
			assert.Equal(t, tt.expected, result.InstanceID)
		})
	}
}

func TestTrigger_NonJSONBodyWrappedAsRaw(t *testing.T) {
	endpoint := newTestEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})
	client := newTestClient(t, endpoint.server.URL, "token", nil)

	result := client.Trigger(context.Background(), sampleRequest())

	assert.JSONEq(t, `{"raw":"<html>bad gateway</html>"}`, string(result.ResponseBody))
}

func TestTrigger_NonSuccessStatusDegrades(t *testing.T) {
	endpoint := newTestEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_token"}`))
	})
	m := metrics.NewNop()
	client := newTestClient(t, endpoint.server.URL, "expired", m)

	result := client.Trigger(context.Background(), sampleRequest())

	assert.Equal(t, OutcomeDegraded, result.Outcome)
	assert.False(t, result.Success())
	assert.True(t, result.SimulationMode())
	assert.True(t, strings.HasPrefix(result.InstanceID, "SIM-"))
	require.NotNil(t, result.ResponseStatus)
	assert.Equal(t, http.StatusUnauthorized, *result.ResponseStatus)
	assert.JSONEq(t, `{"error":"invalid_token"}`, string(result.ResponseBody))
	assert.Equal(t, "API returned 401", result.Error)
	assert.Equal(t, "Riverside Levee Upgrade", result.Payload.Payload.ProjectName)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.WorkflowTriggers.WithLabelValues("degraded")))
}

func TestTrigger_TransportErrorDegrades(t *testing.T) {
	endpoint := newTestEndpoint(t, func(w http.ResponseWriter, r *http.Request) {})
	url := endpoint.server.URL
	endpoint.server.Close()

	client := newTestClient(t, url, "token", nil)

	result := client.Trigger(context.Background(), sampleRequest())

	assert.Equal(t, OutcomeDegraded, result.Outcome)
	assert.False(t, result.Success())
	assert.True(t, result.SimulationMode())
	assert.Nil(t, result.ResponseStatus)
	assert.True(t, strings.HasPrefix(result.InstanceID, "SIM-"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(result.ResponseBody, &body))
	assert.NotEmpty(t, body["error"])
	assert.Equal(t, body["error"], result.Error)
}

func TestTrigger_TimeoutDegrades(t *testing.T) {
	release := make(chan struct{})
	endpoint := newTestEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	client := newTestClient(t, endpoint.server.URL, "token", nil, func(c *Config) {
		c.Timeout = 50 * time.Millisecond
	})

	result := client.Trigger(context.Background(), sampleRequest())

	assert.Equal(t, OutcomeDegraded, result.Outcome)
	assert.Nil(t, result.ResponseStatus)
	assert.NotEmpty(t, result.Error)
}

func TestTrigger_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	endpoint := newTestEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	client := newTestClient(t, endpoint.server.URL, "token", nil, func(c *Config) {
		c.BreakerMaxFailures = 2
	})

	for i := 0; i < 2; i++ {
		result := client.Trigger(context.Background(), sampleRequest())
		require.NotNil(t, result.ResponseStatus)
		assert.Equal(t, http.StatusServiceUnavailable, *result.ResponseStatus)
	}

	result := client.Trigger(context.Background(), sampleRequest())

	assert.Equal(t, int32(2), endpoint.calls.Load(), "open breaker must not reach the endpoint")
	assert.Equal(t, OutcomeDegraded, result.Outcome)
	assert.Nil(t, result.ResponseStatus)
	assert.Contains(t, result.Error, "circuit breaker is open")
}

func TestTrigger_DefaultConfigAlwaysPosts(t *testing.T) {
	endpoint := newTestEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	client := newTestClient(t, endpoint.server.URL, "token", nil)

	for i := 0; i < 6; i++ {
		result := client.Trigger(context.Background(), sampleRequest())
		require.NotNil(t, result.ResponseStatus, "call %d", i+1)
		assert.Equal(t, http.StatusServiceUnavailable, *result.ResponseStatus)
		assert.Equal(t, "API returned 503", result.Error)
	}

	assert.Equal(t, int32(6), endpoint.calls.Load())
}

func TestTrigger_NewTokenResetsOpenBreaker(t *testing.T) {
	endpoint := newTestEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer fresh" {
			_, _ = w.Write([]byte(`{"instanceId":"inst-1"}`))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	creds := config.NewCredentials("acct", "wf", "stale")
	client := NewClient(Config{
		TriggerURL:         endpoint.server.URL,
		SubmitterEmail:     "default@example.gov",
		Timeout:            2 * time.Second,
		BreakerMaxFailures: 1,
		BreakerTimeout:     time.Minute,
	}, creds, zaptest.NewLogger(t), metrics.NewNop())

	client.Trigger(context.Background(), sampleRequest())
	blocked := client.Trigger(context.Background(), sampleRequest())
	require.Equal(t, int32(1), endpoint.calls.Load())
	assert.Contains(t, blocked.Error, "circuit breaker is open")

	creds.Merge(models.CredentialsForm{AccessToken: "fresh"})
	result := client.Trigger(context.Background(), sampleRequest())

	assert.Equal(t, int32(2), endpoint.calls.Load())
	assert.Equal(t, OutcomeLive, result.Outcome)
	assert.Equal(t, "inst-1", result.InstanceID)
}

func TestTrigger_ClientErrorsDoNotOpenBreaker(t *testing.T) {
	endpoint := newTestEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	client := newTestClient(t, endpoint.server.URL, "token", nil, func(c *Config) {
		c.BreakerMaxFailures = 1
	})

	for i := 0; i < 3; i++ {
		client.Trigger(context.Background(), sampleRequest())
	}

	assert.Equal(t, int32(3), endpoint.calls.Load())
}

func TestTrigger_NilAgenciesEncodeAsEmptyList(t *testing.T) {
	client := newTestClient(t, "http://unused.invalid", "", nil)

	result := client.Trigger(context.Background(), TriggerRequest{ProjectName: "P", Applicant: "A"})

	assert.JSONEq(t,
		`{"instance_name":"Permit_1792324800000","participants":{"Submitter Email":{"email":"default@example.gov"}},"payload":{"originating_applicant":"A","project_name":"P","participating_agencies":[]}}`,
		string(result.PayloadJSON()))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "simulated", OutcomeSimulated.String())
	assert.Equal(t, "live", OutcomeLive.String())
	assert.Equal(t, "degraded", OutcomeDegraded.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
