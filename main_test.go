package main

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

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/blogem/permit-tracker/config"
	"github.com/blogem/permit-tracker/models"
)

func testConfig(triggerURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:               8080,
			RateLimitPerSecond: 0,
		},
		Store: config.StoreConfig{
			Name:         "test_" + uuid.NewString(),
			SeedDemoData: false,
		},
		Workflow: config.WorkflowConfig{
			TriggerURL:         triggerURL,
			SubmitterEmail:     "permits@example.gov",
			Timeout:            2 * time.Second,
			BreakerMaxFailures: 0,
			BreakerTimeout:     time.Minute,
		},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *httptest.Server {
	app, err := newApplication(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	srv := httptest.NewServer(app.handler)
	t.Cleanup(func() {
		srv.Close()
		app.Close()
	})
	return srv
}

func doJSON(t *testing.T, method, url, body string, headers ...string) (*http.Response, []byte) {
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

const simpleSubmission = `{"project_name":"X","location":"Y","applicant":"Z","agency_routing":["EPA"]}`

func TestSubmitWithoutTokenSimulates(t *testing.T) {
	srv := newTestServer(t, testConfig("http://127.0.0.1:1/unused"))

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/permits", simpleSubmission)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var created struct {
		models.Permit
		Maestro models.MaestroSummary `json:"maestro"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	assert.True(t, strings.HasPrefix(created.ID, "PMT-"))
	assert.Equal(t, "X", created.ProjectName)
	assert.Equal(t, models.DefaultPermitStatus, created.Status)
	assert.Equal(t, models.DefaultPermitProgress, created.Progress)
	assert.Equal(t, []string{"EPA"}, created.AgencyRouting)
	assert.True(t, created.Maestro.Triggered)
	assert.True(t, created.Maestro.SimulationMode)
	assert.True(t, strings.HasPrefix(created.Maestro.InstanceID, "SIM-"))

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/logs", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var logs []models.APILogEntry
	require.NoError(t, json.Unmarshal(body, &logs))
	require.Len(t, logs, 1)
	assert.Equal(t, created.ID, logs[0].PermitID)
	assert.True(t, logs[0].SimulationMode)
	assert.False(t, logs[0].Success)
	assert.Equal(t, models.WorkflowLogEndpoint, logs[0].Endpoint)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/permits/"+created.ID+"/logs", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &logs))
	assert.Len(t, logs, 1)
}

func TestSubmitLiveWithConfiguredToken(t *testing.T) {
	var calls atomic.Int32
	var auth atomic.Value
	var submitter atomic.Value
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		auth.Store(r.Header.Get("Authorization"))
		var payload struct {
			Participants map[string]struct {
				Email string `json:"email"`
			} `json:"participants"`
		}
		_ = json.NewDecoder(r.Body).Decode(&payload)
		submitter.Store(payload.Participants["Submitter Email"].Email)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"instanceId":"inst-9"}`))
	}))
	defer upstream.Close()

	srv := newTestServer(t, testConfig(upstream.URL))

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/config/external-workflow", `{"accessToken":"live-token"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.JSONEq(t, `{"success":true,"message":"Updated: Access Token","note":"`+models.CredentialsNote+`"}`, string(body))

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/permits", simpleSubmission, "X-Submitter-Email", "clerk@city.gov")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var created struct {
		Maestro models.MaestroSummary `json:"maestro"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, models.MaestroSummary{Triggered: true, InstanceID: "inst-9", SimulationMode: false}, created.Maestro)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "Bearer live-token", auth.Load())
	assert.Equal(t, "clerk@city.gov", submitter.Load())

	_, body = doJSON(t, http.MethodGet, srv.URL+"/logs", "")
	var logs []models.APILogEntry
	require.NoError(t, json.Unmarshal(body, &logs))
	require.Len(t, logs, 1)
	assert.True(t, logs[0].Success)
	require.NotNil(t, logs[0].ResponseStatus)
	assert.Equal(t, http.StatusOK, *logs[0].ResponseStatus)
}

func TestSubmitValidation(t *testing.T) {
	srv := newTestServer(t, testConfig("http://127.0.0.1:1/unused"))

	tests := []struct {
		name      string
		body      string
		wantError string
		wantField string
	}{
		{"missing fields", `{"project_name":"X"}`, "Validation failed", "location"},
		{"blank project", `{"project_name":"   ","location":"Y","applicant":"Z","agency_routing":["EPA"]}`, "Validation failed", "project_name"},
		{"empty routing", `{"project_name":"X","location":"Y","applicant":"Z","agency_routing":[]}`, "Validation failed", "agency_routing"},
		{"bad status", `{"project_name":"X","location":"Y","applicant":"Z","agency_routing":["EPA"],"status":"Lost"}`, "Validation failed", "status"},
		{"progress out of range", `{"project_name":"X","location":"Y","applicant":"Z","agency_routing":["EPA"],"progress":101}`, "Validation failed", "progress"},
		{"wrong type", `{"project_name":"X","location":"Y","applicant":"Z","agency_routing":"EPA"}`, "Validation failed", "agency_routing"},
		{"empty status", `{"project_name":"X","location":"Y","applicant":"Z","agency_routing":["EPA"],"status":""}`, "Validation failed", "status"},
		{"null status", `{"project_name":"X","location":"Y","applicant":"Z","agency_routing":["EPA"],"status":null}`, "Validation failed", "status"},
		{"null progress", `{"project_name":"X","location":"Y","applicant":"Z","agency_routing":["EPA"],"progress":null}`, "Validation failed", "progress"},
		{"malformed", `{"project_name":`, "Malformed JSON request body", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, http.MethodPost, srv.URL+"/permits", tt.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode, string(body))

			var errBody struct {
				Error   string                   `json:"error"`
				Details []models.ValidationError `json:"details"`
			}
			require.NoError(t, json.Unmarshal(body, &errBody))
			assert.Equal(t, tt.wantError, errBody.Error)
			if tt.wantField != "" {
				fields := make([]string, len(errBody.Details))
				for i, d := range errBody.Details {
					fields[i] = d.Field
				}
				assert.Contains(t, fields, tt.wantField)
			}
		})
	}

	// Rejected submissions leave no trace
	_, body := doJSON(t, http.MethodGet, srv.URL+"/permits", "")
	assert.JSONEq(t, `[]`, string(body))
	_, body = doJSON(t, http.MethodGet, srv.URL+"/logs", "")
	assert.JSONEq(t, `[]`, string(body))
}

func TestSeededPermitsAndLookup(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1/unused")
	cfg.Store.SeedDemoData = true
	srv := newTestServer(t, cfg)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/permits", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var permits []models.Permit
	require.NoError(t, json.Unmarshal(body, &permits))
	require.Len(t, permits, 5)
	assert.Equal(t, "PMT-2024-8921", permits[0].ID)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/permits/PMT-2024-8921", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var one models.Permit
	require.NoError(t, json.Unmarshal(body, &one))
	assert.Equal(t, permits[0], one)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/permits/PMT-0000-0000", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Permit not found"}`, string(body))

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/permits/PMT-0000-0000/logs", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestResetRemovesOnlyDemoPermits(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1/unused")
	cfg.Store.SeedDemoData = true
	srv := newTestServer(t, cfg)

	demo := `{"project_name":"` + models.DemoProjectName + `","location":"San Antonio, TX","applicant":"City of San Antonio","agency_routing":["DOT","EPA"]}`
	for i := 0; i < 2; i++ {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/permits", demo)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	}

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/permits/reset", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success":true}`, string(body))

	_, body = doJSON(t, http.MethodGet, srv.URL+"/permits", "")
	var permits []models.Permit
	require.NoError(t, json.Unmarshal(body, &permits))
	assert.Len(t, permits, 5)
	for _, p := range permits {
		assert.NotEqual(t, models.DemoProjectName, p.ProjectName)
	}

	// The audit trail survives a reset
	_, body = doJSON(t, http.MethodGet, srv.URL+"/logs", "")
	var logs []models.APILogEntry
	require.NoError(t, json.Unmarshal(body, &logs))
	assert.Len(t, logs, 2)
}

func TestConfigEndpoints(t *testing.T) {
	srv := newTestServer(t, testConfig("http://127.0.0.1:1/unused"))

	_, body := doJSON(t, http.MethodGet, srv.URL+"/config/status", "")
	assert.JSONEq(t, `{"accountId":false,"workflowId":false,"accessToken":false,"allConfigured":false}`, string(body))

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/config/docusign", `{"accountId":"a","workflowId":"w","accessToken":"t"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Updated: Account ID, Workflow ID, Access Token")

	_, body = doJSON(t, http.MethodGet, srv.URL+"/config/status", "")
	assert.JSONEq(t, `{"accountId":true,"workflowId":true,"accessToken":true,"allConfigured":true}`, string(body))
	assert.NotContains(t, string(body), `"t"`)

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/config/external-workflow", `{"accountId":"  "}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"no configuration values supplied"}`, string(body))
}

func TestClearLogs(t *testing.T) {
	srv := newTestServer(t, testConfig("http://127.0.0.1:1/unused"))

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/permits", simpleSubmission)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	for i := 0; i < 2; i++ {
		resp, body := doJSON(t, http.MethodDelete, srv.URL+"/logs", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"success":true}`, string(body))
	}

	_, body := doJSON(t, http.MethodGet, srv.URL+"/logs", "")
	assert.JSONEq(t, `[]`, string(body))

	// Permits are untouched
	_, body = doJSON(t, http.MethodGet, srv.URL+"/permits", "")
	var permits []models.Permit
	require.NoError(t, json.Unmarshal(body, &permits))
	assert.Len(t, permits, 1)
}

func TestRateLimitOnSubmit(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1/unused")
	cfg.Server.RateLimitPerSecond = 0.001
	cfg.Server.RateLimitBurst = 1
	srv := newTestServer(t, cfg)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/permits", simpleSubmission)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/permits", simpleSubmission)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Rate limit exceeded"}`, string(body))

	// Reads are not limited
	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/permits", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthAndMetrics(t *testing.T) {
	srv := newTestServer(t, testConfig("http://127.0.0.1:1/unused"))

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"healthy","service":"permit-tracker"}`, string(body))

	doJSON(t, http.MethodPost, srv.URL+"/permits", simpleSubmission)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "permits_submitted_total 1")
	assert.Contains(t, string(body), `workflow_trigger_total{outcome="simulated"} 1`)
	assert.Contains(t, string(body), `http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestSubmitLogsAgencyRoutingInOrder(t *testing.T) {
	srv := newTestServer(t, testConfig("http://127.0.0.1:1/unused"))

	submission := `{"project_name":"Riverside Levee Upgrade","location":"Sacramento, CA","applicant":"Delta Works","agency_routing":["USACE","EPA","DOT"]}`
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/permits", submission)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	_, body = doJSON(t, http.MethodGet, srv.URL+"/logs", "")
	var logs []models.APILogEntry
	require.NoError(t, json.Unmarshal(body, &logs))
	require.Len(t, logs, 1)

	var sent struct {
		InstanceName string `json:"instance_name"`
		Payload      struct {
			OriginatingApplicant  string   `json:"originating_applicant"`
			ProjectName           string   `json:"project_name"`
			ParticipatingAgencies []string `json:"participating_agencies"`
		} `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(logs[0].RequestPayload, &sent))
	assert.Equal(t, []string{"USACE", "EPA", "DOT"}, sent.Payload.ParticipatingAgencies)
	assert.Equal(t, "Riverside Levee Upgrade", sent.Payload.ProjectName)
	assert.Equal(t, "Delta Works", sent.Payload.OriginatingApplicant)
	assert.True(t, strings.HasPrefix(sent.InstanceName, "Permit_"))
}
