package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/blogem/permit-tracker/metrics"
)

const maxResponseBytes = 1 << 20

var errUpstream = errors.New("workflow endpoint returned a server error")

// Client triggers Maestro workflows over HTTP
type Client struct {
	cfg        Config
	tokens     TokenSource
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
	now        func() time.Time

	// breaker belongs to breakerToken; a new token starts a closed breaker
	mu           sync.Mutex
	breaker      *gobreaker.CircuitBreaker
	breakerToken string
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient sets the client whose transport carries the call
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithClock replaces time.Now, used for instance names
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient creates a workflow client
func NewClient(cfg Config, tokens TokenSource, logger *zap.Logger, m *metrics.Metrics, opts ...Option) *Client {
	c := &Client{
		cfg:        cfg,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.Named("workflow"),
		metrics:    m,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// breakerFor returns the breaker guarding calls made with token. Replacing
// the credentials discards the failure history of the old token.
func (c *Client) breakerFor(token string) *gobreaker.CircuitBreaker {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.breaker != nil && c.breakerToken == token {
		return c.breaker
	}
	if c.breaker != nil {
		c.logger.Info("access token changed, resetting circuit breaker")
	}

	maxFailures := c.cfg.BreakerMaxFailures
	c.breakerToken = token
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "maestro-trigger",
		MaxRequests: 1,
		Timeout:     c.cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return maxFailures > 0 && counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
	return c.breaker
}

// Trigger starts a workflow instance for the permit described by req.
// Every failure is reported through the returned Result, never as an error.
func (c *Client) Trigger(ctx context.Context, req TriggerRequest) Result {
	start := c.now()
	if req.SubmitterEmail == "" {
		req.SubmitterEmail = c.cfg.SubmitterEmail
	}

	instanceName := fmt.Sprintf("Permit_%d", start.UnixMilli())
	payload := buildPayload(instanceName, req)

	token := c.tokens.AccessToken()
	if token == "" {
		c.logger.Info("running in simulation mode, no access token configured",
			zap.String("project_name", req.ProjectName))
		return c.record(start, Result{
			Outcome:      OutcomeSimulated,
			InstanceID:   c.simulatedInstanceID(),
			Payload:      payload,
			ResponseBody: mustJSON(map[string]string{"message": "Simulation mode - no access token configured"}),
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return c.record(start, c.transportFailure(payload, err))
	}

	c.logger.Debug("triggering workflow", zap.ByteString("payload", body))

	var resp *triggerResponse
	_, err = c.breakerFor(token).Execute(func() (interface{}, error) {
		r, err := c.post(ctx, token, body)
		if err != nil {
			return nil, err
		}
		resp = r
		if r.status >= http.StatusInternalServerError {
			return nil, errUpstream
		}
		return nil, nil
	})

	if resp == nil {
		c.logger.Error("workflow trigger failed", zap.Error(err))
		return c.record(start, c.transportFailure(payload, err))
	}

	status := resp.status
	if status < 200 || status > 299 {
		c.logger.Error("workflow trigger rejected",
			zap.Int("status", status),
			zap.ByteString("response", resp.body))
		return c.record(start, Result{
			Outcome:        OutcomeDegraded,
			InstanceID:     c.simulatedInstanceID(),
			Payload:        payload,
			ResponseStatus: &status,
			ResponseBody:   resp.body,
			Error:          fmt.Sprintf("API returned %d", status),
		})
	}

	instanceID := extractInstanceID(resp.body, instanceName)
	c.logger.Info("workflow triggered",
		zap.Int("status", status),
		zap.String("instance_id", instanceID))

	return c.record(start, Result{
		Outcome:        OutcomeLive,
		InstanceID:     instanceID,
		Payload:        payload,
		ResponseStatus: &status,
		ResponseBody:   resp.body,
	})
}

type triggerResponse struct {
	status int
	body   json.RawMessage
}

// post issues the single trigger request, bounded by the configured timeout
func (c *Client) post(ctx context.Context, token string, body []byte) (*triggerResponse, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TriggerURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// The oauth2 transport adds the bearer Authorization header on top of
	// whatever transport the configured client uses.
	hc := oauth2.NewClient(
		context.WithValue(ctx, oauth2.HTTPClient, c.httpClient),
		oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
	)

	res, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	text, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return &triggerResponse{status: res.StatusCode, body: normalizeBody(text)}, nil
}

func (c *Client) transportFailure(payload Payload, err error) Result {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return Result{
		Outcome:      OutcomeDegraded,
		InstanceID:   c.simulatedInstanceID(),
		Payload:      payload,
		ResponseBody: mustJSON(map[string]string{"error": msg}),
		Error:        msg,
	}
}

func (c *Client) record(start time.Time, r Result) Result {
	if c.metrics != nil {
		c.metrics.WorkflowTriggers.WithLabelValues(r.Outcome.String()).Inc()
		c.metrics.WorkflowDuration.Observe(c.now().Sub(start).Seconds())
	}
	return r
}

func (c *Client) simulatedInstanceID() string {
	return fmt.Sprintf("SIM-%d", c.now().UnixMilli())
}

// normalizeBody keeps a JSON body as-is and wraps anything else under "raw"
func normalizeBody(text []byte) json.RawMessage {
	if json.Valid(text) {
		return json.RawMessage(text)
	}
	return mustJSON(map[string]string{"raw": string(text)})
}

// extractInstanceID reads the instance id from a successful response,
// falling back to the locally generated instance name
func extractInstanceID(body json.RawMessage, fallback string) string {
	var fields map[string]interface{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return fallback
	}
	for _, key := range []string{"instanceId", "workflowInstanceId"} {
		if id, ok := fields[key].(string); ok && id != "" {
			return id
		}
	}
	return fallback
}

func mustJSON(v map[string]string) json.RawMessage {
	// Marshalling a string map cannot fail
	data, _ := json.Marshal(v)
	return data
}
