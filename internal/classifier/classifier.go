// Package classifier resolves free-text career queries into structured
// intents. Classification tries an AI-backed strategy first and falls
// back to deterministic keyword rules on any failure, so callers always
// receive a well-formed Intent and never an error.
package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jsexpertdev/ostad-ai-agent/internal/knowledge"
	"github.com/jsexpertdev/ostad-ai-agent/internal/llm"
	"github.com/jsexpertdev/ostad-ai-agent/internal/types"
)

// DefaultTimeout bounds a single AI classification attempt.
const DefaultTimeout = 10 * time.Second

// ErrNotConfigured indicates no LLM client is available, typically
// because no API key was provided.
var ErrNotConfigured = errors.New("ai classifier not configured")

// Classifier classifies queries against a knowledge base, optionally
// assisted by an LLM.
type Classifier struct {
	kb      *knowledge.Base
	client  llm.Client
	tier    llm.ModelTier
	timeout time.Duration
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithClient sets the LLM client used by the AI strategy. A nil client
// leaves the classifier in fallback-only mode.
func WithClient(client llm.Client) Option {
	return func(c *Classifier) { c.client = client }
}

// WithTimeout overrides the AI attempt deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Classifier) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithTier selects the model tier for classification calls.
func WithTier(tier llm.ModelTier) Option {
	return func(c *Classifier) { c.tier = tier }
}

// New creates a Classifier over the given knowledge base.
func New(kb *knowledge.Base, opts ...Option) *Classifier {
	c := &Classifier{
		kb:      kb,
		tier:    llm.TierLite,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AIConfigured reports whether the AI strategy is available.
func (c *Classifier) AIConfigured() bool {
	return c.client != nil
}

// Classify resolves a query into an Intent. The AI strategy is attempted
// once under a bounded deadline; any failure (missing credentials,
// transport error, timeout, absent or malformed JSON, schema mismatch)
// switches to the deterministic fallback. Classify never fails.
func (c *Classifier) Classify(ctx context.Context, query string) types.Intent {
	intent, err := c.classifyWithAI(ctx, query)
	if err != nil {
		if !errors.Is(err, ErrNotConfigured) {
			log.Printf("[classifier] AI classification failed, using fallback: %v", err)
		}
		return c.classifyFallback(query)
	}
	return intent
}

// intentPayload is the decode target for the model's JSON reply.
// Pointers distinguish JSON null from absent fields.
type intentPayload struct {
	Type      string   `json:"type"`
	TargetJob *string  `json:"targetJob"`
	Location  *string  `json:"location"`
	Skills    []string `json:"skills"`
}

// classifyWithAI performs a single bounded AI classification attempt.
func (c *Classifier) classifyWithAI(ctx context.Context, query string) (types.Intent, error) {
	if c.client == nil {
		return types.Intent{}, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reply, err := c.client.GenerateJSON(ctx, buildIntentPrompt(query), c.tier)
	if err != nil {
		return types.Intent{}, fmt.Errorf("llm call failed: %w", err)
	}

	document, err := llm.ExtractJSONObject(reply)
	if err != nil {
		return types.Intent{}, err
	}

	if err := validateIntentJSON(document); err != nil {
		return types.Intent{}, err
	}

	var payload intentPayload
	if err := json.Unmarshal([]byte(document), &payload); err != nil {
		return types.Intent{}, fmt.Errorf("failed to decode intent JSON: %w", err)
	}

	intentType := types.IntentType(payload.Type)
	if !intentType.Valid() {
		return types.Intent{}, fmt.Errorf("unknown intent type %q", payload.Type)
	}

	return types.Intent{
		Type:      intentType,
		TargetJob: derefField(payload.TargetJob),
		Location:  derefField(payload.Location),
		Skills:    payload.Skills,
	}, nil
}

// derefField unwraps an optional string field. Models sometimes emit the
// literal string "null" despite instructions; treat it as absent.
func derefField(s *string) string {
	if s == nil {
		return ""
	}
	v := strings.TrimSpace(*s)
	if strings.EqualFold(v, "null") {
		return ""
	}
	return v
}
