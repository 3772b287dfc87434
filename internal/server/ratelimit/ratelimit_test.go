package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		EndpointRules: []EndpointRule{
			{Path: "/api/chat", Method: "POST", Limit: 10, Window: time.Minute, Burst: 3},
		},
	}
}

func TestAllow_WithinBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("1.2.3.4", "/api/chat", "POST")
		assert.True(t, allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 10, info.Limit)
	}
}

func TestAllow_BurstExhausted(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/api/chat", "POST")
		require.True(t, allowed)
	}

	allowed, info := l.Allow("1.2.3.4", "/api/chat", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		_, _ = l.Allow("1.2.3.4", "/api/chat", "POST")
	}
	allowed, _ := l.Allow("1.2.3.4", "/api/chat", "POST")
	require.False(t, allowed)

	// A different client has its own bucket.
	allowed, _ = l.Allow("5.6.7.8", "/api/chat", "POST")
	assert.True(t, allowed)
}

func TestAllow_TokensRefill(t *testing.T) {
	cfg := testConfig()
	// 600 per minute = 10 per second, so a drained burst of 1 refills
	// within the test's patience.
	cfg.EndpointRules = []EndpointRule{
		{Path: "/api/chat", Method: "POST", Limit: 600, Window: time.Minute, Burst: 1},
	}
	l := NewLimiter(cfg)
	defer l.Stop()

	allowed, _ := l.Allow("1.2.3.4", "/api/chat", "POST")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.2.3.4", "/api/chat", "POST")
	require.False(t, allowed)

	time.Sleep(150 * time.Millisecond)

	allowed, _ = l.Allow("1.2.3.4", "/api/chat", "POST")
	assert.True(t, allowed)
}

func TestAllow_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/api/chat", "POST")
		require.True(t, allowed)
	}
}

func TestAllow_HealthIsUnlimited(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultLimit = 1
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestAllow_UnmatchedEndpointUsesDefault(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultLimit = 2
	l := NewLimiter(cfg)
	defer l.Stop()

	allowed, info := l.Allow("1.2.3.4", "/api/skills", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 2, info.Limit)

	_, _ = l.Allow("1.2.3.4", "/api/skills", "GET")
	allowed, _ = l.Allow("1.2.3.4", "/api/skills", "GET")
	assert.False(t, allowed)
}

func TestMatchEndpoint_PrefixRules(t *testing.T) {
	rules := []EndpointRule{
		{Path: "/api/", Method: "GET", Limit: 5, Window: time.Minute},
		{Path: "/api/chat", Method: "POST", Limit: 1, Window: time.Minute},
	}

	exact := matchEndpoint("/api/chat", "POST", rules)
	require.NotNil(t, exact)
	assert.Equal(t, 1, exact.Limit)

	prefixed := matchEndpoint("/api/jobs", "GET", rules)
	require.NotNil(t, prefixed)
	assert.Equal(t, 5, prefixed.Limit)

	assert.Nil(t, matchEndpoint("/other", "GET", rules))
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_CHAT_LIMIT", "7")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "42")

	cfg := LoadConfig()

	require.True(t, cfg.Enabled)
	assert.Equal(t, 42, cfg.DefaultLimit)
	require.Len(t, cfg.EndpointRules, 1)
	assert.Equal(t, 7, cfg.EndpointRules[0].Limit)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
}
