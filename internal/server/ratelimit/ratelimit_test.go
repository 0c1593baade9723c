package ratelimit

import (
	"fmt"
	"testing"
	"time"
)

func TestBucketExhaustsAndRefills(t *testing.T) {
	tb := newTokenBucket(3, 100) // fast refill so the test stays quick

	for i := 0; i < 3; i++ {
		if !tb.allow() {
			t.Fatalf("request %d should be within burst", i+1)
		}
	}
	if tb.allow() {
		t.Fatal("fourth immediate request should be rejected")
	}

	time.Sleep(30 * time.Millisecond)
	if !tb.allow() {
		t.Fatal("bucket should refill after waiting")
	}
}

func TestLimiterPerClientIsolation(t *testing.T) {
	cfg := &Config{
		Enabled: true,
		EndpointConfigs: []EndpointConfig{
			{Path: "/assets/upload", Method: "POST", Limit: 2, Window: time.Hour, Burst: 2},
		},
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
	}
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/assets/upload", "POST")
		if !allowed {
			t.Fatalf("client A request %d should pass", i+1)
		}
	}
	allowed, info := l.Allow("10.0.0.1", "/assets/upload", "POST")
	if allowed {
		t.Fatal("client A should be limited after burst")
	}
	if info.RetryAfter <= 0 {
		t.Error("limited response should carry a retry-after hint")
	}

	allowed, _ = l.Allow("10.0.0.2", "/assets/upload", "POST")
	if !allowed {
		t.Fatal("client B has its own bucket")
	}
}

func TestLimiterDisabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 1000; i++ {
		if allowed, _ := l.Allow("c", "/assets/upload", "POST"); !allowed {
			t.Fatalf("disabled limiter rejected request %d", i)
		}
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/assets/upload", Method: "POST", Limit: 10},
		{Path: "/projects/", Method: "DELETE", Limit: 100},
	}

	cases := []struct {
		path, method string
		wantLimit    int
		wantNil      bool
	}{
		{"/assets/upload", "POST", 10, false},
		{"/projects/abc123", "DELETE", 100, false},
		{"/projects/abc123", "GET", 0, true},
		{"/health", "GET", 0, false}, // unlimited sentinel
		{"/state", "GET", 0, true},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s_%s", tc.method, tc.path), func(t *testing.T) {
			got := MatchEndpoint(tc.path, tc.method, configs)
			if tc.wantNil {
				if got != nil {
					t.Fatalf("expected no match, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected a match")
			}
			if got.Limit != tc.wantLimit {
				t.Errorf("limit = %d, want %d", got.Limit, tc.wantLimit)
			}
		})
	}
}
