package entropy

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRollUniform_Range(t *testing.T) {
	sources := map[string]Source{
		"crypto": Crypto{},
		"fast":   NewFast(7),
		"nil":    nil,
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			for _, max := range []int{1, 2, 6, 100, 1000} {
				for i := 0; i < 2000; i++ {
					v := RollUniform(src, max)
					if v < 1 || v > max {
						t.Fatalf("RollUniform(%d) = %d, out of range", max, v)
					}
				}
			}
		})
	}
}

func TestRollUniform_NonPositiveMax(t *testing.T) {
	if got := RollUniform(Crypto{}, 0); got != 1 {
		t.Errorf("RollUniform(0) = %d, want 1", got)
	}
	if got := RollUniform(Crypto{}, -5); got != 1 {
		t.Errorf("RollUniform(-5) = %d, want 1", got)
	}
}

func TestRollUniform_FastCoversAllFaces(t *testing.T) {
	src := NewFast(42)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		seen[RollUniform(src, 6)] = true
	}
	for face := 1; face <= 6; face++ {
		if !seen[face] {
			t.Errorf("face %d never rolled", face)
		}
	}
}

func TestScript_ReplaysRolls(t *testing.T) {
	s := NewScript(20, 100, 7)
	tests := []struct {
		max  int
		want int
	}{
		{100, 20},
		{100, 100},
		{6, 1}, // 7 wraps on a d6
		{100, 1},
	}
	for _, tt := range tests {
		if got := RollUniform(s, tt.max); got != tt.want {
			t.Errorf("RollUniform(%d) = %d, want %d", tt.max, got, tt.want)
		}
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", s.Remaining())
	}
}

func TestScript_SingleFaceDoesNotConsume(t *testing.T) {
	s := NewScript(42)
	if got := RollUniform(s, 1); got != 1 {
		t.Fatalf("RollUniform(1) = %d, want 1", got)
	}
	if got := RollUniform(s, 100); got != 42 {
		t.Errorf("RollUniform(100) = %d, want 42", got)
	}
}

func TestFair_WithoutKeyUsesCrypto(t *testing.T) {
	if _, ok := Fair(NewClient("")).(Crypto); !ok {
		t.Error("Fair(nil client) should fall back to crypto source")
	}
	if NewClient("") != nil {
		t.Error("NewClient(\"\") should return nil")
	}
}

func testClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := NewClient("key")
	c.endpoint = srv.URL
	return c
}

func TestClient_DrawsFromPool(t *testing.T) {
	var calls int
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Method != "generateIntegers" || req.Params.APIKey != "key" {
			t.Errorf("request = %+v, err = %v", req, err)
		}
		data := make([]int, 20)
		for i := range data {
			data[i] = 1000*i + 41
		}
		json.NewEncoder(w).Encode(map[string]any{
			"result": map[string]any{"random": map[string]any{"data": data}},
		})
	})

	if got := RollUniform(c, 100); got != 42 {
		t.Errorf("first roll = %d, want 42", got)
	}
	if got := c.Pooled(); got != 19 {
		t.Errorf("Pooled = %d, want 19", got)
	}
	for i := 0; i < 10; i++ {
		c.Intn(100)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 while the pool is above the low-water mark", calls)
	}
	c.Intn(100)
	if calls != 2 {
		t.Errorf("calls = %d, want a refill below the low-water mark", calls)
	}
}

func TestClient_FallsBackOnAPIError(t *testing.T) {
	tests := []struct {
		name string
		h    http.HandlerFunc
	}{
		{"rpc error", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error":{"code":401,"message":"bad key"}}`))
		}},
		{"http status", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}},
		{"garbage", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}},
		{"empty result", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testClient(t, tt.h)
			for i := 0; i < 50; i++ {
				if v := RollUniform(c, 6); v < 1 || v > 6 {
					t.Fatalf("fallback roll = %d", v)
				}
			}
			if c.Pooled() != 0 {
				t.Errorf("Pooled = %d after failures", c.Pooled())
			}
		})
	}
}

func TestClient_Nil(t *testing.T) {
	var c *Client
	if c.Enabled() || c.Pooled() != 0 {
		t.Error("nil client should be disabled and empty")
	}
	if v := RollUniform(c, 10); v < 1 || v > 10 {
		t.Errorf("nil client roll = %d", v)
	}
}
