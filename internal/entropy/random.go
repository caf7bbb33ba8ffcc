// Package entropy provides the dice used by every engine. Fairness-sensitive
// rolls (conception, transmission) draw from crypto/rand or random.org;
// cosmetic shuffles may use a fast seeded source.
package entropy

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	mrand "math/rand"
	"net/http"
	"sync"
	"time"
)

// Source yields uniform integers. Intn returns a value in [0, n).
type Source interface {
	Intn(n int) int
}

// RollUniform returns an integer in [1, max] from a single draw.
// A max below 1 is treated as 1.
func RollUniform(src Source, max int) int {
	if max < 1 {
		max = 1
	}
	if src == nil {
		src = Crypto{}
	}
	return src.Intn(max) + 1
}

// Crypto draws from crypto/rand.
type Crypto struct{}

// Intn implements Source.
func (Crypto) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	// crypto/rand.Reader does not fail on supported platforms.
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// Fast is a seeded math/rand source for cosmetic randomization.
type Fast struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewFast creates a fast source. A zero seed is replaced by a crypto seed.
func NewFast(seed int64) *Fast {
	if seed == 0 {
		seed = cryptoSeed()
	}
	return &Fast{rng: mrand.New(mrand.NewSource(seed))}
}

// Intn implements Source.
func (f *Fast) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rng.Intn(n)
}

// random.org integers span [0, faceSpan). faceSpan is divisible by every die
// the engines roll (2, 100, 1000), so reducing modulo n has no bias for them.
const (
	randomOrgURL = "https://api.random.org/json-rpc/4/invoke"
	faceSpan     = 1_000_000_000
	batchSize    = 200
	lowWater     = 10
)

// Client draws integers from random.org, buffered in a local pool.
// Any API failure falls back to crypto/rand for that draw.
type Client struct {
	apiKey   string
	endpoint string
	http     *http.Client

	mu   sync.Mutex
	pool []int
	seq  int
}

// NewClient creates a random.org client. Returns nil if apiKey is empty.
func NewClient(apiKey string) *Client {
	if apiKey == "" {
		return nil
	}
	return &Client{
		apiKey:   apiKey,
		endpoint: randomOrgURL,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// Intn implements Source using the pool.
func (c *Client) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	if c == nil {
		return Crypto{}.Intn(n)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.pool) < lowWater {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := c.refill(ctx)
		cancel()
		if err != nil {
			slog.Debug("random.org refill failed", "error", err, "pooled", len(c.pool))
		}
	}
	if len(c.pool) == 0 {
		return Crypto{}.Intn(n)
	}
	v := c.pool[0]
	c.pool = c.pool[1:]
	return v % n
}

// Pooled reports how many random.org integers are buffered.
func (c *Client) Pooled() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pool)
}

type rpcRequest struct {
	JSONRPC string    `json:"jsonrpc"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params"`
	ID      int       `json:"id"`
}

type rpcParams struct {
	APIKey string `json:"apiKey"`
	N      int    `json:"n"`
	Min    int    `json:"min"`
	Max    int    `json:"max"`
}

type rpcResponse struct {
	Result *struct {
		Random struct {
			Data []int `json:"data"`
		} `json:"random"`
		BitsLeft     int `json:"bitsLeft"`
		RequestsLeft int `json:"requestsLeft"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

var errEmptyResult = errors.New("random.org returned no result")

// refill appends one batch to the pool. Called with mu held.
func (c *Client) refill(ctx context.Context) error {
	c.seq++
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  "generateIntegers",
		Params:  rpcParams{APIKey: c.apiKey, N: batchSize, Min: 0, Max: faceSpan - 1},
		ID:      c.seq,
	})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("post: status %d", resp.StatusCode)
	}

	var out rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if out.Error != nil {
		return fmt.Errorf("api error %d: %s", out.Error.Code, out.Error.Message)
	}
	if out.Result == nil {
		return errEmptyResult
	}
	for _, v := range out.Result.Random.Data {
		if v >= 0 && v < faceSpan {
			c.pool = append(c.pool, v)
		}
	}
	slog.Debug("random.org pool refilled",
		"count", len(out.Result.Random.Data),
		"bits_left", out.Result.BitsLeft,
		"requests_left", out.Result.RequestsLeft,
	)
	return nil
}

// Enabled returns true if the client has a valid API key.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// Fair returns the random.org client when enabled, else crypto/rand.
func Fair(c *Client) Source {
	if c.Enabled() {
		return c
	}
	return Crypto{}
}

func cryptoSeed() int64 {
	var buf [8]byte
	rand.Read(buf[:])
	return int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
}

// Script replays fixed 1-based rolls, for tests and manual reproduction.
// Each value is reduced modulo n so it always fits the requested range.
// Draws with n <= 1 consume nothing. Once exhausted it keeps returning the
// lowest face.
type Script struct {
	mu    sync.Mutex
	rolls []int
	next  int
}

// NewScript creates a Script yielding the given rolls in order.
func NewScript(rolls ...int) *Script {
	return &Script{rolls: rolls}
}

// Intn implements Source.
func (s *Script) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= 1 || s.next >= len(s.rolls) {
		return 0
	}
	v := s.rolls[s.next]
	s.next++
	return ((v-1)%n + n) % n
}

// Remaining reports how many scripted rolls are left.
func (s *Script) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rolls) - s.next
}
