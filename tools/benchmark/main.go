// Command benchmark load-tests a running token ledger API and reports latency
// and throughput statistics per operation.
//
// Usage:
//
//	benchmark -url http://localhost:8080 -op balance -ledger-token CRED -holder npub1alice -n 1000 -c 10
//	benchmark -op mint -ledger-token CRED -holder npub1alice -amount 1 -auth-token <jwt> -n 100
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"
)

const defaultAPIURL = "http://localhost:8080"

// Config holds the benchmark run configuration
type Config struct {
	APIURL      string
	AuthToken   string
	Operation   string
	LedgerToken string
	Holder      string
	Recipient   string
	Amount      int64
	Requests    int
	Concurrency int
	Timeout     time.Duration
	OutputFile  string
}

// result records the outcome of a single request
type result struct {
	latency    time.Duration
	statusCode int
	err        error
}

// stats aggregates request outcomes across workers
type stats struct {
	mu           sync.Mutex
	latencies    []time.Duration
	statusCounts map[int]int
	errors       int
}

func newStats() *stats {
	return &stats{statusCounts: make(map[int]int)}
}

func (s *stats) record(r result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.err != nil {
		s.errors++
		return
	}
	s.latencies = append(s.latencies, r.latency)
	s.statusCounts[r.statusCode]++
}

func main() {
	cfg := parseFlags()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Stop early on interrupt; the report covers what completed
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, finishing in-flight requests...")
		cancel()
	}()

	fmt.Printf("Benchmarking %s %s against %s (%d requests, %d workers)\n",
		cfg.Operation, cfg.LedgerToken, cfg.APIURL, cfg.Requests, cfg.Concurrency)

	st := newStats()
	elapsed := run(ctx, cfg, st)

	report := buildReport(cfg, st, elapsed)
	fmt.Print(report)

	if cfg.OutputFile != "" {
		if err := os.WriteFile(cfg.OutputFile, []byte(report), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Report written to %s\n", cfg.OutputFile)
	}
}

func parseFlags() Config {
	var cfg Config
	var saveDefaults bool

	flag.StringVar(&cfg.APIURL, "url", "", "Ledger API base URL")
	flag.StringVar(&cfg.AuthToken, "auth-token", "", "Bearer token for authenticated operations")
	flag.StringVar(&cfg.Operation, "op", "balance", "Operation to benchmark: balance, entries, holdings, mint, transfer")
	flag.StringVar(&cfg.LedgerToken, "ledger-token", "", "Token id or symbol to operate on")
	flag.StringVar(&cfg.Holder, "holder", "", "Holder identity (sender for transfers)")
	flag.StringVar(&cfg.Recipient, "recipient", "", "Recipient identity for transfers")
	flag.Int64Var(&cfg.Amount, "amount", 1, "Amount per mint/transfer")
	flag.IntVar(&cfg.Requests, "n", 100, "Total number of requests")
	flag.IntVar(&cfg.Concurrency, "c", 10, "Number of concurrent workers")
	flag.DurationVar(&cfg.Timeout, "timeout", 10*time.Second, "Per-request timeout")
	flag.StringVar(&cfg.OutputFile, "o", "", "Write the report to this file as well")
	flag.BoolVar(&saveDefaults, "save-config", false, "Save URL and auth token as defaults")
	flag.Parse()

	// Fall back to the saved config for connection settings
	if fileCfg, err := LoadConfig(GetDefaultConfigPath()); err == nil {
		if cfg.APIURL == "" {
			cfg.APIURL = fileCfg.APIURL
		}
		if cfg.AuthToken == "" {
			cfg.AuthToken = fileCfg.AuthToken
		}
	}
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	if saveDefaults {
		if err := SaveConfig(GetDefaultConfigPath(), &BenchmarkConfig{
			APIURL:    cfg.APIURL,
			AuthToken: cfg.AuthToken,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save config: %v\n", err)
			os.Exit(1)
		}
	}

	if cfg.LedgerToken == "" {
		fmt.Fprintln(os.Stderr, "-ledger-token is required")
		os.Exit(1)
	}
	if cfg.Operation != "holdings" && cfg.Holder == "" {
		fmt.Fprintln(os.Stderr, "-holder is required for this operation")
		os.Exit(1)
	}
	if cfg.Operation == "transfer" && cfg.Recipient == "" {
		fmt.Fprintln(os.Stderr, "-recipient is required for transfers")
		os.Exit(1)
	}

	return cfg
}

// run drives the workers and returns the wall-clock duration of the run
func run(ctx context.Context, cfg Config, st *stats) time.Duration {
	client := &http.Client{Timeout: cfg.Timeout}

	var remaining atomic.Int64
	remaining.Store(int64(cfg.Requests))

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for remaining.Add(-1) >= 0 {
				if ctx.Err() != nil {
					return
				}
				st.record(doRequest(ctx, client, cfg))
			}
		}()
	}
	wg.Wait()

	return time.Since(start)
}

// doRequest issues one request for the configured operation
func doRequest(ctx context.Context, client *http.Client, cfg Config) result {
	req, err := buildRequest(ctx, cfg)
	if err != nil {
		return result{err: err}
	}

	start := time.Now()
	resp, err := client.Do(req)
	latency := time.Since(start)
	if err != nil {
		return result{err: err}
	}
	defer resp.Body.Close()

	return result{latency: latency, statusCode: resp.StatusCode}
}

func buildRequest(ctx context.Context, cfg Config) (*http.Request, error) {
	var (
		method = http.MethodGet
		url    string
		body   map[string]interface{}
	)

	switch cfg.Operation {
	case "balance":
		url = fmt.Sprintf("%s/api/v1/tokens/%s/balances/%s", cfg.APIURL, cfg.LedgerToken, cfg.Holder)
	case "entries":
		url = fmt.Sprintf("%s/api/v1/tokens/%s/entries", cfg.APIURL, cfg.LedgerToken)
	case "holdings":
		url = fmt.Sprintf("%s/api/v1/holders/%s/tokens", cfg.APIURL, cfg.Holder)
	case "mint":
		method = http.MethodPost
		url = fmt.Sprintf("%s/api/v1/tokens/%s/mint", cfg.APIURL, cfg.LedgerToken)
		body = map[string]interface{}{
			"holder": cfg.Holder,
			"amount": cfg.Amount,
			"notes":  "benchmark",
		}
	case "transfer":
		method = http.MethodPost
		url = fmt.Sprintf("%s/api/v1/tokens/%s/transfer", cfg.APIURL, cfg.LedgerToken)
		body = map[string]interface{}{
			"from":   cfg.Holder,
			"to":     cfg.Recipient,
			"amount": cfg.Amount,
			"notes":  "benchmark",
		}
	default:
		return nil, fmt.Errorf("unknown operation %q", cfg.Operation)
	}

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cfg.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.AuthToken)
	}

	return req, nil
}

// buildReport renders the run statistics as markdown
func buildReport(cfg Config, st *stats, elapsed time.Duration) string {
	st.mu.Lock()
	defer st.mu.Unlock()

	var b strings.Builder
	completed := len(st.latencies)

	fmt.Fprintf(&b, "\n## Benchmark: %s %s\n\n", cfg.Operation, cfg.LedgerToken)
	fmt.Fprintf(&b, "- Target: %s\n", cfg.APIURL)
	fmt.Fprintf(&b, "- Requests: %d completed, %d transport errors\n", completed, st.errors)
	fmt.Fprintf(&b, "- Concurrency: %d\n", cfg.Concurrency)
	fmt.Fprintf(&b, "- Duration: %s\n", formatDuration(elapsed))
	if elapsed > 0 && completed > 0 {
		fmt.Fprintf(&b, "- Throughput: %.1f req/s\n", float64(completed)/elapsed.Seconds())
	}

	if completed > 0 {
		sort.Slice(st.latencies, func(i, j int) bool { return st.latencies[i] < st.latencies[j] })

		fmt.Fprintf(&b, "\n| Latency | Value |\n|---|---|\n")
		fmt.Fprintf(&b, "| min | %s |\n", formatDuration(st.latencies[0]))
		fmt.Fprintf(&b, "| mean | %s |\n", formatDuration(mean(st.latencies)))
		fmt.Fprintf(&b, "| p50 | %s |\n", formatDuration(percentile(st.latencies, 50)))
		fmt.Fprintf(&b, "| p90 | %s |\n", formatDuration(percentile(st.latencies, 90)))
		fmt.Fprintf(&b, "| p99 | %s |\n", formatDuration(percentile(st.latencies, 99)))
		fmt.Fprintf(&b, "| max | %s |\n", formatDuration(st.latencies[len(st.latencies)-1]))
	}

	if len(st.statusCounts) > 0 {
		fmt.Fprintf(&b, "\n| Status | Count |\n|---|---|\n")
		for _, code := range sortedKeys(st.statusCounts) {
			fmt.Fprintf(&b, "| %d | %d |\n", code, st.statusCounts[code])
		}
	}
	b.WriteString("\n")

	return b.String()
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
