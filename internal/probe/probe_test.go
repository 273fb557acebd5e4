package probe

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-dexprobe/internal/config"
	"go-dexprobe/internal/dexscreener"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		API:           config.APIConfig{BaseURL: baseURL},
		Token:         config.TokenConfig{Symbol: "SOL", Address: "So11111111111111111111111111111111111111112"},
		SearchQueries: []string{"solana", "raydium"},
	}
}

func TestRunPrintsCountsInOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/latest/dex/tokens/"):
			fmt.Fprint(w, `{"pairs":[1,2,3]}`)
		case r.URL.Query().Get("q") == "solana":
			fmt.Fprint(w, `{}`)
		default:
			fmt.Fprint(w, `{"pairs":[{"pairAddress":"x"}]}`)
		}
	}))
	defer srv.Close()

	var out bytes.Buffer
	p := NewProbe(testConfig(srv.URL), dexscreener.NewClient(srv.URL), &out)
	if err := p.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := "Tokens API (SOL) found 3 pairs\n" +
		"Search API (solana) found 0 pairs\n" +
		"Search API (raydium) found 1 pairs\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRunStopsOnFirstFailure(t *testing.T) {
	searchHits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/latest/dex/tokens/") {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		searchHits++
		fmt.Fprint(w, `{"pairs":[]}`)
	}))
	defer srv.Close()

	var out bytes.Buffer
	p := NewProbe(testConfig(srv.URL), dexscreener.NewClient(srv.URL), &out)
	if err := p.Run(); err == nil {
		t.Fatal("expected error when the first check fails")
	}

	if out.Len() != 0 {
		t.Errorf("output = %q, want none", out.String())
	}
	if searchHits != 0 {
		t.Errorf("search endpoint hit %d times after a failed first check", searchHits)
	}
}

func TestRunKeepsLinesPrintedBeforeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/latest/dex/tokens/") {
			fmt.Fprint(w, `{"pairs":[1,2]}`)
			return
		}
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	var out bytes.Buffer
	p := NewProbe(testConfig(srv.URL), dexscreener.NewClient(srv.URL), &out)
	if err := p.Run(); err == nil {
		t.Fatal("expected error when a search check fails")
	}

	if want := "Tokens API (SOL) found 2 pairs\n"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestDefaultConfigBuildsThreeChecks(t *testing.T) {
	cfg := &config.Config{}
	p := NewProbe(cfg, dexscreener.NewClient("http://localhost:0"), &bytes.Buffer{})

	if len(p.checks) != 3 {
		t.Fatalf("checks = %d, want 3", len(p.checks))
	}
	wantLabels := []string{"Tokens API (SOL)", "Search API (solana)", "Search API (raydium)"}
	for i, want := range wantLabels {
		if p.checks[i].label != want {
			t.Errorf("check %d label = %q, want %q", i, p.checks[i].label, want)
		}
	}
}
