package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/graphscape/graphscape/pkg/config"
	"github.com/graphscape/graphscape/pkg/errors"
)

func testServer() *Server {
	return NewServer(config.Default(), log.New(io.Discard))
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodGet, "/healthz", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestAlgorithms(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodGet, "/v1/algorithms", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	want := []string{"circular", "layered", "force"}
	got := body["algorithms"]
	if len(got) != len(want) {
		t.Fatalf("algorithms = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("algorithms[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLayout(t *testing.T) {
	body := `{
		"graph": {
			"nodes": [{"id": "a"}, {"id": "b"}, {"id": "c"}],
			"edges": [{"source": "a", "target": "b"}, {"source": "b", "target": "c"}]
		},
		"algorithm": "layered"
	}`
	rec := doRequest(t, testServer(), http.MethodPost, "/v1/layout", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp LayoutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Nodes != 3 || resp.Edges != 2 {
		t.Errorf("counts = (%d, %d), want (3, 2)", resp.Nodes, resp.Edges)
	}
	if len(resp.Layout.Positions) != 3 {
		t.Fatalf("positions = %d, want 3", len(resp.Layout.Positions))
	}
	if len(resp.Layout.Segments) != 2 {
		t.Errorf("segments = %d, want 2", len(resp.Layout.Segments))
	}
	// a→b→c under the layered strategy spans the canvas left to right.
	xs := []float64{resp.Layout.Positions[0].X, resp.Layout.Positions[1].X, resp.Layout.Positions[2].X}
	if !(xs[0] < xs[1] && xs[1] < xs[2]) {
		t.Errorf("x positions = %v, want strictly increasing", xs)
	}
}

func TestLayout_DefaultsToCircular(t *testing.T) {
	body := `{"graph": {"nodes": [{"id": "a"}], "edges": []}}`
	rec := doRequest(t, testServer(), http.MethodPost, "/v1/layout", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp LayoutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(resp.Layout.Positions) != 1 {
		t.Errorf("positions = %d, want 1", len(resp.Layout.Positions))
	}
}

func TestLayout_SizeOverrides(t *testing.T) {
	body := `{"graph": {"nodes": [{"id": "a"}], "edges": []}, "width": 1000, "height": 1000}`
	rec := doRequest(t, testServer(), http.MethodPost, "/v1/layout", body)

	var resp LayoutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Layout.Width != 1000 || resp.Layout.Height != 1000 {
		t.Errorf("canvas = %gx%g, want 1000x1000", resp.Layout.Width, resp.Layout.Height)
	}
}

func TestLayout_InvalidAlgorithm(t *testing.T) {
	body := `{"graph": {"nodes": [], "edges": []}, "algorithm": "spiral"}`
	rec := doRequest(t, testServer(), http.MethodPost, "/v1/layout", body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Error.Code != string(errors.ErrCodeInvalidAlgorithm) {
		t.Errorf("error code = %q, want %q", resp.Error.Code, errors.ErrCodeInvalidAlgorithm)
	}
}

func TestLayout_MalformedBody(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodPost, "/v1/layout", `{{{nope`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Error.Code != string(errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %q, want %q", resp.Error.Code, errors.ErrCodeInvalidInput)
	}
}

func TestLayout_MalformedGraphDegradesToEmpty(t *testing.T) {
	// The graph field takes the normalizer's loose shape: junk inside it
	// yields an empty layout, not a request failure.
	body := `{"graph": "junk"}`
	rec := doRequest(t, testServer(), http.MethodPost, "/v1/layout", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp LayoutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Nodes != 0 || len(resp.Layout.Positions) != 0 {
		t.Errorf("nodes = %d, positions = %d, want empty", resp.Nodes, len(resp.Layout.Positions))
	}
}

func TestRequestIDHeader(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodGet, "/healthz", "")

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}
}
