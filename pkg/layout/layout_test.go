package layout

import (
	"path/filepath"
	"testing"

	"github.com/graphscape/graphscape/pkg/errors"
)

func TestCompute(t *testing.T) {
	g := testGraph([]string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})

	for _, algorithm := range Algorithms() {
		t.Run(algorithm, func(t *testing.T) {
			res, err := Compute(algorithm, g, Options{})
			if err != nil {
				t.Fatalf("Compute(%s) error: %v", algorithm, err)
			}
			if len(res.Positions) != len(g.Nodes) {
				t.Errorf("positions = %d, want %d", len(res.Positions), len(g.Nodes))
			}
			if len(res.Segments) != len(g.Edges) {
				t.Errorf("segments = %d, want %d", len(res.Segments), len(g.Edges))
			}
		})
	}
}

func TestCompute_InvalidAlgorithm(t *testing.T) {
	g := testGraph([]string{"a"}, nil)

	_, err := Compute("spiral", g, Options{})
	if err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
	if !errors.Is(err, errors.ErrCodeInvalidAlgorithm) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidAlgorithm)
	}
}

func TestValidateAlgorithm(t *testing.T) {
	for _, name := range Algorithms() {
		if err := ValidateAlgorithm(name); err != nil {
			t.Errorf("ValidateAlgorithm(%s) = %v, want nil", name, err)
		}
	}
	if err := ValidateAlgorithm(""); err == nil {
		t.Error("ValidateAlgorithm(\"\") = nil, want error")
	}
}

func TestOptions_SetDefaultsIdempotent(t *testing.T) {
	var opts Options
	opts.SetDefaults()

	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("canvas = %gx%g, want %gx%g", opts.Width, opts.Height, DefaultWidth, DefaultHeight)
	}
	if opts.Iterations != DefaultIterations {
		t.Errorf("iterations = %d, want %d", opts.Iterations, DefaultIterations)
	}
	if opts.Logger == nil {
		t.Fatal("Logger not defaulted")
	}

	before := opts
	opts.SetDefaults()
	if opts != before {
		t.Errorf("second SetDefaults changed options: %+v vs %+v", opts, before)
	}
}

func TestOptions_SetDefaultsKeepsOverrides(t *testing.T) {
	opts := Options{Width: 1024, Repulsion: 500}
	opts.SetDefaults()

	if opts.Width != 1024 {
		t.Errorf("Width = %g, want override 1024", opts.Width)
	}
	if opts.Repulsion != 500 {
		t.Errorf("Repulsion = %g, want override 500", opts.Repulsion)
	}
	if opts.Height != DefaultHeight {
		t.Errorf("Height = %g, want default %g", opts.Height, DefaultHeight)
	}
}

func TestResultFileRoundTrip(t *testing.T) {
	g := testGraph([]string{"a", "b"}, [][2]string{{"a", "b"}})
	res := Circular(g, Options{Width: 800, Height: 600})

	path := filepath.Join(t.TempDir(), "layout.json")
	if err := WriteResultFile(res, path); err != nil {
		t.Fatalf("WriteResultFile: %v", err)
	}

	got, err := ReadResultFile(path)
	if err != nil {
		t.Fatalf("ReadResultFile: %v", err)
	}
	if got.Width != res.Width || got.Height != res.Height {
		t.Errorf("canvas = %gx%g, want %gx%g", got.Width, got.Height, res.Width, res.Height)
	}
	if len(got.Positions) != len(res.Positions) || len(got.Segments) != len(res.Segments) {
		t.Errorf("positions=%d segments=%d, want %d and %d",
			len(got.Positions), len(got.Segments), len(res.Positions), len(res.Segments))
	}
}

func TestReadResultFile_Missing(t *testing.T) {
	if _, err := ReadResultFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing artifact")
	}
}
