package bench_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wcsproute/wcsp/internal/bench"
)

func testParams() bench.Params {
	return bench.Params{
		Sizes:        []int{5, 8, 12},
		Peak:         3,
		WeightMean:   3,
		WeightStdDev: 1,
		CostMean:     3,
		CostStdDev:   1,
		WMax:         1000,
		Theta:        0.1,
		Seed:         1,
	}
}

func TestRunProducesOneTimingPerSize(t *testing.T) {
	res, err := bench.Run(context.Background(), testParams())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.ByNodes) != 3 {
		t.Errorf("ByNodes has %d entries, want 3", len(res.ByNodes))
	}
	for _, n := range testParams().Sizes {
		if d, ok := res.ByNodes[n]; !ok || d < 0 {
			t.Errorf("ByNodes[%d] = %v, ok=%v, want a non-negative duration", n, d, ok)
		}
	}
	if len(res.ByEdges) == 0 {
		t.Errorf("ByEdges is empty")
	}
}

func TestSaveAndLoadTimingsRoundTrip(t *testing.T) {
	res, err := bench.Run(context.Background(), testParams())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	dir := t.TempDir()
	folder, err := bench.Save(dir, time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC), res)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	wantFolder := filepath.Join(dir, "bench-2026-01-02T15:04:05Z")
	if folder != wantFolder {
		t.Errorf("folder = %q, want %q", folder, wantFolder)
	}

	for name, want := range map[string]map[int]float64{
		"by-nodes.yaml": res.ByNodes,
		"by-edges.yaml": res.ByEdges,
	} {
		got, err := bench.LoadTimings(filepath.Join(folder, name))
		if err != nil {
			t.Fatalf("LoadTimings(%s): %v", name, err)
		}
		if len(got) != len(want) {
			t.Errorf("%s: got %d entries, want %d", name, len(got), len(want))
		}
		for k, v := range want {
			if got[k] != v {
				t.Errorf("%s[%d] = %v, want %v", name, k, got[k], v)
			}
		}
	}
}

func TestLoadTimingsRejectsNonIntegerKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("not-a-number: 1.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := bench.LoadTimings(path); err == nil {
		t.Fatal("LoadTimings: want error for non-integer key")
	}
}

func TestLoadTimingsRejectsNegativeDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("\"10\": -1.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := bench.LoadTimings(path); err == nil {
		t.Fatal("LoadTimings: want error for negative duration")
	}
}
