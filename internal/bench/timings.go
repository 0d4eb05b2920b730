package bench

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Save persists res into dir as a timestamped pair of archives,
// by-nodes.yaml and by-edges.yaml, and returns the folder created.
func Save(dir string, stamp time.Time, res Result) (string, error) {
	folder := filepath.Join(dir, "bench-"+stamp.Format(time.RFC3339))
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", fmt.Errorf("bench: %w", err)
	}
	if err := saveTimings(filepath.Join(folder, "by-nodes.yaml"), res.ByNodes); err != nil {
		return "", err
	}
	if err := saveTimings(filepath.Join(folder, "by-edges.yaml"), res.ByEdges); err != nil {
		return "", err
	}
	return folder, nil
}

func saveTimings(path string, timings map[int]float64) error {
	raw := make(map[string]float64, len(timings))
	for k, v := range timings {
		raw[strconv.Itoa(k)] = v
	}
	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("bench: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("bench: %w", err)
	}
	return nil
}

// LoadTimings reads a benchmark archive, re-parsing its textual keys
// back into integers. It fails with ErrArchiveCorrupt if any key is
// not a valid integer or any duration is negative.
func LoadTimings(path string) (map[int]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}
	var raw map[string]float64
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("bench: decode %s: %w", path, ErrArchiveCorrupt)
	}
	out := make(map[int]float64, len(raw))
	for k, v := range raw {
		n, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("bench: key %q: %w", k, ErrArchiveCorrupt)
		}
		if v < 0 {
			return nil, fmt.Errorf("bench: duration for %q is negative: %w", k, ErrArchiveCorrupt)
		}
		out[n] = v
	}
	return out, nil
}
