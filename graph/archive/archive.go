package archive

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wcsproute/wcsp/graph"
	"github.com/wcsproute/wcsp/graph/simple"
)

// edgeRecord is the on-disk representation of one edge's attributes.
type edgeRecord struct {
	Weight int64 `yaml:"weight"`
	Cost   int64 `yaml:"cost"`
}

// Load reads a graph archive from path and rebuilds the graph it
// encodes. It fails with ErrArchiveCorrupt if the file is not a
// mapping from "u,v" edge keys to weight/cost records with
// non-negative integer fields.
func Load(path string) (*simple.WeightedDirectedGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}

	var raw map[string]edgeRecord
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("archive: decode %s: %w", path, ErrArchiveCorrupt)
	}
	var fields map[string]map[string]interface{}
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("archive: decode %s: %w", path, ErrArchiveCorrupt)
	}

	g := simple.NewWeightedDirectedGraph()
	for key, rec := range raw {
		u, v, err := parseKey(key)
		if err != nil {
			return nil, fmt.Errorf("archive: key %q: %w", key, ErrArchiveCorrupt)
		}
		_, hasWeight := fields[key]["weight"]
		_, hasCost := fields[key]["cost"]
		if !hasWeight || !hasCost {
			return nil, fmt.Errorf("archive: edge %q is missing a field: %w", key, ErrArchiveCorrupt)
		}
		if rec.Weight < 0 || rec.Cost < 0 {
			return nil, fmt.Errorf("archive: edge %q has negative attribute: %w", key, ErrArchiveCorrupt)
		}
		g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(u), T: simple.Node(v), W: rec.Weight, C: rec.Cost})
	}
	return g, nil
}

// Save writes g's edge set to path as a graph archive.
func Save(path string, g graph.Weighted) error {
	raw := make(map[string]edgeRecord)
	for _, u := range g.Nodes() {
		for _, v := range g.From(u) {
			w, _ := g.Weight(u, v)
			c, _ := g.Cost(u, v)
			raw[edgeKey(u.ID(), v.ID())] = edgeRecord{Weight: w, Cost: c}
		}
	}

	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("archive: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("archive: %w", err)
	}
	return nil
}

func edgeKey(u, v int64) string {
	return strconv.FormatInt(u, 10) + "," + strconv.FormatInt(v, 10)
}

func parseKey(key string) (u, v int64, err error) {
	parts := strings.SplitN(key, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed key %q", key)
	}
	u, uErr := strconv.ParseInt(parts[0], 10, 64)
	v, vErr := strconv.ParseInt(parts[1], 10, 64)
	if uErr != nil || vErr != nil {
		return 0, 0, fmt.Errorf("malformed key %q", key)
	}
	return u, v, nil
}
