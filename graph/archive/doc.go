// Package archive persists a weighted graph to a YAML file: a mapping
// from "u,v" edge keys to a record carrying the edge's weight and
// cost. Load and Save round-trip a graph's edge set exactly, up to
// the key ordering of the encoded mapping.
package archive
