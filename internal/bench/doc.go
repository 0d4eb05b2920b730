// Package bench runs sweeps of the label-setting engine over randomly
// generated graphs of increasing size and persists the measured
// timings as a pair of YAML archives, one keyed by node count and one
// by edge count.
package bench
