// Package bmssp (module github.com/nrgraph/bmssp) computes single-source
// shortest paths on directed graphs with non-negative edge weights.
//
// It implements the classical Dijkstra baseline (package dijkstra) and the
// recursive Bounded Multi-Source Shortest Path algorithm of Duan et al.
// 2025 (packages bucket, hubsplit, basecase, pivot, bmssp), selecting
// between them by graph size, reachability, and degree (package selector).
// Package sssp is the public entry point; package core is the graph
// representation both algorithms operate over.
package bmssp
