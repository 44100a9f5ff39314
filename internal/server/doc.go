// Package server exposes the search engine over HTTP.
//
// Routes:
//
//	POST /v1/solve   JSON {"maze": "...", "strategy": 2 | "bfs"} -> solution
//	POST /v1/render  same body -> PNG of the maze, path and explored cells
//	GET  /healthz    liveness
//	GET  /metrics    Prometheus exposition
//
// A maze without a path is not an error: /v1/solve answers 200 with
// "solved": false. Malformed mazes answer 422, bad requests 400.
package server
