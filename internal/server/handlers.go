package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gosearch/grid"
	"github.com/katalvlaran/gosearch/render"
	"github.com/katalvlaran/gosearch/search"
)

// solveRequest is the body of /v1/solve and /v1/render.
type solveRequest struct {
	Maze     string          `json:"maze" binding:"required"`
	Strategy search.Strategy `json:"strategy" binding:"required"`
	// Explored asks /v1/solve to list the expanded cells.
	Explored bool `json:"explored"`
}

type solveResponse struct {
	Strategy    search.Strategy `json:"strategy"`
	Solved      bool            `json:"solved"`
	State       string          `json:"state"`
	Actions     []grid.Action   `json:"actions"`
	Cells       []grid.Position `json:"cells"`
	NumExplored int             `json:"num_explored"`
	Explored    []grid.Position `json:"explored,omitempty"`
	Rendered    string          `json:"rendered"`
	ElapsedMs   float64         `json:"elapsed_ms"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// run decodes the request, parses the maze and solves it. On failure it
// writes the error response and returns ok == false. A maze without a
// path is reported through the engine state, not as a failure.
func (s *Server) run(c *gin.Context) (req solveRequest, e *search.Engine, elapsed time.Duration, ok bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.opts.MaxMazeBytes)
	if err := c.ShouldBindJSON(&req); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		c.JSON(status, errorResponse{Error: err.Error()})
		return req, nil, 0, false
	}

	g, err := grid.ParseString(req.Maze)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, grid.ErrMalformedMaze) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, errorResponse{Error: err.Error()})
		return req, nil, 0, false
	}

	if cells := g.Height * g.Width; cells > s.opts.MaxCells {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{
			Error: fmt.Sprintf("maze has %d cells, limit is %d", cells, s.opts.MaxCells),
		})
		return req, nil, 0, false
	}

	label := req.Strategy.String()
	ctx, cancel := context.WithTimeout(c.Request.Context(), s.opts.SolveTimeout)
	defer cancel()
	start := time.Now()
	e, _, err = search.Solve(g, req.Strategy,
		search.WithContext(ctx),
		search.WithLogger(s.opts.Logger),
	)
	elapsed = time.Since(start)
	s.metrics.duration.WithLabelValues(label).Observe(elapsed.Seconds())

	switch {
	case err == nil:
		s.metrics.solves.WithLabelValues(label, "solved").Inc()
	case errors.Is(err, search.ErrNoSolution):
		s.metrics.solves.WithLabelValues(label, "no_solution").Inc()
	case errors.Is(err, context.DeadlineExceeded):
		s.metrics.solves.WithLabelValues(label, "timeout").Inc()
		c.JSON(http.StatusServiceUnavailable, errorResponse{
			Error: fmt.Sprintf("solve exceeded %s after %d states", s.opts.SolveTimeout, e.NumExplored()),
		})
		return req, nil, elapsed, false
	default:
		s.metrics.solves.WithLabelValues(label, "error").Inc()
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return req, nil, elapsed, false
	}
	s.metrics.explored.WithLabelValues(label).Observe(float64(e.NumExplored()))

	return req, e, elapsed, true
}

func (s *Server) handleSolve(c *gin.Context) {
	req, e, elapsed, ok := s.run(c)
	if !ok {
		return
	}

	sol := e.Solution()
	var text strings.Builder
	_ = render.Text(&text, e.Grid(), sol)

	resp := solveResponse{
		Strategy:    req.Strategy,
		Solved:      e.State() == search.Solved,
		State:       e.State().String(),
		Actions:     []grid.Action{},
		Cells:       []grid.Position{},
		NumExplored: e.NumExplored(),
		Rendered:    text.String(),
		ElapsedMs:   float64(elapsed.Microseconds()) / 1000,
	}
	if sol != nil {
		resp.Actions = sol.Actions
		resp.Cells = sol.Cells
	}
	if req.Explored {
		resp.Explored = e.Explored()
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleRender(c *gin.Context) {
	_, e, _, ok := s.run(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render.WritePNG(&buf, e.Grid(), e.Solution(), e.Explored(), render.DefaultImageOptions()); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
