// Package gosearch finds a path through a 2-D text maze from a start cell
// 'A' to a goal cell 'B' with one of four classic strategies.
//
// What is gosearch?
//
//	A small, deterministic search toolkit:
//		• Grid model: walls, start, goal, 4-neighbourhood in a fixed order
//		• Search engine: depth-first, breadth-first, greedy and A*-like modes
//		• Renderers: text (█ A B *) and PNG bitmaps
//		• Driver: interactive CLI, HCL run profiles and an HTTP API
//
// Under the hood, everything is organized under these packages:
//
//	grid/              Position, Action, Grid and the text maze loader
//	search/            Node arena, Frontier, Reorder, Strategy and Engine
//	render/            Text and Image renderers over a grid and a solution
//	internal/config/   HCL run profiles
//	internal/server/   gin HTTP API with Prometheus metrics
//	internal/app/      interactive driver wiring everything together
//	internal/cli/      flag parsing and exit codes
//	cmd/gosearch/      the binary
//
// Quick start:
//
//	g, _ := grid.ParseString("A  \n # \n  B\n")
//	_, sol, err := search.Solve(g, search.BreadthFirst)
//	if err == nil {
//		render.Text(os.Stdout, g, sol)
//	}
//
// The heuristic modes order by score = row + col - movement, ascending, with
// stable ties. They are not guaranteed to return a shortest path.
package gosearch
