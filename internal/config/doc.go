// Package config reads gosearch run profiles written in HCL.
//
// A profile names the maze, the strategy and how the result is reported:
//
//	maze       = "mazes/maze1.txt"
//	strategy   = 4          # or "a-star", "bfs", ...
//	step       = false
//	image      = "out/maze1.png"
//	no_image   = false
//	log_level  = "debug"
//	log_format = "json"
//	listen     = ":8080"
//
// Every attribute is optional. Relative maze and image paths are resolved
// against the profile's directory.
package config
