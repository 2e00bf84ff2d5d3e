// Package tetris implements the rules of a falling-block puzzle: the piece
// catalog, collision and placement checks, row clearing, and the per-frame
// controller that ties them to external input, clock and renderer.
//
// Coordinates are (column, row) with row 0 at the top of the 10x20 field.
// Rows above the field are negative; cells there never block a move and are
// never drawn, but a piece that locks with a cell above row 1 ends the game.
package tetris

//go:generate go run ../cmd/shapegen -in shapes.txt -out shapes_gen.go
