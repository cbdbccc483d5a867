package main

import (
	app "github.com/rocketscienceinc/console-games/internal"
	"github.com/rocketscienceinc/console-games/internal/entity"
)

// main - tic-tac-toe against the computer.
func main() {
	app.Main(entity.GameTicTacToe)
}
