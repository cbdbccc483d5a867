package main

import (
	app "github.com/rocketscienceinc/console-games/internal"
	"github.com/rocketscienceinc/console-games/internal/entity"
)

func main() {
	app.Main(entity.GameLoan)
}
