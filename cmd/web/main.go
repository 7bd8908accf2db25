package main

import "bountyboard_backend/internal/app"

func main() {
	app.Run()
}
