package main

import "patitas_backend/internal/app"

func main() {
	app.Run()
}
