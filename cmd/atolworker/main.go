package main

import "github.com/kassatech/atolWorker/internal/app"

func main() {
	app.New().Run()
}
