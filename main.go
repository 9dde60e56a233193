package main

import (
	"github.com/mistveil/backoffice-next/cmd/app"
)

func main() {
	app.Run()
}
