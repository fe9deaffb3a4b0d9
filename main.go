package main

import (
	"os"

	"github.com/onenet-identity/onenet-identity/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
