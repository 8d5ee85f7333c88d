package main

import (
	"os"

	"github.com/watchchill/watchchill/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		os.Exit(1)
	}
}
