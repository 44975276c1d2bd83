// Command sparkles shows an 8x8 board of lights that a background goroutine
// flips at random.
//
// Usage:
//
//	sparkles [--display window|terminal] [--scale 32] [--seed N]
//
// The window display needs the ebiten build tag:
//
//	go run -tags ebiten ./cmd/sparkles
//	go run ./cmd/sparkles --display terminal
package main

import (
	"log"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
	os.Exit(0)
}
