package main

import (
	"log"
	"os"

	"github.com/bsan5566/food-waste/cmd"
	"github.com/bsan5566/food-waste/internal/logging"
)

func main() {
	if err := logging.Init(); err != nil {
		log.Printf("Warning: could not initialize log file: %v", err)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
