package main

import (
	"fmt"
	"os"

	"github.com/kpm34/college-football-fantasy-app-sub003/internal/logger"
)

func main() {
	logger.Init()

	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
