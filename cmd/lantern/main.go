package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lanternhq/lantern/pkg/deploy"
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// A declined prompt is an expected outcome: quiet, exit 0.
		if errors.Is(err, deploy.ErrCancelled) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
