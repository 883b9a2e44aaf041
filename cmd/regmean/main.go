// Command regmean generates a synthetic player roster and renders figures
// showing regression to the mean between the two halves of a match.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("regmean failed", "err", err)
		os.Exit(1)
	}
}
