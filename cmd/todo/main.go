// Command todo runs the todo API and its maintenance tasks.
package main

import (
	"os"

	"github.com/aussiebroadwan/todo/internal/todo/app"
)

func main() {
	cmd := NewRootCmd()
	cmd.Version = app.BuildVersion

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
