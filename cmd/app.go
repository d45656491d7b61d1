// Package cmd implements the ckt CLI to render and annotate charts.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/etnz/chartkit/settings"
)

// Commands lists the subcommands of the ckt CLI.
// A main package registers each of them and executes the user-selected one.
var Commands = []subcommands.Command{
	&lineCmd{},
	&scatterCmd{},
	&barsCmd{},
	&heatmapCmd{},
	&fetchCmd{},
	&fontsCmd{},
	&envCmd{},
	&topicCmd{},
}

// loadSettings reads the configuration from the environment and the
// conventional .env file.
func loadSettings() (settings.Settings, error) {
	return settings.Load(".env")
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown, still readable.
		log.Printf("markdown rendering failed: %v", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints an error the way every subcommand reports failures.
func fail(format string, args ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}
