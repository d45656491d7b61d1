package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/etnz/chartkit/settings"
)

type envCmd struct {
	output string
}

func (*envCmd) Name() string     { return "env" }
func (*envCmd) Synopsis() string { return "writes a commented .env template" }
func (*envCmd) Usage() string {
	return `ckt env [-o <file>]

  Writes a commented .env template listing every environment variable the
  tool understands. Refuses to overwrite an existing file.

`
}

func (c *envCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", ".env.template", "output file")
}

func (c *envCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := settings.WriteEnvTemplate(c.output); err != nil {
		return fail("%v", err)
	}
	fmt.Printf("Wrote %s\n", c.output)
	return subcommands.ExitSuccess
}
