package cmd

import (
	"context"
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/chartkit/fonts"
)

type fontsCmd struct {
	install bool
	force   bool
	from    string
}

func (*fontsCmd) Name() string     { return "fonts" }
func (*fontsCmd) Synopsis() string { return "checks or installs the brand fonts" }
func (*fontsCmd) Usage() string {
	return `ckt fonts [-install -from <dir>] [-force]

  Without flags, reports whether the brand fonts are installed in the user
  font directory. With -install, copies every font file from -from into it,
  skipping files already present unless -force is given.

`
}

func (c *fontsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.install, "install", false, "install fonts into the user font directory")
	f.BoolVar(&c.force, "force", false, "overwrite fonts already installed")
	f.StringVar(&c.from, "from", "", "directory containing the font files to install")
}

func (c *fontsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadSettings()
	if err != nil {
		return fail("%v", err)
	}

	dir := s.FontDir
	if dir == "" {
		if dir, err = fonts.SystemDir(); err != nil {
			return fail("%v", err)
		}
	}

	if c.install {
		if c.from == "" {
			return fail("-install requires -from <dir>")
		}
		res, err := fonts.Install(c.from, dir, c.force)
		if err != nil {
			return fail("cannot install fonts: %v", err)
		}
		fmt.Printf("Installed %d fonts into %s", len(res.Installed), dir)
		if len(res.Skipped) > 0 {
			fmt.Printf(" (skipped %s)", strings.Join(res.Skipped, ", "))
		}
		fmt.Println()
		return subcommands.ExitSuccess
	}

	status := fonts.Status(dir)
	names := make([]string, 0, len(status))
	for name := range status {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "# Fonts in %s\n\n", dir)
	for _, name := range names {
		mark := "missing"
		if status[name] {
			mark = "installed"
		}
		fmt.Fprintf(&b, "* %s: %s (%s)\n", name, mark, fonts.Required[name])
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
