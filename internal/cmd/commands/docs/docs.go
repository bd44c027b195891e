package docs

import (
	"flag"
	"fmt"

	"github.com/pkg/browser"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
	"github.com/lukaz-ai/lukaz-go/pkg/lukaz"
)

// openURL is replaced in tests.
var openURL = browser.OpenURL

type Command struct {
	*base.Command

	flagErrors bool
	flagPrint  bool
}

func (c *Command) Synopsis() string {
	return "Open the API documentation"
}

func (c *Command) Help() string {
	return `Usage: lukaz docs [options]

  Opens the API documentation in the default browser.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("docs", flag.ContinueOnError))

	f.BoolVar(&c.flagErrors, "errors", false, "Open the error reference.")
	f.BoolVar(&c.flagPrint, "print", false, "Print the URL instead of opening it.")
	return f
}

func (c *Command) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return c.Usage("error parsing flags: %v", err)
	}

	url := lukaz.DocsURL
	if c.flagErrors {
		url = lukaz.ErrorsDocsURL
	}

	if c.flagPrint {
		c.UI.Output(url)
		return base.ExitOK
	}

	c.Log.Debug("opening documentation", "url", url)
	if err := openURL(url); err != nil {
		c.UI.Error(fmt.Sprintf("failed to open browser: %v", err))
		c.UI.Output(url)
		return base.ExitUsage
	}
	return base.ExitOK
}
