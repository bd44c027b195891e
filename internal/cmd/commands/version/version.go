package version

import (
	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
	"github.com/lukaz-ai/lukaz-go/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return `Usage: lukaz version`
}

func (c *Command) Run(args []string) int {
	c.UI.Output("lukaz " + version.Version)
	return base.ExitOK
}
