package file

import (
	"flag"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
	"github.com/lukaz-ai/lukaz-go/pkg/lukaz"
)

type UploadCommand struct {
	*base.Command

	flagName    string
	flagStorage bool
}

func (c *UploadCommand) Synopsis() string {
	return "Upload a document to a board"
}

func (c *UploadCommand) Help() string {
	return `Usage: lukaz file upload [options] BOARD_ID PATH

  Uploads the local file at PATH to the board. With -storage, PATH is a path
  in the platform's storage bucket and nothing is read locally.` +
		c.Flags().Help()
}

func (c *UploadCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("file upload", flag.ContinueOnError))
	c.ClientFlags(f)

	f.StringVar(&c.flagName, "name", "",
		"File name sent to the API. Defaults to the base name of PATH.")
	f.BoolVar(&c.flagStorage, "storage", false,
		"Treat PATH as a storage path instead of a local file.")
	return f
}

func (c *UploadCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return c.Usage("error parsing flags: %v", err)
	}
	if flags.NArg() != 2 {
		return c.Usage("expected a board ID and a path")
	}
	board, path := flags.Arg(0), flags.Arg(1)

	var upload lukaz.Upload = lukaz.LocalFile{Path: path, Name: c.flagName}
	if c.flagStorage {
		if c.flagName != "" {
			return c.Usage("-name cannot be used with -storage")
		}
		upload = lukaz.StoragePath{Path: path}
	}

	client, err := c.NewClient()
	if err != nil {
		return c.Fail(err)
	}

	ctx, cancel := c.Context()
	defer cancel()

	ack, err := client.UploadFile(ctx, board, upload)
	if err != nil {
		return c.Fail(err)
	}
	return c.Print(ack)
}
