package prompt

import (
	"flag"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
	"github.com/lukaz-ai/lukaz-go/pkg/lukaz"
)

type TranscriptCommand struct {
	*base.Command

	flagAudioURL string
	flagFilePath string
}

func (c *TranscriptCommand) Synopsis() string {
	return "Transcribe an audio recording"
}

func (c *TranscriptCommand) Help() string {
	return `Usage: lukaz prompt transcript [options] BOARD_ID

  Transcribes a recording so it can be submitted as a prompt. The recording
  is identified by -audio-url or -file-path.` +
		c.Flags().Help()
}

func (c *TranscriptCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("prompt transcript", flag.ContinueOnError))
	c.ClientFlags(f)

	f.StringVar(&c.flagAudioURL, "audio-url", "", "URL of the recording.")
	f.StringVar(&c.flagFilePath, "file-path", "", "Storage path of the recording.")
	return f
}

func (c *TranscriptCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return c.Usage("error parsing flags: %v", err)
	}
	if flags.NArg() != 1 {
		return c.Usage("expected exactly one board ID")
	}
	if c.flagAudioURL == "" && c.flagFilePath == "" {
		return c.Usage("one of -audio-url or -file-path is required")
	}

	client, err := c.NewClient()
	if err != nil {
		return c.Fail(err)
	}

	ctx, cancel := c.Context()
	defer cancel()

	result, err := client.GetTranscript(ctx, flags.Arg(0), lukaz.Transcript{
		AudioURL: c.flagAudioURL,
		FilePath: c.flagFilePath,
	})
	if err != nil {
		return c.Fail(err)
	}
	return c.Print(result)
}
