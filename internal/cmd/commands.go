package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
	"github.com/lukaz-ai/lukaz-go/internal/cmd/commands/board"
	"github.com/lukaz-ai/lukaz-go/internal/cmd/commands/docs"
	"github.com/lukaz-ai/lukaz-go/internal/cmd/commands/file"
	"github.com/lukaz-ai/lukaz-go/internal/cmd/commands/instruction"
	"github.com/lukaz-ai/lukaz-go/internal/cmd/commands/prompt"
	"github.com/lukaz-ai/lukaz-go/internal/cmd/commands/session"
	"github.com/lukaz-ai/lukaz-go/internal/cmd/commands/user"
	"github.com/lukaz-ai/lukaz-go/internal/cmd/commands/version"
)

// Commands is the mapping of all available lukaz commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	initCommandsWith(&base.Command{Log: log, UI: ui})
}

func initCommandsWith(b *base.Command) {
	Commands = map[string]cli.CommandFactory{
		"board": func() (cli.Command, error) {
			return &board.Command{Command: b}, nil
		},
		"board list": func() (cli.Command, error) {
			return &board.ListCommand{Command: b}, nil
		},
		"board get": func() (cli.Command, error) {
			return &board.GetCommand{Command: b}, nil
		},
		"board create": func() (cli.Command, error) {
			return &board.CreateCommand{Command: b}, nil
		},
		"board update": func() (cli.Command, error) {
			return &board.UpdateCommand{Command: b}, nil
		},
		"board delete": func() (cli.Command, error) {
			return &board.DeleteCommand{Command: b}, nil
		},
		"docs": func() (cli.Command, error) {
			return &docs.Command{Command: b}, nil
		},
		"file": func() (cli.Command, error) {
			return &file.Command{Command: b}, nil
		},
		"file upload": func() (cli.Command, error) {
			return &file.UploadCommand{Command: b}, nil
		},
		"file delete": func() (cli.Command, error) {
			return &file.DeleteCommand{Command: b}, nil
		},
		"instruction": func() (cli.Command, error) {
			return &instruction.Command{Command: b}, nil
		},
		"instruction list": func() (cli.Command, error) {
			return &instruction.ListCommand{Command: b}, nil
		},
		"instruction get": func() (cli.Command, error) {
			return &instruction.GetCommand{Command: b}, nil
		},
		"instruction create": func() (cli.Command, error) {
			return &instruction.CreateCommand{Command: b}, nil
		},
		"instruction update": func() (cli.Command, error) {
			return &instruction.UpdateCommand{Command: b}, nil
		},
		"instruction delete": func() (cli.Command, error) {
			return &instruction.DeleteCommand{Command: b}, nil
		},
		"prompt": func() (cli.Command, error) {
			return &prompt.Command{Command: b}, nil
		},
		"prompt submit": func() (cli.Command, error) {
			return &prompt.SubmitCommand{Command: b}, nil
		},
		"prompt list": func() (cli.Command, error) {
			return &prompt.ListCommand{Command: b}, nil
		},
		"prompt get": func() (cli.Command, error) {
			return &prompt.GetCommand{Command: b}, nil
		},
		"prompt update": func() (cli.Command, error) {
			return &prompt.UpdateCommand{Command: b}, nil
		},
		"prompt delete": func() (cli.Command, error) {
			return &prompt.DeleteCommand{Command: b}, nil
		},
		"prompt audio": func() (cli.Command, error) {
			return &prompt.AudioCommand{Command: b}, nil
		},
		"prompt transcript": func() (cli.Command, error) {
			return &prompt.TranscriptCommand{Command: b}, nil
		},
		"session": func() (cli.Command, error) {
			return &session.Command{Command: b}, nil
		},
		"user": func() (cli.Command, error) {
			return &user.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
