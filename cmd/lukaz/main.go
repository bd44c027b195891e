package main

import (
	"os"

	"github.com/lukaz-ai/lukaz-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
