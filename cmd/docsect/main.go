package main

import (
	"log/slog"
	"os"

	"github.com/dgallion1/docsect/internal/cli"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	cli.Execute(log)
}
