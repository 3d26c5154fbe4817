package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/bw-notes/bw/internal/journal"
)

func exportCmd(a *app) *Command {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.StringP("format", "f", journal.FormatJSON, "Output format (json|yaml)")

	return &Command{
		Flags: fs,
		Usage: "export [flags]",
		Short: "Write the whole library to stdout",
		Exec: func(_ context.Context, io *IO, args []string) error {
			err := requireArgs(args)
			if err != nil {
				return err
			}

			format, _ := fs.GetString("format")

			j, err := a.Journal()
			if err != nil {
				return err
			}

			return j.Export(io.out, format)
		},
	}
}
