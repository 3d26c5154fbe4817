package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// newCmd returns the new command.
func newCmd(a *app) *Command {
	return &Command{
		Flags: flag.NewFlagSet("new", flag.ContinueOnError),
		Usage: "new <title> <author>",
		Short: "Add a book to the library",
		Long:  "Add an unstarted book to the end of the library and print its index.",
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execNew(io, a, args)
		},
	}
}

func execNew(io *IO, a *app, args []string) error {
	err := requireArgs(args, "title", "author")
	if err != nil {
		return err
	}

	j, err := a.Journal()
	if err != nil {
		return err
	}

	index, err := j.NewBook(args[0], args[1])
	if err != nil {
		return err
	}

	io.Println(index)

	return nil
}
