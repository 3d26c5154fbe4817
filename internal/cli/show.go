package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

func showCmd(a *app) *Command {
	return &Command{
		Flags: flag.NewFlagSet("show", flag.ContinueOnError),
		Usage: "show <index>",
		Short: "Show a book and all its notes",
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execShow(io, a, args)
		},
	}
}

func execShow(io *IO, a *app, args []string) error {
	err := requireArgs(args, "index")
	if err != nil {
		return err
	}

	index, err := parseIndexArg(args[0])
	if err != nil {
		return err
	}

	j, err := a.Journal()
	if err != nil {
		return err
	}

	book, err := j.Book(index)
	if err != nil {
		return err
	}

	io.Print(a.settings.Templates().Book(index, book))

	return nil
}
