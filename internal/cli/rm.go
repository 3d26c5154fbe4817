package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

func rmCmd(a *app) *Command {
	return &Command{
		Flags: flag.NewFlagSet("rm", flag.ContinueOnError),
		Usage: "rm <index>",
		Short: "Delete a book",
		Long: "Delete the book at <index> together with its notes.\n\n" +
			"Books are addressed by position: every book after <index> moves down by one.",
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execRm(io, a, args)
		},
	}
}

func execRm(io *IO, a *app, args []string) error {
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

	removed, err := j.DeleteBook(index)
	if err != nil {
		return err
	}

	io.Printf("Deleted %s by %s\n", removed.Name, removed.Author)

	return nil
}
