package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

func pageCmd(a *app) *Command {
	return &Command{
		Flags: flag.NewFlagSet("page", flag.ContinueOnError),
		Usage: "page <index> <page>",
		Short: "Show the note covering a page",
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execPage(io, a, args)
		},
	}
}

func execPage(io *IO, a *app, args []string) error {
	err := requireArgs(args, "index", "page")
	if err != nil {
		return err
	}

	index, err := parseIndexArg(args[0])
	if err != nil {
		return err
	}

	page, err := parseNumberArg("page", args[1])
	if err != nil {
		return err
	}

	j, err := a.Journal()
	if err != nil {
		return err
	}

	note, err := j.NoteForPage(index, page)
	if err != nil {
		return err
	}

	io.Print(a.settings.Templates().NoteForPage(note))

	return nil
}
