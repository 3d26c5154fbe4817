package cli

import (
	"context"
	"strings"

	flag "github.com/spf13/pflag"
)

func noteCmd(a *app) *Command {
	flags := flag.NewFlagSet("note", flag.ContinueOnError)
	// Text may start with "-"; flags end at the index.
	flags.SetInterspersed(false)

	return &Command{
		Flags: flags,
		Usage: "note <index> <end> <text>",
		Short: "Note pages up to <end>",
		Long: "Record a note on the book at <index>. The note covers the pages from the\n" +
			"book's current position through <end>, and the position moves to <end>+1.\n" +
			"Remaining arguments are joined into the note text.",
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execNote(io, a, args)
		},
	}
}

func execNote(io *IO, a *app, args []string) error {
	const fixedArgs = 2

	if len(args) <= fixedArgs {
		return requireArgs(args, "index", "end", "text")
	}

	index, err := parseIndexArg(args[0])
	if err != nil {
		return err
	}

	end, err := parseNumberArg("end", args[1])
	if err != nil {
		return err
	}

	j, err := a.Journal()
	if err != nil {
		return err
	}

	note, err := j.Note(index, end, strings.Join(args[fixedArgs:], " "))
	if err != nil {
		return err
	}

	io.Println(a.settings.Templates().PageRange(note))

	return nil
}
