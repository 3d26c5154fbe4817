package cli

import (
	"context"
	"errors"

	flag "github.com/spf13/pflag"
)

var errConflictingStride = errors.New("--even, --odd and --start/--step cannot be combined")

func notesCmd(a *app) *Command {
	fs := flag.NewFlagSet("notes", flag.ContinueOnError)
	fs.Uint16("start", 0, "Index of the first note to show")
	fs.Uint16("step", 1, "Show every Nth note from --start")
	fs.Bool("even", false, "Show notes 0, 2, 4, ...")
	fs.Bool("odd", false, "Show notes 1, 3, 5, ...")

	return &Command{
		Flags: fs,
		Usage: "notes <index> [flags]",
		Short: "Read notes on a book",
		Long:  "Print the notes on the book at <index>, all of them by default.",
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execNotes(io, a, fs, args)
		},
	}
}

func execNotes(io *IO, a *app, fs *flag.FlagSet, args []string) error {
	err := requireArgs(args, "index")
	if err != nil {
		return err
	}

	index, err := parseIndexArg(args[0])
	if err != nil {
		return err
	}

	start, step, err := stride(fs)
	if err != nil {
		return err
	}

	j, err := a.Journal()
	if err != nil {
		return err
	}

	notes, err := j.AllNotes(index, start, step)
	if err != nil {
		return err
	}

	io.Print(a.settings.Templates().Notes(notes))

	return nil
}

func stride(fs *flag.FlagSet) (int, int, error) {
	even, _ := fs.GetBool("even")
	odd, _ := fs.GetBool("odd")
	custom := fs.Changed("start") || fs.Changed("step")

	switch {
	case even && (odd || custom), odd && custom:
		return 0, 0, errConflictingStride
	case even:
		return 0, 2, nil
	case odd:
		return 1, 2, nil
	}

	start, _ := fs.GetUint16("start")
	step, _ := fs.GetUint16("step")

	return int(start), int(step), nil
}
