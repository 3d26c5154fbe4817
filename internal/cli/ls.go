package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

func lsCmd(a *app) *Command {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.BoolP("all", "a", false, "Include finished books")

	return &Command{
		Flags: fs,
		Usage: "ls [flags]",
		Short: "List books",
		Long:  "List books being read, with their index, author and current page.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			return execLs(io, a, fs)
		},
	}
}

func execLs(io *IO, a *app, fs *flag.FlagSet) error {
	all, _ := fs.GetBool("all")

	j, err := a.Journal()
	if err != nil {
		return err
	}

	listings, err := j.ListBooks(all)
	if err != nil {
		return err
	}

	if len(listings) == 0 {
		return nil
	}

	io.Print(a.settings.Templates().BookList(listings))

	return nil
}
