package cli

import (
	"context"
	"strings"

	flag "github.com/spf13/pflag"
)

func finishCmd(a *app) *Command {
	flags := flag.NewFlagSet("finish", flag.ContinueOnError)
	// Text may start with "-"; flags end at the index.
	flags.SetInterspersed(false)

	return &Command{
		Flags: flags,
		Usage: "finish <index> <text>",
		Short: "Finish a book with final thoughts",
		Long: "Record final thoughts on the book at <index> and mark it finished.\n" +
			"Finished books are hidden from ls unless --all is given.",
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execFinish(io, a, args)
		},
	}
}

func execFinish(io *IO, a *app, args []string) error {
	if len(args) <= 1 {
		return requireArgs(args, "index", "text")
	}

	index, err := parseIndexArg(args[0])
	if err != nil {
		return err
	}

	j, err := a.Journal()
	if err != nil {
		return err
	}

	_, err = j.FinishBook(index, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}

	book, err := j.Book(index)
	if err != nil {
		return err
	}

	io.Println(a.settings.Templates().BookLine(index, book))

	return nil
}
