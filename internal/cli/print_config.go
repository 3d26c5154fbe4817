package cli

import (
	"context"
	"fmt"

	flag "github.com/spf13/pflag"
)

func printConfigCmd(a *app) *Command {
	return &Command{
		Flags: flag.NewFlagSet("print-config", flag.ContinueOnError),
		Usage: "print-config",
		Short: "Show resolved configuration",
		Long:  "Display the effective settings and which file they were loaded from.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			return execPrintConfig(io, a)
		},
	}
}

func execPrintConfig(io *IO, a *app) error {
	s := a.settings

	io.Printf("welcome_message=%q\n", s.WelcomeMessage)
	io.Printf("welcome_delay=%d\n", s.WelcomeDelay)
	io.Printf("prompt=%q\n", s.Prompt)
	io.Printf("prompt_user_prefix=%q\n", s.PromptUserPrefix)
	io.Printf("prompt_user_suffix=%q\n", s.PromptUserSuffix)
	io.Printf("page_ref_prefix=%q\n", s.PageRefPrefix)
	io.Printf("page_ref_infix=%q\n", s.PageRefInfix)
	io.Printf("page_ref_suffix=%q\n", s.PageRefSuffix)

	dir, err := a.DataDir()
	if err != nil {
		return fmt.Errorf("resolving data dir: %w", err)
	}

	io.Println("data_dir=" + dir)

	io.Println("")
	io.Println("# sources")

	switch {
	case s.Sources.File == "":
		io.Println("(defaults only)")
	case s.Sources.Created:
		io.Println("settings=" + s.Sources.File + " (created with defaults)")
	default:
		io.Println("settings=" + s.Sources.File)
	}

	return nil
}
