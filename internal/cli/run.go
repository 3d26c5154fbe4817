// Package cli implements the bw command line: one-shot subcommands and the
// interactive session.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/bw-notes/bw/internal/config"
	"github.com/bw-notes/bw/internal/fs"
)

// defaultCommand runs when no subcommand is given.
const defaultCommand = "repl"

// Run is the main entry point. Returns exit code.
//
// A value on sigCh cancels the command's context. A non-terminal session
// closes in if it is an [io.Closer] so a pending read ends; a terminal
// session ends at its next prompt, and Ctrl-C there aborts the prompt.
func Run(in io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	globals := flag.NewFlagSet("bw", flag.ContinueOnError)
	globals.SetOutput(io.Discard)
	globals.SetInterspersed(false)
	globals.BoolP("help", "h", false, "Show help")
	globals.StringP("config", "c", "", "Use specified settings file")
	globals.String("data-dir", "", "Store the library in `dir`")

	if len(args) > 0 {
		args = args[1:]
	}

	err := globals.Parse(args)
	if err != nil {
		fprintln(errOut, "error:", globalFlagError(err))
		fprintln(errOut)
		printUsage(errOut, globals, nil)

		return 1
	}

	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelWarn}))

	configPath, _ := globals.GetString("config")
	dataDir, _ := globals.GetString("data-dir")

	if globals.Changed("data-dir") && dataDir == "" {
		fprintln(errOut, "error: --data-dir cannot be empty")

		return 1
	}

	fsys := fs.NewReal()

	settings, err := config.Load(fsys, config.LoadInput{
		ConfigPath:      configPath,
		DataDirOverride: dataDir,
		Env:             env,
	}, logger)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	o := NewIO(out, errOut)

	if settings.Sources.Created {
		o.ErrPrintln("Created settings file at " + settings.Sources.File)
	}

	a := &app{
		fs:       fsys,
		env:      env,
		settings: settings,
		logger:   logger,
		io:       o,
	}

	commands := []*Command{
		newCmd(a),
		rmCmd(a),
		noteCmd(a),
		finishCmd(a),
		pageCmd(a),
		lsCmd(a),
		notesCmd(a),
		showCmd(a),
		exportCmd(a),
		printConfigCmd(a),
		replCmd(a, in, out),
	}

	if help, _ := globals.GetBool("help"); help {
		printUsage(out, globals, commands)

		return 0
	}

	rest := globals.Args()

	name := defaultCommand
	if len(rest) > 0 {
		name, rest = rest[0], rest[1:]
	}

	var cmd *Command

	for _, c := range commands {
		if c.Name() == name {
			cmd = c

			break
		}
	}

	if cmd == nil {
		fprintln(errOut, "error:", fmt.Errorf("%w: %s", ErrUnknownCommand, name))
		fprintln(errOut)
		printUsage(errOut, globals, commands)

		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sigCh != nil {
		go func() {
			select {
			case <-sigCh:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	return cmd.Run(ctx, o, rest)
}

// globalFlagError maps pflag parse errors onto this package's sentinels.
func globalFlagError(err error) error {
	kind, flagName, ok := strings.Cut(err.Error(), ": ")
	if !ok {
		return err
	}

	switch kind {
	case "unknown flag", "unknown shorthand flag":
		return fmt.Errorf("%w: %s", ErrUnknownFlag, flagName)
	case "flag needs an argument":
		return fmt.Errorf("%w: %s", ErrFlagRequiresArg, flagName)
	default:
		return err
	}
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(w io.Writer, globals *flag.FlagSet, commands []*Command) {
	fprintln(w, "bw - notes while reading books")
	fprintln(w)
	fprintln(w, "Usage: bw [global flags] [command] [args]")
	fprintln(w, "Without a command, an interactive session starts.")
	fprintln(w)
	fprintln(w, "Global flags:")

	var buf strings.Builder

	globals.SetOutput(&buf)
	globals.PrintDefaults()
	globals.SetOutput(io.Discard)

	_, _ = io.WriteString(w, buf.String())

	if len(commands) == 0 {
		return
	}

	fprintln(w)
	fprintln(w, "Commands:")

	for _, c := range commands {
		fprintln(w, c.HelpLine())
	}
}
