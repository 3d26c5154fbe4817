package cli

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/bw-notes/bw/internal/journal"
)

// Version is printed when an interactive session starts.
const Version = "0.0.0"

const clearScreen = "\x1bc\x1b[3J"

// errQuit ends the session normally.
var errQuit = errors.New("quit")

func replCmd(a *app, in io.Reader, out io.Writer) *Command {
	return &Command{
		Flags: flag.NewFlagSet("repl", flag.ContinueOnError),
		Usage: "repl",
		Short: "Start an interactive session (default)",
		Long: "Start an interactive session. Type a command, then answer the prompts\n" +
			"for its arguments. Type h for the list of commands, q to leave.",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			err := requireArgs(args)
			if err != nil {
				return err
			}

			return runSession(ctx, a, in, out, o)
		},
	}
}

// session is one interactive run.
type session struct {
	ctx    context.Context
	app    *app
	io     *IO
	reader lineReader
	styles styles
}

func runSession(ctx context.Context, a *app, in io.Reader, out io.Writer, o *IO) error {
	terminal := isTerminal(in, out)

	s := &session{
		ctx:    ctx,
		app:    a,
		io:     o,
		styles: newStyles(out, terminal),
	}

	if terminal {
		s.reader = newLinerReader(historyPath(a.env), replCompletions())

		o.Println(s.styles.render(s.styles.muted, "bw version "+Version))
		playBanner(ctx, out, s.styles, a.settings.Prompt, a.settings.WelcomeMessage,
			time.Duration(a.settings.WelcomeDelay)*time.Millisecond)
	} else {
		s.reader = newPlainReader(in, out)

		// A blocked read only ends when its input does.
		if closer, ok := in.(io.Closer); ok {
			stop := context.AfterFunc(ctx, func() { _ = closer.Close() })
			defer stop()
		}
	}

	defer func() {
		err := s.reader.Close()
		if err != nil {
			o.Warn("%v", err)
		}
	}()

	return s.loop()
}

func (s *session) loop() error {
	for {
		line, err := s.read(s.app.settings.Prompt, true)
		if err != nil {
			if endsSession(err) {
				return nil
			}

			return err
		}

		name := strings.ToLower(line)

		cmd, ok := lookupReplCommand(name)
		if !ok {
			s.io.Printf("Invalid input: %s\n", name)

			continue
		}

		err = cmd.run(s)

		switch {
		case err == nil:
		case errors.Is(err, errQuit), endsSession(err):
			return nil
		default:
			s.io.ErrPrintln(s.styles.render(s.styles.err, "error: "+err.Error()))
		}
	}
}

// endsSession reports whether err means the input is gone or the user
// asked to stop.
func endsSession(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, errAborted) ||
		errors.Is(err, context.Canceled)
}

// read prompts for one line. Once the session is cancelled it returns the
// context's error, also when the cancellation interrupted the prompt.
func (s *session) read(prompt string, remember bool) (string, error) {
	err := s.ctx.Err()
	if err != nil {
		return "", err
	}

	line, err := s.reader.Prompt(prompt, remember)
	if err != nil {
		if ctxErr := s.ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}

		return "", err
	}

	return line, nil
}

// ask prompts for one argument.
func (s *session) ask(label string) (string, error) {
	settings := s.app.settings

	return s.read(settings.PromptUserPrefix+label+settings.PromptUserSuffix, false)
}

func (s *session) askNumber(label string) (uint16, error) {
	answer, err := s.ask(label)
	if err != nil {
		return 0, err
	}

	return journal.ParseNumber(answer)
}

func (s *session) askIndex() (int, error) {
	n, err := s.askNumber("Book index")

	return int(n), err
}

func (s *session) journal() (*journal.Journal, error) {
	return s.app.Journal()
}

// replCommand is one session command and its aliases. The first name is
// the one shown in help.
type replCommand struct {
	names   []string
	section string // help section; empty hides the command
	help    string
	run     func(s *session) error
}

// replCommands returns the session commands in help order.
func replCommands() []replCommand {
	return []replCommand{
		{names: []string{"h", "help"}, section: "General commands", help: "show this list", run: (*session).help},
		{names: []string{"q", "quit", "exit"}, section: "General commands", help: "quit current session", run: quit},
		{names: []string{"c", "clear", "clean"}, section: "General commands", help: "clear screen", run: (*session).clear},
		{names: []string{"ls", "list"}, section: "Book management", help: "list currently read books", run: listBooks(false)},
		{names: []string{"la", "listall"}, section: "Book management", help: "list all books in library", run: listBooks(true)},
		{names: []string{"new", "touch"}, section: "Book management", help: "add a new book", run: (*session).newBook},
		{names: []string{"del", "delete", "rm"}, section: "Book management", help: "delete a book from library", run: (*session).deleteBook},
		{names: []string{"fsh", "finish"}, section: "Book management", help: "finish a book and give your final thoughts on it", run: (*session).finishBook},
		{names: []string{"nt", "note"}, section: "Note management", help: "make a new note", run: (*session).note},
		{names: []string{"rdp", "readpage"}, section: "Note management", help: "read your note about a specific page in a book", run: (*session).readPage},
		{names: []string{"rda", "readall"}, section: "Note management", help: "read all notes about a book", run: readNotes(0, 1)},
		{names: []string{"rde", "readeven"}, section: "Note management", help: "read every second note in a book", run: readNotes(0, 2)},
		{names: []string{"rdo", "readodd"}, section: "Note management", help: "read every second note in a book, skipping the first one", run: readNotes(1, 2)},
		{names: []string{"rdf", "readfor"}, section: "Note management", help: "read notes from any start note with any step size", run: (*session).readFor},
		{names: []string{"welcome", ""}, run: func(*session) error { return nil }},
	}
}

func lookupReplCommand(name string) (replCommand, bool) {
	for _, c := range replCommands() {
		for _, n := range c.names {
			if n == name {
				return c, true
			}
		}
	}

	return replCommand{}, false
}

func replCompletions() []string {
	var names []string

	for _, c := range replCommands() {
		for _, n := range c.names {
			if n != "" {
				names = append(names, n)
			}
		}
	}

	return names
}

func quit(*session) error { return errQuit }

func (s *session) help() error {
	s.io.Println("bw - CLI for taking notes while reading books")

	section := ""

	for _, c := range replCommands() {
		if c.section == "" {
			continue
		}

		if c.section != section {
			section = c.section
			s.io.Println(section + ":")
		}

		name := c.names[0]
		if len(c.names) > 1 {
			name += " [" + strings.Join(c.names[1:], "/") + "]"
		}

		s.io.Printf("%s: %s\n", name, c.help)
	}

	return nil
}

func (s *session) clear() error {
	s.io.Print(clearScreen)

	return nil
}

func listBooks(includeFinished bool) func(s *session) error {
	return func(s *session) error {
		j, err := s.journal()
		if err != nil {
			return err
		}

		listings, err := j.ListBooks(includeFinished)
		if err != nil {
			return err
		}

		s.io.Print(s.app.settings.Templates().BookList(listings))

		return nil
	}
}

func (s *session) newBook() error {
	title, err := s.ask("Title")
	if err != nil {
		return err
	}

	author, err := s.ask("Author")
	if err != nil {
		return err
	}

	j, err := s.journal()
	if err != nil {
		return err
	}

	_, err = j.NewBook(title, author)

	return err
}

func (s *session) deleteBook() error {
	index, err := s.askIndex()
	if err != nil {
		return err
	}

	j, err := s.journal()
	if err != nil {
		return err
	}

	_, err = j.DeleteBook(index)

	return err
}

func (s *session) note() error {
	index, err := s.askIndex()
	if err != nil {
		return err
	}

	page, err := s.askNumber("Page")
	if err != nil {
		return err
	}

	text, err := s.ask("My note")
	if err != nil {
		return err
	}

	j, err := s.journal()
	if err != nil {
		return err
	}

	_, err = j.Note(index, page, text)

	return err
}

func (s *session) finishBook() error {
	index, err := s.askIndex()
	if err != nil {
		return err
	}

	text, err := s.ask("My final thoughts on the book")
	if err != nil {
		return err
	}

	j, err := s.journal()
	if err != nil {
		return err
	}

	_, err = j.FinishBook(index, text)

	return err
}

func (s *session) readPage() error {
	index, err := s.askIndex()
	if err != nil {
		return err
	}

	page, err := s.askNumber("Page")
	if err != nil {
		return err
	}

	j, err := s.journal()
	if err != nil {
		return err
	}

	note, err := j.NoteForPage(index, page)
	if err != nil {
		return err
	}

	s.io.Print(s.app.settings.Templates().NoteForPage(note))

	return nil
}

func readNotes(start, step int) func(s *session) error {
	return func(s *session) error {
		index, err := s.askIndex()
		if err != nil {
			return err
		}

		return s.printNotes(index, start, step)
	}
}

func (s *session) readFor() error {
	index, err := s.askIndex()
	if err != nil {
		return err
	}

	start, err := s.askNumber("Index of first note")
	if err != nil {
		return err
	}

	step, err := s.askNumber("Step size")
	if err != nil {
		return err
	}

	return s.printNotes(index, int(start), int(step))
}

func (s *session) printNotes(index, start, step int) error {
	j, err := s.journal()
	if err != nil {
		return err
	}

	notes, err := j.AllNotes(index, start, step)
	if err != nil {
		return err
	}

	s.io.Print(s.app.settings.Templates().Notes(notes))

	return nil
}
