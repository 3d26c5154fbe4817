package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
)

// errAborted is returned when the user aborts a prompt with Ctrl-C.
var errAborted = errors.New("aborted")

// lineReader reads one line of input after showing a prompt.
type lineReader interface {
	// Prompt shows prompt and returns the entered line without its line
	// ending. remember adds the line to the history, if there is one.
	Prompt(prompt string, remember bool) (string, error)
	Close() error
}

// isTerminal reports whether both in and out are attached to a terminal.
func isTerminal(in io.Reader, out io.Writer) bool {
	inFile, ok := in.(*os.File)
	if !ok {
		return false
	}

	outFile, ok := out.(*os.File)
	if !ok {
		return false
	}

	return isTTY(inFile) && isTTY(outFile)
}

func isTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// historyPath returns ~/.bw_history, or "" if HOME is unknown.
func historyPath(env map[string]string) string {
	home := env["HOME"]
	if home == "" {
		return ""
	}

	return filepath.Join(home, ".bw_history")
}

// linerReader provides line editing, history and tab completion.
type linerReader struct {
	state   *liner.State
	history string
}

func newLinerReader(history string, completions []string) *linerReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetCompleter(func(line string) []string {
		var matches []string

		lower := strings.ToLower(line)
		for _, c := range completions {
			if strings.HasPrefix(c, lower) {
				matches = append(matches, c)
			}
		}

		return matches
	})

	if history != "" {
		if f, err := os.Open(history); err == nil {
			_, _ = state.ReadHistory(f)
			_ = f.Close()
		}
	}

	return &linerReader{state: state, history: history}
}

func (r *linerReader) Prompt(prompt string, remember bool) (string, error) {
	line, err := r.state.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", errAborted
		}

		return "", err
	}

	line = trimInput(line)
	if remember && line != "" {
		r.state.AppendHistory(line)
	}

	return line, nil
}

// Close saves the history and restores the terminal.
func (r *linerReader) Close() error {
	var saveErr error

	if r.history != "" {
		saveErr = r.saveHistory()
	}

	closeErr := r.state.Close()

	return errors.Join(saveErr, closeErr)
}

func (r *linerReader) saveHistory() error {
	f, err := os.Create(r.history)
	if err != nil {
		return fmt.Errorf("saving history: %w", err)
	}

	_, err = r.state.WriteHistory(f)

	return errors.Join(err, f.Close())
}

// plainReader reads lines from a non-terminal input. Prompts are written
// to out unstyled.
type plainReader struct {
	in  *bufio.Reader
	out io.Writer
}

func newPlainReader(in io.Reader, out io.Writer) *plainReader {
	if in == nil {
		in = strings.NewReader("")
	}

	return &plainReader{in: bufio.NewReader(in), out: out}
}

func (r *plainReader) Prompt(prompt string, _ bool) (string, error) {
	_, _ = io.WriteString(r.out, prompt)

	line, err := r.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	return trimInput(line), nil
}

func (r *plainReader) Close() error { return nil }

// trimInput drops the line ending and trailing spaces.
func trimInput(line string) string {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return strings.TrimRight(line, " ")
}
