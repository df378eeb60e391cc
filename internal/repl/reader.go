package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"
)

// LineReader reads one line of user input at a time.
type LineReader interface {
	// ReadLine shows prompt and returns the next line without its newline.
	// It returns io.EOF when input is exhausted.
	ReadLine(prompt string) (string, error)
	Close() error
}

// NewLineReader returns a line-editing reader when in is a terminal and a
// plain scanner otherwise. Prompts of the scanner are written to promptOut.
func NewLineReader(in *os.File, promptOut io.Writer) LineReader {
	if term.IsTerminal(int(in.Fd())) {
		return newTerminalReader()
	}
	return NewScannerReader(in, promptOut)
}

// terminalReader provides history navigation and line editing.
// History is kept in memory only.
type terminalReader struct {
	line *liner.State
}

func newTerminalReader() *terminalReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &terminalReader{line: line}
}

func (r *terminalReader) ReadLine(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

func (r *terminalReader) Close() error {
	return r.line.Close()
}

// ScannerReader reads lines from a non-interactive source such as a pipe.
type ScannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewScannerReader creates a reader over in that writes prompts to out
func NewScannerReader(in io.Reader, out io.Writer) *ScannerReader {
	return &ScannerReader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (r *ScannerReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

func (r *ScannerReader) Close() error {
	return nil
}
