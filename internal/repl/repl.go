// Package repl runs the interactive chat loop.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/longkey1/gptc/internal/gptc"
	"github.com/peterh/liner"
)

// Prompt is shown before each line of user input.
const Prompt = "You> "

// Options configures an interactive run.
type Options struct {
	Reader       LineReader
	Out          io.Writer // Assistant replies
	Err          io.Writer // Banner, errors and diagnostics
	Client       gptc.Client
	Conversation *gptc.Conversation
	Spinner      bool
	Debug        bool
}

// IsExit reports whether line asks to leave the loop.
func IsExit(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), "exit")
}

// Run reads lines until exit or end of input, sending one request per line.
// Turn failures are reported and the loop continues; the user message stays
// in history. Only fatal errors are returned.
func Run(ctx context.Context, opts Options) error {
	conv := opts.Conversation

	fmt.Fprintf(opts.Err, "\n=== Interactive Chat [%s] ===\n", conv.ShortID())
	fmt.Fprintf(opts.Err, "Model: %s\n", conv.Model)
	fmt.Fprintf(opts.Err, "Type 'exit' or Ctrl+D to quit\n")
	fmt.Fprintf(opts.Err, "=============================\n\n")

	for {
		line, err := opts.Reader.ReadLine(Prompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(opts.Err, "\nGoodbye!")
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}

		// Blank lines are not sent as turns.
		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if IsExit(input) {
			fmt.Fprintln(opts.Err, "Goodbye!")
			return nil
		}

		conv.AppendUserTurn(input)

		// Debug output shares Err with the spinner.
		stop := func() {}
		if opts.Spinner && !opts.Debug {
			stop = startSpinner(opts.Err)
		}
		reply, err := gptc.Ask(ctx, opts.Client, conv)
		stop()

		if err != nil {
			if gptc.IsFatal(err) {
				return err
			}
			if ctx.Err() != nil {
				fmt.Fprintln(opts.Err, "\nInterrupted.")
				return nil
			}
			fmt.Fprintf(opts.Err, "Error: %v\n", err)
			continue
		}

		if opts.Debug {
			fmt.Fprintf(opts.Err, "Conversation %s: %d messages\n", conv.ShortID(), conv.Len())
		}

		fmt.Fprintf(opts.Out, "\nAssistant> %s\n\n", reply)
	}
}
