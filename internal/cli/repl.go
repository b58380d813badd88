// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const prompt = "chembal> "

// repl reads equations line by line until EOF or ctx is cancelled.
// Errors for individual lines are printed and do not stop the loop.
func (a *app) repl(ctx context.Context, r io.Reader, w io.Writer) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	for {
		fmt.Fprint(w, prompt)
		select {
		case <-ctx.Done():
			fmt.Fprintln(w)

			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(w)
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if err := a.balanceLine(w, line); err != nil {
				fmt.Fprintln(w, "error:", err)
			}
		}
	}
}
