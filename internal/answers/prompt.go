package answers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter asks questions on a line-oriented terminal.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter reading answers from r and writing prompts to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: w}
}

// Collect asks every visible question in order and returns the collected
// values. Keys present in preset are not asked. Invalid input is reported
// and the question is asked again; running out of input is an error.
func (p *Prompter) Collect(questions []Question, preset Values) (Values, error) {
	v := Values{}
	for k, val := range preset {
		v[k] = val
	}

	for _, q := range questions {
		if _, done := v[q.Key]; done {
			continue
		}
		if !q.Visible(v) {
			continue
		}

		var (
			val any
			err error
		)
		switch q.Kind {
		case Confirm:
			val, err = p.askConfirm(q)
		default:
			val, err = p.askInput(q)
		}
		if err != nil {
			return nil, err
		}
		v[q.Key] = val
	}
	return v, nil
}

func (p *Prompter) askInput(q Question) (string, error) {
	for {
		if q.DefaultText != "" {
			fmt.Fprintf(p.out, "? %s (%s): ", q.Message, q.DefaultText)
		} else {
			fmt.Fprintf(p.out, "? %s: ", q.Message)
		}

		line, err := p.readLine(q.Key)
		if err != nil {
			return "", err
		}
		if line == "" {
			line = q.DefaultText
		}
		if q.Validate != nil {
			if verr := q.Validate(line); verr != nil {
				fmt.Fprintf(p.out, "  ✗ %s\n", verr)
				continue
			}
		}
		return line, nil
	}
}

func (p *Prompter) askConfirm(q Question) (bool, error) {
	hint := "y/N"
	if q.DefaultBool {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(p.out, "? %s [%s] ", q.Message, hint)

		line, err := p.readLine(q.Key)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "":
			return q.DefaultBool, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintf(p.out, "  ✗ please answer y or n\n")
	}
}

// readLine returns the next trimmed line. A final line without a newline
// is accepted; EOF with nothing read is an error.
func (p *Prompter) readLine(key string) (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading answer for %s: unexpected end of input", key)
		}
		return "", fmt.Errorf("reading answer for %s: %w", key, err)
	}
	return strings.TrimSpace(line), nil
}
