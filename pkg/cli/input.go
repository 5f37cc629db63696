package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/getmockd/seedgen/pkg/seed"
	"github.com/mattn/go-isatty"
)

// InputSource obtains the record count and field list for one run.
type InputSource interface {
	Resolve() (seed.Request, error)
}

// FlagInput takes the request from command-line flag values.
type FlagInput struct {
	Quantity string
	Fields   string
}

// Resolve implements InputSource.
func (f FlagInput) Resolve() (seed.Request, error) {
	return seed.NewRequest(f.Quantity, f.Fields)
}

// LineInput asks for the quantity and then the fields, one line each.
type LineInput struct {
	In  io.Reader
	Out io.Writer
}

// Resolve implements InputSource.
func (l LineInput) Resolve() (seed.Request, error) {
	reader := bufio.NewReader(l.In)

	fmt.Fprint(l.Out, "How many records should be generated? ")
	quantity, err := readLine(reader)
	if err != nil {
		return seed.Request{}, err
	}
	count, err := seed.ParseQuantity(quantity)
	if err != nil {
		return seed.Request{}, err
	}

	fmt.Fprint(l.Out, "Which fields should each record have (comma-separated)? ")
	fieldList, err := readLine(reader)
	if err != nil {
		return seed.Request{}, err
	}
	fields, err := seed.ParseFields(fieldList)
	if err != nil {
		return seed.Request{}, err
	}

	return seed.Request{Count: count, Fields: fields}, nil
}

// readLine returns the next line without its terminator. A final line
// without a newline is accepted; an exhausted reader is an error.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
	case errors.Is(err, io.EOF):
		return "", errors.New("input ended before all answers were given")
	default:
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// FormInput asks for the request with a terminal form.
type FormInput struct{}

// Resolve implements InputSource.
func (FormInput) Resolve() (seed.Request, error) {
	var quantity, fields string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("How many records should be generated?").
				Placeholder("10").
				Value(&quantity).
				Validate(func(s string) error {
					_, err := seed.ParseQuantity(s)
					return err
				}),
			huh.NewInput().
				Title("Which fields should each record have?").
				Description("Comma-separated, in the order they should appear.").
				Placeholder("id, name, email").
				Value(&fields).
				Validate(func(s string) error {
					_, err := seed.ParseFields(s)
					return err
				}),
		),
	)

	if err := form.Run(); err != nil {
		return seed.Request{}, err
	}

	return seed.NewRequest(quantity, fields)
}

// interactiveInput picks the terminal form when in is a terminal and
// falls back to plain line prompts otherwise (pipes, files, tests).
func interactiveInput(in io.Reader, out io.Writer) InputSource {
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return FormInput{}
	}
	return LineInput{In: in, Out: out}
}
