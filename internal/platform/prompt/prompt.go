package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrNoInput         = errors.New("no input available")
	ErrMalformedNumber = errors.New("malformed number")
)

// FieldError asocia un error de entrada con el campo que se estaba pidiendo.
type FieldError struct {
	Field string
	Input string // lo que escribió el usuario (ya trimmeado)
	Err   error
}

func (e *FieldError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := e.Field
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	if e.Input != "" {
		base += fmt.Sprintf(" (input=%q)", e.Input)
	}
	return base
}

func (e *FieldError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Prompter escribe un prompt y lee una línea por campo.
// Es bloqueante y sin timeout: espera hasta que haya una línea.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Header imprime una línea de título antes de los prompts.
func (p *Prompter) Header(title string) error {
	_, err := fmt.Fprintln(p.out, title)
	return err
}

// Line pide `label` y devuelve la línea leída sin espacios alrededor.
func (p *Prompter) Line(label string) (string, error) {
	if _, err := fmt.Fprintf(p.out, "  => %s: ", label); err != nil {
		return "", &FieldError{Field: label, Err: err}
	}

	s, err := p.in.ReadString('\n')
	if err != nil {
		// Última línea sin '\n': se acepta tal cual.
		if errors.Is(err, io.EOF) && s != "" {
			return strings.TrimSpace(s), nil
		}
		if errors.Is(err, io.EOF) {
			return "", &FieldError{Field: label, Err: ErrNoInput}
		}
		return "", &FieldError{Field: label, Err: err}
	}
	return strings.TrimSpace(s), nil
}

// Uint8 pide `label` y lo parsea como entero sin signo de 8 bits (0..255).
func (p *Prompter) Uint8(label string) (uint8, error) {
	s, err := p.Line(label)
	if err != nil {
		return 0, err
	}
	return ParseUint8(label, s)
}

func ParseUint8(field, s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, &FieldError{
			Field: field,
			Input: s,
			Err:   fmt.Errorf("%w: want an integer between 0 and 255", ErrMalformedNumber),
		}
	}
	return uint8(v), nil
}
