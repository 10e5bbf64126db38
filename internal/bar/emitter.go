package bar

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"codeberg.org/mutker/statusfeed/internal/errors"
	"codeberg.org/mutker/statusfeed/internal/status"
	"github.com/charmbracelet/lipgloss"
)

// Emitter writes cycles to the bar host.
type Emitter interface {
	Start() error
	Emit(blocks []status.Block) error
}

const i3barHeader = "{\"version\":1}\n[\n[]\n"

// I3Bar speaks the i3bar protocol: a version header, the opening of an
// endless array and one comma-prefixed block array per cycle.
type I3Bar struct {
	w   *bufio.Writer
	enc *json.Encoder
}

func NewI3Bar(w io.Writer) *I3Bar {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)

	return &I3Bar{w: bw, enc: enc}
}

func (e *I3Bar) Start() error {
	if _, err := e.w.WriteString(i3barHeader); err != nil {
		return errors.New().Wrap(errors.ErrWriteOutput, err)
	}
	return e.flush()
}

func (e *I3Bar) Emit(blocks []status.Block) error {
	if blocks == nil {
		blocks = []status.Block{}
	}

	if err := e.w.WriteByte(','); err != nil {
		return errors.New().Wrap(errors.ErrWriteOutput, err)
	}
	if err := e.enc.Encode(blocks); err != nil {
		return errors.New().Wrap(errors.ErrWriteOutput, err)
	}
	return e.flush()
}

func (e *I3Bar) flush() error {
	if err := e.w.Flush(); err != nil {
		return errors.New().Wrap(errors.ErrWriteOutput, err)
	}
	return nil
}

// Preview renders each cycle as one colored terminal line.
type Preview struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	sep      lipgloss.Style
}

func NewPreview(w io.Writer) *Preview {
	r := lipgloss.NewRenderer(w)
	return &Preview{
		w:        w,
		renderer: r,
		sep:      r.NewStyle().Faint(true),
	}
}

func (*Preview) Start() error {
	return nil
}

func (e *Preview) Emit(blocks []status.Block) error {
	var b strings.Builder
	for i, block := range blocks {
		b.WriteString(e.renderer.NewStyle().
			Foreground(lipgloss.Color(block.Color)).
			Background(lipgloss.Color(block.Background)).
			Render(block.FullText))
		if block.Separator && i < len(blocks)-1 {
			b.WriteString(e.sep.Render("|"))
		}
	}
	b.WriteByte('\n')

	if _, err := io.WriteString(e.w, b.String()); err != nil {
		return errors.New().Wrap(errors.ErrWriteOutput, err)
	}
	return nil
}
