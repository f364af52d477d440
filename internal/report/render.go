package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/DehanLUO/modern-go-template/models"
)

// Variant selects which report(s) [Render] produces.
type Variant string

const (
	// VariantLibrary renders the report with the Version line.
	VariantLibrary Variant = "library"
	// VariantBinary renders the report without the Version line.
	VariantBinary Variant = "binary"
	// VariantBoth renders the library report followed by the binary report,
	// the way the default program entry point does.
	VariantBoth Variant = "both"
)

// Format selects how [Render] lays the report out.
type Format string

const (
	FormatText   Format = "text"
	FormatJSON   Format = "json"
	FormatTable  Format = "table"
	FormatStyled Format = "styled"
)

// ParseVariant validates s as a [Variant].
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantLibrary, VariantBinary, VariantBoth:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

// ParseFormat validates s as a [Format].
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatTable, FormatStyled:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func (v Variant) options() ([]Options, error) {
	switch v {
	case VariantLibrary:
		return []Options{Library}, nil
	case VariantBinary:
		return []Options{Binary}, nil
	case VariantBoth:
		return []Options{Library, Binary}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}
}

// Render writes the report(s) selected by variant to w in the given format.
//
// Errors from w are returned unchanged.
func Render(w io.Writer, md models.BuildMetadata, variant Variant, format Format) error {
	opts, err := variant.options()
	if err != nil {
		return err
	}

	var write func(io.Writer, models.BuildMetadata, Options) error
	switch format {
	case FormatText:
		write = Write
	case FormatStyled:
		write = writeStyled
	case FormatTable:
		write = writeTable
	case FormatJSON:
		return writeJSON(w, md, variant)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	for _, o := range opts {
		if err := write(w, md, o); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, md models.BuildMetadata, variant Variant) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	switch variant {
	case VariantLibrary:
		return enc.Encode(md)
	case VariantBinary:
		return enc.Encode(md.WithoutVersion())
	default:
		return enc.Encode(struct {
			Library models.BuildMetadata `json:"library"`
			Binary  json.Marshaler       `json:"binary"`
		}{
			Library: md,
			Binary:  md.WithoutVersion(),
		})
	}
}

func writeTable(w io.Writer, md models.BuildMetadata, opts Options) error {
	tw := table.NewWriter()
	tw.SetTitle(Title)
	tw.SetStyle(table.StyleLight)

	for i, section := range sections(md, opts) {
		if i > 0 {
			tw.AppendSeparator()
		}
		for _, e := range section {
			tw.AppendRow(table.Row{e.label, e.value})
		}
	}

	ew := &errWriter{w: w}
	ew.write(tw.Render())
	ew.write("\n")
	return ew.err
}

type styles struct {
	title lipgloss.Style
	rule  lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
}

// newStyles picks the colour profile of w, so a file or pipe gets plain text.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().Bold(true),
		rule:  r.NewStyle().Faint(true),
		label: r.NewStyle().Faint(true),
		value: r.NewStyle(),
	}
}

func writeStyled(w io.Writer, md models.BuildMetadata, opts Options) error {
	st := newStyles(w)
	ew := &errWriter{w: w}

	ew.write(st.title.Render(Title) + "\n")
	ew.write(st.rule.Render(strings.Repeat("-", len(Title))) + "\n")
	for i, section := range sections(md, opts) {
		if i > 0 {
			ew.write("\n")
		}
		for _, e := range section {
			label := fmt.Sprintf("%-*s:", labelWidth, e.label)
			ew.write(st.label.Render(label) + " " + st.value.Render(e.value) + "\n")
		}
	}

	return ew.err
}
