package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/lox/choker/internal/valuation"
)

type styles struct {
	header lipgloss.Style
	hand   lipgloss.Style
	value  lipgloss.Style
	stage  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		hand:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		value:  r.NewStyle().Foreground(lipgloss.Color("10")),
		stage:  r.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("12")),
	}
}

// Writer renders reports in one format.
type Writer struct {
	out    io.Writer
	format Format
	styles styles
}

// Option configures a Writer
type Option func(*writerOptions)

type writerOptions struct {
	color bool
}

// WithColor enables or disables ANSI styling in the table format.
func WithColor(enabled bool) Option {
	return func(o *writerOptions) { o.color = enabled }
}

// NewWriter creates a writer. Color defaults to whatever the output supports.
func NewWriter(out io.Writer, format Format, opts ...Option) *Writer {
	o := writerOptions{color: true}
	for _, opt := range opts {
		opt(&o)
	}

	renderer := lipgloss.NewRenderer(out)
	if !o.color {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Writer{out: out, format: format, styles: newStyles(renderer)}
}

// Write renders a full table run.
func (w *Writer) Write(r Report) error {
	switch w.format {
	case FormatJSON:
		return w.json(r)
	case FormatYAML:
		return w.yaml(r)
	case FormatTable:
		return w.tableReport(r)
	default:
		return w.textReport(r)
	}
}

// WriteDistribution renders a value histogram.
func (w *Writer) WriteDistribution(d DistributionReport) error {
	switch w.format {
	case FormatJSON:
		return w.json(d)
	case FormatYAML:
		return w.yaml(d)
	}

	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
	if w.format == FormatTable {
		fmt.Fprintf(tw, "%s\n", w.styles.stage.Render(fmt.Sprintf("%s %s", d.Stage, d.Field)))
		fmt.Fprintf(tw, "%s\t%s\n", w.styles.header.Render("value"), w.styles.header.Render("hands"))
	}
	for _, b := range d.Buckets {
		fmt.Fprintf(tw, "%s\t%d\n", formatValue(b.Value), b.Count)
	}
	return tw.Flush()
}

// WriteHand renders one hand's record and the draws behind its potential.
func (w *Writer) WriteHand(h HandReport) error {
	switch w.format {
	case FormatJSON:
		return w.json(h)
	case FormatYAML:
		return w.yaml(h)
	}

	if _, err := fmt.Fprintf(w.out, "%s %s (%s, %s)\n", h.Record.Hand, recordText(h.Record), h.Stage, h.Shape); err != nil {
		return err
	}
	if len(h.Draws) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		w.styles.header.Render("draw"),
		w.styles.header.Render("hand"),
		w.styles.header.Render("chance"),
		w.styles.header.Render("potential"),
		w.styles.header.Render("weighted"))
	for _, d := range h.Draws {
		fmt.Fprintf(tw, "%s\t%s\t%.5f\t%s\t%.5f\n",
			d.Piece,
			w.styles.hand.Render(d.Child),
			d.Probability,
			formatValue(d.ChildPotential),
			d.Contribution)
	}
	return tw.Flush()
}

// WriteSimulation renders a simulation summary next to the exact values.
func (w *Writer) WriteSimulation(sr SimulationReport) error {
	switch w.format {
	case FormatJSON:
		return w.json(sr)
	case FormatYAML:
		return w.yaml(sr)
	}

	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", w.styles.header.Render("hand"), w.styles.hand.Render(sr.Hand))
	if sr.Without != "" {
		fmt.Fprintf(tw, "without\t%s\n", sr.Without)
	}
	fmt.Fprintf(tw, "deals\t%d (seed %d)\n", sr.Iterations, sr.Seed)
	fmt.Fprintf(tw, "probability\t%.5f%% exact, %.5f%% simulated\n", sr.ExactProbability, sr.SimulatedProbability)
	fmt.Fprintf(tw, "potential\t%s exact, %s simulated ± %.4f\n",
		w.styles.value.Render(formatValue(sr.ExactPotential)),
		w.styles.value.Render(fmt.Sprintf("%.4f", sr.MeanValue)),
		sr.StdError)
	fmt.Fprintf(tw, "95%% interval\t[%.4f, %.4f]\n", sr.Interval95[0], sr.Interval95[1])
	fmt.Fprintf(tw, "median\t%s\n", formatValue(sr.MedianValue))
	for _, name := range []string{"Sets", "Empress", "Palace"} {
		if share, ok := sr.Shapes[name]; ok {
			fmt.Fprintf(tw, "%s\t%.3f%%\n", strings.ToLower(name), share)
		}
	}
	return tw.Flush()
}

func recordText(r valuation.Record) string {
	return fmt.Sprintf("{'actual': %s, 'potential': %s, 'probability': %s}",
		formatValue(r.Actual), formatValue(r.Potential), formatValue(r.Probability))
}

func (w *Writer) textReport(r Report) error {
	for _, s := range r.Stages {
		for _, rec := range s.Hands {
			if _, err := fmt.Fprintf(w.out, "%s %s\n", rec.Hand, recordText(rec)); err != nil {
				return err
			}
		}
	}
	if r.Check != nil {
		if _, err := fmt.Fprintln(w.out, formatValue(r.Check.Probability)); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) tableReport(r Report) error {
	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i, s := range r.Stages {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s\t\t\t\t\n", w.styles.stage.Render(s.Stage.String()))
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n",
			w.styles.header.Render("hand"),
			w.styles.header.Render("actual"),
			w.styles.header.Render("potential"),
			w.styles.header.Render("probability"))
		for _, rec := range s.Hands {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n",
				w.styles.hand.Render(rec.Hand),
				formatValue(rec.Actual),
				w.styles.value.Render(fmt.Sprintf("%.3f", rec.Potential)),
				fmt.Sprintf("%.5f%%", rec.Probability))
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if r.Check != nil {
		_, err := fmt.Fprintf(w.out, "\nP(%s | %s removed) = %.5f%%\n", r.Check.Hand, r.Check.Without, r.Check.Probability)
		return err
	}
	return nil
}

func (w *Writer) json(v any) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (w *Writer) yaml(v any) error {
	enc := yaml.NewEncoder(w.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
