// Package report renders training reports as localised text lines, a markdown table or HTML.
package report

import (
	"bytes"
	"fmt"
	"github.com/myrjola/ftracker/internal/errors"
	"github.com/myrjola/ftracker/internal/i18n"
	"github.com/myrjola/ftracker/internal/training"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"io"
	"log/slog"
	"strings"
)

// ErrUnknownFormat is returned for output formats other than text, markdown and html.
var ErrUnknownFormat = errors.NewSentinel("unknown output format")

// Format selects how [Renderer.Render] lays out reports.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// UnmarshalText accepts text, markdown (or md) and html, case-insensitive.
func (f *Format) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "text", "":
		*f = FormatText
	case "markdown", "md":
		*f = FormatMarkdown
	case "html":
		*f = FormatHTML
	default:
		return errors.Wrap(ErrUnknownFormat, "parse format", slog.String("format", string(b)))
	}
	return nil
}

// Renderer writes reports in one language and format.
type Renderer struct {
	lang   i18n.Language
	format Format
	md     goldmark.Markdown
}

// NewRenderer returns a Renderer. Unsupported languages render in [i18n.DefaultLanguage].
func NewRenderer(lang i18n.Language, format Format) *Renderer {
	if !i18n.IsSupported(lang) {
		lang = i18n.DefaultLanguage
	}
	return &Renderer{
		lang:   lang,
		format: format,
		md:     goldmark.New(goldmark.WithExtensions(extension.Table)),
	}
}

func (r *Renderer) t(key string) string {
	return i18n.Translate(r.lang, key)
}

// Line renders a single report on one line. In English it matches [training.Report.Render].
func (r *Renderer) Line(rep training.Report) string {
	return fmt.Sprintf("%s: %s; %s: %.3f %s; %s: %.3f %s; %s: %.3f %s; %s: %.3f.",
		r.t("report.type"), rep.WorkoutType,
		r.t("report.duration"), rep.DurationHours, r.t("unit.hours"),
		r.t("report.distance"), rep.DistanceKm, r.t("unit.km"),
		r.t("report.speed"), rep.MeanSpeedKmH, r.t("unit.kmh"),
		r.t("report.calories"), rep.CaloriesKcal)
}

// Markdown renders reports as a titled table, one row per report.
func (r *Renderer) Markdown(reports []training.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.t("table.title"))
	fmt.Fprintf(&b, "| %s | %s, %s | %s, %s | %s, %s | %s |\n",
		r.t("report.type"),
		r.t("report.duration"), r.t("unit.hours"),
		r.t("report.distance"), r.t("unit.km"),
		r.t("report.speed"), r.t("unit.kmh"),
		r.t("report.calories"))
	b.WriteString("| --- | ---: | ---: | ---: | ---: |\n")
	for _, rep := range reports {
		fmt.Fprintf(&b, "| %s | %.3f | %.3f | %.3f | %.3f |\n",
			rep.WorkoutType, rep.DurationHours, rep.DistanceKm, rep.MeanSpeedKmH, rep.CaloriesKcal)
	}
	return b.String()
}

// HTML converts the markdown table to HTML.
func (r *Renderer) HTML(reports []training.Report) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(r.Markdown(reports)), &buf); err != nil {
		return "", errors.Wrap(err, "convert markdown", slog.Int("reports", len(reports)))
	}
	return buf.String(), nil
}

// Render writes reports to w in the renderer's format.
func (r *Renderer) Render(w io.Writer, reports []training.Report) error {
	var out string
	switch r.format {
	case FormatText:
		var b strings.Builder
		for _, rep := range reports {
			b.WriteString(r.Line(rep))
			b.WriteByte('\n')
		}
		out = b.String()
	case FormatMarkdown:
		out = r.Markdown(reports)
	case FormatHTML:
		var err error
		if out, err = r.HTML(reports); err != nil {
			return err
		}
	default:
		return errors.Wrap(ErrUnknownFormat, "render", slog.String("format", string(r.format)))
	}
	if _, err := io.WriteString(w, out); err != nil {
		return errors.Wrap(err, "write reports")
	}
	return nil
}
