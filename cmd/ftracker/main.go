package main

import (
	"context"
	"github.com/myrjola/ftracker/internal/envstruct"
	"github.com/myrjola/ftracker/internal/errors"
	"github.com/myrjola/ftracker/internal/i18n"
	"github.com/myrjola/ftracker/internal/logging"
	"github.com/myrjola/ftracker/internal/report"
	"github.com/myrjola/ftracker/internal/training"
	"io"
	"log/slog"
	"os"
)

// errPackagesFailed is returned by run when at least one package could not be turned into a report.
var errPackagesFailed = errors.NewSentinel("some workout packages failed")

type config struct {
	// Lang is a BCP 47 tag for the report language, e.g. "ru-RU". Unsupported languages fall back to English.
	Lang string `env:"FTRACKER_LANG" envDefault:"en"`
	// Format is text, markdown or html.
	Format report.Format `env:"FTRACKER_FORMAT" envDefault:"text"`
	// LogLevel is debug, info, warn or error. Logs go to stderr, reports to stdout.
	LogLevel slog.Level `env:"FTRACKER_LOG_LEVEL" envDefault:"info"`
}

type application struct {
	logger   *slog.Logger
	renderer *report.Renderer
}

func run(ctx context.Context, stdout, stderr io.Writer, args []string, lookupEnv func(string) (string, bool)) error {
	var err error

	if lookupEnv, err = withDotenv(lookupEnv); err != nil {
		return errors.Wrap(err, "load dotenv")
	}

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	logger := logging.NewLogger(stderr, cfg.LogLevel)

	packages := samplePackages()
	if len(args) > 0 {
		if packages, err = parsePackages(args); err != nil {
			return errors.Wrap(err, "parse arguments")
		}
	}

	lang := i18n.Match(cfg.Lang)
	logger.LogAttrs(ctx, slog.LevelDebug, "configured",
		slog.String("lang", string(lang)), slog.String("format", string(cfg.Format)), slog.Int("packages", len(packages)))

	app := application{
		logger:   logger,
		renderer: report.NewRenderer(lang, cfg.Format),
	}

	reports, processErr := app.process(ctx, packages)
	if err = app.renderer.Render(stdout, reports); err != nil {
		return errors.Join(processErr, errors.Wrap(err, "render reports"))
	}
	return processErr
}

// process summarizes every package in order. A failing package is logged and skipped.
func (app *application) process(ctx context.Context, packages []workoutPackage) ([]training.Report, error) {
	var (
		reports = make([]training.Report, 0, len(packages))
		failed  int
	)
	for i, p := range packages {
		pctx := logging.WithAttrs(ctx, slog.Int("index", i), slog.String("code", p.code))

		rep, err := summarize(p)
		if err != nil {
			failed++
			app.logger.LogAttrs(pctx, slog.LevelError, "workout package failed", errors.SlogError(err))
			continue
		}
		app.logger.LogAttrs(pctx, slog.LevelDebug, "workout summarized",
			slog.String("type", rep.WorkoutType), slog.Float64("calories", rep.CaloriesKcal))
		reports = append(reports, rep)
	}

	if failed > 0 {
		return reports, errors.Wrap(errPackagesFailed, "process packages",
			slog.Int("failed", failed), slog.Int("total", len(packages)))
	}
	return reports, nil
}

func summarize(p workoutPackage) (rep training.Report, err error) {
	defer func() {
		if excp := recover(); excp != nil {
			err = errors.DecoratePanic(excp)
		}
	}()

	w, err := training.Build(p.code, p.params)
	if err != nil {
		return training.Report{}, errors.Wrap(err, "build workout")
	}
	if rep, err = training.Summarize(w); err != nil {
		return training.Report{}, errors.Wrap(err, "summarize workout")
	}
	return rep, nil
}

func main() {
	ctx := context.Background()
	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:], os.LookupEnv); err != nil {
		logger := logging.NewLogger(os.Stderr, slog.LevelError)
		logger.LogAttrs(ctx, slog.LevelError, "ftracker failed", errors.SlogError(err))
		os.Exit(1)
	}
}
