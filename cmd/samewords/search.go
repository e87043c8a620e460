package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"samewords/internal/letters"
	"samewords/internal/logging"
	"samewords/internal/matcher"
)

const letterPrompt = "Enter letters (without spaces, e.g., 'reneginapi'): "

func runSearch(cmd *cobra.Command, ctx *commandContext, args []string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	source, err := ctx.wordSource(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if err := source.Ensure(cmd.Context()); err != nil {
		return err
	}

	target := ""
	if len(args) > 0 {
		target = args[0]
	}
	if target == "" {
		target, err = promptLetters(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}

	tag, err := letters.ParseLocale(cfg.Matching.Locale)
	if err != nil {
		return err
	}
	normalizer := letters.NewNormalizer(tag)
	opts := []matcher.Option{matcher.WithNormalizer(normalizer)}
	if !cfg.Matching.Prefilter {
		opts = append(opts, matcher.WithoutPrefilter())
	}
	m := matcher.New(target, opts...)

	file, size, err := source.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer file.Close()

	start := time.Now()
	progress := newScanProgress(cmd.ErrOrStderr(), size, cfg.Output.Progress)
	result, err := m.Scan(file, progress.add)
	progress.finish()
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if logger, err := ctx.ensureLogger(); err == nil {
		logger.Debug("search finished",
			logging.String("target", m.Target()),
			logging.String("locale", normalizer.Locale().String()),
			logging.Bool("prefilter", cfg.Matching.Prefilter),
			logging.Int("matches", result.Len()),
			logging.Duration("elapsed", elapsed),
		)
	}

	return renderResult(cmd.OutOrStdout(), result.Sorted(), elapsed, cfg.Output.Style)
}

// promptLetters asks for the target on out and reads one line from in. End of
// input without a newline is accepted as the answer.
func promptLetters(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, letterPrompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read letters: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
