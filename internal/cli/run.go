package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/gridcols/distribute"
	"github.com/katalvlaran/gridcols/internal/ctxlog"
	"github.com/katalvlaran/gridcols/stylesheet"
	"github.com/katalvlaran/gridcols/theme"
)

// Run loads the theme, applies the command-line overrides, generates the
// stylesheet and writes it to cfg.OutPath (stdout when "" or "-").
// Theme and validation failures are returned as ExitError with code 2.
func Run(ctx context.Context, cfg *Config, stdout io.Writer) error {
	logger := ctxlog.FromContext(ctx)

	th := theme.Default()
	if cfg.ThemePath != "" {
		loaded, err := theme.LoadFile(cfg.ThemePath)
		if err != nil {
			return &ExitError{Code: 2, Message: err.Error()}
		}
		th = loaded
		logger.Info("Theme loaded.", "path", cfg.ThemePath)
	}
	if len(cfg.Strategies) > 0 {
		th.Strategies = cfg.Strategies
	}
	if len(cfg.Values) > 0 {
		th.Values = make(map[string]string, len(cfg.Values))
		for _, v := range cfg.Values {
			th.Values[v] = v
		}
	}
	if err := th.Validate(); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	opts := []stylesheet.Option{stylesheet.WithCompact(cfg.Compact)}
	if cfg.Prefix != nil {
		opts = append(opts, stylesheet.WithPrefix(*cfg.Prefix))
	}
	sheet, err := stylesheet.New(opts...).Generate(ctx, th)
	if err != nil {
		if errors.Is(err, distribute.ErrUnknownStrategy) || errors.Is(err, distribute.ErrUnknownFormula) {
			return &ExitError{Code: 2, Message: err.Error()}
		}
		return err
	}
	if len(sheet.Entries) == 0 {
		logger.Warn("No classes generated; every value was rejected.")
	}

	if cfg.OutPath == "" || cfg.OutPath == "-" {
		_, err = sheet.WriteTo(stdout)
		return err
	}
	f, err := os.Create(cfg.OutPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", cfg.OutPath, err)
	}
	if _, err := sheet.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", cfg.OutPath, err)
	}
	logger.Info("Stylesheet written.", "path", cfg.OutPath, "classes", len(sheet.Entries))

	return f.Close()
}
