// Package container provides dependency injection for the trackexpense application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"context"
	"errors"
	"fmt"

	"trackexpense/internal/config"
	"trackexpense/internal/export"
	"trackexpense/internal/i18n"
	"trackexpense/internal/logging"
	"trackexpense/internal/receipt"
	"trackexpense/internal/report"
	"trackexpense/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
// Container is immutable after creation; fields are private and only reachable
// through getter methods.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	store    store.Store
	analyzer receipt.Analyzer
}

// Option overrides a dependency before wiring.
type Option func(*options)

type options struct {
	logger   logging.Logger
	store    store.Store
	analyzer receipt.Analyzer
}

// WithLogger replaces the logger built from configuration.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithStore replaces the configured backend.
func WithStore(s store.Store) Option {
	return func(o *options) { o.store = s }
}

// WithAnalyzer replaces the configured receipt analyzer.
func WithAnalyzer(a receipt.Analyzer) Option {
	return func(o *options) { o.analyzer = a }
}

// NewContainer creates and wires all application dependencies.
func NewContainer(ctx context.Context, cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = config.ConfigureLoggingFromConfig(cfg)
	}

	st := o.store
	if st == nil {
		var err error
		st, err = store.Open(ctx, store.Backend(cfg.Store.Backend), cfg.Store.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open store: %w", err)
		}
	}

	analyzer := o.analyzer
	if analyzer == nil && cfg.AI.Enabled {
		gemini, err := receipt.NewGeminiAnalyzer(ctx, cfg.AI.APIKey, cfg.AI.Model, cfg.AITimeout(), logger)
		if err != nil {
			_ = st.Close()
			return nil, err
		}
		analyzer = gemini
	}

	logger.Debug("Container initialized",
		logging.F(logging.FieldBackend, cfg.Store.Backend),
		logging.F("ai_enabled", analyzer != nil))

	return &Container{
		logger:   logger,
		config:   cfg,
		store:    st,
		analyzer: analyzer,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the expense backend.
func (c *Container) GetStore() store.Store {
	return c.store
}

// GetAnalyzer returns the receipt analyzer, or nil when AI is disabled.
func (c *Container) GetAnalyzer() receipt.Analyzer {
	return c.analyzer
}

// Locale returns the locale for lang, or the configured language when lang is empty.
func (c *Container) Locale(lang string) (*i18n.Locale, error) {
	if lang == "" {
		lang = c.config.Report.Language
	}
	l, err := i18n.ParseLanguage(lang)
	if err != nil {
		return nil, err
	}
	return i18n.NewLocale(l), nil
}

// NewSession wires a fresh report session rendering with locale.
func (c *Container) NewSession(locale *i18n.Locale) *report.Session {
	return report.NewSession(
		report.NewProjector(locale.FormatDate),
		report.NewGrid(report.NewSessionIDGenerator(), c.logger),
		report.NewAssembler(locale),
		c.logger,
	)
}

// Writer returns the export writer for format, or the configured format when
// format is empty.
func (c *Container) Writer(format string, locale *i18n.Locale) (export.Writer, error) {
	if format == "" {
		format = c.config.Export.Format
	}
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return export.NewWriter(f, export.Options{Delimiter: c.config.Delimiter(), Formatter: locale})
}

// Close releases the store and the analyzer client.
func (c *Container) Close() error {
	var errs []error
	if c.store != nil {
		errs = append(errs, c.store.Close())
	}
	if closer, ok := c.analyzer.(interface{ Close() error }); ok {
		errs = append(errs, closer.Close())
	}
	c.logger.Debug("Container closed")
	return errors.Join(errs...)
}
