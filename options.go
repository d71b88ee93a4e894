package danglemark

// CheckOptions holds options for a full check pass.
type CheckOptions struct {
	Markdown bool
	Config   *HighlightConfig
}

// Option is a function that configures CheckOptions.
type Option func(*CheckOptions)

// WithMarkdown sets whether the message snapshot is parsed as markdown
// when building the rendered tree. Disabled hosts get a plain-text tree.
func WithMarkdown(enable bool) Option {
	return func(opts *CheckOptions) {
		opts.Markdown = enable
	}
}

// WithConfig sets a custom HighlightConfig.
func WithConfig(config *HighlightConfig) Option {
	return func(opts *CheckOptions) {
		opts.Config = config
	}
}

// WithTailThreshold overrides the trailing-rune threshold used by the
// element matching heuristic. The current config is copied, never
// mutated, so the shared default stays intact.
func WithTailThreshold(threshold int) Option {
	return func(opts *CheckOptions) {
		cfg := *DefaultConfig()
		if opts.Config != nil {
			cfg = *opts.Config
		}
		cfg.TailThreshold = threshold
		opts.Config = &cfg
	}
}

// defaultCheckOptions returns the default check options.
func defaultCheckOptions() *CheckOptions {
	return &CheckOptions{
		Markdown: true,
		Config:   DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *CheckOptions {
	options := defaultCheckOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
