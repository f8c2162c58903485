package merger

import (
	"fmt"

	"github.com/bricktools/bricktools/blerrors"
	"github.com/bricktools/bricktools/wanted"
)

// Option is a function that configures a merge operation
type Option func(*mergeConfig) error

// mergeConfig holds configuration for a merge operation
type mergeConfig struct {
	// Input source (exactly one pair must be set)
	leftPath  string
	rightPath string
	leftDoc   *wanted.ParseResult
	rightDoc  *wanted.ParseResult
	hasPaths  bool
	hasParsed bool

	config Config
}

// WithFilePaths selects the left and right input files to merge.
// Mutually exclusive with WithParsed.
func WithFilePaths(left, right string) Option {
	return func(cfg *mergeConfig) error {
		if left == "" || right == "" {
			return &blerrors.ConfigError{Option: "WithFilePaths", Message: "both file paths are required"}
		}
		cfg.leftPath = left
		cfg.rightPath = right
		cfg.hasPaths = true
		return nil
	}
}

// WithParsed supplies pre-parsed left and right documents to merge.
// Mutually exclusive with WithFilePaths.
func WithParsed(left, right *wanted.ParseResult) Option {
	return func(cfg *mergeConfig) error {
		if left == nil || right == nil {
			return &blerrors.ConfigError{Option: "WithParsed", Message: "both documents are required"}
		}
		cfg.leftDoc = left
		cfg.rightDoc = right
		cfg.hasParsed = true
		return nil
	}
}

// WithConfig replaces the full merge configuration
func WithConfig(config Config) Option {
	return func(cfg *mergeConfig) error {
		cfg.config = config
		return nil
	}
}

// WithLogger sets the structured logger used during merging
func WithLogger(logger wanted.Logger) Option {
	return func(cfg *mergeConfig) error {
		cfg.config.Logger = logger
		return nil
	}
}

// WithValidateInputs toggles re-validation of the inputs before merging
func WithValidateInputs(validate bool) Option {
	return func(cfg *mergeConfig) error {
		cfg.config.ValidateInputs = validate
		return nil
	}
}

// MergeWithOptions merges two wanted lists using functional options.
// This combines input source selection and configuration in a single call:
//
//	result, err := merger.MergeWithOptions(
//	    merger.WithFilePaths("base.xml", "extra.xml"),
//	    merger.WithLogger(logger),
//	)
func MergeWithOptions(opts ...Option) (*MergeResult, error) {
	cfg := &mergeConfig{config: DefaultConfig()}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("merger: invalid options: %w", err)
		}
	}

	if cfg.hasPaths && cfg.hasParsed {
		return nil, fmt.Errorf("merger: invalid options: %w",
			&blerrors.ConfigError{Option: "input", Message: "WithFilePaths and WithParsed are mutually exclusive"})
	}
	if !cfg.hasPaths && !cfg.hasParsed {
		return nil, fmt.Errorf("merger: invalid options: %w",
			&blerrors.ConfigError{Option: "input", Message: "an input source is required (WithFilePaths or WithParsed)"})
	}

	left, right := cfg.leftDoc, cfg.rightDoc
	if cfg.hasPaths {
		p := wanted.New()
		p.Logger = cfg.config.Logger
		// The merge re-validates parsed inputs, so the parser's own pass
		// follows the same toggle; otherwise --no-validate could never
		// reach the merge at all.
		p.ValidateStructure = cfg.config.ValidateInputs
		var err error
		if left, err = p.Parse(cfg.leftPath); err != nil {
			return nil, err
		}
		if right, err = p.Parse(cfg.rightPath); err != nil {
			return nil, err
		}
	}

	return New(cfg.config).Merge(left, right)
}
