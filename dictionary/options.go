package dictionary

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"go.uber.org/zap"
)

// loadConfig is the immutable configuration resolved from LoadOption
// values before Load reads any file. It is never exposed directly;
// callers interact with it only through functional options.
type loadConfig struct {
	termEncoding   encoding.Encoding
	matrixEncoding encoding.Encoding
	logger         *zap.Logger
	tolerateExtra  bool
}

// LoadOption customizes Load's behavior.
// Complexity: applying N options costs O(N) time, O(1) space.
type LoadOption func(*loadConfig)

// WithTermEncoding overrides the character encoding used to decode term
// dictionary CSV files. Default: EUC-JP, matching stock IPADIC.
func WithTermEncoding(enc encoding.Encoding) LoadOption {
	return func(c *loadConfig) { c.termEncoding = enc }
}

// WithMatrixEncoding overrides the character encoding used to decode the
// connection matrix file. Default: UTF-8 (no transcoding).
func WithMatrixEncoding(enc encoding.Encoding) LoadOption {
	return func(c *loadConfig) { c.matrixEncoding = enc }
}

// WithLogger attaches a *zap.Logger that Load uses to report per-row
// parse warnings (e.g. trailing columns beyond the six consumed) and a
// summary of terms/contexts loaded. Default: zap.NewNop(), i.e. silent.
func WithLogger(logger *zap.Logger) LoadOption {
	if logger == nil {
		panic("dictionary: WithLogger(nil)")
	}
	return func(c *loadConfig) { c.logger = logger }
}

// WithTolerateExtraColumns, when set, allows term rows with more than six
// columns (trailing IPADIC-specific columns such as reading/pronunciation
// are ignored rather than logged as anomalies). Default: true, since real
// IPADIC dictionaries always carry trailing columns the core does not
// consume.
func WithTolerateExtraColumns(tolerate bool) LoadOption {
	return func(c *loadConfig) { c.tolerateExtra = tolerate }
}

// defaultLoadConfig returns the baseline configuration Load starts from
// before any LoadOption is applied.
func defaultLoadConfig() loadConfig {
	return loadConfig{
		termEncoding:   japanese.EUCJP,
		matrixEncoding: nil,
		logger:         zap.NewNop(),
		tolerateExtra:  true,
	}
}
