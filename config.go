package glossary

import "github.com/goliatone/go-glossary/internal/runtimeconfig"

var (
	ErrStorageDriverUnknown          = runtimeconfig.ErrStorageDriverUnknown
	ErrMarkdownFeatureRequired       = runtimeconfig.ErrMarkdownFeatureRequired
	ErrMarkdownContentDirRequired    = runtimeconfig.ErrMarkdownContentDirRequired
	ErrPermalinksRouteConfigRequired = runtimeconfig.ErrPermalinksRouteConfigRequired
	ErrDiagnosticsSampleInvalid      = runtimeconfig.ErrDiagnosticsSampleInvalid
	ErrLoggingProviderRequired       = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown        = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid           = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid          = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config            = runtimeconfig.Config
	StorageConfig     = runtimeconfig.StorageConfig
	CacheConfig       = runtimeconfig.CacheConfig
	LoggingConfig     = runtimeconfig.LoggingConfig
	MarkdownConfig    = runtimeconfig.MarkdownConfig
	LinksConfig       = runtimeconfig.LinksConfig
	TermLinkConfig    = runtimeconfig.TermLinkConfig
	DiagnosticsConfig = runtimeconfig.DiagnosticsConfig
	Features          = runtimeconfig.Features
)

// DefaultConfig returns the baseline configuration used by New when hosts do
// not supply their own.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
