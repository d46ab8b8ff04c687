package config

const (
	SchemaVersion = 1

	DefaultServiceURL            = "http://localhost:5000"
	DefaultRequestTimeoutSeconds = 30
	DefaultReportDir             = "."
	DefaultJurisdiction          = JurisdictionQatar

	MinRequestTimeoutSeconds = 1
	MaxRequestTimeoutSeconds = 300
)

// Jurisdictions the evaluator can label itself for. Selection only changes
// client-side labeling; the scoring service decides which rules it applies.
const (
	JurisdictionQatar = "qatar"
	JurisdictionUAE   = "uae"
	JurisdictionSaudi = "saudi"
)

// RawConfig mirrors a config file on disk. Pointer fields distinguish "unset"
// from zero values so project settings can override global ones per key.
type RawConfig struct {
	SchemaVersion *int        `json:"schemaVersion,omitempty"`
	Service       *RawService `json:"service,omitempty"`
	Report        *RawReport  `json:"report,omitempty"`
	Jurisdiction  *string     `json:"jurisdiction,omitempty"`
}

type RawService struct {
	URL                   *string `json:"url,omitempty"`
	RequestTimeoutSeconds *int    `json:"requestTimeoutSeconds,omitempty"`
}

type RawReport struct {
	OutputDir *string `json:"outputDir,omitempty"`
}

type ResolvedConfig struct {
	SchemaVersion int             `json:"schemaVersion"`
	Service       ResolvedService `json:"service"`
	Report        ResolvedReport  `json:"report"`
	Jurisdiction  string          `json:"jurisdiction"`
}

type ResolvedService struct {
	URL                   string `json:"url"`
	RequestTimeoutSeconds int    `json:"requestTimeoutSeconds"`
}

type ResolvedReport struct {
	OutputDir string `json:"outputDir"`
}

func DefaultResolvedConfig() ResolvedConfig {
	return ResolvedConfig{
		SchemaVersion: SchemaVersion,
		Service: ResolvedService{
			URL:                   DefaultServiceURL,
			RequestTimeoutSeconds: DefaultRequestTimeoutSeconds,
		},
		Report: ResolvedReport{
			OutputDir: DefaultReportDir,
		},
		Jurisdiction: DefaultJurisdiction,
	}
}
