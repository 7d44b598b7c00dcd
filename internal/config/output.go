package config

// DisplayConfig holds settings related to board output.
type DisplayConfig struct {
	// Unicode draws pieces with chess glyphs instead of FEN letters
	Unicode bool `yaml:"unicode"`

	// JSON writes batch summaries as JSON instead of text
	JSON bool `yaml:"json"`

	// Highlight marks the selected square and its legal targets
	Highlight bool `yaml:"highlight"`
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{Highlight: true}
}
