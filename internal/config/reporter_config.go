package config

// ReporterConfig defines where the spreadsheet report is written.
type ReporterConfig struct {
	OutputFile string `json:"output_file,omitempty" yaml:"output_file,omitempty"`
}

func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		OutputFile: DefaultReporterOutputFile,
	}
}
