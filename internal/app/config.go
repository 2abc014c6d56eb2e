package app

import "errors"

// Config holds everything an App instance needs to run.
type Config struct {
	GrammarPath string // a .asdl/.hcl file, or a directory of them
	Expr        string // optional constructor expression to evaluate

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GrammarPath == "" {
		return nil, errors.New("GrammarPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
