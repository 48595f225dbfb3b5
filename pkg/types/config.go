package types

// Config represents the configuration for the calc-mcp server
type Config struct {
	HistoryPath string `json:"history_path"`
	LogLevel    string `json:"log_level,omitempty"`
}
