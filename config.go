package docqa

// Config holds the credentials the pipeline requires. Both keys are
// process-wide read-only configuration, fixed at construction.
type Config struct {
	// GeminiAPIKey authenticates calls to the Gemini API.
	GeminiAPIKey string

	// SerperAPIKey authenticates calls to the Serper search API.
	SerperAPIKey string
}

// Validate returns an error if a required credential is missing.
// A missing credential is a construction-time failure for the whole
// pipeline, not recoverable within the running process.
func (c Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return Errorf(EINVALID, "gemini API key required")
	}
	if c.SerperAPIKey == "" {
		return Errorf(EINVALID, "serper API key required")
	}
	return nil
}
