package source

import "strings"

// Config holds configuration for the document store holding identity records.
type Config struct {
	// URI is the MongoDB connection string.
	URI string `mapstructure:"uri" default:"mongodb://localhost:27017"`
	// Database is the database name.
	Database string `mapstructure:"database" default:"myconext"`
	// Collection is the collection holding identity records.
	Collection string `mapstructure:"collection" default:"users"`
	// TargetEmails is an optional comma-separated allow-list of primary email
	// addresses. When set it replaces the eligible-flag selection.
	TargetEmails string `mapstructure:"target_emails" default:""`
	// TimeoutSeconds is the per-operation timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// EmailList returns the parsed allow-list, or nil when none is configured.
func (c Config) EmailList() []string {
	if strings.TrimSpace(c.TargetEmails) == "" {
		return nil
	}

	parts := strings.Split(c.TargetEmails, ",")
	emails := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			emails = append(emails, p)
		}
	}
	return emails
}
