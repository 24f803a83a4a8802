package directory

import "fmt"

// Config holds configuration for the remote identity directory.
type Config struct {
	// TenantID is the directory tenant used for the client-credential exchange.
	TenantID string `mapstructure:"tenant_id" default:""`
	// ClientID is the application (client) ID.
	ClientID string `mapstructure:"client_id" default:""`
	// ClientSecret is the application client secret.
	ClientSecret string `mapstructure:"client_secret" default:""`
	// Domain is the principal-name domain suffix. A record with source UID u
	// maps to principal name u@Domain.
	Domain string `mapstructure:"domain" default:""`
	// AffiliationAttribute is the directory extension attribute holding the
	// semicolon-joined affiliation set. Tenant-specific, so no default.
	AffiliationAttribute string `mapstructure:"affiliation_attribute" default:""`
	// BaseURL is the directory API base URL.
	BaseURL string `mapstructure:"base_url" default:"https://graph.microsoft.com/v1.0"`
	// TimeoutSeconds is the per-call HTTP timeout in seconds. Calls are never
	// retried; a timed-out call is handled like any other per-record failure.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// tokenURL returns the client-credential token endpoint for the tenant.
func (c Config) tokenURL() string {
	return fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", c.TenantID)
}
