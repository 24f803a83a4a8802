package directory

import "encoding/json"

// Account is a user account as returned by the directory API. Only the
// attributes tracked by the sync are modeled; anything else (notably the
// tenant-specific extension attribute) is kept in AdditionalData.
type Account struct {
	// ID is the opaque, directory-assigned account identifier.
	ID string `json:"id"`

	// UserPrincipalName is the unique login identifier.
	UserPrincipalName string `json:"userPrincipalName"`

	DisplayName string `json:"displayName"`
	Mail        string `json:"mail"`
	GivenName   string `json:"givenName"`
	Surname     string `json:"surname"`
	CompanyName string `json:"companyName"`

	// OtherMails is the set of secondary email addresses.
	OtherMails []string `json:"otherMails"`

	UsageLocation string `json:"usageLocation"`
	Country       string `json:"country"`

	// OnPremisesImmutableID is the write-once anchor linking the account back
	// to its source record. Set at creation, never overwritten.
	OnPremisesImmutableID string `json:"onPremisesImmutableId"`

	// AdditionalData holds every attribute of the raw response, keyed by its
	// wire name. Used to read dynamically named extension attributes.
	AdditionalData map[string]any `json:"-"`
}

// UnmarshalJSON decodes the known attributes and captures the full raw
// object so extension attributes stay reachable by name.
func (a *Account) UnmarshalJSON(data []byte) error {
	type plain Account
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var extra map[string]any
	if err := json.Unmarshal(data, &extra); err != nil {
		return err
	}

	*a = Account(p)
	a.AdditionalData = extra
	return nil
}

// Extension returns the string value of the named extension attribute, or
// the empty string when the attribute is absent or not a string.
func (a *Account) Extension(key string) string {
	if a.AdditionalData == nil {
		return ""
	}
	if value, ok := a.AdditionalData[key].(string); ok {
		return value
	}
	return ""
}

// Payload is a create or partial-update request body for the account
// resource. Keys use the directory's wire names; absent keys are left
// untouched by a PATCH.
type Payload map[string]any
