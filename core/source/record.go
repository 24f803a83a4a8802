package source

// LinkedAccount is one linked-account group on an identity record.
type LinkedAccount struct {
	// EduPersonAffiliations holds the affiliation tags granted through this link.
	EduPersonAffiliations []string `bson:"eduPersonAffiliations"`
}

// Record is an authoritative identity record as stored in the document store.
// Records are read-only to this system; mutation happens upstream.
type Record struct {
	// UID is the unique, immutable source identifier. It anchors the derived
	// principal name and the write-once immutable ID on the target account.
	UID string `bson:"uid"`

	// ChosenName is the preferred first name used in the display name.
	ChosenName string `bson:"chosenName"`

	// GivenName is the legal first name.
	GivenName string `bson:"givenName"`

	// FamilyName is the last name.
	FamilyName string `bson:"familyName"`

	// Organization is the schacHomeOrganization value, when known.
	Organization string `bson:"schacHomeOrganization"`

	// Email is the primary email address. Required for sync eligibility.
	Email string `bson:"email"`

	// LinkedAccounts holds the linked-account groups whose affiliations are
	// aggregated into the custom directory attribute.
	LinkedAccounts []LinkedAccount `bson:"linkedAccounts"`

	// EligibleForSync marks the record for synchronization when no explicit
	// email allow-list is configured.
	EligibleForSync bool `bson:"syncToEntra"`
}

// Valid reports whether the record carries the fields required for sync.
// Invalid records are skipped without any directory call.
func (r Record) Valid() bool {
	return r.UID != "" && r.Email != ""
}
