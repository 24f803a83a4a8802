package reconcile

// Field identifies one tracked account attribute.
type Field string

const (
	FieldDisplayName   Field = "displayName"
	FieldMail          Field = "mail"
	FieldGivenName     Field = "givenName"
	FieldSurname       Field = "surname"
	FieldCompanyName   Field = "companyName"
	FieldOtherMails    Field = "otherMails"
	FieldUsageLocation Field = "usageLocation"
	FieldCountry       Field = "country"
	FieldAffiliations  Field = "affiliations"
)

// Change describes drift on a single tracked attribute.
type Change struct {
	// Field is the drifted attribute.
	Field Field `json:"field"`

	// Current is the value on the directory account.
	Current string `json:"current"`

	// Desired is the value projected from the source record.
	Desired string `json:"desired"`
}

// Config holds the policy inputs shared by the engine and the scanner.
type Config struct {
	// Domain is the principal-name domain suffix. A record with UID u maps
	// to principal name u@Domain.
	Domain string

	// AffiliationAttribute is the directory extension attribute receiving
	// the joined affiliation set.
	AffiliationAttribute string
}

// Options controls engine behavior for a single run.
type Options struct {
	// DryRun reports planned creates and updates without calling the
	// directory's mutation endpoints.
	DryRun bool
}

// Summary aggregates per-record outcomes for one engine run.
type Summary struct {
	// Processed is the total number of source records read.
	Processed int `json:"processed"`

	// Created counts records that resulted in a new directory account.
	Created int `json:"created"`

	// Updated counts records whose existing account was patched.
	Updated int `json:"updated"`

	// Skipped counts records whose account matched on every tracked field.
	Skipped int `json:"skipped"`

	// Invalid counts records missing required fields; these trigger no
	// directory call.
	Invalid int `json:"invalid"`

	// Failed counts records whose lookup, create, or update call failed.
	// Failures never abort the batch.
	Failed int `json:"failed"`
}

// CleanSummary aggregates outcomes for one bulk-delete run.
type CleanSummary struct {
	// Processed is the total number of source records read.
	Processed int `json:"processed"`

	// Deleted counts accounts removed from the directory.
	Deleted int `json:"deleted"`

	// NotFound counts records with no matching directory account.
	NotFound int `json:"not_found"`

	// Invalid counts records missing required fields.
	Invalid int `json:"invalid"`

	// Failed counts records whose lookup or delete call failed.
	Failed int `json:"failed"`
}
