package reconcile

import (
	"strings"

	"entra-sync/core/directory"
	"entra-sync/core/source"
)

// Fixed policy fields applied to every synced account. These are compared
// against constants, not against the source record.
const (
	PolicyUsageLocation = "NL"
	PolicyCountry       = "NL"
)

// PrincipalName derives the login identifier for a source record. It is a
// pure function of the source UID and the domain suffix; display fields
// never participate, so the value is stable across runs.
func PrincipalName(uid, domain string) string {
	return uid + "@" + domain
}

// DisplayName projects the display name: chosen name and family name,
// space-joined.
func DisplayName(record source.Record) string {
	return record.ChosenName + " " + record.FamilyName
}

// Affiliations flattens the affiliation tags of all linked-account groups
// into a single deduplicated list, preserving first-seen order. Membership,
// not order, is authoritative.
func Affiliations(record source.Record) []string {
	var all []string
	seen := make(map[string]struct{})

	for _, linked := range record.LinkedAccounts {
		for _, affiliation := range linked.EduPersonAffiliations {
			if _, ok := seen[affiliation]; ok {
				continue
			}
			seen[affiliation] = struct{}{}
			all = append(all, affiliation)
		}
	}

	return all
}

// AffiliationAttribute returns the semicolon-joined affiliation set, or the
// empty string when the record has no affiliations.
func AffiliationAttribute(record source.Record) string {
	return strings.Join(Affiliations(record), ";")
}

// UpdatePayload projects a source record into a partial-update body. It
// never contains the immutable anchor, the principal name, or a credential;
// those are creation-only by construction.
func UpdatePayload(record source.Record, attrKey string) directory.Payload {
	payload := directory.Payload{
		"displayName":   DisplayName(record),
		"usageLocation": PolicyUsageLocation,
		"country":       PolicyCountry,
	}

	if record.Email != "" {
		payload["mail"] = record.Email
		payload["otherMails"] = []string{record.Email}
	}
	if record.GivenName != "" {
		payload["givenName"] = record.GivenName
	}
	if record.FamilyName != "" {
		payload["surname"] = record.FamilyName
	}
	if record.Organization != "" {
		payload["companyName"] = record.Organization
	}

	// Omitted entirely when the aggregated set is empty.
	if attr := AffiliationAttribute(record); attr != "" {
		payload[attrKey] = attr
	}

	return payload
}

// CreatePayload extends UpdatePayload with the creation-only fields: the
// write-once immutable anchor, the principal name, a mail-derived alias,
// the enabled flag, and the initial credential profile.
func CreatePayload(record source.Record, principalName, attrKey, anchor, credential string) directory.Payload {
	payload := UpdatePayload(record, attrKey)

	payload["onPremisesImmutableId"] = anchor
	payload["accountEnabled"] = true
	payload["userPrincipalName"] = principalName

	if record.Email != "" {
		local, _, _ := strings.Cut(record.Email, "@")
		payload["mailNickname"] = local
	}

	payload["passwordProfile"] = directory.Payload{
		"password":                      credential,
		"forceChangePasswordNextSignIn": false,
	}

	return payload
}
