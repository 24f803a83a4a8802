package reconcile

import (
	"strings"

	"entra-sync/core/directory"
	"entra-sync/core/source"
)

// SelectFields returns the attribute set a lookup must select so that Diff
// can compare every tracked field.
func SelectFields(attrKey string) []string {
	return []string{
		"id", "displayName", "mail", "givenName", "surname", "companyName",
		"otherMails", "userPrincipalName", "usageLocation", "country",
		"onPremisesImmutableId",
		attrKey,
	}
}

// Diff compares the projected source values against an existing directory
// account and returns the set of attributes requiring update. An empty
// result means every tracked field matches and the record is skipped.
//
// Mail is compared case-insensitively; every other attribute is an exact
// string comparison with absent values treated as empty. The secondary
// email set is satisfied as soon as it contains the primary email; stale
// entries are never removed. A changed primary email alone triggers an
// update: both the mail comparison and the otherMails containment check
// participate.
//
// Deterministic and side-effect-free.
func Diff(record source.Record, account directory.Account, attrKey string) []Change {
	var changes []Change

	if desired := DisplayName(record); account.DisplayName != desired {
		changes = append(changes, Change{FieldDisplayName, account.DisplayName, desired})
	}
	if !strings.EqualFold(account.Mail, record.Email) {
		changes = append(changes, Change{FieldMail, account.Mail, record.Email})
	}
	if account.GivenName != record.GivenName {
		changes = append(changes, Change{FieldGivenName, account.GivenName, record.GivenName})
	}
	if account.Surname != record.FamilyName {
		changes = append(changes, Change{FieldSurname, account.Surname, record.FamilyName})
	}
	if account.CompanyName != record.Organization {
		changes = append(changes, Change{FieldCompanyName, account.CompanyName, record.Organization})
	}
	if !containsString(account.OtherMails, record.Email) {
		changes = append(changes, Change{FieldOtherMails, strings.Join(account.OtherMails, ";"), record.Email})
	}
	if account.UsageLocation != PolicyUsageLocation {
		changes = append(changes, Change{FieldUsageLocation, account.UsageLocation, PolicyUsageLocation})
	}
	if account.Country != PolicyCountry {
		changes = append(changes, Change{FieldCountry, account.Country, PolicyCountry})
	}
	if desired := AffiliationAttribute(record); account.Extension(attrKey) != desired {
		changes = append(changes, Change{FieldAffiliations, account.Extension(attrKey), desired})
	}

	return changes
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
