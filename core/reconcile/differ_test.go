package reconcile

import (
	"testing"

	"entra-sync/core/directory"
	"entra-sync/core/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAttrKey = "extension_testtenant_eduAffiliations"

// testRecord returns a complete, valid source record.
func testRecord() source.Record {
	return source.Record{
		UID:          "u1",
		ChosenName:   "Alice",
		GivenName:    "Alice",
		FamilyName:   "Smith",
		Organization: "eduid.nl",
		Email:        "alice@example.org",
		LinkedAccounts: []source.LinkedAccount{
			{EduPersonAffiliations: []string{"student@a"}},
			{EduPersonAffiliations: []string{"student@a", "staff@b"}},
		},
	}
}

// matchingAccount returns a directory account fully in sync with testRecord.
func matchingAccount() directory.Account {
	return directory.Account{
		ID:                "acc-1",
		UserPrincipalName: "u1@eduid.nl",
		DisplayName:       "Alice Smith",
		Mail:              "alice@example.org",
		GivenName:         "Alice",
		Surname:           "Smith",
		CompanyName:       "eduid.nl",
		OtherMails:        []string{"alice@example.org"},
		UsageLocation:     "NL",
		Country:           "NL",
		AdditionalData: map[string]any{
			testAttrKey: "student@a;staff@b",
		},
	}
}

func changedFields(changes []Change) []Field {
	fields := make([]Field, 0, len(changes))
	for _, c := range changes {
		fields = append(fields, c.Field)
	}
	return fields
}

func TestDiff_NoChanges(t *testing.T) {
	changes := Diff(testRecord(), matchingAccount(), testAttrKey)
	assert.Empty(t, changes)
}

func TestDiff_SingleFieldDrift(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*directory.Account)
		want   Field
	}{
		{
			name:   "DisplayName",
			mutate: func(a *directory.Account) { a.DisplayName = "Alice Jones" },
			want:   FieldDisplayName,
		},
		{
			name:   "Mail",
			mutate: func(a *directory.Account) { a.Mail = "old@example.org" },
			want:   FieldMail,
		},
		{
			name:   "GivenName",
			mutate: func(a *directory.Account) { a.GivenName = "Alicia" },
			want:   FieldGivenName,
		},
		{
			name:   "Surname",
			mutate: func(a *directory.Account) { a.Surname = "Jones" },
			want:   FieldSurname,
		},
		{
			name:   "CompanyName",
			mutate: func(a *directory.Account) { a.CompanyName = "other.org" },
			want:   FieldCompanyName,
		},
		{
			name:   "OtherMails",
			mutate: func(a *directory.Account) { a.OtherMails = []string{"unrelated@example.org"} },
			want:   FieldOtherMails,
		},
		{
			name:   "UsageLocation",
			mutate: func(a *directory.Account) { a.UsageLocation = "BE" },
			want:   FieldUsageLocation,
		},
		{
			name:   "Country",
			mutate: func(a *directory.Account) { a.Country = "" },
			want:   FieldCountry,
		},
		{
			name:   "Affiliations",
			mutate: func(a *directory.Account) { a.AdditionalData[testAttrKey] = "student@a" },
			want:   FieldAffiliations,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := matchingAccount()
			tt.mutate(&account)

			changes := Diff(testRecord(), account, testAttrKey)
			require.Len(t, changes, 1)
			assert.Equal(t, tt.want, changes[0].Field)
		})
	}
}

func TestDiff_MailComparisonIsCaseInsensitive(t *testing.T) {
	account := matchingAccount()
	account.Mail = "ALICE@Example.ORG"

	changes := Diff(testRecord(), account, testAttrKey)
	assert.NotContains(t, changedFields(changes), FieldMail)
}

func TestDiff_OtherMailsContainmentIsEnough(t *testing.T) {
	// Stale secondary addresses are never removed; containment satisfies.
	account := matchingAccount()
	account.OtherMails = []string{"stale@example.org", "alice@example.org"}

	changes := Diff(testRecord(), account, testAttrKey)
	assert.Empty(t, changes)
}

func TestDiff_AbsentSourceValuesCompareAsEmpty(t *testing.T) {
	record := testRecord()
	record.GivenName = ""
	record.Organization = ""

	account := matchingAccount()
	account.GivenName = ""
	account.CompanyName = ""

	changes := Diff(record, account, testAttrKey)
	assert.Empty(t, changes)
}

func TestDiff_MissingExtensionAttribute(t *testing.T) {
	account := matchingAccount()
	delete(account.AdditionalData, testAttrKey)

	changes := Diff(testRecord(), account, testAttrKey)
	require.Len(t, changes, 1)
	assert.Equal(t, FieldAffiliations, changes[0].Field)
	assert.Equal(t, "student@a;staff@b", changes[0].Desired)
}

func TestDiff_ReportsCurrentAndDesired(t *testing.T) {
	account := matchingAccount()
	account.DisplayName = "Old Name"

	changes := Diff(testRecord(), account, testAttrKey)
	require.Len(t, changes, 1)
	assert.Equal(t, "Old Name", changes[0].Current)
	assert.Equal(t, "Alice Smith", changes[0].Desired)
}

func TestDiff_Deterministic(t *testing.T) {
	account := matchingAccount()
	account.DisplayName = "Old Name"
	account.Country = "DE"

	first := Diff(testRecord(), account, testAttrKey)
	second := Diff(testRecord(), account, testAttrKey)
	assert.Equal(t, first, second)
}
