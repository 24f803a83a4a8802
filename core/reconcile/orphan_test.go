package reconcile

import (
	"context"
	"fmt"
	"testing"

	"entra-sync/core/directory"
	directorymocks "entra-sync/core/directory/mocks"
	sourcemocks "entra-sync/core/source/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestScanner(repo *sourcemocks.Repository, dir *directorymocks.Client, keepList []string) *Scanner {
	return NewScanner(repo, dir, Config{Domain: "eduid.nl", AffiliationAttribute: testAttrKey}, keepList, zap.NewNop())
}

// deliverAccounts makes the ListAll mock feed the given principal names to
// the callback, then return err.
func deliverAccounts(dir *directorymocks.Client, principalNames []string, err error) {
	dir.On("ListAll", mock.Anything, []string{"userPrincipalName", "id"}, mock.Anything).
		Run(func(args mock.Arguments) {
			fn := args.Get(2).(func(directory.Account) bool)
			for i, name := range principalNames {
				if !fn(directory.Account{ID: fmt.Sprintf("id-%d", i), UserPrincipalName: name}) {
					return
				}
			}
		}).
		Return(err)
}

func TestScanner_MatchedAndKeptAccountsAreNotOrphans(t *testing.T) {
	repo := new(sourcemocks.Repository)
	dir := new(directorymocks.Client)

	repo.On("UIDSet", mock.Anything).Return(map[string]struct{}{
		"p1": {},
		"p3": {},
	}, nil)
	deliverAccounts(dir, []string{"p1@eduid.nl", "p2@eduid.nl", "p3@eduid.nl"}, nil)

	report, err := newTestScanner(repo, dir, []string{"p2@eduid.nl"}).Scan(context.Background())
	require.NoError(t, err)

	assert.Empty(t, report.Orphans)
	assert.Equal(t, 3, report.Total)
	assert.False(t, report.Truncated)
}

func TestScanner_ReportsUnmatchedAccounts(t *testing.T) {
	repo := new(sourcemocks.Repository)
	dir := new(directorymocks.Client)

	repo.On("UIDSet", mock.Anything).Return(map[string]struct{}{"p1": {}}, nil)
	deliverAccounts(dir, []string{"p1@eduid.nl", "ghost@eduid.nl"}, nil)

	report, err := newTestScanner(repo, dir, nil).Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"ghost@eduid.nl"}, report.Orphans)
}

func TestScanner_KeepListIsCaseInsensitive(t *testing.T) {
	repo := new(sourcemocks.Repository)
	dir := new(directorymocks.Client)

	repo.On("UIDSet", mock.Anything).Return(map[string]struct{}{}, nil)
	deliverAccounts(dir, []string{"admin@eduid.nl"}, nil)

	report, err := newTestScanner(repo, dir, []string{"ADMIN@EDUID.NL"}).Scan(context.Background())
	require.NoError(t, err)

	assert.Empty(t, report.Orphans)
}

func TestScanner_ForeignDomainUsesLocalPart(t *testing.T) {
	repo := new(sourcemocks.Repository)
	dir := new(directorymocks.Client)

	repo.On("UIDSet", mock.Anything).Return(map[string]struct{}{"p1": {}}, nil)
	deliverAccounts(dir, []string{"p1@other.org", "p2@other.org"}, nil)

	report, err := newTestScanner(repo, dir, nil).Scan(context.Background())
	require.NoError(t, err)

	// p1 matches through its local part; p2 does not.
	assert.Equal(t, []string{"p2@other.org"}, report.Orphans)
}

func TestScanner_TruncatedEnumerationKeepsPartialResult(t *testing.T) {
	repo := new(sourcemocks.Repository)
	dir := new(directorymocks.Client)

	repo.On("UIDSet", mock.Anything).Return(map[string]struct{}{}, nil)
	deliverAccounts(dir, []string{"ghost@eduid.nl"}, fmt.Errorf("page fetch failed"))

	report, err := newTestScanner(repo, dir, nil).Scan(context.Background())
	require.NoError(t, err)

	assert.True(t, report.Truncated)
	assert.Equal(t, []string{"ghost@eduid.nl"}, report.Orphans)
}

func TestScanner_SourceFailureIsFatal(t *testing.T) {
	repo := new(sourcemocks.Repository)
	dir := new(directorymocks.Client)

	repo.On("UIDSet", mock.Anything).Return(nil, fmt.Errorf("connection refused"))

	_, err := newTestScanner(repo, dir, nil).Scan(context.Background())
	assert.Error(t, err)
	dir.AssertNotCalled(t, "ListAll", mock.Anything, mock.Anything, mock.Anything)
}

func TestCandidateKey(t *testing.T) {
	tests := []struct {
		name          string
		principalName string
		domain        string
		want          string
	}{
		{"ConfiguredDomain", "u1@eduid.nl", "eduid.nl", "u1"},
		{"ForeignDomain", "u1@other.org", "eduid.nl", "u1"},
		{"NoAtSign", "u1", "eduid.nl", "u1"},
		{"NestedAt", "a@b@eduid.nl", "eduid.nl", "a@b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CandidateKey(tt.principalName, tt.domain))
		})
	}
}
