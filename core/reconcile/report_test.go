package reconcile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	storagemocks "entra-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWriteReport_EmptyReportWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orphans.txt")

	written, err := WriteReport(&Report{}, path)
	require.NoError(t, err)

	assert.False(t, written)
	assert.NoFileExists(t, path)
}

func TestWriteReport_WritesOnePrincipalNamePerLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orphans.txt")
	report := &Report{Orphans: []string{"a@eduid.nl", "b@eduid.nl"}, Total: 5}

	written, err := WriteReport(report, path)
	require.NoError(t, err)
	require.True(t, written)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(content), "a@eduid.nl\n")
	assert.Contains(t, string(content), "b@eduid.nl\n")
	assert.NotContains(t, string(content), "truncated")
}

func TestWriteReport_TruncationIsSurfaced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orphans.txt")
	report := &Report{Orphans: []string{"a@eduid.nl"}, Truncated: true}

	_, err := WriteReport(report, path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "may be incomplete")
}

func TestWriteReport_OverwritesPreviousArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orphans.txt")

	_, err := WriteReport(&Report{Orphans: []string{"a@eduid.nl", "b@eduid.nl"}}, path)
	require.NoError(t, err)

	_, err = WriteReport(&Report{Orphans: []string{"c@eduid.nl"}}, path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(content), "c@eduid.nl")
	assert.NotContains(t, string(content), "a@eduid.nl")
}

func TestArchiveReport(t *testing.T) {
	client := new(storagemocks.Client)
	client.On("PutObject", mock.Anything, "sync-reports",
		mock.MatchedBy(func(name string) bool { return strings.HasPrefix(name, "orphans/") }),
		mock.Anything, mock.Anything, mock.Anything,
	).Return(minio.UploadInfo{}, nil)

	name, err := ArchiveReport(context.Background(), client, "sync-reports", &Report{Orphans: []string{"a@eduid.nl"}})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(name, "orphans/"))
	client.AssertExpectations(t)
}

func TestArchiveReport_EmptyReportUploadsNothing(t *testing.T) {
	client := new(storagemocks.Client)

	name, err := ArchiveReport(context.Background(), client, "sync-reports", &Report{})
	require.NoError(t, err)

	assert.Equal(t, "", name)
	client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
