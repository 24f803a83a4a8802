package reconcile

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"entra-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// DefaultReportPath is where the orphan report artifact is written,
// relative to the working directory.
const DefaultReportPath = "orphaned_entra_users.txt"

// renderReport formats the report artifact: a short header followed by one
// principal name per line.
func renderReport(report *Report) string {
	var b strings.Builder

	b.WriteString("Directory accounts with no matching source record:\n")
	if report.Truncated {
		b.WriteString("NOTE: the directory enumeration was truncated; this report may be incomplete.\n")
	}
	b.WriteString(strings.Repeat("=", 50) + "\n")

	for _, principalName := range report.Orphans {
		b.WriteString(principalName + "\n")
	}

	return b.String()
}

// WriteReport persists a non-empty orphan report to path, overwriting any
// previous artifact. Returns false without touching the file when the
// report is empty.
func WriteReport(report *Report, path string) (bool, error) {
	if len(report.Orphans) == 0 {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(renderReport(report)), 0o644); err != nil {
		return false, fmt.Errorf("failed to write orphan report: %w", err)
	}

	return true, nil
}

// ArchiveReport uploads a non-empty orphan report to object storage under
// a timestamped name, so reports from past runs stay inspectable. Returns
// the object name, or the empty string when the report is empty.
func ArchiveReport(ctx context.Context, client storage.Client, bucket string, report *Report) (string, error) {
	if len(report.Orphans) == 0 {
		return "", nil
	}

	content := renderReport(report)
	name := fmt.Sprintf("orphans/%s.txt", time.Now().UTC().Format("2006-01-02T15-04-05Z"))

	_, err := client.PutObject(ctx, bucket, name, strings.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: "text/plain"})
	if err != nil {
		return "", fmt.Errorf("failed to archive orphan report: %w", err)
	}

	return name, nil
}
