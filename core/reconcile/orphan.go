package reconcile

import (
	"context"
	"fmt"
	"strings"

	"entra-sync/core/directory"
	"entra-sync/core/source"

	"go.uber.org/zap"
)

// Report lists directory accounts with no matching source record.
type Report struct {
	// Orphans holds the principal names of unmatched accounts.
	Orphans []string `json:"orphans"`

	// Total is the number of accounts enumerated.
	Total int `json:"total"`

	// Truncated indicates the enumeration stopped early on a page failure;
	// the report may be incomplete.
	Truncated bool `json:"truncated"`
}

// Scanner performs the full-directory orphan scan: every account is tested
// for membership in the source UID set, except those on the keep-list.
type Scanner struct {
	repo     source.Repository
	dir      directory.Client
	cfg      Config
	keepList []string
	log      *zap.Logger
}

// NewScanner creates an orphan scanner. keepList entries are principal
// names exempt from orphan reporting; matching is case-insensitive.
func NewScanner(repo source.Repository, dir directory.Client, cfg Config, keepList []string, log *zap.Logger) *Scanner {
	return &Scanner{
		repo:     repo,
		dir:      dir,
		cfg:      cfg,
		keepList: keepList,
		log:      log,
	}
}

// Scan enumerates the directory (principal name and id only) and reports
// every account whose candidate source key is absent from the source UID
// set. A page failure mid-enumeration truncates the scan; the partial
// result is still reported, flagged as possibly incomplete. A source query
// failure is fatal.
func (s *Scanner) Scan(ctx context.Context) (*Report, error) {
	uids, err := s.repo.UIDSet(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read source UIDs: %w", err)
	}
	s.log.Info("source UIDs collected", zap.Int("count", len(uids)))

	keep := make(map[string]struct{}, len(s.keepList))
	for _, name := range s.keepList {
		keep[strings.ToLower(name)] = struct{}{}
	}

	report := &Report{}

	err = s.dir.ListAll(ctx, []string{"userPrincipalName", "id"}, func(account directory.Account) bool {
		principalName := account.UserPrincipalName
		if principalName == "" {
			return true
		}
		report.Total++

		if _, kept := keep[strings.ToLower(principalName)]; kept {
			return true
		}

		if _, known := uids[CandidateKey(principalName, s.cfg.Domain)]; !known {
			report.Orphans = append(report.Orphans, principalName)
		}
		return true
	})
	if err != nil {
		report.Truncated = true
		s.log.Warn("directory enumeration truncated; orphan report may be incomplete", zap.Error(err))
	}

	s.log.Info("orphan scan complete",
		zap.Int("accounts", report.Total),
		zap.Int("orphans", len(report.Orphans)),
		zap.Bool("truncated", report.Truncated),
	)

	return report, nil
}

// CandidateKey derives the source key a principal name should map to: the
// configured domain suffix is stripped when present, otherwise the local
// part before the first '@' is taken.
func CandidateKey(principalName, domain string) string {
	suffix := "@" + domain
	if strings.HasSuffix(principalName, suffix) {
		return strings.TrimSuffix(principalName, suffix)
	}

	local, _, _ := strings.Cut(principalName, "@")
	return local
}
