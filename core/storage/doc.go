// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client with the two operations this tool needs:
// verifying the archive bucket and uploading orphan-report artifacts. The
// abstraction supports both AWS S3 and self-hosted MinIO instances and
// keeps report archiving mockable in tests (core/storage/mocks).
//
// Archiving is optional: when STORAGE_ENABLED is false the report is only
// written to the local artifact file.
package storage
