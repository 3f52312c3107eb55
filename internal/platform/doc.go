// Package platform provides filesystem helpers for path canonicalization and
// symlink inspection. Canonical paths are the deduplication key for detected
// installations.
package platform
