// Package check implements the link checking core for rendered static sites.
//
// The check package provides:
// - HTML link extraction with best-effort source line tracking
// - Classification of references into internal, anchor, external and ignored
// - Internal path resolution with extensionless and directory fallbacks
// - Anchor resolution against id, a[name] and heading-text targets
// - External URL probing with per-run deduplication and bounded fan-out
// - Deterministic markdown report generation
package check
