package domain

import "time"

// PreparationResult is what a successful preparation hands off.
type PreparationResult struct {
	// OutputDir holds mkdocs.yml and the docs/ tree.
	OutputDir string

	// CacheToken is the root page id. The caller compares it on the next
	// run to decide whether the previous output may be reused.
	CacheToken string

	// SiteName is the root page title used as the site name.
	SiteName string
}

// PreparationRecord remembers the last preparation of an annotation.
type PreparationRecord struct {
	// ID is the unique run identifier.
	ID string

	// Ref is the annotation the preparation was made for.
	Ref string

	// CacheToken is the root page id returned by the run.
	CacheToken string

	// OutputDir is where the output was handed off.
	OutputDir string

	// SiteName is the root page title.
	SiteName string

	// PreparedAt is when the run completed.
	PreparedAt time.Time
}
