package models

import (
	"errors"
	"fmt"
	"time"
)

// Domain is an independent sync scope. Every domain has its own pipeline,
// its own watermark row and its own commit transaction.
type Domain string

const (
	DomainPodcasts  Domain = "podcasts"
	DomainFilters   Domain = "filters"
	DomainProgress  Domain = "progress"
	DomainUpNext    Domain = "up_next"
	DomainSettings  Domain = "settings"
	DomainBookmarks Domain = "bookmarks"
	DomainRatings   Domain = "ratings"
)

// AllDomains lists the domains in the order a cycle reports them.
var AllDomains = []Domain{
	DomainPodcasts,
	DomainFilters,
	DomainProgress,
	DomainUpNext,
	DomainSettings,
	DomainBookmarks,
	DomainRatings,
}

// Valid reports whether d is one of the declared domains.
func (d Domain) Valid() bool {
	switch d {
	case DomainPodcasts, DomainFilters, DomainProgress, DomainUpNext,
		DomainSettings, DomainBookmarks, DomainRatings:
		return true
	}
	return false
}

// UsesLastSyncAt reports whether the domain pulls a snapshot gated by the
// account-wide lastSyncAt watermark.
func (d Domain) UsesLastSyncAt() bool {
	switch d {
	case DomainPodcasts, DomainFilters, DomainBookmarks, DomainRatings:
		return true
	}
	return false
}

// Outcome is the result of one domain pipeline within a cycle.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFailed
)

// String implements [fmt.Stringer].
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailed:
		return "failed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Status aggregates the outcomes of every domain in a cycle.
type Status int

const (
	StatusSuccess Status = iota
	StatusPartial
	StatusFailed
)

// String implements [fmt.Stringer].
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusPartial:
		return "partial"
	case StatusFailed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// DomainResult is the outcome of one domain pipeline.
type DomainResult struct {
	Domain    Domain
	Outcome   Outcome
	Pushed    int
	Pulled    int
	Watermark string
	Err       error
}

// SyncResult is the outcome of one sync cycle.
//
// Err is set when the cycle aborted before any domain ran (authentication
// failure). Otherwise the per-domain errors live in Domains.
type SyncResult struct {
	Status     Status
	Domains    map[Domain]DomainResult
	Err        error
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewSyncResult aggregates domain results into a cycle result. An empty
// result set counts as a failure.
func NewSyncResult(results []DomainResult) SyncResult {
	res := SyncResult{Domains: make(map[Domain]DomainResult, len(results))}

	failed := 0
	for _, r := range results {
		res.Domains[r.Domain] = r
		if r.Outcome == OutcomeFailed {
			failed++
		}
	}

	switch {
	case len(results) == 0 || failed == len(results):
		res.Status = StatusFailed
	case failed > 0:
		res.Status = StatusPartial
	default:
		res.Status = StatusSuccess
	}
	return res
}

// FailedDomains returns the failed domains in reporting order.
func (r SyncResult) FailedDomains() []Domain {
	var out []Domain
	for _, d := range AllDomains {
		if dr, ok := r.Domains[d]; ok && dr.Outcome == OutcomeFailed {
			out = append(out, d)
		}
	}
	return out
}

// UserMessage returns the text the UI should show for the cycle. Transient
// failures produce no message. The first error in reporting order that
// carries a user-facing message wins.
func (r SyncResult) UserMessage() string {
	errs := make([]error, 0, len(r.Domains)+1)
	if r.Err != nil {
		errs = append(errs, r.Err)
	}
	for _, d := range AllDomains {
		if dr, ok := r.Domains[d]; ok && dr.Err != nil {
			errs = append(errs, dr.Err)
		}
	}

	for _, err := range errs {
		var um interface{ UserMessage() string }
		if errors.As(err, &um) {
			if msg := um.UserMessage(); msg != "" {
				return msg
			}
		}
	}
	return ""
}
