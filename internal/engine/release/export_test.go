package release

import "time"

var (
	RenderEntry    = renderEntry
	RenderSections = renderSections
)

// SetNow overrides the clock used for changelog entry dates.
func (r *Releaser) SetNow(now func() time.Time) {
	r.now = now
}
