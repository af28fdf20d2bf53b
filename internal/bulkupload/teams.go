package bulkupload

import "strings"

// PicTeam is a known team, fetched once per bulk-upload session from
// GET /pic-teams?include_inactive=true.
type PicTeam struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// ReferenceSet indexes known teams for row validation. A nil
// *ReferenceSet means the team list could not be fetched; validation
// then degrades to structural checks and the backend does the
// foreign-key checking on submit.
type ReferenceSet struct {
	bySlug map[string]PicTeam
	byName map[string]PicTeam
}

// NewReferenceSet builds lookup indexes over the given teams. When the
// same slug or name appears twice the first entry wins; the source does
// not disambiguate this and neither do we.
func NewReferenceSet(teams []PicTeam) *ReferenceSet {
	r := &ReferenceSet{
		bySlug: make(map[string]PicTeam, len(teams)),
		byName: make(map[string]PicTeam, len(teams)),
	}
	for _, t := range teams {
		slug := strings.ToLower(t.Slug)
		if _, ok := r.bySlug[slug]; !ok {
			r.bySlug[slug] = t
		}
		name := strings.ToLower(strings.TrimSpace(t.Name))
		if _, ok := r.byName[name]; !ok {
			r.byName[name] = t
		}
	}
	return r
}

// Resolve matches a raw team value against known teams, first by
// slugified value against slugs, then by trimmed value against display
// names (case-insensitive).
func (r *ReferenceSet) Resolve(raw string) (PicTeam, bool) {
	if t, ok := r.bySlug[Slugify(raw)]; ok {
		return t, true
	}
	if t, ok := r.byName[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return t, true
	}
	return PicTeam{}, false
}
