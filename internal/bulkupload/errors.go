// Package bulkupload validates normalized CSV tables before they are
// submitted to the bulk-upload endpoint. Validation here is a UX
// optimization: it catches structurally broken files without burning a
// network round trip, but the backend remains authoritative and
// re-validates everything on submit.
package bulkupload

import "fmt"

// Error categories. Client-side errors share the wire shape of
// server-returned row errors so display and export code never needs to
// care where an error came from.
const (
	CategoryMissingColumn = "Missing required column"
	CategoryMissingField  = "Missing required field"
	CategoryMissingTarget = "Missing target configuration"
	CategoryInvalidTeam   = "Invalid PIC team"
)

// Error is a single row-level (or column-level) validation failure.
// Row is the 1-based line number including the header line.
type Error struct {
	Row         int    `json:"row,omitempty"`
	JobName     string `json:"job_name,omitempty"`
	Category    string `json:"error"`
	Message     string `json:"message,omitempty"`
	PicTeam     string `json:"pic_team,omitempty"`
	PicTeamSlug string `json:"pic_team_slug,omitempty"`
}

func (e Error) String() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: %s: %s", e.Row, e.Category, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}
