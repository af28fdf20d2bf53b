package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/16mdiqbal/cronjobctl/internal/bulkupload"
)

// ListPicTeams fetches the team reference set used for bulk-upload
// pre-validation. includeInactive matters: disabled teams must resolve
// so the validator can tell "disabled" from "unknown".
func (c *Client) ListPicTeams(ctx context.Context, includeInactive bool) ([]bulkupload.PicTeam, error) {
	var q url.Values
	if includeInactive {
		q = url.Values{"include_inactive": {"true"}}
	}
	var res picTeamsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/pic-teams", q, nil, &res); err != nil {
		return nil, err
	}
	return res.PicTeams, nil
}
