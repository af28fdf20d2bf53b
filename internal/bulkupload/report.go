package bulkupload

import (
	"strconv"

	"github.com/16mdiqbal/cronjobctl/internal/csvtable"
)

// ErrorsCSV renders an error list (client-side, server-side, or a merge
// of both) as CSV text for operator follow-up.
func ErrorsCSV(errs []Error) string {
	table := csvtable.Table{
		Headers: []string{"Row", "Job Name", "Error", "Message", "PIC Team", "PIC Team Slug"},
	}
	for _, e := range errs {
		row := ""
		if e.Row > 0 {
			row = strconv.Itoa(e.Row)
		}
		table.Rows = append(table.Rows, []string{
			row, e.JobName, e.Category, e.Message, e.PicTeam, e.PicTeamSlug,
		})
	}
	return table.String()
}

// Template returns the upload template offered for download: the
// canonical header row plus one example of each target style.
func Template() string {
	table := csvtable.Table{
		Headers: []string{
			"Job Name", "Cron Schedule (JST)", "End Date", "PIC Team",
			"Target URL", "GitHub Repo", "Workflow Name",
		},
		Rows: [][]string{
			{"daily-report", "0 9 * * *", "2027-03-31", "qa-team", "https://example.com/hooks/report", "", ""},
			{"nightly-build", "30 2 * * *", "2027-03-31", "platform", "", "acme/builds", "nightly.yml"},
		},
	}
	return table.String()
}
