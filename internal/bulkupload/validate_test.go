package bulkupload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/16mdiqbal/cronjobctl/internal/csvtable"
)

func knownTeams() *ReferenceSet {
	return NewReferenceSet([]PicTeam{
		{ID: "1", Slug: "qa-team", Name: "QA Team", IsActive: true},
		{ID: "2", Slug: "platform", Name: "Platform", IsActive: true},
		{ID: "3", Slug: "legacy-ops", Name: "Legacy Ops", IsActive: false},
	})
}

func validTable() csvtable.Table {
	return csvtable.Table{
		Headers: []string{"Job Name", "Cron Schedule (JST)", "End Date", "PIC Team", "Target URL"},
		Rows: [][]string{
			{"daily", "0 9 * * *", "2027-01-01", "qa-team", "https://example.com/h"},
		},
	}
}

func TestValidateCleanTable(t *testing.T) {
	errs := Validate(validTable(), knownTeams())
	assert.Empty(t, errs)
}

func TestValidateMissingColumnGate(t *testing.T) {
	table := csvtable.Table{
		Headers: []string{"Job Name", "Cron Schedule (JST)", "End Date"},
		Rows: [][]string{
			// row-level problems that must NOT be reported while the
			// column gate is failing
			{"", "", ""},
		},
	}

	errs := Validate(table, knownTeams())
	require.Len(t, errs, 1)
	assert.Equal(t, CategoryMissingColumn, errs[0].Category)
	assert.Zero(t, errs[0].Row)
}

func TestValidateAllRequiredColumnsMissing(t *testing.T) {
	table := csvtable.Table{Headers: []string{"Job Name"}}

	errs := Validate(table, knownTeams())
	require.Len(t, errs, 3)
	for _, e := range errs {
		assert.Equal(t, CategoryMissingColumn, e.Category)
	}
}

func TestValidateHeaderAliases(t *testing.T) {
	table := csvtable.Table{
		Headers: []string{"name", "cron", "end_date", "pic_team_slug", "url"},
		Rows: [][]string{
			{"j", "* * * * *", "2027-01-01", "platform", "https://x"},
		},
	}
	assert.Empty(t, Validate(table, knownTeams()))
}

func TestValidateRequiredFields(t *testing.T) {
	table := validTable()
	table.Rows = [][]string{
		{"daily", "  ", "", "qa-team", "https://x"},
	}

	errs := Validate(table, knownTeams())
	require.Len(t, errs, 2)
	for _, e := range errs {
		assert.Equal(t, CategoryMissingField, e.Category)
		assert.Equal(t, 2, e.Row)
		assert.Equal(t, "daily", e.JobName)
	}
}

func TestValidateTargetConfiguration(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		repo     string
		workflow string
		wantErr  bool
	}{
		{"url only", "https://x", "", "", false},
		{"repo and workflow", "", "acme/r", "ci.yml", false},
		{"repo without workflow", "", "acme/r", "", true},
		{"workflow without repo", "", "", "ci.yml", true},
		{"nothing", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := csvtable.Table{
				Headers: []string{"Job Name", "Cron", "End Date", "PIC Team", "Target URL", "GitHub Repo", "Workflow Name"},
				Rows: [][]string{
					{"j", "* * * * *", "2027-01-01", "qa-team", tt.url, tt.repo, tt.workflow},
				},
			}
			errs := Validate(table, knownTeams())
			if !tt.wantErr {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, CategoryMissingTarget, errs[0].Category)
		})
	}
}

func TestValidateTeamMatching(t *testing.T) {
	run := func(team string) []Error {
		table := validTable()
		table.Rows[0][3] = team
		return Validate(table, knownTeams())
	}

	t.Run("display name with noise slugifies onto slug", func(t *testing.T) {
		assert.Empty(t, run("QA Team!!"))
	})

	t.Run("exact slug", func(t *testing.T) {
		assert.Empty(t, run("qa-team"))
	})

	t.Run("display name case-insensitive", func(t *testing.T) {
		assert.Empty(t, run("qa team"))
	})

	t.Run("unknown team", func(t *testing.T) {
		errs := run("No Such Team")
		require.Len(t, errs, 1)
		assert.Equal(t, CategoryInvalidTeam, errs[0].Category)
		assert.Contains(t, errs[0].Message, "unknown")
		assert.Equal(t, "No Such Team", errs[0].PicTeam)
		assert.Equal(t, "no-such-team", errs[0].PicTeamSlug)
	})

	t.Run("disabled team is distinct from unknown", func(t *testing.T) {
		errs := run("legacy-ops")
		require.Len(t, errs, 1)
		assert.Equal(t, CategoryInvalidTeam, errs[0].Category)
		assert.Contains(t, errs[0].Message, "disabled")
	})
}

func TestValidateWithoutReferenceSet(t *testing.T) {
	table := validTable()
	table.Rows[0][3] = "No Such Team"

	// nil reference set: structural checks only, team check deferred to
	// the backend
	assert.Empty(t, Validate(table, nil))
}

func TestValidateEndToEndScenario(t *testing.T) {
	text := "Job Name,Cron schedule (JST),End Date,PIC Team\nDaily,* * * * *,2026-01-01,qa-team\n,,,\n"

	n, err := csvtable.ParseAndNormalize(text)
	require.NoError(t, err)
	require.Len(t, n.Table.Rows, 1)
	assert.Equal(t, 1, n.Stats.RemovedEmptyRows)

	// no target columns in the file at all, so the target check is
	// deferred to the backend and the file is clean
	assert.Empty(t, Validate(n.Table, knownTeams()))
}

func TestValidateNoTargetColumnsSkipsTargetCheck(t *testing.T) {
	table := csvtable.Table{
		Headers: []string{"Job Name", "Cron", "End Date", "PIC Team"},
		Rows: [][]string{
			{"j", "* * * * *", "2027-01-01", "qa-team"},
		},
	}
	assert.Empty(t, Validate(table, knownTeams()))
}
