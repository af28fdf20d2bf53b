package bulkupload

import (
	"fmt"
	"strings"

	"github.com/16mdiqbal/cronjobctl/internal/csvtable"
)

// Validate checks a normalized table against the upload contract and
// returns the errors in row order. An empty result means the file is
// ready to submit.
//
// When any required column is missing the result contains exactly one
// missing-column error per absent role and no row-level errors at all.
// When ref is nil (team list unavailable) team-reference checks are
// skipped and left to the backend.
func Validate(table csvtable.Table, ref *ReferenceSet) []Error {
	cols := ResolveColumns(table.Headers)

	var errs []Error
	for _, role := range requiredRoles {
		if _, ok := cols[role]; !ok {
			errs = append(errs, Error{
				Category: CategoryMissingColumn,
				Message:  fmt.Sprintf("column %q not found", requiredColumnLabels[role]),
			})
		}
	}
	if len(errs) > 0 {
		return errs
	}

	for i, row := range table.Rows {
		// 1-based line number including the header line.
		line := i + 2
		jobName := cellFor(table, row, cols, RoleJobName)

		errs = append(errs, validateRequiredFields(table, row, cols, line, jobName)...)
		errs = append(errs, validateTarget(table, row, cols, line, jobName)...)

		if ref != nil {
			if e := validateTeam(table, row, cols, line, jobName, ref); e != nil {
				errs = append(errs, *e)
			}
		}
	}
	return errs
}

func validateRequiredFields(table csvtable.Table, row []string, cols map[Role]int, line int, jobName string) []Error {
	required := []struct {
		role  Role
		label string
	}{
		{RoleCron, "cron expression"},
		{RoleEndDate, "end date"},
		{RoleTeam, "PIC team"},
	}

	var errs []Error
	for _, r := range required {
		if cellFor(table, row, cols, r.role) == "" {
			errs = append(errs, Error{
				Row:      line,
				JobName:  jobName,
				Category: CategoryMissingField,
				Message:  fmt.Sprintf("%s is required", r.label),
			})
		}
	}
	return errs
}

// validateTarget enforces that each row has either a target URL or both
// a repo and a workflow name. Files that carry no target columns at all
// skip the check; the backend fills in defaults or rejects on submit.
func validateTarget(table csvtable.Table, row []string, cols map[Role]int, line int, jobName string) []Error {
	_, hasURL := cols[RoleTargetURL]
	_, hasRepo := cols[RoleRepo]
	_, hasWorkflow := cols[RoleWorkflow]
	if !hasURL && !hasRepo && !hasWorkflow {
		return nil
	}

	url := cellFor(table, row, cols, RoleTargetURL)
	repo := cellFor(table, row, cols, RoleRepo)
	workflow := cellFor(table, row, cols, RoleWorkflow)

	if url != "" || (repo != "" && workflow != "") {
		return nil
	}
	return []Error{{
		Row:      line,
		JobName:  jobName,
		Category: CategoryMissingTarget,
		Message:  "either a target URL or a GitHub repo plus workflow name is required",
	}}
}

func validateTeam(table csvtable.Table, row []string, cols map[Role]int, line int, jobName string, ref *ReferenceSet) *Error {
	raw := cellFor(table, row, cols, RoleTeam)
	if raw == "" {
		// already reported as a missing required field
		return nil
	}

	slug := Slugify(raw)
	team, ok := ref.Resolve(raw)
	if !ok {
		return &Error{
			Row:         line,
			JobName:     jobName,
			Category:    CategoryInvalidTeam,
			Message:     fmt.Sprintf("unknown PIC team %q", raw),
			PicTeam:     raw,
			PicTeamSlug: slug,
		}
	}
	if !team.IsActive {
		return &Error{
			Row:         line,
			JobName:     jobName,
			Category:    CategoryInvalidTeam,
			Message:     fmt.Sprintf("PIC team %q is disabled", team.Name),
			PicTeam:     raw,
			PicTeamSlug: slug,
		}
	}
	return nil
}

func cellFor(table csvtable.Table, row []string, cols map[Role]int, role Role) string {
	idx, ok := cols[role]
	if !ok {
		return ""
	}
	return strings.TrimSpace(table.Cell(row, idx))
}
