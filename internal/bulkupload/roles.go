package bulkupload

import "strings"

// Role identifies the purpose of a CSV column.
type Role string

const (
	RoleJobName   Role = "job_name"
	RoleCron      Role = "cron_expression"
	RoleEndDate   Role = "end_date"
	RoleTeam      Role = "pic_team"
	RoleTargetURL Role = "target_url"
	RoleRepo      Role = "github_repo"
	RoleWorkflow  Role = "workflow_name"
)

// roleAliases maps each role to the header spellings accepted for it.
// Matching is case-insensitive on trimmed headers; the first header that
// matches any alias wins.
var roleAliases = map[Role][]string{
	RoleJobName: {"job name", "job_name", "name", "job"},
	RoleCron: {
		"cron schedule (jst)", "cron schedule", "cron_schedule",
		"cron expression", "cron_expression", "cron", "schedule",
	},
	RoleEndDate: {"end date", "end_date", "enddate"},
	RoleTeam: {
		"pic team", "pic_team", "pic team slug", "pic_team_slug",
		"pic", "team",
	},
	RoleTargetURL: {"target url", "target_url", "url", "api url", "api_url"},
	RoleRepo:      {"github repo", "github_repo", "repo", "repository"},
	RoleWorkflow: {
		"workflow name", "workflow_name", "workflow",
		"workflow file", "workflow_file",
	},
}

// requiredRoles are the columns that must exist before any row-level
// validation runs.
var requiredRoles = []Role{RoleCron, RoleEndDate, RoleTeam}

// requiredColumnLabels names each required role the way the upload
// template spells it, for use in missing-column messages.
var requiredColumnLabels = map[Role]string{
	RoleCron:    "Cron Schedule",
	RoleEndDate: "End Date",
	RoleTeam:    "PIC Team",
}

// ResolveColumns locates each role's column index in the given headers.
// Roles with no matching header are absent from the result.
func ResolveColumns(headers []string) map[Role]int {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}

	out := make(map[Role]int, len(roleAliases))
	for role, aliases := range roleAliases {
		for i, h := range normalized {
			if matchesAlias(h, aliases) {
				out[role] = i
				break
			}
		}
	}
	return out
}

func matchesAlias(header string, aliases []string) bool {
	for _, a := range aliases {
		if header == a {
			return true
		}
	}
	return false
}
