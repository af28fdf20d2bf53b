package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/16mdiqbal/cronjobctl/internal/api"
	"github.com/16mdiqbal/cronjobctl/internal/jobs"
)

// printStructured renders v as JSON or YAML per --output. Returns false
// when the format is "table" so callers fall through to their tabular
// renderer.
func printStructured(v any) bool {
	switch flagOutput {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode output: %v\n", err)
			os.Exit(1)
		}
		return true
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		if err := enc.Encode(v); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode output: %v\n", err)
			os.Exit(1)
		}
		return true
	case "table":
		return false
	default:
		fmt.Fprintf(os.Stderr, "Invalid output format: %s (expected: table, json, yaml)\n", flagOutput)
		os.Exit(1)
		return false
	}
}

func printJobsTable(list []jobs.Job) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSCHEDULE\tTEAM\tACTIVE\tNEXT RUN")
	for _, j := range list {
		next := j.NextExecutionAt
		if next == "" {
			next = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\t%s\n",
			j.ID, j.Name, j.CronExpression, j.PicTeamSlug, j.IsActive, next)
	}
	w.Flush()
}

func printExecutionsTable(execs []api.Execution) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tSTARTED\tFINISHED\tMESSAGE")
	for _, e := range execs {
		finished := e.FinishedAt
		if finished == "" {
			finished = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Status, e.StartedAt, finished, e.Message)
	}
	w.Flush()
}

func printJobTable(j jobs.Job) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%s\n", j.ID)
	fmt.Fprintf(w, "Name:\t%s\n", j.Name)
	fmt.Fprintf(w, "Schedule:\t%s\n", j.CronExpression)
	fmt.Fprintf(w, "End Date:\t%s\n", j.EndDate)
	fmt.Fprintf(w, "Team:\t%s\n", j.PicTeamSlug)
	if j.TargetURL != "" {
		fmt.Fprintf(w, "Target URL:\t%s\n", j.TargetURL)
	}
	if j.GithubRepo != "" {
		fmt.Fprintf(w, "GitHub Repo:\t%s\n", j.GithubRepo)
		fmt.Fprintf(w, "Workflow:\t%s\n", j.WorkflowName)
	}
	fmt.Fprintf(w, "Active:\t%t\n", j.IsActive)
	if j.NextExecutionAt != "" {
		fmt.Fprintf(w, "Next Run:\t%s\n", j.NextExecutionAt)
	}
	w.Flush()
}
