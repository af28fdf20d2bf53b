package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/16mdiqbal/cronjobctl/internal/api"
	"github.com/16mdiqbal/cronjobctl/internal/jobs"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Manage scheduled jobs",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all jobs in default order",
	Run:   runJobsList,
}

var jobsGetCmd = &cobra.Command{
	Use:   "get <job-id>",
	Short: "Show one job",
	Args:  cobra.ExactArgs(1),
	Run:   runJobsGet,
}

var jobsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search jobs by name",
	Args:  cobra.ExactArgs(1),
	Run:   runJobsSearch,
}

var (
	jobCreateInput  api.JobInput
	jobCreateActive bool
	jobUpdateActive bool
)

var jobsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a job",
	Run:   runJobsCreate,
}

var jobsUpdateCmd = &cobra.Command{
	Use:   "update <job-id>",
	Short: "Update a job",
	Args:  cobra.ExactArgs(1),
	Run:   runJobsUpdate,
}

var jobsDeleteCmd = &cobra.Command{
	Use:   "delete <job-id>",
	Short: "Delete a job",
	Args:  cobra.ExactArgs(1),
	Run:   runJobsDelete,
}

var jobsToggleCmd = &cobra.Command{
	Use:   "toggle <job-id>",
	Short: "Flip a job's active flag",
	Args:  cobra.ExactArgs(1),
	Run:   runJobsToggle,
}

var flagExecutionsLimit int

var jobsExecutionsCmd = &cobra.Command{
	Use:   "executions <job-id>",
	Short: "Show recent executions of a job",
	Args:  cobra.ExactArgs(1),
	Run:   runJobsExecutions,
}

func init() {
	addJobInputFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&jobCreateInput.Name, "name", "", "job name")
		cmd.Flags().StringVar(&jobCreateInput.CronExpression, "cron", "", "cron schedule (JST)")
		cmd.Flags().StringVar(&jobCreateInput.EndDate, "end-date", "", "end date (YYYY-MM-DD)")
		cmd.Flags().StringVar(&jobCreateInput.PicTeamSlug, "team", "", "PIC team slug")
		cmd.Flags().StringVar(&jobCreateInput.TargetURL, "target-url", "", "target URL to call")
		cmd.Flags().StringVar(&jobCreateInput.GithubRepo, "github-repo", "", "GitHub repository (owner/name)")
		cmd.Flags().StringVar(&jobCreateInput.WorkflowName, "workflow", "", "GitHub workflow file name")
	}

	addJobInputFlags(jobsCreateCmd)
	jobsCreateCmd.Flags().BoolVar(&jobCreateActive, "active", true, "create the job in active state")
	for _, name := range []string{"name", "cron", "end-date", "team"} {
		_ = jobsCreateCmd.MarkFlagRequired(name)
	}

	addJobInputFlags(jobsUpdateCmd)
	jobsUpdateCmd.Flags().BoolVar(&jobUpdateActive, "active", true, "active state")

	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsGetCmd)
	jobsCmd.AddCommand(jobsSearchCmd)
	jobsCmd.AddCommand(jobsCreateCmd)
	jobsCmd.AddCommand(jobsUpdateCmd)
	jobsCmd.AddCommand(jobsDeleteCmd)
	jobsCmd.AddCommand(jobsToggleCmd)

	jobsExecutionsCmd.Flags().IntVar(&flagExecutionsLimit, "limit", 20, "maximum executions to fetch")
	jobsCmd.AddCommand(jobsExecutionsCmd)
}

func runJobsList(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	log := mustLogger(cfg)
	client := newClient(cfg, log)

	list, err := client.ListJobs(context.Background())
	if err != nil {
		fatal(log, "Failed to list jobs", err)
	}
	list = jobs.SortDefault(list)

	if printStructured(list) {
		return
	}
	printJobsTable(list)
}

func runJobsGet(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	log := mustLogger(cfg)
	client := newClient(cfg, log)

	job, err := client.GetJob(context.Background(), args[0])
	if err != nil {
		fatal(log, "Failed to get job", err)
	}

	if printStructured(job) {
		return
	}
	printJobTable(job)
}

func runJobsSearch(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	log := mustLogger(cfg)
	client := newClient(cfg, log)

	list, err := client.SearchJobs(context.Background(), args[0])
	if err != nil {
		fatal(log, "Failed to search jobs", err)
	}
	list = jobs.SortDefault(list)

	if printStructured(list) {
		return
	}
	printJobsTable(list)
}

func runJobsCreate(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	log := mustLogger(cfg)
	client := newClient(cfg, log)

	in := jobCreateInput
	in.IsActive = &jobCreateActive

	job, err := client.CreateJob(context.Background(), in)
	if err != nil {
		fatal(log, "Failed to create job", err)
	}

	if printStructured(job) {
		return
	}
	fmt.Printf("Created job %s\n", job.ID)
	printJobTable(job)
}

func runJobsUpdate(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	log := mustLogger(cfg)
	client := newClient(cfg, log)

	in := jobCreateInput
	if cmd.Flags().Changed("active") {
		in.IsActive = &jobUpdateActive
	}

	job, err := client.UpdateJob(context.Background(), args[0], in)
	if err != nil {
		fatal(log, "Failed to update job", err)
	}

	if printStructured(job) {
		return
	}
	printJobTable(job)
}

func runJobsDelete(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	log := mustLogger(cfg)
	client := newClient(cfg, log)

	if err := client.DeleteJob(context.Background(), args[0]); err != nil {
		fatal(log, "Failed to delete job", err)
	}
	fmt.Printf("Deleted job %s\n", args[0])
}

func runJobsExecutions(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	log := mustLogger(cfg)
	client := newClient(cfg, log)

	execs, err := client.ListExecutions(context.Background(), args[0], flagExecutionsLimit)
	if err != nil {
		fatal(log, "Failed to list executions", err)
	}

	if printStructured(execs) {
		return
	}
	printExecutionsTable(execs)
}

func runJobsToggle(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	log := mustLogger(cfg)
	client := newClient(cfg, log)

	job, err := client.ToggleJob(context.Background(), args[0])
	if err != nil {
		fatal(log, "Failed to toggle job", err)
	}
	fmt.Printf("Job %s is now active=%t\n", job.ID, job.IsActive)
}
