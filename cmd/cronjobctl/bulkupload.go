package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/16mdiqbal/cronjobctl/internal/bulkupload"
	"github.com/16mdiqbal/cronjobctl/internal/csvtable"
	"github.com/16mdiqbal/cronjobctl/internal/logger"
)

var (
	flagUploadOwner     string
	flagUploadLocal     bool
	flagUploadErrorsCSV string
	flagUploadForce     bool
)

var bulkuploadCmd = &cobra.Command{
	Use:   "bulkupload",
	Short: "Bulk-upload jobs from a CSV file",
}

var bulkuploadTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print the CSV template with example rows",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(bulkupload.Template())
	},
}

var bulkuploadValidateCmd = &cobra.Command{
	Use:   "validate <file.csv>",
	Short: "Validate a CSV file without uploading",
	Args:  cobra.ExactArgs(1),
	Run:   runBulkuploadValidate,
}

var bulkuploadSubmitCmd = &cobra.Command{
	Use:   "submit <file.csv>",
	Short: "Validate and upload a CSV file",
	Args:  cobra.ExactArgs(1),
	Run:   runBulkuploadSubmit,
}

func init() {
	for _, cmd := range []*cobra.Command{bulkuploadValidateCmd, bulkuploadSubmitCmd} {
		cmd.Flags().BoolVar(&flagUploadLocal, "local", false, "skip the PIC team check (no API call during validation)")
		cmd.Flags().StringVar(&flagUploadErrorsCSV, "errors-csv", "", "write validation errors to this CSV file")
	}
	bulkuploadSubmitCmd.Flags().StringVar(&flagUploadOwner, "owner", "", "default GitHub owner for bare repo names (default from config)")
	bulkuploadSubmitCmd.Flags().BoolVar(&flagUploadForce, "force", false, "upload even when local validation found errors")

	bulkuploadCmd.AddCommand(bulkuploadTemplateCmd)
	bulkuploadCmd.AddCommand(bulkuploadValidateCmd)
	bulkuploadCmd.AddCommand(bulkuploadSubmitCmd)
}

// loadAndValidate runs the local pipeline: parse, normalize, validate
// against the team reference set (fetched unless --local).
func loadAndValidate(path string, log *logger.Logger, fetchTeams func(ctx context.Context) ([]bulkupload.PicTeam, error)) (*csvtable.Normalized, []bulkupload.Error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		fatal(log, "Failed to read CSV file", err)
	}

	normalized, err := csvtable.ParseAndNormalize(string(raw))
	if err != nil {
		fatal(log, "Failed to parse CSV file", err)
	}

	log.Info("CSV normalized",
		logger.Field{Key: "rows", Value: len(normalized.Table.Rows)},
		logger.Field{Key: "removed_columns", Value: normalized.Stats.RemovedColumns},
		logger.Field{Key: "removed_empty_rows", Value: normalized.Stats.RemovedEmptyRows})

	var ref *bulkupload.ReferenceSet
	if fetchTeams != nil {
		teams, err := fetchTeams(context.Background())
		if err != nil {
			fatal(log, "Failed to fetch PIC teams", err)
		}
		ref = bulkupload.NewReferenceSet(teams)
	}

	return normalized, bulkupload.Validate(normalized.Table, ref)
}

func reportErrors(errs []bulkupload.Error, log *logger.Logger) {
	if flagUploadErrorsCSV != "" {
		if err := os.WriteFile(flagUploadErrorsCSV, []byte(bulkupload.ErrorsCSV(errs)), 0644); err != nil {
			fatal(log, "Failed to write errors CSV", err)
		}
		fmt.Printf("Wrote %d errors to %s\n", len(errs), flagUploadErrorsCSV)
	}

	if printStructured(errs) {
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ROW\tJOB\tERROR\tDETAIL")
	for _, e := range errs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.Row, e.JobName, e.Category, e.Message)
	}
	w.Flush()
}

func runBulkuploadValidate(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	log := mustLogger(cfg)

	var fetchTeams func(ctx context.Context) ([]bulkupload.PicTeam, error)
	if !flagUploadLocal {
		client := newClient(cfg, log)
		fetchTeams = func(ctx context.Context) ([]bulkupload.PicTeam, error) {
			return client.ListPicTeams(ctx, true)
		}
	}

	_, errs := loadAndValidate(args[0], log, fetchTeams)
	if len(errs) == 0 {
		fmt.Println("CSV is valid")
		return
	}

	reportErrors(errs, log)
	os.Exit(1)
}

func runBulkuploadSubmit(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	log := mustLogger(cfg)
	client := newClient(cfg, log)

	var fetchTeams func(ctx context.Context) ([]bulkupload.PicTeam, error)
	if !flagUploadLocal {
		fetchTeams = func(ctx context.Context) ([]bulkupload.PicTeam, error) {
			return client.ListPicTeams(ctx, true)
		}
	}

	normalized, errs := loadAndValidate(args[0], log, fetchTeams)
	if len(errs) > 0 {
		reportErrors(errs, log)
		if !flagUploadForce {
			log.Error("Upload aborted", fmt.Errorf("%d validation errors (use --force to upload anyway)", len(errs)))
			os.Exit(1)
		}
	}

	owner := flagUploadOwner
	if owner == "" {
		owner = cfg.Upload.DefaultGithubOwner
	}

	result, err := client.BulkUpload(context.Background(), normalized.Table.String(), owner)
	if err != nil {
		fatal(log, "Upload failed", err)
	}

	fmt.Printf("Created %d jobs, %d rows rejected\n", result.CreatedCount, result.ErrorCount)
	if len(result.Errors) > 0 {
		reportErrors(result.Errors, log)
		os.Exit(1)
	}
}
