package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/16mdiqbal/cronjobctl/internal/cronexpr"
)

var (
	flagCronOffline bool
	flagCronCount   int
)

var cronCmd = &cobra.Command{
	Use:   "cron",
	Short: "Validate and preview cron expressions",
}

var cronValidateCmd = &cobra.Command{
	Use:   "validate <expression>",
	Short: "Check a cron expression",
	Args:  cobra.ExactArgs(1),
	Run:   runCronValidate,
}

var cronPreviewCmd = &cobra.Command{
	Use:   "preview <expression>",
	Short: "Show the next run times of a cron expression",
	Args:  cobra.ExactArgs(1),
	Run:   runCronPreview,
}

var cronEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Interactively try cron expressions",
	Long: `Read cron expressions from stdin, one per line, and show the
validation verdict and next run for each as you type. Enter "p" to
toggle the five-run preview, an empty line to clear, Ctrl-D to quit.

Validation fires only after input settles, and a stale response never
overwrites the verdict for a newer expression.`,
	Run: runCronEdit,
}

func init() {
	for _, cmd := range []*cobra.Command{cronValidateCmd, cronPreviewCmd, cronEditCmd} {
		cmd.Flags().BoolVar(&flagCronOffline, "offline", false, "use the local parser instead of the backend")
	}
	cronPreviewCmd.Flags().IntVar(&flagCronCount, "count", 5, "number of run times to show")

	cronCmd.AddCommand(cronValidateCmd)
	cronCmd.AddCommand(cronPreviewCmd)
	cronCmd.AddCommand(cronEditCmd)
}

// cronValidator picks the backend client or the local parser.
func cronValidator() cronexpr.Validator {
	if flagCronOffline {
		return cronexpr.LocalValidator{}
	}
	cfg := mustLoadConfig()
	log := mustLogger(cfg)
	return newClient(cfg, log)
}

func runCronValidate(cmd *cobra.Command, args []string) {
	v := cronValidator()

	res, err := v.ValidateCron(context.Background(), args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Validation request failed: %v\n", err)
		os.Exit(1)
	}
	if !res.Valid {
		msg := res.Message
		if msg == "" {
			msg = "Invalid cron expression"
		}
		fmt.Println(msg)
		os.Exit(1)
	}
	fmt.Println("Valid")
}

func runCronPreview(cmd *cobra.Command, args []string) {
	v := cronValidator()

	p, err := v.PreviewCron(context.Background(), args[0], flagCronCount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Preview request failed: %v\n", err)
		os.Exit(1)
	}

	if printStructured(p) {
		return
	}
	fmt.Printf("Timezone: %s\n", p.Timezone)
	for _, r := range p.NextRuns {
		fmt.Printf("  %s\n", r)
	}
}

func runCronEdit(cmd *cobra.Command, args []string) {
	coord := cronexpr.New(cronValidator(), cronexpr.WithOnUpdate(printCronSnapshot))
	defer coord.Close()

	showPreview := false
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println(`Enter a cron expression ("p" toggles preview, Ctrl-D quits):`)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "p" {
			showPreview = !showPreview
			coord.SetShowPreview(showPreview)
			continue
		}
		coord.SetExpression(line)
	}
}

func printCronSnapshot(s cronexpr.Snapshot) {
	switch s.State {
	case cronexpr.StateIdle, cronexpr.StateDebouncing, cronexpr.StateValidating:
		return
	case cronexpr.StateFailed:
		fmt.Printf("  ! request failed: %v\n", s.Err)
	case cronexpr.StateInvalid:
		fmt.Printf("  x %s\n", s.Message)
	case cronexpr.StateValid:
		fmt.Printf("  ok next run %s (%s)\n", s.NextRun, s.Timezone)
		for _, r := range s.Preview {
			fmt.Printf("     %s\n", r)
		}
	}
}
