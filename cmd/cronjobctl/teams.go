package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var flagTeamsIncludeInactive bool

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List PIC teams",
	Run:   runTeamsList,
}

func init() {
	teamsCmd.Flags().BoolVar(&flagTeamsIncludeInactive, "include-inactive", false, "also list disabled teams")
}

func runTeamsList(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	log := mustLogger(cfg)
	client := newClient(cfg, log)

	teams, err := client.ListPicTeams(context.Background(), flagTeamsIncludeInactive)
	if err != nil {
		fatal(log, "Failed to list PIC teams", err)
	}

	if printStructured(teams) {
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSLUG\tNAME\tACTIVE")
	for _, t := range teams {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", t.ID, t.Slug, t.Name, t.IsActive)
	}
	w.Flush()
}
