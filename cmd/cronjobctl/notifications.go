package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Read the notification inbox",
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications",
	Run:   runNotificationsList,
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read <notification-id>",
	Short: "Mark a notification as read",
	Args:  cobra.ExactArgs(1),
	Run:   runNotificationsRead,
}

func init() {
	notificationsCmd.AddCommand(notificationsListCmd)
	notificationsCmd.AddCommand(notificationsReadCmd)
}

func runNotificationsList(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	log := mustLogger(cfg)
	client := newClient(cfg, log)

	list, err := client.ListNotifications(context.Background())
	if err != nil {
		fatal(log, "Failed to list notifications", err)
	}

	if printStructured(list) {
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tREAD\tCREATED\tTITLE")
	for _, n := range list {
		fmt.Fprintf(w, "%s\t%t\t%s\t%s\n", n.ID, n.IsRead, n.CreatedAt, n.Title)
	}
	w.Flush()
}

func runNotificationsRead(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	log := mustLogger(cfg)
	client := newClient(cfg, log)

	if err := client.MarkNotificationRead(context.Background(), args[0]); err != nil {
		fatal(log, "Failed to mark notification read", err)
	}
	fmt.Printf("Marked %s as read\n", args[0])
}
