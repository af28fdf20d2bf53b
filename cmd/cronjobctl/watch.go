package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/16mdiqbal/cronjobctl/internal/api"
	"github.com/16mdiqbal/cronjobctl/internal/jobs"
	"github.com/16mdiqbal/cronjobctl/internal/logger"
	"github.com/16mdiqbal/cronjobctl/internal/poll"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll the backend and print job changes",
	Long: `Keep a local mirror of the job list and the notification inbox,
refreshing on the intervals from the [polling] config section. Changes
are printed as they are observed. When [metrics] is enabled, a
Prometheus endpoint exposes request and poll counters.`,
	Run: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	log := mustLogger(cfg)

	reg := prometheus.NewRegistry()
	client := newClient(cfg, log, api.WithMetrics(api.NewMetrics(reg)))
	pollMetrics := poll.NewMetrics(reg)

	if cfg.Metrics.Enabled {
		reg.MustRegister(collectors.NewGoCollector())
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: cfg.Metrics.ListenAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("Metrics server failed", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Info("Metrics listening", logger.Field{Key: "addr", Value: cfg.Metrics.ListenAddr})
	}

	store := jobs.NewStore()
	jobsPoller := poll.New("jobs",
		time.Duration(cfg.Polling.JobsIntervalSeconds)*time.Second,
		func(ctx context.Context) error {
			list, err := client.ListJobs(ctx)
			if err != nil {
				return err
			}
			reportJobChanges(store, list)
			store.Replace(list)
			return nil
		}, log, pollMetrics)

	seenNotifications := make(map[string]bool)
	notifPoller := poll.New("notifications",
		time.Duration(cfg.Polling.NotificationsIntervalSeconds)*time.Second,
		func(ctx context.Context) error {
			list, err := client.ListNotifications(ctx)
			if err != nil {
				return err
			}
			for _, n := range list {
				if !seenNotifications[n.ID] && !n.IsRead {
					fmt.Printf("notification: %s\n", n.Title)
				}
				seenNotifications[n.ID] = true
			}
			return nil
		}, log, pollMetrics)

	jobsPoller.Start()
	notifPoller.Start()
	defer jobsPoller.Stop()
	defer notifPoller.Stop()

	// SIGUSR1 forces an immediate refresh of both views
	wake := make(chan os.Signal, 1)
	signal.Notify(wake, syscall.SIGUSR1)
	go func() {
		for range wake {
			jobsPoller.Wake()
			notifPoller.Wake()
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	log.Info("Shutting down")
}

// reportJobChanges prints what changed between the mirrored list and a
// freshly fetched one.
func reportJobChanges(store *jobs.Store, fresh []jobs.Job) {
	if store.Len() == 0 {
		fmt.Printf("watching %d jobs\n", len(fresh))
		return
	}

	freshIDs := make(map[string]bool, len(fresh))
	for _, j := range fresh {
		freshIDs[j.ID] = true
		prev, ok := store.Get(j.ID)
		switch {
		case !ok:
			fmt.Printf("job added: %s (%s)\n", j.Name, j.CronExpression)
		case prev.IsActive != j.IsActive:
			fmt.Printf("job %s: active=%t\n", j.Name, j.IsActive)
		case prev.CronExpression != j.CronExpression:
			fmt.Printf("job %s: schedule %s -> %s\n", j.Name, prev.CronExpression, j.CronExpression)
		}
	}
	for _, j := range store.List() {
		if !freshIDs[j.ID] {
			fmt.Printf("job removed: %s\n", j.Name)
		}
	}
}
