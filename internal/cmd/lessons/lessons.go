// Package lessons wires configuration parsing and the run loop for the
// lessons service command.
package lessons

import (
	"context"
	"flag"
	"fmt"

	platformcmd "github.com/hypermedia-lab/lessons/internal/platform/cmd"
	lessonssvc "github.com/hypermedia-lab/lessons/internal/services/lessons"
)

// ParseConfig loads environment defaults and applies flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (lessonssvc.Config, error) {
	var cfg lessonssvc.Config
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.JournalDSN, "journal-dsn", cfg.JournalDSN, "request journal sqlite DSN")
	if err := platformcmd.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return lessonssvc.Config{}, err
	}
	return cfg, nil
}

// Run starts the lessons HTTP service and blocks until ctx is canceled.
func Run(ctx context.Context, cfg lessonssvc.Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceLessons, func(ctx context.Context) error {
		server, err := lessonssvc.NewServer(cfg)
		if err != nil {
			return fmt.Errorf("init lessons server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve lessons: %w", err)
		}
		return nil
	})
}
