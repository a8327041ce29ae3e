package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"snapsort/internal/config"
	"snapsort/internal/daemon"
	"snapsort/internal/logging"
	"snapsort/internal/organizer"
)

func runOrganize(cmd *cobra.Command, ctx *commandContext, args []string, watch bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	root, err := resolveRoot(cfg, args)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:   cfg.Logging.Level,
		Format:  resolveLogFormat(cfg.Logging.Format, stderrIsTerminal()),
		LogFile: cfg.LogFilePath(),
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger = logger.With(logging.String("run_id", uuid.NewString()))

	org := organizer.New(cfg, logger)

	var summary organizer.Summary
	if watch {
		d, err := daemon.New(cfg, org, logger)
		if err != nil {
			return fmt.Errorf("create daemon: %w", err)
		}
		signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		summary, err = d.Run(signalCtx, root)
		if err != nil {
			return err
		}
	} else {
		summary, err = org.Sweep(cmd.Context(), root)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderSummary(summary, shouldColorize(out)))
	return nil
}

// resolveLogFormat maps the "auto" format to console on a terminal and json
// everywhere else. Explicit formats pass through untouched.
func resolveLogFormat(format string, tty bool) string {
	if format != "auto" {
		return format
	}
	if tty {
		return "console"
	}
	return "json"
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func resolveRoot(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		root, err := config.ExpandPath(args[0])
		if err != nil {
			return "", fmt.Errorf("resolve downloads directory: %w", err)
		}
		return root, nil
	}
	return cfg.Paths.DownloadsDir, nil
}
