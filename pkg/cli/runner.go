// Package cli wires the urfave/cli commands.
package cli

import (
	"context"

	"github.com/oracheck/oracheck/pkg/cli/initcmd"
	"github.com/oracheck/oracheck/pkg/cli/run"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

type LDFlags struct {
	Version string
	Commit  string
	Date    string
}

func Run(ctx context.Context, logE *logrus.Entry, ldFlags *LDFlags, args ...string) error {
	cmd := &cli.Command{
		Name:    "oracheck",
		Usage:   "Audit an Oracle database for migration readiness",
		Version: ldFlags.Version + " (" + ldFlags.Commit + ")",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level",
				Sources: cli.EnvVars("ORACHECK_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "check document path",
				Sources: cli.EnvVars("ORACHECK_CONFIG"),
			},
		},
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			run.New(logE),
			initcmd.New(logE),
			newVersionCommand(),
		},
	}
	return cmd.Run(ctx, args) //nolint:wrapcheck
}
