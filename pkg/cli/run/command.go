// Package run implements the `oracheck run` command.
package run

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/oracheck/oracheck/pkg/config"
	"github.com/oracheck/oracheck/pkg/controller/check"
	"github.com/oracheck/oracheck/pkg/log"
	"github.com/oracheck/oracheck/pkg/oracle"
	"github.com/oracheck/oracheck/pkg/secret"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry) *cli.Command {
	r := &runner{
		logE: logE,
	}
	return r.Command()
}

type runner struct {
	logE *logrus.Entry
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run the checks and report the findings",
		Description: `Run every check in the check document against the database and report
the findings.

$ oracheck run --user system --password secret --host db1 --service orclpdb

The target is either --host/--port/--service or a tnsnames.ora alias:

$ oracheck run --user system --password keyring:prod --alias PROD --format html

The password may be a literal, "gcp-secret:<name>" (Google Secret
Manager, requires GOOGLE_CLOUD_PROJECT), or "keyring:<name>" (OS
keyring).
`,
		Action: r.action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "user",
				Usage:   "database user",
				Sources: cli.EnvVars("ORACHECK_USER"),
			},
			&cli.StringFlag{
				Name:    "password",
				Usage:   "database password, optionally gcp-secret:<name> or keyring:<name>",
				Sources: cli.EnvVars("ORACHECK_PASSWORD"),
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "database host",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "database port",
				Value: 1521,
			},
			&cli.StringFlag{
				Name:  "service",
				Usage: "database service name",
			},
			&cli.StringFlag{
				Name:  "protocol",
				Usage: `connection protocol, "tcp" or "tcps"`,
				Value: "tcp",
			},
			&cli.StringFlag{
				Name:  "alias",
				Usage: "tnsnames.ora alias, mutually exclusive with --host",
			},
			&cli.StringFlag{
				Name:    "tns-admin",
				Usage:   "directory containing tnsnames.ora",
				Sources: cli.EnvVars("TNS_ADMIN"),
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: `output format, "text" or "html"`,
				Value: check.FormatText,
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "directory the HTML report is written to",
			},
			&cli.BoolFlag{
				Name:  "keep-going",
				Usage: "run the remaining checks when one fails and report all failures",
			},
		},
	}
}

func (r *runner) action(ctx context.Context, c *cli.Command) error {
	log.SetLevel(c.String("log-level"), r.logE)

	params := &oracle.Params{
		User:     c.String("user"),
		Host:     c.String("host"),
		Port:     int(c.Int("port")),
		Service:  c.String("service"),
		Protocol: c.String("protocol"),
		Alias:    c.String("alias"),
		TNSAdmin: c.String("tns-admin"),
	}
	format := c.String("format")
	if err := validate(params, format); err != nil {
		return err
	}

	password, err := secret.New(r.logE).Resolve(ctx, c.String("password"))
	if err != nil {
		return fmt.Errorf("resolve the password: %w", err)
	}
	params.Password = password

	fs := afero.NewOsFs()
	db, err := oracle.Open(ctx, fs, params)
	if err != nil {
		return fmt.Errorf("connect to the database: %w", err)
	}
	defer db.Close()

	configFilePath := c.String("config")
	if configFilePath == "" {
		configFilePath = config.DefaultPath
	}
	ctrl := check.New(db, fs, config.NewReader(fs), &check.Param{
		ConfigFilePath: configFilePath,
		Target:         params.Target(),
		Format:         format,
		OutDir:         c.String("out"),
		KeepGoing:      c.Bool("keep-going"),
		Stdout:         os.Stdout,
	}, nil)
	return ctrl.Run(ctx, r.logE) //nolint:wrapcheck
}

func validate(params *oracle.Params, format string) error {
	if params.User == "" {
		return errors.New("--user is required")
	}
	if params.Alias == "" && params.Host == "" {
		return errors.New("either --host or --alias is required")
	}
	if params.Alias != "" && params.Host != "" {
		return errors.New("--host and --alias are mutually exclusive")
	}
	if params.Host != "" && params.Service == "" {
		return errors.New("--service is required with --host")
	}
	if params.Protocol != "tcp" && params.Protocol != "tcps" {
		return fmt.Errorf("unknown protocol %q", params.Protocol)
	}
	if format != check.FormatText && format != check.FormatHTML {
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}
