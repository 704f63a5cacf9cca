// Package initcmd implements the `oracheck init` command.
package initcmd

import (
	"context"

	"github.com/oracheck/oracheck/pkg/config"
	"github.com/oracheck/oracheck/pkg/controller/initcmd"
	"github.com/oracheck/oracheck/pkg/log"
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
		Name:  "init",
		Usage: "Create a starter check document if it doesn't exist",
		Description: `Create a starter check document if it doesn't exist.

$ oracheck init

You can also pass the document path.

e.g.

$ oracheck init checks/prod.yaml
`,
		Action: r.action,
	}
}

func (r *runner) action(_ context.Context, c *cli.Command) error {
	log.SetLevel(c.String("log-level"), r.logE)
	configFilePath := c.Args().First()
	if configFilePath == "" {
		configFilePath = c.String("config")
	}
	if configFilePath == "" {
		configFilePath = config.DefaultPath
	}
	ctrl := initcmd.New(afero.NewOsFs())
	return ctrl.Init(configFilePath) //nolint:wrapcheck
}
