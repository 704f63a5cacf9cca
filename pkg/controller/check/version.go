package check

import (
	"context"
	"database/sql"

	goversion "github.com/hashicorp/go-version"
	"github.com/oracheck/oracheck/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

const versionQuery = "SELECT version FROM v$instance"

// versionGate fetches the instance version and warns when it is older
// than min_server_version. The gate is best-effort: a failed lookup or
// an old server logs a warning, it never fails the run.
func (c *Controller) versionGate(ctx context.Context, logE *logrus.Entry, conn *sql.Conn, cfg *config.Config) string {
	minVersion := cfg.MinVersion()
	if minVersion == nil {
		return ""
	}
	var serverVersion string
	if err := conn.QueryRowContext(ctx, versionQuery).Scan(&serverVersion); err != nil {
		logerr.WithError(logE, err).Warn("get the server version")
		return ""
	}
	v, err := goversion.NewVersion(serverVersion)
	if err != nil {
		logerr.WithError(logE, err).WithField("server_version", serverVersion).Warn("parse the server version")
		return serverVersion
	}
	if v.LessThan(minVersion) {
		logE.WithFields(logrus.Fields{
			"server_version":     serverVersion,
			"min_server_version": cfg.MinServerVersion,
		}).Warn("the server is older than min_server_version")
	}
	return serverVersion
}
