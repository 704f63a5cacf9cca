package check

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/oracheck/oracheck/pkg/config"
	"github.com/oracheck/oracheck/pkg/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// ErrChecksFailed is returned in keep-going mode when at least one check
// failed. The failures have already been logged and reported.
var ErrChecksFailed = errors.New("some checks failed")

func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	cfg := &config.Config{}
	if err := c.cfgReader.Read(cfg, c.param.ConfigFilePath); err != nil {
		return fmt.Errorf("read a check document: %w", err)
	}

	// One session for the whole batch. Checks run strictly sequentially
	// on it; the deferred Close releases it on every exit path.
	conn, err := c.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire a database session: %w", err)
	}
	defer conn.Close()

	serverVersion := c.versionGate(ctx, logE, conn, cfg)

	outcomes, err := c.runChecks(ctx, logE, conn, cfg)
	if err != nil {
		return err
	}

	rep := &report.Report{
		Host:          c.param.Target,
		ServerVersion: serverVersion,
		GeneratedAt:   c.now(),
		Outcomes:      outcomes,
	}
	if err := c.render(logE, rep); err != nil {
		return err
	}
	if len(rep.Failures()) > 0 {
		return ErrChecksFailed
	}
	return nil
}

func (c *Controller) runChecks(ctx context.Context, logE *logrus.Entry, conn *sql.Conn, cfg *config.Config) ([]report.Outcome, error) {
	outcomes := make([]report.Outcome, 0, len(cfg.Validations))
	for _, check := range cfg.Validations {
		logE := logE.WithField("check_name", check.Name)
		logE.Info("running check")
		rows, err := c.runCheck(ctx, conn, check, cfg.OwnerExcludeList)
		if err != nil {
			if !c.param.KeepGoing {
				return nil, fmt.Errorf("run the check %q: %w", check.Name, err)
			}
			logerr.WithError(logE, err).Error("run a check")
			outcomes = append(outcomes, report.Outcome{Name: check.Name, Err: err})
			continue
		}
		if len(rows) == 0 {
			// no findings, drop the check from the report
			outcomes = append(outcomes, report.Outcome{Name: check.Name})
			continue
		}
		outcomes = append(outcomes, report.Outcome{
			Name: check.Name,
			Result: &report.CheckResult{
				Name:        check.Name,
				Description: check.Description,
				Warning:     check.WarningMessage,
				Rows:        rows,
			},
		})
	}
	return outcomes, nil
}

func (c *Controller) runCheck(ctx context.Context, conn *sql.Conn, check *config.Check, excludeList []string) ([]report.Row, error) {
	rows, err := conn.QueryContext(ctx, RenderQuery(check.Query, excludeList))
	if err != nil {
		return nil, fmt.Errorf("execute the query: %w", err)
	}
	return fetchAll(rows)
}

// fetchAll eagerly materializes the whole result set. Large result sets
// are loaded into memory; checks are expected to return findings, not
// data.
func fetchAll(rows *sql.Rows) ([]report.Row, error) {
	defer rows.Close()
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("get the result set columns: %w", err)
	}
	var result []report.Row
	for rows.Next() {
		values := make(report.Row, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("scan a row: %w", err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		result = append(result, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch the result set: %w", err)
	}
	return result, nil
}

func (c *Controller) render(logE *logrus.Entry, rep *report.Report) error {
	switch c.param.Format {
	case FormatHTML:
		doc, err := report.RenderHTML(rep)
		if err != nil {
			return err
		}
		path := filepath.Join(c.param.OutDir, report.ArtifactName(rep.Host, rep.GeneratedAt, "html"))
		if err := afero.WriteFile(c.fs, path, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("write the HTML report: %w", err)
		}
		logE.WithField("report", path).Info("HTML report generated")
	default:
		report.NewTextRenderer(c.param.Stdout).Render(rep)
	}
	return nil
}
