// Package check implements the audit run: it executes every check in the
// document against a single database session, collects non-empty result
// sets into a report, and renders it.
package check

import (
	"database/sql"
	"io"
	"time"

	"github.com/oracheck/oracheck/pkg/config"
	"github.com/spf13/afero"
)

const (
	FormatText = "text"
	FormatHTML = "html"
)

type Param struct {
	ConfigFilePath string
	// Target identifies the audited database (host, IP, or alias) in the
	// report and its file name.
	Target string
	Format string
	OutDir string
	// KeepGoing runs the remaining checks when one fails and reports all
	// failures at the end, instead of aborting on the first error.
	KeepGoing bool
	Stdout    io.Writer
}

type Controller struct {
	db        *sql.DB
	fs        afero.Fs
	cfgReader ConfigReader
	param     *Param
	now       func() time.Time
}

type ConfigReader interface {
	Read(cfg *config.Config, configFilePath string) error
}

func New(db *sql.DB, fs afero.Fs, cfgReader ConfigReader, param *Param, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{
		db:        db,
		fs:        fs,
		cfgReader: cfgReader,
		param:     param,
		now:       now,
	}
}
