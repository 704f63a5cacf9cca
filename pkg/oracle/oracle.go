// Package oracle builds database handles from direct connection
// parameters or a tnsnames.ora alias.
package oracle

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	go_ora "github.com/sijms/go-ora/v2"
	"github.com/spf13/afero"
)

const pingTimeout = 10 * time.Second

type Params struct {
	User     string
	Password string

	// Direct mode.
	Host     string
	Port     int
	Service  string
	Protocol string

	// Alias mode.
	Alias    string
	TNSAdmin string
}

// Target returns the identifier of the database the params point at,
// used for logging and report file naming.
func (p *Params) Target() string {
	if p.Alias != "" {
		return p.Alias
	}
	return p.Host
}

// Open connects to the database and verifies the connection with a ping.
// The caller owns closing the returned handle.
func Open(ctx context.Context, fs afero.Fs, p *Params) (*sql.DB, error) {
	dsn, err := buildDSN(fs, p)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("oracle", dsn)
	if err != nil {
		return nil, fmt.Errorf("open a database handle: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping the database: %w", err)
	}
	return db, nil
}

func buildDSN(fs afero.Fs, p *Params) (string, error) {
	if p.Alias != "" {
		if p.TNSAdmin == "" {
			return "", errors.New("the tnsnames.ora directory is required to resolve an alias (--tns-admin or TNS_ADMIN)")
		}
		descriptor, err := ResolveAlias(fs, filepath.Join(p.TNSAdmin, "tnsnames.ora"), p.Alias)
		if err != nil {
			return "", err
		}
		return go_ora.BuildJDBC(p.User, p.Password, descriptor, nil), nil
	}
	options := map[string]string{}
	if p.Protocol == "tcps" {
		options["SSL"] = "TRUE"
	}
	return go_ora.BuildUrl(p.Host, p.Port, p.Service, p.User, p.Password, options), nil
}
