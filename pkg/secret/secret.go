// Package secret resolves the database password. A plain value is used
// literally; the schemes "gcp-secret:<name>" and "keyring:<name>"
// indirect through Google Secret Manager and the OS keyring.
package secret

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/zalando/go-keyring"
)

const (
	gcpScheme     = "gcp-secret:"
	keyringScheme = "keyring:"

	keyService = "oracheck"
	projectEnv = "GOOGLE_CLOUD_PROJECT"
)

// GCPAccessor reads a secret version from Google Secret Manager.
// name is the full resource path of the version.
type GCPAccessor interface {
	AccessSecret(ctx context.Context, name string) (string, error)
}

type Resolver struct {
	logE       *logrus.Entry
	gcp        GCPAccessor
	keyringGet func(service, name string) (string, error)
	getEnv     func(string) string
}

func New(logE *logrus.Entry) *Resolver {
	return &Resolver{
		logE:       logE,
		keyringGet: keyring.Get,
		getEnv:     os.Getenv,
	}
}

// Resolve turns the password argument into the actual password,
// indirecting through a secret store when the value carries a scheme
// marker. Resolution failures are fatal before any connection attempt.
func (r *Resolver) Resolve(ctx context.Context, value string) (string, error) {
	switch {
	case strings.HasPrefix(value, gcpScheme):
		return r.resolveGCP(ctx, strings.TrimPrefix(value, gcpScheme))
	case strings.HasPrefix(value, keyringScheme):
		return r.resolveKeyring(strings.TrimPrefix(value, keyringScheme))
	default:
		return value, nil
	}
}

func (r *Resolver) resolveGCP(ctx context.Context, name string) (string, error) {
	project := r.getEnv(projectEnv)
	if project == "" {
		return "", errors.New(projectEnv + " environment variable is not set")
	}
	if r.gcp == nil {
		accessor, err := newGCPAccessor(ctx)
		if err != nil {
			return "", err
		}
		r.gcp = accessor
	}
	secretPath := fmt.Sprintf("projects/%s/secrets/%s/versions/latest", project, name)
	r.logE.WithField("secret", name).Debug("getting the password from Secret Manager")
	s, err := r.gcp.AccessSecret(ctx, secretPath)
	if err != nil {
		return "", fmt.Errorf("get the password from Secret Manager: %w", err)
	}
	return s, nil
}

func (r *Resolver) resolveKeyring(name string) (string, error) {
	r.logE.WithField("secret", name).Debug("getting the password from the keyring")
	s, err := r.keyringGet(keyService, name)
	if err != nil {
		return "", fmt.Errorf("get the password from the keyring: %w", err)
	}
	return s, nil
}
