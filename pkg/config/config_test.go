package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/oracheck/oracheck/pkg/config"
	"github.com/spf13/afero"
)

func TestReader_Read(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name     string
		document string
		isErr    bool
		exp      *config.Config
	}{
		{
			name: "valid",
			document: `validations:
  - name: invalid_objects
    description: Objects in INVALID state.
    warning_message: Recompile before migration.
    query: SELECT owner FROM dba_objects WHERE owner NOT IN ({owner_exclude_list})
owner_exclude_list:
  - SYS
  - SYSTEM
`,
			exp: &config.Config{
				Validations: []*config.Check{
					{
						Name:           "invalid_objects",
						Description:    "Objects in INVALID state.",
						WarningMessage: "Recompile before migration.",
						Query:          "SELECT owner FROM dba_objects WHERE owner NOT IN ({owner_exclude_list})",
					},
				},
				OwnerExcludeList: []string{"SYS", "SYSTEM"},
			},
		},
		{
			name: "optional fields and version floor",
			document: `validations:
  - name: a
    query: SELECT 1 FROM dual
min_server_version: "19.0"
`,
			exp: &config.Config{
				Validations: []*config.Check{
					{Name: "a", Query: "SELECT 1 FROM dual"},
				},
				MinServerVersion: "19.0",
			},
		},
		{
			name: "missing name",
			document: `validations:
  - query: SELECT 1 FROM dual
`,
			isErr: true,
		},
		{
			name: "missing query",
			document: `validations:
  - name: a
`,
			isErr: true,
		},
		{
			name: "duplicated name",
			document: `validations:
  - name: a
    query: SELECT 1 FROM dual
  - name: a
    query: SELECT 2 FROM dual
`,
			isErr: true,
		},
		{
			name:     "no validations",
			document: `owner_exclude_list: [SYS]`,
			isErr:    true,
		},
		{
			name: "invalid min_server_version",
			document: `validations:
  - name: a
    query: SELECT 1 FROM dual
min_server_version: "not a version"
`,
			isErr: true,
		},
		{
			name:     "not yaml",
			document: `{`,
			isErr:    true,
		},
	}
	for _, d := range data {
		d := d
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			if err := afero.WriteFile(fs, "config_oracle.yaml", []byte(d.document), 0o644); err != nil {
				t.Fatal(err)
			}
			cfg := &config.Config{}
			err := config.NewReader(fs).Read(cfg, "config_oracle.yaml")
			if d.isErr {
				if err == nil {
					t.Fatal("an error must be returned")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(d.exp, cfg, cmpopts.IgnoreUnexported(config.Config{})); diff != "" {
				t.Fatal(diff)
			}
			if d.exp.MinServerVersion != "" && cfg.MinVersion() == nil {
				t.Fatal("MinVersion must be parsed")
			}
		})
	}
}

func TestReader_Read_missingFile(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{}
	if err := config.NewReader(afero.NewMemMapFs()).Read(cfg, "missing.yaml"); err == nil {
		t.Fatal("an error must be returned")
	}
}
