// Package initcmd scaffolds a starter check document.
package initcmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const (
	templateConfig = `# oracheck check document.
# Each validation is one SQL compatibility check. The token
# {owner_exclude_list} in a query is replaced by the quoted
# owner_exclude_list entries, e.g. 'SYS', 'SYSTEM'.
validations:
  - name: invalid_objects
    description: Database objects in INVALID state.
    warning_message: Recompile or drop these objects before migration.
    query: |
      SELECT owner, object_name, object_type
      FROM dba_objects
      WHERE status = 'INVALID'
        AND owner NOT IN ({owner_exclude_list})
owner_exclude_list:
  - SYS
  - SYSTEM
# min_server_version: "19.0"
`
	filePermission os.FileMode = 0o644
)

// Init creates a check document at configFilePath with a commented
// starter template. An existing file is left untouched.
func (c *Controller) Init(configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a check document exists: %w", err)
	}
	if f {
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a check document: %w", err)
	}
	return nil
}
