package initcmd_test

import (
	"strings"
	"testing"

	"github.com/oracheck/oracheck/pkg/controller/initcmd"
	"github.com/spf13/afero"
)

func TestController_Init(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	if err := initcmd.New(fs).Init("config_oracle.yaml"); err != nil {
		t.Fatal(err)
	}
	b, err := afero.ReadFile(fs, "config_oracle.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "validations:") {
		t.Fatalf("the template must contain validations:\n%s", string(b))
	}
	if !strings.Contains(string(b), "{owner_exclude_list}") {
		t.Fatalf("the template must show the placeholder:\n%s", string(b))
	}
}

func TestController_Init_existingFileUntouched(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "config_oracle.yaml", []byte("validations: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := initcmd.New(fs).Init("config_oracle.yaml"); err != nil {
		t.Fatal(err)
	}
	b, err := afero.ReadFile(fs, "config_oracle.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "validations: []\n" {
		t.Fatalf("an existing document must not be overwritten:\n%s", string(b))
	}
}
