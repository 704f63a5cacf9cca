package report

import (
	"testing"
	"time"
)

func TestHostToken(t *testing.T) {
	t.Parallel()
	data := []struct {
		name string
		host string
		exp  string
	}{
		{
			name: "ipv4",
			host: "10.0.0.5",
			exp:  "ip_10_0_0_5",
		},
		{
			name: "ipv6",
			host: "::1",
			exp:  "ip___1",
		},
		{
			name: "ipv6 full",
			host: "fe80::5",
			exp:  "ip_fe80___5",
		},
		{
			name: "host name keeps letters only",
			host: "prod-db-01",
			exp:  "proddb",
		},
		{
			name: "case preserved",
			host: "Prod-DB.example.com",
			exp:  "ProdDBexamplecom",
		},
		{
			name: "tns alias",
			host: "PROD_1",
			exp:  "PROD",
		},
	}
	for _, d := range data {
		d := d
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if got := hostToken(d.host); got != d.exp {
				t.Fatalf("wanted %q, got %q", d.exp, got)
			}
		})
	}
}

func TestArtifactName(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	exp := "dms_comp_ip_10_0_0_5_20240102_150405.html"
	if got := ArtifactName("10.0.0.5", now, "html"); got != exp {
		t.Fatalf("wanted %q, got %q", exp, got)
	}
}
