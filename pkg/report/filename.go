package report

import (
	"net"
	"strings"
	"time"
	"unicode"
)

// ArtifactName derives the report file name from the target identifier
// (host name, IP address, or TNS alias) and the run timestamp:
// dms_comp_<host-token>_<YYYYMMDD_HHMMSS>.<ext>
func ArtifactName(host string, now time.Time, ext string) string {
	return "dms_comp_" + hostToken(host) + "_" + now.Format("20060102_150405") + "." + ext
}

// hostToken sanitizes a connection identifier for use in a file name.
// IP addresses become "ip_" plus the address with separators replaced by
// underscores; anything else is stripped to its alphabetic characters.
func hostToken(host string) string {
	if net.ParseIP(host) != nil {
		return "ip_" + strings.NewReplacer(".", "_", ":", "_").Replace(host)
	}
	var b strings.Builder
	for _, r := range host {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
