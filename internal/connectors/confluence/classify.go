package confluence

import (
	"net/url"
	"strings"
)

var (
	pathMarkers = []string{"/display/", "/spaces/", "/pages/viewpage.action"}

	hostToken = "confluence"

	cloudSuffix = ".atlassian.net"
)

// IsConfluenceURL reports whether raw looks like a Confluence page URL.
// It never fails: unparseable input and input without a host are not
// Confluence URLs.
func IsConfluenceURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return false
	}

	for _, marker := range pathMarkers {
		if strings.Contains(u.Path, marker) {
			return true
		}
	}

	host := strings.ToLower(u.Hostname())
	return strings.Contains(host, hostToken) || strings.HasSuffix(host, cloudSuffix)
}
