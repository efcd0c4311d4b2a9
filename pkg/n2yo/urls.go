package n2yo

import (
	"net/url"
	"strconv"
	"strings"
)

// endpointURL joins path segments under the base endpoint and appends the
// credential. N2YO authenticates via a literal "&apiKey=" suffix on the path
// rather than a standard query string, so the suffix is attached verbatim.
// The tle endpoint takes no trailing slash before the suffix; every other
// endpoint does.
func (c *Client) endpointURL(trailingSlash bool, segments ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimSuffix(c.baseURL, "/"))
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(s)
	}
	if trailingSlash {
		b.WriteByte('/')
	}
	b.WriteString("&apiKey=")
	b.WriteString(url.QueryEscape(c.apiKey))
	return b.String()
}

// redactURL masks the API key in a request URL for logs and errors.
func redactURL(u string) string {
	if i := strings.Index(u, "&apiKey="); i >= 0 {
		return u[:i] + "&apiKey=***"
	}
	return u
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatInt(n int) string {
	return strconv.Itoa(n)
}
