package exporters

import (
	"strings"

	"github.com/mileusna/useragent"
)

const (
	repositoryPrefix = "/repository/"
	servicePrefix    = "/service/"
)

// requestFields is the best-effort extraction from one qualifying line.
// SourceIP, User and Status come from fixed whitespace positions and are
// filled independently of whether the quoted request parses; any of them may
// be empty on short lines. Method, Path, Repository and Service are only
// valid when HasRequest is true.
type requestFields struct {
	SourceIP string
	User     string
	Status   string

	HasRequest bool
	Method     string
	Path       string
	Repository string
	Service    string

	UserAgent string
}

// parseRequestFields extracts structured fields from a raw access-log line.
// Extraction never fails: fields that cannot be parsed are simply absent.
func parseRequestFields(line string) requestFields {
	var f requestFields

	tokens := strings.Fields(line)
	if len(tokens) > 0 {
		f.SourceIP = tokens[0]
	}
	if len(tokens) > 2 {
		f.User = tokens[2]
	}
	if len(tokens) > 8 {
		f.Status = tokens[8]
	}

	// The request line is the first quoted segment: "METHOD /path HTTP/1.x".
	// Anything else (no quotes, wrong token count) leaves HasRequest false.
	quoted := strings.Split(line, `"`)
	if len(quoted) > 1 {
		req := strings.Fields(quoted[1])
		if len(req) == 3 {
			f.HasRequest = true
			f.Method = req[0]
			f.Path = req[1]
			f.Repository = groupPath(f.Path, repositoryPrefix)
			f.Service = groupPath(f.Path, servicePrefix)
		}
	}

	// The user agent is the third quoted segment in the combined log format.
	if len(quoted) > 5 {
		f.UserAgent = quoted[5]
	}

	return f
}

// groupPath reduces a path to its first two segments when it starts with
// prefix, e.g. "/repository/maven-releases/foo/bar.jar" becomes
// "/repository/maven-releases". Returns "" for non-matching paths.
func groupPath(path, prefix string) string {
	if !strings.HasPrefix(path, prefix) {
		return ""
	}
	segments := strings.Split(path, "/")
	return "/" + segments[1] + "/" + segments[2]
}

// normalizeUserAgent parses a user agent to its family name, or returns the
// original string if parsing yields nothing.
func normalizeUserAgent(ua string) string {
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return ua
}
