// Package imageplan derives the set of image tags for one build and applies
// them to a single built artifact.
package imageplan

import (
	"fmt"

	"github.com/deak-ai/openehr-mcp-server/internal/versions"
)

// LatestTag is the optional global rolling tag. It is only ever produced on
// an explicit operator request, never inferred from version ordering.
const LatestTag = "latest"

// Plan computes the tags to apply to a build of version v at revision.
// Always produced: the exact version, version+revision, and the
// major-version rolling tag. markLatest additionally appends LatestTag.
//
// Plan is pure and total: identical inputs yield identical output. The
// order is for display only; application treats the result as a set.
func Plan(v versions.Version, revision string, markLatest bool) []string {
	tags := []string{
		v.String(),
		v.String() + "-" + revision,
		fmt.Sprintf("%d-%s", v.Major(), LatestTag),
	}
	if markLatest {
		tags = append(tags, LatestTag)
	}
	return tags
}
