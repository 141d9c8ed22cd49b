// Package advancer drives a version advance: validate the proposed version,
// rewrite the version record, and mark the result in source control as a
// commit plus annotated tag.
//
// The three side effects run in a fixed order with no rollback. If the
// record is written but the commit or tag fails, the record stays written;
// the operator re-runs or reconciles by hand. A re-run of an already tagged
// version fails with gitops.ErrTagExists instead of corrupting history.
package advancer

import (
	"errors"
	"fmt"

	"github.com/deak-ai/openehr-mcp-server/internal/gitops"
	"github.com/deak-ai/openehr-mcp-server/internal/logs"
	"github.com/deak-ai/openehr-mcp-server/internal/record"
	"github.com/deak-ai/openehr-mcp-server/internal/versions"
)

// ErrNotNewer is returned when RequireNewer is set and the proposed version
// does not order after the recorded one.
var ErrNotNewer = errors.New("proposed version is not newer than the recorded one")

// Config wires the advancer's collaborators.
type Config struct {
	Store record.Store
	Git   gitops.Git

	// RecordPath is the record file path relative to the repository root;
	// it is what gets staged after the record is rewritten.
	RecordPath string

	// RequireNewer escalates the monotonicity warning to an error. The
	// default is permissive: the operator is trusted to pick the next
	// version, including a regression when they mean it.
	RequireNewer bool
}

type Advancer struct {
	store        record.Store
	git          gitops.Git
	recordPath   string
	requireNewer bool
}

func New(cfg Config) (*Advancer, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("advancer: Store is required")
	}
	if cfg.Git == nil {
		return nil, fmt.Errorf("advancer: Git is required")
	}
	if cfg.RecordPath == "" {
		return nil, fmt.Errorf("advancer: RecordPath is required")
	}
	return &Advancer{
		store:        cfg.Store,
		git:          cfg.Git,
		recordPath:   cfg.RecordPath,
		requireNewer: cfg.RequireNewer,
	}, nil
}

// Advance validates proposed, persists it as the new version record, commits
// the record change and tags the commit as v<version>. Validation and the
// tag-existence check both precede the first mutation, so a rejected advance
// has zero side effects.
func (a *Advancer) Advance(proposed string) (versions.Version, error) {
	v, err := versions.Parse(proposed)
	if err != nil {
		return versions.Version{}, err
	}

	currentRaw, err := a.store.Load()
	if err != nil {
		return versions.Version{}, err
	}
	current, err := versions.Parse(currentRaw)
	if err != nil {
		return versions.Version{}, fmt.Errorf("%w: recorded version %q: %v", record.ErrMissingRecord, currentRaw, err)
	}

	exists, err := a.git.TagExists(v.TagName())
	if err != nil {
		return versions.Version{}, err
	}
	if exists {
		return versions.Version{}, fmt.Errorf("%w: %s", gitops.ErrTagExists, v.TagName())
	}

	if cmp, cmpErr := versions.Compare(v, current); cmpErr == nil && cmp <= 0 {
		if a.requireNewer {
			return versions.Version{}, fmt.Errorf("%w: %s -> %s", ErrNotNewer, current, v)
		}
		logs.Warnf("proposed version %s does not order after recorded %s", v, current)
	}

	logs.Infof("advancing version %s -> %s", current, v)

	if err := a.store.Save(v.String()); err != nil {
		return versions.Version{}, err
	}
	if err := a.git.Stage(a.recordPath); err != nil {
		return versions.Version{}, err
	}

	hash, err := a.git.Commit("Bump version to " + v.String())
	if err != nil {
		return versions.Version{}, err
	}
	logs.Debugf("created commit %s", hash)

	if err := a.git.CreateAnnotatedTag(v.TagName(), "Version "+v.String()); err != nil {
		return versions.Version{}, err
	}
	logs.Debugf("created annotated tag %s", v.TagName())

	return v, nil
}
