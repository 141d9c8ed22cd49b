package imageplan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/deak-ai/openehr-mcp-server/internal/logs"
)

// ErrTaggingFailed is the sentinel you can check with errors.Is.
var ErrTaggingFailed = errors.New("image tagging failed")

// ErrPushFailed is the sentinel for collected push failures. It is
// deliberately distinct from ErrTaggingFailed: the local tags are all in
// place when it is returned.
var ErrPushFailed = errors.New("image push failed")

// TaggingError reports the tag whose local alias could not be created. The
// operation aborts at the first such failure so a partially tagged build is
// never left looking healthy.
type TaggingError struct {
	Tag   string
	Cause error
}

func (e *TaggingError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrTaggingFailed, e.Tag, e.Cause)
}

func (e *TaggingError) Unwrap() error { return ErrTaggingFailed }

// PushError collects every tag whose push failed after all pushes were
// attempted. Partial publication is an acceptable, reported end state.
type PushError struct {
	Tags   []string
	Causes []error
}

func (e *PushError) Error() string {
	return fmt.Sprintf("%v: %s", ErrPushFailed, strings.Join(e.Tags, ", "))
}

func (e *PushError) Unwrap() error { return ErrPushFailed }

// ImageBuilder builds one image from a fixed context under a single tag.
type ImageBuilder interface {
	BuildImage(ctx context.Context, contextDir, dockerfile, ref string) error
}

// ImageTagger aliases an existing local image under an additional tag.
type ImageTagger interface {
	TagImage(ctx context.Context, source, target string) error
}

// ImagePusher pushes one named tag to the remote registry.
type ImagePusher interface {
	PushImage(ctx context.Context, ref string) error
}

// ImageInspector probes for a local image by reference.
type ImageInspector interface {
	ImageExists(ctx context.Context, ref string) bool
}

// Config wires the docker collaborators. A single docker client usually
// implements all four.
type Config struct {
	Builder   ImageBuilder
	Tagger    ImageTagger
	Pusher    ImagePusher
	Inspector ImageInspector
}

type Applier struct {
	builder   ImageBuilder
	tagger    ImageTagger
	pusher    ImagePusher
	inspector ImageInspector
}

func NewApplier(cfg Config) (*Applier, error) {
	if cfg.Builder == nil {
		return nil, fmt.Errorf("imageplan: Builder is required")
	}
	if cfg.Tagger == nil {
		return nil, fmt.Errorf("imageplan: Tagger is required")
	}
	if cfg.Pusher == nil {
		return nil, fmt.Errorf("imageplan: Pusher is required")
	}
	if cfg.Inspector == nil {
		return nil, fmt.Errorf("imageplan: Inspector is required")
	}
	return &Applier{
		builder:   cfg.Builder,
		tagger:    cfg.Tagger,
		pusher:    cfg.Pusher,
		inspector: cfg.Inspector,
	}, nil
}

// ApplyOptions parameterizes one Apply call.
type ApplyOptions struct {
	// Image is the repository part of every reference, e.g.
	// "deakai/openehr-mcp-server".
	Image string

	// ContextDir and Dockerfile describe the build context.
	ContextDir string
	Dockerfile string

	// Tags is the planned tag set from Plan. The first entry names the
	// build itself; the rest become local aliases of that one artifact.
	Tags []string

	// Push also pushes every tag to the registry, each one independently.
	Push bool
}

// Apply builds the image once under the first planned tag, aliases the
// artifact under the remaining tags, and optionally pushes all of them.
//
// A tagging failure aborts immediately with a *TaggingError; no pushes are
// attempted. Push failures never abort the other pushes: they are collected
// and returned together as a *PushError once every push was attempted.
func (a *Applier) Apply(ctx context.Context, opts ApplyOptions) error {
	if opts.Image == "" {
		return fmt.Errorf("imageplan: Image is required")
	}
	if len(opts.Tags) == 0 {
		return fmt.Errorf("imageplan: no tags planned")
	}

	refs := make([]string, len(opts.Tags))
	for i, tag := range opts.Tags {
		refs[i] = opts.Image + ":" + tag
	}
	primary := refs[0]

	logs.Infof("building image %s", primary)
	if err := a.builder.BuildImage(ctx, opts.ContextDir, opts.Dockerfile, primary); err != nil {
		return fmt.Errorf("imageplan: build %s: %w", primary, err)
	}
	if !a.inspector.ImageExists(ctx, primary) {
		return fmt.Errorf("imageplan: build finished but %s is not present locally", primary)
	}

	for _, ref := range refs[1:] {
		logs.Infof("tagging %s", ref)
		if err := a.tagger.TagImage(ctx, primary, ref); err != nil {
			return &TaggingError{Tag: ref, Cause: err}
		}
	}

	if !opts.Push {
		return nil
	}

	pushErr := &PushError{}
	for _, ref := range refs {
		logs.Infof("pushing %s", ref)
		if err := a.pusher.PushImage(ctx, ref); err != nil {
			logs.Errorf("push %s: %v", ref, err)
			pushErr.Tags = append(pushErr.Tags, ref)
			pushErr.Causes = append(pushErr.Causes, err)
		}
	}
	if len(pushErr.Tags) > 0 {
		return pushErr
	}
	return nil
}
