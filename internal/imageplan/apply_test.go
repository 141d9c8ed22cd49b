package imageplan

import (
	"context"
	"errors"
	"testing"

	"github.com/deak-ai/openehr-mcp-server/internal/imageplan/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testApplier struct {
	applier   *Applier
	builder   *mocks.MockImageBuilder
	tagger    *mocks.MockImageTagger
	pusher    *mocks.MockImagePusher
	inspector *mocks.MockImageInspector
}

func newTestApplier(t *testing.T) *testApplier {
	t.Helper()

	ctrl := gomock.NewController(t)
	ta := &testApplier{
		builder:   mocks.NewMockImageBuilder(ctrl),
		tagger:    mocks.NewMockImageTagger(ctrl),
		pusher:    mocks.NewMockImagePusher(ctrl),
		inspector: mocks.NewMockImageInspector(ctrl),
	}

	applier, err := NewApplier(Config{
		Builder:   ta.builder,
		Tagger:    ta.tagger,
		Pusher:    ta.pusher,
		Inspector: ta.inspector,
	})
	require.NoError(t, err)
	ta.applier = applier

	return ta
}

func testOpts(push bool) ApplyOptions {
	return ApplyOptions{
		Image:      "deakai/openehr-mcp-server",
		ContextDir: ".",
		Dockerfile: "Dockerfile",
		Tags:       []string{"1.1.0", "1.1.0-abc123", "1-latest"},
		Push:       push,
	}
}

func TestApplyBuildsOnceAndAliases(t *testing.T) {
	t.Parallel()

	ta := newTestApplier(t)
	ctx := context.Background()
	const primary = "deakai/openehr-mcp-server:1.1.0"

	gomock.InOrder(
		ta.builder.EXPECT().BuildImage(ctx, ".", "Dockerfile", primary).Return(nil),
		ta.inspector.EXPECT().ImageExists(ctx, primary).Return(true),
		ta.tagger.EXPECT().TagImage(ctx, primary, "deakai/openehr-mcp-server:1.1.0-abc123").Return(nil),
		ta.tagger.EXPECT().TagImage(ctx, primary, "deakai/openehr-mcp-server:1-latest").Return(nil),
	)

	require.NoError(t, ta.applier.Apply(ctx, testOpts(false)))
}

func TestApplyTaggingFailureAborts(t *testing.T) {
	t.Parallel()

	ta := newTestApplier(t)
	ctx := context.Background()
	const primary = "deakai/openehr-mcp-server:1.1.0"
	boom := errors.New("daemon unavailable")

	gomock.InOrder(
		ta.builder.EXPECT().BuildImage(ctx, ".", "Dockerfile", primary).Return(nil),
		ta.inspector.EXPECT().ImageExists(ctx, primary).Return(true),
		ta.tagger.EXPECT().TagImage(ctx, primary, "deakai/openehr-mcp-server:1.1.0-abc123").Return(boom),
	)
	// No expectation for the remaining alias and no pushes: the first
	// tagging failure is fatal for the whole operation.

	err := ta.applier.Apply(ctx, testOpts(true))
	require.ErrorIs(t, err, ErrTaggingFailed)

	var tagErr *TaggingError
	require.ErrorAs(t, err, &tagErr)
	require.Equal(t, "deakai/openehr-mcp-server:1.1.0-abc123", tagErr.Tag)
}

func TestApplyPushFailuresAreCollected(t *testing.T) {
	t.Parallel()

	ta := newTestApplier(t)
	ctx := context.Background()
	const primary = "deakai/openehr-mcp-server:1.1.0"
	transient := errors.New("registry timeout")

	gomock.InOrder(
		ta.builder.EXPECT().BuildImage(ctx, ".", "Dockerfile", primary).Return(nil),
		ta.inspector.EXPECT().ImageExists(ctx, primary).Return(true),
		ta.tagger.EXPECT().TagImage(ctx, primary, "deakai/openehr-mcp-server:1.1.0-abc123").Return(nil),
		ta.tagger.EXPECT().TagImage(ctx, primary, "deakai/openehr-mcp-server:1-latest").Return(nil),
		ta.pusher.EXPECT().PushImage(ctx, primary).Return(nil),
		ta.pusher.EXPECT().PushImage(ctx, "deakai/openehr-mcp-server:1.1.0-abc123").Return(transient),
		// The failed push must not prevent the remaining one.
		ta.pusher.EXPECT().PushImage(ctx, "deakai/openehr-mcp-server:1-latest").Return(nil),
	)

	err := ta.applier.Apply(ctx, testOpts(true))
	require.ErrorIs(t, err, ErrPushFailed)

	var pushErr *PushError
	require.ErrorAs(t, err, &pushErr)
	require.Equal(t, []string{"deakai/openehr-mcp-server:1.1.0-abc123"}, pushErr.Tags)
}

func TestApplyNoPushWhenNotRequested(t *testing.T) {
	t.Parallel()

	ta := newTestApplier(t)
	ctx := context.Background()
	const primary = "deakai/openehr-mcp-server:1.1.0"

	ta.builder.EXPECT().BuildImage(ctx, ".", "Dockerfile", primary).Return(nil)
	ta.inspector.EXPECT().ImageExists(ctx, primary).Return(true)
	ta.tagger.EXPECT().TagImage(ctx, primary, gomock.Any()).Return(nil).Times(2)
	// Pusher carries no expectations: any push call fails the test.

	require.NoError(t, ta.applier.Apply(ctx, testOpts(false)))
}

func TestApplyBuildArtifactMissing(t *testing.T) {
	t.Parallel()

	ta := newTestApplier(t)
	ctx := context.Background()
	const primary = "deakai/openehr-mcp-server:1.1.0"

	ta.builder.EXPECT().BuildImage(ctx, ".", "Dockerfile", primary).Return(nil)
	ta.inspector.EXPECT().ImageExists(ctx, primary).Return(false)

	if err := ta.applier.Apply(ctx, testOpts(false)); err == nil {
		t.Fatal("expected error when the built image is not present")
	}
}

func TestApplyValidation(t *testing.T) {
	t.Parallel()

	ta := newTestApplier(t)
	ctx := context.Background()

	opts := testOpts(false)
	opts.Image = ""
	if err := ta.applier.Apply(ctx, opts); err == nil {
		t.Fatal("expected error for empty image")
	}

	opts = testOpts(false)
	opts.Tags = nil
	if err := ta.applier.Apply(ctx, opts); err == nil {
		t.Fatal("expected error for empty tag plan")
	}
}

func TestNewApplierValidation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	builder := mocks.NewMockImageBuilder(ctrl)
	tagger := mocks.NewMockImageTagger(ctrl)
	pusher := mocks.NewMockImagePusher(ctrl)
	inspector := mocks.NewMockImageInspector(ctrl)

	cases := []Config{
		{Tagger: tagger, Pusher: pusher, Inspector: inspector},
		{Builder: builder, Pusher: pusher, Inspector: inspector},
		{Builder: builder, Tagger: tagger, Inspector: inspector},
		{Builder: builder, Tagger: tagger, Pusher: pusher},
	}
	for i, cfg := range cases {
		if _, err := NewApplier(cfg); err == nil {
			t.Fatalf("case %d: expected error for missing dependency", i)
		}
	}
}
