// Tests in this file pin down the tag derivation rules.
package imageplan

import (
	"reflect"
	"testing"

	"github.com/deak-ai/openehr-mcp-server/internal/versions"
)

func mustParse(t *testing.T, s string) versions.Version {
	t.Helper()
	v, err := versions.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", s, err)
	}
	return v
}

func TestPlanDerivation(t *testing.T) {
	t.Parallel()

	got := Plan(mustParse(t, "2.3.1"), "abc123", false)
	want := []string{"2.3.1", "2.3.1-abc123", "2-latest"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Plan = %v, want %v", got, want)
	}
	for _, tag := range got {
		if tag == LatestTag {
			t.Fatalf("Plan without markLatest produced %q", LatestTag)
		}
	}
}

func TestPlanMarkLatest(t *testing.T) {
	t.Parallel()

	got := Plan(mustParse(t, "2.3.1"), "abc123", true)
	want := []string{"2.3.1", "2.3.1-abc123", "2-latest", "latest"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Plan = %v, want %v", got, want)
	}
}

func TestPlanCardinality(t *testing.T) {
	t.Parallel()

	inputs := []string{"0.1.0", "1.0.0-rc.1", "10.2.33"}
	for _, in := range inputs {
		v := mustParse(t, in)
		if got := Plan(v, "deadbee", false); len(got) != 3 {
			t.Fatalf("Plan(%s, markLatest=false) has %d tags, want 3: %v", in, len(got), got)
		}
		if got := Plan(v, "deadbee", true); len(got) != 4 {
			t.Fatalf("Plan(%s, markLatest=true) has %d tags, want 4: %v", in, len(got), got)
		}
	}
}

func TestPlanMajorOnly(t *testing.T) {
	t.Parallel()

	got := Plan(mustParse(t, "10.20.30-rc.2"), "cafe001", false)
	want := []string{"10.20.30-rc.2", "10.20.30-rc.2-cafe001", "10-latest"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Plan = %v, want %v", got, want)
	}
}

// Plan is pure: repeated calls with identical inputs agree exactly.
func TestPlanDeterministic(t *testing.T) {
	t.Parallel()

	v := mustParse(t, "1.4.2")
	first := Plan(v, "0fedcba", true)
	second := Plan(v, "0fedcba", true)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Plan is not deterministic: %v vs %v", first, second)
	}
}
