// Tests in this file exercise the release version grammar and rendering.
package versions

import (
	"errors"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"0.0.0",
		"1.0.0",
		"1.2.3",
		"10.20.30",
		"1.0.0-rc.1",
		"2.1.0-beta",
		"3.0.0-alpha.2.x",
	}
	for _, in := range inputs {
		v, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", in, err)
		}
		if got := v.String(); got != in {
			t.Fatalf("Parse(%q).String() = %q, want identity", in, got)
		}
	}
}

func TestParseFields(t *testing.T) {
	t.Parallel()

	v, err := Parse("2.3.1-rc.1")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if v.Major() != 2 || v.Minor() != 3 || v.Patch() != 1 {
		t.Fatalf("fields = %d.%d.%d, want 2.3.1", v.Major(), v.Minor(), v.Patch())
	}
	if v.Prerelease() != "rc.1" {
		t.Fatalf("Prerelease() = %q, want %q", v.Prerelease(), "rc.1")
	}
	if v.TagName() != "v2.3.1-rc.1" {
		t.Fatalf("TagName() = %q, want %q", v.TagName(), "v2.3.1-rc.1")
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"1.0",
		"v1.0.0",
		"1.0.0-",
		"1.0.0.0",
		"1.0.0-beta_1",
		"1.0.0+meta",
		"1.0.0-rc-1",
		" 1.0.0",
		"1.0.0 ",
	}
	for _, in := range inputs {
		if _, err := Parse(in); !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("Parse(%q) = %v, want ErrInvalidFormat", in, err)
		}
		if IsValid(in) {
			t.Fatalf("IsValid(%q) = true, want false", in)
		}
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a, _ := Parse("1.2.3")
	b, _ := Parse("1.2.3")
	c, _ := Parse("1.2.3-rc.1")

	if !a.Equal(b) {
		t.Fatal("identical versions compare unequal")
	}
	if a.Equal(c) {
		t.Fatal("prerelease version compares equal to release")
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	older, _ := Parse("1.1.0")
	newer, _ := Parse("1.2.0")
	pre, _ := Parse("1.2.0-rc.1")

	cmp, err := Compare(newer, older)
	if err != nil {
		t.Fatalf("Compare returned error: %v", err)
	}
	if cmp != 1 {
		t.Fatalf("Compare(1.2.0, 1.1.0) = %d, want 1", cmp)
	}

	cmp, err = Compare(pre, newer)
	if err != nil {
		t.Fatalf("Compare returned error: %v", err)
	}
	if cmp != -1 {
		t.Fatalf("Compare(1.2.0-rc.1, 1.2.0) = %d, want -1", cmp)
	}

	cmp, err = Compare(older, older)
	if err != nil {
		t.Fatalf("Compare returned error: %v", err)
	}
	if cmp != 0 {
		t.Fatalf("Compare(1.1.0, 1.1.0) = %d, want 0", cmp)
	}
}
