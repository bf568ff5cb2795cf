package charsub

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// quotes and dashes in the TeX input convention
const texDocument = "`\t‘\n" +
	"``\t“\n" +
	"'\t’\n" +
	"''\t”\n" +
	"--\t–\n" +
	"---\t—\n" +
	"~\t\\u{a0}\n"

func texTable(t *testing.T) *Table {
	table, err := BuildTable(texDocument)
	if err != nil {
		t.Fatalf("cannot build TeX convention table: %s", err.Error())
	}
	return table
}

func TestSubstituteEmptyTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "charsub")
	defer teardown()
	//
	table, err := BuildTable("")
	if err != nil {
		t.Fatalf("BuildTable failed: %s", err.Error())
	}
	inputs := []string{"", "unchanged", "``naïve--text''"}
	for _, input := range inputs {
		if out := table.Substitute(input); out != input {
			t.Errorf("empty table changed %q to %q", input, out)
		}
	}
}

func TestSubstitutePassThrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "charsub")
	defer teardown()
	//
	table := texTable(t)
	input := "no pattern occurs in this séntence ᾄ"
	if out := table.Substitute(input); out != input {
		t.Errorf("pattern-free input changed from %q to %q", input, out)
	}
}

func TestSubstituteLongestMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "charsub")
	defer teardown()
	//
	table := texTable(t)
	// three backticks: the double backtick matches first (longest),
	// leaving a single backtick to match on its own
	if out := table.Substitute("```"); out != "“‘" {
		t.Errorf("Substitute(```) = %q, expected %q", out, "“‘")
	}
	// no backtracking: '---' + '-' is em-dash + hyphen, not 2 en-dashes
	if out := table.Substitute("----"); out != "—-" {
		t.Errorf("Substitute(----) = %q, expected %q", out, "—-")
	}
}

func TestSubstituteDeletion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "charsub")
	defer teardown()
	//
	// an empty second column cannot be written in a rule line, but an
	// escaped zero-width space replacement comes close; true deletion is
	// exercised via insert
	table, err := BuildTable("")
	if err != nil {
		t.Fatalf("BuildTable failed: %s", err.Error())
	}
	if err = table.insert("del", "", 1); err != nil {
		t.Fatalf("insert failed: %s", err.Error())
	}
	if out := table.Substitute("adelb"); out != "ab" {
		t.Errorf("Substitute(adelb) = %q, expected %q", out, "ab")
	}
}

func TestSubstituteScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "charsub")
	defer teardown()
	//
	table := texTable(t)
	input := "``Hello--world''"
	want := "“Hello–world”"
	if out := table.Substitute(input); out != want {
		t.Errorf("Substitute(%q) = %q, expected %q", input, out, want)
	}
}

func TestSubstituteNonBreakingSpace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "charsub")
	defer teardown()
	//
	table := texTable(t)
	if out := table.Substitute("p.~7"); out != "p. 7" {
		t.Errorf("Substitute(p.~7) = %q, expected %q", out, "p. 7")
	}
}

func TestSubstituteArbitraryBytes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "charsub")
	defer teardown()
	//
	table := texTable(t)
	// substitution is total for any byte sequence: stray or truncated
	// UTF-8 passes through byte for byte, matching continues around it
	data := []struct {
		in   string
		want string
	}{
		{"a-\x80", "a-\x80"},
		{"\x80", "\x80"},
		{"\xc3", "\xc3"},
		{"--\x80", "–\x80"},
		{"---\xf0", "—\xf0"},
		{"x\xc3\x28y--", "x\xc3\x28y–"},
		{"\x80``ok''\xff", "\x80“ok”\xff"},
	}
	for _, pair := range data {
		if out := table.Substitute(pair.in); out != pair.want {
			t.Errorf("Substitute(%q) = %q, expected %q", pair.in, out, pair.want)
		}
	}
}

func TestSubstituteTotality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "charsub")
	defer teardown()
	//
	table := texTable(t)
	// output length accounts for every input position exactly once
	inputs := []string{"", "-", "--", "---", "----", "`x`", "a~b~c", "''''"}
	wants := []string{"", "-", "–", "—", "—-",
		"‘x‘", "a b c", "””"}
	for i, input := range inputs {
		if out := table.Substitute(input); out != wants[i] {
			t.Errorf("Substitute(%q) = %q, expected %q", input, out, wants[i])
		}
	}
}
