package registry

import (
	"testing"

	"github.com/npillmayer/charsub"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/language"
)

func testTable(t *testing.T, document string) *charsub.Table {
	table, err := charsub.BuildTable(document)
	if err != nil {
		t.Fatalf("cannot build table: %s", err.Error())
	}
	return table
}

func TestRegistryExactLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "charsub")
	defer teardown()
	//
	reg := NewRegistry()
	english := testTable(t, "``\t“")
	german := testTable(t, ",,\t„")
	reg.StoreTable("tex", language.English, english)
	reg.StoreTable("tex", language.German, german)
	//
	table, err := reg.Table("tex", language.German)
	if err != nil {
		t.Fatalf("lookup failed: %s", err.Error())
	}
	if out := table.Substitute(",,Hallo"); out != "„Hallo" {
		t.Errorf("got the wrong table, substitution yields %q", out)
	}
}

func TestRegistryLanguageFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "charsub")
	defer teardown()
	//
	reg := NewRegistry()
	reg.StoreTable("tex", language.English, testTable(t, "``\t“"))
	reg.StoreTable("tex", language.German, testTable(t, ",,\t„"))
	//
	// no table for en-US, but the English one matches
	table, err := reg.Table("tex", language.AmericanEnglish)
	if err != nil {
		t.Fatalf("lookup failed: %s", err.Error())
	}
	if out := table.Substitute("``Hello"); out != "“Hello" {
		t.Errorf("got the wrong table, substitution yields %q", out)
	}
}

func TestRegistryUnknownConvention(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "charsub")
	defer teardown()
	//
	reg := NewRegistry()
	_, err := reg.Table("betacode", language.Greek)
	if err == nil {
		t.Fatal("expected lookup for unregistered convention to fail")
	}
	if charsub.Code(err) != charsub.EMISSING {
		t.Errorf("error code is %d, expected EMISSING", charsub.Code(err))
	}
}

func TestRegistryFirstStoreWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "charsub")
	defer teardown()
	//
	reg := NewRegistry()
	first := testTable(t, "x\tA")
	second := testTable(t, "x\tB")
	reg.StoreTable("tex", language.English, first)
	reg.StoreTable("tex", language.English, second)
	table, err := reg.Table("tex", language.English)
	if err != nil {
		t.Fatalf("lookup failed: %s", err.Error())
	}
	if out := table.Substitute("x"); out != "A" {
		t.Errorf("Substitute(x) = %q, expected the first-stored table's %q", out, "A")
	}
}
