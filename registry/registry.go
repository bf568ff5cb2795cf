/*
Package registry holds compiled substitution tables for a typesetter.

Tables are registered under an input-convention name (e.g. "tex",
"betacode") together with a language tag, so that one table per
language/script convention can coexist and be picked up by concurrent
typesetting runs. Lookup falls back to the best-matching language variant
a convention has been registered for.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package registry

import (
	"sync"

	"github.com/npillmayer/charsub"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer traces with key 'charsub'.
func tracer() tracing.Trace {
	return tracing.Select("charsub")
}

// Registry is a type for holding compiled substitution tables, keyed by
// input convention and language.
type Registry struct {
	sync.Mutex
	tables map[string]*charsub.Table
	langs  map[string][]language.Tag // languages per convention, in store order
}

var globalTableRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold compiled
// substitution tables.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalTableRegistry = NewRegistry()
	})
	return globalTableRegistry
}

func NewRegistry() *Registry {
	tr := &Registry{
		tables: make(map[string]*charsub.Table),
		langs:  make(map[string][]language.Tag),
	}
	return tr
}

// StoreTable pushes a table into the registry if it isn't contained yet.
//
// The table is stored under the convention name and language tag. If this
// key is already associated with a table, that table will not be
// overridden.
func (tr *Registry) StoreTable(convention string, lang language.Tag, t *charsub.Table) {
	if t == nil {
		tracer().Errorf("registry cannot store null table")
		return
	}
	tr.Lock()
	defer tr.Unlock()
	key := tableKey(convention, lang)
	if _, ok := tr.tables[key]; !ok {
		tracer().Debugf("registry stores %s table for language %s", convention, lang)
		tr.tables[key] = t
		tr.langs[convention] = append(tr.langs[convention], lang)
	}
}

// Table returns the table registered for a convention and language. If no
// table has been registered for the exact language, Table selects the
// best-matching language the convention has been registered for. An error
// is returned if the convention is unknown or no registered language
// matches at all.
func (tr *Registry) Table(convention string, lang language.Tag) (*charsub.Table, error) {
	tr.Lock()
	defer tr.Unlock()
	if t, ok := tr.tables[tableKey(convention, lang)]; ok {
		tracer().Debugf("registry found %s table for language %s", convention, lang)
		return t, nil
	}
	tags := tr.langs[convention]
	if len(tags) == 0 {
		return nil, charsub.Error(charsub.EMISSING,
			"no substitution tables registered for convention %q", convention)
	}
	matcher := language.NewMatcher(tags)
	_, index, confidence := matcher.Match(lang)
	if confidence == language.No {
		return nil, charsub.Error(charsub.EMISSING,
			"no %q substitution table matches language %s", convention, lang)
	}
	tracer().Infof("registry matches language %s to %s for %s table",
		lang, tags[index], convention)
	return tr.tables[tableKey(convention, tags[index])], nil
}

func tableKey(convention string, lang language.Tag) string {
	return convention + "/" + lang.String()
}
