// Package registry provides the process-wide table of named issues.
// An issue is a named error or warning category carrying a short
// classification code (e.g. "E1001") that the logging adapter injects
// into every emitted record.
package registry

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"fjacquet/issuelog/internal/issueerror"
)

// Warnings about the registry itself (duplicate registrations) go through a
// plain logrus logger, never through an adapter, so registering an issue can
// never recurse back into the registry.
var log = logrus.New()

// SetLogger allows setting a custom logger for registry warnings
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// IssueEntry is an immutable snapshot of one registered issue.
// Issue holds the sentinel error value the code was registered for;
// it may be nil for code-only registrations.
type IssueEntry struct {
	Name  string
	Code  string
	Issue error
}

// Registry maps issue names to their entries. Construct one with New and
// pass it explicitly to whatever needs lookups; there is no package-level
// singleton. Safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	issues map[string]IssueEntry
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		issues: make(map[string]IssueEntry),
	}
}

// Register adds an issue under name with its classification code.
// Registering a name twice overwrites the previous entry and emits a
// warning; the last registration wins. Returns the stored entry.
func (r *Registry) Register(name, code string, issue error) IssueEntry {
	entry := IssueEntry{Name: name, Code: code, Issue: issue}

	r.mu.Lock()
	previous, exists := r.issues[name]
	r.issues[name] = entry
	r.mu.Unlock()

	if exists {
		log.WithFields(logrus.Fields{
			"issue":         name,
			"previous_code": previous.Code,
			"new_code":      code,
		}).Warn("Issue registered twice, overwriting previous entry")
	}

	return entry
}

// Get retrieves the entry registered under name.
// An unknown name returns a *issueerror.NotFoundError carrying the name.
func (r *Registry) Get(name string) (IssueEntry, error) {
	r.mu.RLock()
	entry, ok := r.issues[name]
	r.mu.RUnlock()

	if !ok {
		return IssueEntry{}, &issueerror.NotFoundError{Name: name}
	}
	return entry, nil
}

// All returns every registered entry, sorted by name.
func (r *Registry) All() []IssueEntry {
	r.mu.RLock()
	entries := make([]IssueEntry, 0, len(r.issues))
	for _, entry := range r.issues {
		entries = append(entries, entry)
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// Len returns the number of registered issues.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.issues)
}
