// Package styles holds process-wide style sheets that map animation
// identifiers to visual rules. Sheets are replaced wholesale, never diffed.
package styles

import (
	"maps"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Rule describes how every box carrying one animation identifier is drawn
type Rule struct {
	// ID is the animation identifier the rule applies to
	ID string
	// Color is the resting chip color
	Color string
	// Chip renders the chip body
	Chip lipgloss.Style
}

// Registry stores sheets keyed by a fixed sheet identifier
type Registry struct {
	mu     sync.RWMutex
	sheets map[string]map[string]Rule
}

// Default is the process-wide registry
var Default = NewRegistry()

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		sheets: make(map[string]map[string]Rule),
	}
}

// Replace overwrites the whole sheet stored under sheetID
func (r *Registry) Replace(sheetID string, rules []Rule) {
	sheet := make(map[string]Rule, len(rules))
	for _, rule := range rules {
		sheet[rule.ID] = rule
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sheets[sheetID] = sheet
}

// Rule looks up the rule for an animation identifier
func (r *Registry) Rule(sheetID, id string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, ok := r.sheets[sheetID][id]
	return rule, ok
}

// Sheet returns a copy of one sheet
func (r *Registry) Sheet(sheetID string) map[string]Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.sheets[sheetID])
}

// Remove drops a sheet
func (r *Registry) Remove(sheetID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sheets, sheetID)
}
