package promotion

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Selector owns the single selected-promotion slot. Only one promotion can be
// selected at a time; picking another code replaces the current one.
type Selector struct {
	selected string
}

func NewSelector() *Selector {
	return &Selector{}
}

// RestoreSelector rebuilds a selector from a persisted code. An empty code
// means no selection.
func RestoreSelector(code string) *Selector {
	return &Selector{selected: strings.TrimSpace(code)}
}

// Select toggles: choosing the code that is already selected clears it.
func (s *Selector) Select(code string) {
	code = strings.TrimSpace(code)
	if code == "" || code == s.selected {
		s.selected = ""
		return
	}
	s.selected = code
}

func (s *Selector) Clear() {
	s.selected = ""
}

func (s *Selector) Selected() (string, bool) {
	return s.selected, s.selected != ""
}

// Reconcile drops the selection when the promotion vanished from the catalog
// or is no longer eligible at subtotal. It reports whether it cleared.
func (s *Selector) Reconcile(now time.Time, subtotal decimal.Decimal, catalog Catalog) bool {
	if s.selected == "" {
		return false
	}
	p, ok := catalog.Find(s.selected)
	if ok && p.IsEligible(now, subtotal) {
		return false
	}
	s.selected = ""
	return true
}

func (s *Selector) ComputeDiscount(now time.Time, subtotal decimal.Decimal, catalog Catalog) decimal.Decimal {
	if s.selected == "" {
		return decimal.Zero
	}
	p, ok := catalog.Find(s.selected)
	if !ok || !p.IsEligible(now, subtotal) {
		return decimal.Zero
	}
	return p.DiscountFor(subtotal)
}
