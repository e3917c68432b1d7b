// Package driveform implements the drive (equipment) editing form: which
// primary attributes a slot allows, how many secondaries a drive carries, and
// the transitions that keep dependent fields consistent when the user changes
// an upstream choice.
//
// A Form is owned by a single editing session and is not safe for concurrent
// use. Every derived value is computed on read.
package driveform

import "fmt"

// Form is the editable state of one drive record.
type Form struct {
	SetName             string   `json:"set_name"`
	Slot                int      `json:"position"`
	PrimaryAttribute    string   `json:"main_stat_name"`
	SecondaryAttributes []string `json:"substats"`
}

// New returns a form holding the defaults of a fresh editing session.
func New() *Form {
	f := &Form{}
	f.Reset()
	return f
}

// Reset restores the defaults: slot 1 with its fixed primary, no set name and
// no secondaries.
func (f *Form) Reset() {
	*f = Form{
		Slot:                DefaultSlot,
		PrimaryAttribute:    legalPrimariesBySlot[DefaultSlot][0],
		SecondaryAttributes: []string{},
	}
}

// LegalPrimaries returns the primaries allowed for the current slot.
func (f *Form) LegalPrimaries() []string {
	return LegalPrimariesFor(f.Slot)
}

// SecondaryCount counts the populated secondary entries.
func (f *Form) SecondaryCount() int {
	n := 0
	for _, s := range f.SecondaryAttributes {
		if s != "" {
			n++
		}
	}
	return n
}

// IsValid gates submission. It does not check that the primary belongs to the
// slot; OnSlotChanged keeps that consistent, and Problems reports a mismatch.
func (f *Form) IsValid() bool {
	if f.SetName == "" || f.Slot == 0 || f.PrimaryAttribute == "" {
		return false
	}
	if f.Slot < MinSlot || f.Slot > MaxSlot {
		return false
	}
	n := f.SecondaryCount()
	return n >= MinSecondaries && n <= MaxSecondaries
}

// OnSlotChanged must run after Slot is assigned. Fixed slots get their only
// primary filled in, other slots have it cleared. Secondaries are always
// dropped.
func (f *Form) OnSlotChanged() {
	primaries := legalPrimariesBySlot[f.Slot]
	if len(primaries) == 1 {
		f.PrimaryAttribute = primaries[0]
	} else {
		f.PrimaryAttribute = ""
	}
	f.SecondaryAttributes = []string{}
}

// OnPrimaryAttributeChanged must run after PrimaryAttribute is assigned.
// Secondaries chosen for the old primary are dropped.
func (f *Form) OnPrimaryAttributeChanged() {
	f.SecondaryAttributes = []string{}
}

// SetSlot assigns slot and applies OnSlotChanged.
func (f *Form) SetSlot(slot int) {
	f.Slot = slot
	f.OnSlotChanged()
}

// SetPrimaryAttribute assigns stat and applies OnPrimaryAttributeChanged.
func (f *Form) SetPrimaryAttribute(stat string) {
	f.PrimaryAttribute = stat
	f.OnPrimaryAttributeChanged()
}

// DescribeSlotConstraint returns help text for the slot selector.
func (f *Form) DescribeSlotConstraint() string {
	switch {
	case f.Slot >= 1 && f.Slot <= 3:
		return fmt.Sprintf("%d号位主词条固定为: %s", f.Slot, legalPrimariesBySlot[f.Slot][0])
	case f.Slot >= 4 && f.Slot <= 6:
		return fmt.Sprintf("%d号位可选择多种主词条", f.Slot)
	default:
		return ""
	}
}

// Clone returns a deep copy.
func (f *Form) Clone() *Form {
	c := *f
	c.SecondaryAttributes = append([]string{}, f.SecondaryAttributes...)
	return &c
}

// PopulatedSecondaries returns the non-empty secondary entries in their
// original order.
func (f *Form) PopulatedSecondaries() []string {
	out := make([]string, 0, len(f.SecondaryAttributes))
	for _, s := range f.SecondaryAttributes {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
