// Package drive holds the persisted drive (equipment) records.
package drive

import (
	"time"
)

const (
	// MaxUpgrades is how many upgrade steps a drive takes before it is maxed.
	MaxUpgrades = 5

	// MaxSubstats is the number of substat lines a drive can hold.
	MaxSubstats = 4

	// DefaultMainStatLevel is the main stat level of a stored drive.
	DefaultMainStatLevel = 15
)

// UpgradeType selects what an upgrade step does
type UpgradeType string

// Upgrade types
const (
	// UpgradeNew rolls a new substat line onto a drive with free lines
	UpgradeNew UpgradeType = "new"
	// UpgradeExisting adds one step to a substat the drive already has
	UpgradeExisting UpgradeType = "existing"
)

// Piece is a stored drive.
type Piece struct {
	ID            string     `json:"drive_id"`
	SetName       string     `json:"set_name"`
	Position      int        `json:"position"`
	MainStat      string     `json:"main_stat_name"`
	MainStatLevel int        `json:"main_stat_level"`
	TotalUpgrades int        `json:"total_upgrades"`
	Substats      []*Substat `json:"substats_with_levels"`

	// NextSubstatSeq numbers the substat IDs handed out for this piece so an
	// ID is never reused after substats are replaced.
	NextSubstatSeq int `json:"next_substat_seq"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Substat is one secondary line on a drive and its upgrade state.
type Substat struct {
	ID           string `json:"substat_id"`
	Name         string `json:"name"`
	UpgradeCount int    `json:"upgrade_count"`
	IsOriginal   bool   `json:"is_original"`
}

// SubstatNames returns the substat names in line order.
func (p *Piece) SubstatNames() []string {
	names := make([]string, len(p.Substats))
	for i, s := range p.Substats {
		names[i] = s.Name
	}
	return names
}

// FindSubstat returns the substat with the given ID, or nil.
func (p *Piece) FindSubstat(id string) *Substat {
	for _, s := range p.Substats {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// HasStat reports whether name is the main stat or one of the substats.
func (p *Piece) HasStat(name string) bool {
	if p.MainStat == name {
		return true
	}
	for _, s := range p.Substats {
		if s.Name == name {
			return true
		}
	}
	return false
}

// HasSubstat reports whether name is one of the substats.
func (p *Piece) HasSubstat(name string) bool {
	for _, s := range p.Substats {
		if s.Name == name {
			return true
		}
	}
	return false
}

// IsMaxed reports whether the drive has used all upgrade steps.
func (p *Piece) IsMaxed() bool {
	return p.TotalUpgrades >= MaxUpgrades
}

// SetType is a drive set from the catalog.
type SetType struct {
	Name            string `json:"set_name"`
	TwoPieceEffect  string `json:"two_piece_effect,omitempty"`
	FourPieceEffect string `json:"four_piece_effect,omitempty"`
}
