package driveform

// Stat names as shown in game. They double as catalog keys.
const (
	StatHP             = "生命值"
	StatHPPercent      = "生命值百分比"
	StatATK            = "攻击力"
	StatATKPercent     = "攻击力百分比"
	StatDEF            = "防御力"
	StatDEFPercent     = "防御力百分比"
	StatCritRate       = "暴击"
	StatCritDMG        = "暴击伤害"
	StatPEN            = "穿透值"
	StatPENRatio       = "穿透率"
	StatAnomalyProf    = "异常精通"
	StatAnomalyMastery = "异常掌控"
	StatImpact         = "冲击力"
	StatEnergyRegen    = "能量回复"
	StatEtherDMG       = "以太伤害加成"
	StatIceDMG         = "冰属性伤害加成"
	StatFireDMG        = "火属性伤害加成"
	StatPhysicalDMG    = "物理伤害加成"
	StatElectricDMG    = "电属性伤害加成"
)

const (
	// MinSlot and MaxSlot bound the drive positions.
	MinSlot = 1
	MaxSlot = 6

	// DefaultSlot is the slot a fresh form starts on.
	DefaultSlot = 1

	// MinSecondaries and MaxSecondaries bound the populated secondary entries
	// of a valid form.
	MinSecondaries = 3
	MaxSecondaries = 4
)

var legalPrimariesBySlot = map[int][]string{
	1: {StatHP},
	2: {StatATK},
	3: {StatDEF},
	4: {StatAnomalyProf, StatHPPercent, StatATKPercent, StatDEFPercent, StatCritDMG, StatCritRate},
	5: {
		StatEtherDMG, StatIceDMG, StatFireDMG, StatPhysicalDMG, StatElectricDMG,
		StatATKPercent, StatHPPercent, StatDEFPercent, StatPENRatio,
	},
	6: {StatImpact, StatAnomalyMastery, StatEnergyRegen, StatATKPercent, StatHPPercent, StatDEFPercent},
}

var allSecondaryAttributes = []string{
	StatHP, StatHPPercent, StatATK, StatATKPercent, StatDEF,
	StatDEFPercent, StatCritRate, StatCritDMG, StatPEN, StatAnomalyProf,
}

// LegalPrimariesFor returns the attributes allowed as primary on slot, in
// display order. Out of range slots have none. The result is a copy.
func LegalPrimariesFor(slot int) []string {
	primaries := legalPrimariesBySlot[slot]
	out := make([]string, len(primaries))
	copy(out, primaries)
	return out
}

// AllSecondaryAttributes returns every attribute that may roll as a secondary.
// The result is a copy.
func AllSecondaryAttributes() []string {
	out := make([]string, len(allSecondaryAttributes))
	copy(out, allSecondaryAttributes)
	return out
}

// IsFixedSlot reports whether slot has exactly one legal primary, which the
// form fills in by itself.
func IsFixedSlot(slot int) bool {
	return len(legalPrimariesBySlot[slot]) == 1
}

// IsLegalPrimary reports whether stat may be the primary attribute on slot.
func IsLegalPrimary(slot int, stat string) bool {
	for _, p := range legalPrimariesBySlot[slot] {
		if p == stat {
			return true
		}
	}
	return false
}

// Slots returns the valid slot numbers in ascending order.
func Slots() []int {
	slots := make([]int, 0, MaxSlot-MinSlot+1)
	for s := MinSlot; s <= MaxSlot; s++ {
		slots = append(slots, s)
	}
	return slots
}

// KnownStats returns the union of every primary and secondary attribute,
// without duplicates, primaries by slot first.
func KnownStats() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(stat string) {
		if !seen[stat] {
			seen[stat] = true
			out = append(out, stat)
		}
	}
	for _, slot := range Slots() {
		for _, stat := range legalPrimariesBySlot[slot] {
			add(stat)
		}
	}
	for _, stat := range allSecondaryAttributes {
		add(stat)
	}
	return out
}
