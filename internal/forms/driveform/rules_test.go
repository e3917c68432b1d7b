package driveform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/drive-api/internal/forms/driveform"
)

func TestLegalPrimariesFor(t *testing.T) {
	tests := []struct {
		name  string
		slot  int
		want  int
		first string
		fixed bool
	}{
		{name: "slot 1", slot: 1, want: 1, first: driveform.StatHP, fixed: true},
		{name: "slot 2", slot: 2, want: 1, first: driveform.StatATK, fixed: true},
		{name: "slot 3", slot: 3, want: 1, first: driveform.StatDEF, fixed: true},
		{name: "slot 4", slot: 4, want: 6, first: driveform.StatAnomalyProf},
		{name: "slot 5", slot: 5, want: 9, first: driveform.StatEtherDMG},
		{name: "slot 6", slot: 6, want: 6, first: driveform.StatImpact},
		{name: "zero", slot: 0, want: 0},
		{name: "seven", slot: 7, want: 0},
		{name: "negative", slot: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := driveform.LegalPrimariesFor(tt.slot)
			assert.Len(t, got, tt.want)
			if tt.want > 0 {
				assert.Equal(t, tt.first, got[0])
			}
			assert.Equal(t, tt.fixed, driveform.IsFixedSlot(tt.slot))
		})
	}
}

func TestIsLegalPrimary(t *testing.T) {
	assert.True(t, driveform.IsLegalPrimary(1, driveform.StatHP))
	assert.False(t, driveform.IsLegalPrimary(1, driveform.StatATK))
	assert.True(t, driveform.IsLegalPrimary(5, driveform.StatPENRatio))
	assert.False(t, driveform.IsLegalPrimary(4, driveform.StatPENRatio))
	assert.False(t, driveform.IsLegalPrimary(9, driveform.StatHP))
	assert.False(t, driveform.IsLegalPrimary(4, ""))
}

func TestAllSecondaryAttributes(t *testing.T) {
	got := driveform.AllSecondaryAttributes()

	assert.Len(t, got, 10)
	assert.Equal(t, driveform.StatHP, got[0])
	assert.Equal(t, driveform.StatAnomalyProf, got[9])
	assert.NotContains(t, got, driveform.StatImpact)
}

func TestSlots(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, driveform.Slots())
}
