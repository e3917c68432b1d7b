package drive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/drive-api/internal/entities/drive"
)

func testPiece() *drive.Piece {
	return &drive.Piece{
		ID:       "drive_1",
		MainStat: "暴击",
		Substats: []*drive.Substat{
			{ID: "drive_1_s1", Name: "暴击伤害", IsOriginal: true},
			{ID: "drive_1_s2", Name: "攻击力", IsOriginal: true},
			{ID: "drive_1_s3", Name: "穿透值", IsOriginal: true},
		},
	}
}

func TestPieceLookups(t *testing.T) {
	piece := testPiece()

	assert.Equal(t, []string{"暴击伤害", "攻击力", "穿透值"}, piece.SubstatNames())
	assert.Equal(t, "攻击力", piece.FindSubstat("drive_1_s2").Name)
	assert.Nil(t, piece.FindSubstat("drive_1_s9"))

	assert.True(t, piece.HasStat("暴击"))
	assert.True(t, piece.HasStat("穿透值"))
	assert.False(t, piece.HasStat("生命值"))

	assert.False(t, piece.HasSubstat("暴击"))
	assert.True(t, piece.HasSubstat("暴击伤害"))
}

func TestPieceIsMaxed(t *testing.T) {
	piece := testPiece()
	assert.False(t, piece.IsMaxed())

	piece.TotalUpgrades = drive.MaxUpgrades
	assert.True(t, piece.IsMaxed())
}
