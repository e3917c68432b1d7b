package testutils

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/drive-api/internal/entities/drive"
	"github.com/KirkDiggler/drive-api/internal/forms/driveform"
)

const (
	// TestSetName is the default set used by drive fixtures
	TestSetName = "啄木鸟电音"

	// TestDriveID is the default drive ID used by fixtures
	TestDriveID = "drive_test001"
)

// TestTime is the fixed creation time of drive fixtures
var TestTime = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

// CreateTestPiece creates a fresh slot 1 drive with three original substats
func CreateTestPiece(id string) *drive.Piece {
	return CreateTestPieceWithSubstats(id, 1, driveform.StatHP,
		driveform.StatCritRate, driveform.StatCritDMG, driveform.StatATKPercent)
}

// CreateTestPieceWithSubstats creates a drive at the given slot with the given main stat and substats
func CreateTestPieceWithSubstats(id string, position int, mainStat string, substats ...string) *drive.Piece {
	piece := &drive.Piece{
		ID:            id,
		SetName:       TestSetName,
		Position:      position,
		MainStat:      mainStat,
		MainStatLevel: drive.DefaultMainStatLevel,
		CreatedAt:     TestTime,
		UpdatedAt:     TestTime,
	}

	for _, name := range substats {
		piece.NextSubstatSeq++
		piece.Substats = append(piece.Substats, &drive.Substat{
			ID:         fmt.Sprintf("%s_s%d", id, piece.NextSubstatSeq),
			Name:       name,
			IsOriginal: true,
		})
	}

	return piece
}

// DefaultSetTypes returns a small catalog of set types for tests
func DefaultSetTypes() []*drive.SetType {
	return []*drive.SetType{
		{Name: TestSetName, TwoPieceEffect: "暴击率+8%", FourPieceEffect: "普通攻击命中时攻击力提升"},
		{Name: "雷暴重金属", TwoPieceEffect: "电属性伤害+10%", FourPieceEffect: "电属性伤害提升"},
		{Name: "自由蓝调", TwoPieceEffect: "异常精通+30", FourPieceEffect: "穿透率提升"},
	}
}
