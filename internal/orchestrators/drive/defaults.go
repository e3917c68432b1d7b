package drive

import (
	entity "github.com/KirkDiggler/drive-api/internal/entities/drive"
)

// DefaultSetTypes returns the set types seeded into an empty catalog
func DefaultSetTypes() []*entity.SetType {
	return []*entity.SetType{
		{Name: "空洞驰行", TwoPieceEffect: "攻击力+10%", FourPieceEffect: "攻击力+20%"},
		{Name: "电镀音潮", TwoPieceEffect: "雷属性伤害+10%", FourPieceEffect: "雷属性伤害+20%"},
		{Name: "虚数织构", TwoPieceEffect: "生命值+10%"},
		{Name: "物理穿透", TwoPieceEffect: "物理伤害+10%"},
	}
}
