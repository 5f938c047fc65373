package model

import "strconv"

type Goods struct {
	ID         uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	GoodName   string `json:"good_name" binding:"max=50"`
	WorkshopID uint64 `json:"workshop_id" binding:"required"`
	UnitCost   int64  `json:"unit_cost"`
}

func (Goods) TableName() string { return "goods" }
func (Goods) Kind() string      { return "Good" }

func (g *Goods) GetID() uint64   { return g.ID }
func (g *Goods) SetID(id uint64) { g.ID = id }

func (g *Goods) Fields() []Field {
	return []Field{
		{Label: "ID", Value: strconv.FormatUint(g.ID, 10)},
		{Label: "Name", Value: g.GoodName},
		{Label: "Workshop ID", Value: strconv.FormatUint(g.WorkshopID, 10)},
		{Label: "Unit cost", Value: strconv.FormatInt(g.UnitCost, 10)},
	}
}
