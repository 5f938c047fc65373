package model

import "strconv"

type Workshop struct {
	ID           uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string `json:"name" binding:"max=30"`
	WorkshopHead string `json:"workshop_head" binding:"max=50"`
	Phone        string `json:"phone" binding:"max=11"`
}

func (Workshop) TableName() string { return "workshops" }
func (Workshop) Kind() string      { return "Workshop" }

func (w *Workshop) GetID() uint64   { return w.ID }
func (w *Workshop) SetID(id uint64) { w.ID = id }

func (w *Workshop) Fields() []Field {
	return []Field{
		{Label: "ID", Value: strconv.FormatUint(w.ID, 10)},
		{Label: "Name", Value: w.Name},
		{Label: "Workshop head", Value: w.WorkshopHead},
		{Label: "Phone", Value: w.Phone},
	}
}
