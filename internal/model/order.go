package model

import "strconv"

type Order struct {
	ID         uint64  `json:"id" gorm:"primaryKey;autoIncrement"`
	ContractID uint64  `json:"contract_id" binding:"required"`
	GoodID     *uint64 `json:"good_id"`
	Amount     int64   `json:"amount"`
}

func (Order) TableName() string { return "orders" }
func (Order) Kind() string      { return "Order" }

func (o *Order) GetID() uint64   { return o.ID }
func (o *Order) SetID(id uint64) { o.ID = id }

func (o *Order) Fields() []Field {
	good := ""
	if o.GoodID != nil {
		good = strconv.FormatUint(*o.GoodID, 10)
	}
	return []Field{
		{Label: "ID", Value: strconv.FormatUint(o.ID, 10)},
		{Label: "Contract ID", Value: strconv.FormatUint(o.ContractID, 10)},
		{Label: "Goods ID", Value: good},
		{Label: "Amount", Value: strconv.FormatInt(o.Amount, 10)},
	}
}
