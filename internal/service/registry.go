package service

import (
	"gorm.io/gorm"

	"github.com/nurpe/factory-records/internal/model"
	"github.com/nurpe/factory-records/internal/repository"
)

type Registry struct {
	Users     *RecordService[model.User, *model.User]
	Workshops *RecordService[model.Workshop, *model.Workshop]
	Goods     *RecordService[model.Goods, *model.Goods]
	Contracts *RecordService[model.Contract, *model.Contract]
	Orders    *RecordService[model.Order, *model.Order]
}

func NewRegistry(db *gorm.DB) *Registry {
	return &Registry{
		Users:     NewRecordService(repository.NewRecordRepository[model.User, *model.User](db)),
		Workshops: NewRecordService(repository.NewRecordRepository[model.Workshop, *model.Workshop](db)),
		Goods:     NewRecordService(repository.NewRecordRepository[model.Goods, *model.Goods](db)),
		Contracts: NewRecordService(repository.NewRecordRepository[model.Contract, *model.Contract](db)),
		Orders:    NewRecordService(repository.NewRecordRepository[model.Order, *model.Order](db)),
	}
}
