package query

import (
	"context"

	"gorm.io/gorm"

	"tradevault/internal/dao"
	"tradevault/internal/model/entity"
)

var _ dao.SetupDao = (*setupDao)(nil)

type setupDao struct {
	ds *gorm.DB
}

func NewSetupDao(ds *gorm.DB) *setupDao {
	return &setupDao{
		ds: ds,
	}
}

func (s *setupDao) SetupCreate(ctx context.Context, setup *entity.Setup) error {
	return s.ds.WithContext(ctx).Create(setup).Error
}

func (s *setupDao) SetupGetById(ctx context.Context, userId, setupId int64) (entity.Setup, error) {
	var setup entity.Setup
	err := s.ds.WithContext(ctx).Where("id = ? AND user_id = ?", setupId, userId).First(&setup).Error
	return setup, err
}

func (s *setupDao) SetupList(ctx context.Context, userId int64) ([]entity.Setup, error) {
	var setups []entity.Setup
	err := s.ds.WithContext(ctx).Model(&entity.Setup{}).Where("user_id = ?", userId).Order("created_at desc").Find(&setups).Error
	return setups, err
}

func (s *setupDao) SetupUpdate(ctx context.Context, userId, setupId int64, updates map[string]interface{}) error {
	return s.ds.WithContext(ctx).Model(&entity.Setup{}).Where("id = ? AND user_id = ?", setupId, userId).Updates(updates).Error
}

func (s *setupDao) SetupAddPnl(ctx context.Context, setupId int64, delta float64) error {
	return s.ds.WithContext(ctx).Model(&entity.Setup{}).Where("id = ?", setupId).Update("total_pnl", gorm.Expr("total_pnl + ?", delta)).Error
}

func (s *setupDao) SetupDelete(ctx context.Context, userId, setupId int64) error {
	return s.ds.WithContext(ctx).Where("user_id = ?", userId).Delete(&entity.Setup{Id: setupId}).Error
}
