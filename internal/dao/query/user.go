package query

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tradevault/internal/dao"
	"tradevault/internal/model/entity"
)

var _ dao.UserDao = (*userDao)(nil)

type userDao struct {
	ds *gorm.DB
}

func NewUserDao(ds *gorm.DB) *userDao {
	return &userDao{
		ds: ds,
	}
}

func (u *userDao) UserGetByEmail(ctx context.Context, email string) (entity.User, error) {
	var user entity.User
	err := u.ds.WithContext(ctx).Model(&entity.User{}).Where("email = ?", email).Find(&user).Error
	return user, err
}

func (u *userDao) UserGetById(ctx context.Context, userId int64) (entity.User, error) {
	var user entity.User
	err := u.ds.WithContext(ctx).Model(&entity.User{}).Where("id = ?", userId).Find(&user).Error
	return user, err
}

func (u *userDao) UserCreate(ctx context.Context, user *entity.User) error {
	var existingUser entity.User
	// email唯一出现问题，处理下：
	// 数据库级别的唯一约束不能完全防止竞态条件，也就是当两个请求几乎同时尝试插入相同的邮箱时，可能会出现问题。
	if err := u.ds.WithContext(ctx).Where("email = ?", user.Email).First(&existingUser).Error; err != gorm.ErrRecordNotFound {
		return err
	}
	return u.ds.WithContext(ctx).Create(user).Error
}

func (u *userDao) UserVerifyEmail(ctx context.Context, email string) (count int64, err error) {
	err = u.ds.WithContext(ctx).Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return
}

func (u *userDao) UserUpdate(ctx context.Context, user *entity.User) error {
	return u.ds.WithContext(ctx).Updates(user).Error
}

func (u *userDao) UserUpdateColumn(ctx context.Context, userId int64, column string, value interface{}) error {
	return u.ds.WithContext(ctx).Model(&entity.User{}).Where("id = ?", userId).Update(column, value).Error
}

func (u *userDao) UserActivate(ctx context.Context, userId int64) error {
	return u.ds.WithContext(ctx).Model(&entity.User{}).Where("id = ?", userId).Update("is_active", true).Error
}

func (u *userDao) UserTouchLogin(ctx context.Context, userId int64) error {
	return u.ds.WithContext(ctx).Model(&entity.User{}).Where("id = ?", userId).Update("last_login_at", time.Now()).Error
}

func (u *userDao) UserDelete(ctx context.Context, userId int64) error {
	return u.ds.WithContext(ctx).Delete(&entity.User{Id: userId}).Error
}
