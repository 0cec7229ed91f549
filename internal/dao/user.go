package dao

import (
	"context"

	"tradevault/internal/model/entity"
)

type UserDao interface {
	// 根据邮箱获取user实体
	UserGetByEmail(ctx context.Context, email string) (entity.User, error)
	// 根据id获取user实体
	UserGetById(ctx context.Context, userId int64) (entity.User, error)
	// 创建用户
	UserCreate(ctx context.Context, user *entity.User) error
	// 邮箱是否已被占用
	UserVerifyEmail(ctx context.Context, email string) (count int64, err error)
	// 更新用户
	UserUpdate(ctx context.Context, user *entity.User) error
	// 更新用户单列
	UserUpdateColumn(ctx context.Context, userId int64, column string, value interface{}) error
	// 标记邮箱已验证
	UserActivate(ctx context.Context, userId int64) error
	// 更新最后登陆时间
	UserTouchLogin(ctx context.Context, userId int64) error
	// 删除用户
	UserDelete(ctx context.Context, userId int64) error
}
