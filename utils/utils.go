package utils

import (
	"database/sql/driver"
	"fmt"
	"math/rand"
	"time"

	"tradevault/internal/consts"
)

// JsonTime 数据库时间字段，序列化成 "2006-01-02 15:04:05" 格式
type JsonTime time.Time

func (t JsonTime) MarshalJSON() ([]byte, error) {
	tm := time.Time(t)
	if tm.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", tm.Format(consts.TimeLayout))), nil
}

func (t *JsonTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == `""` || s == "null" {
		*t = JsonTime(time.Time{})
		return nil
	}
	tm, err := time.ParseInLocation(`"`+consts.TimeLayout+`"`, s, time.Local)
	if err != nil {
		return err
	}
	*t = JsonTime(tm)
	return nil
}

// Value 实现gorm的写入
func (t JsonTime) Value() (driver.Value, error) {
	tm := time.Time(t)
	if tm.IsZero() {
		return nil, nil
	}
	return tm, nil
}

// Scan 实现gorm的读取
func (t *JsonTime) Scan(v interface{}) error {
	if value, ok := v.(time.Time); ok {
		*t = JsonTime(value)
		return nil
	}
	return fmt.Errorf("can not convert %v to timestamp", v)
}

// RandString generate rand string with specified length
func RandString(length int) string {
	str := "0123456789abcdefghijklmnopqrstuvwxyz"
	data := []byte(str)
	var result []byte
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < length; i++ {
		result = append(result, data[r.Intn(len(data))])
	}
	return string(result)
}

