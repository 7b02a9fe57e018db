package dto

import (
	"bytes"
	"encoding/json"
)

// Optional 部分更新字段
// Set: 请求体中出现了该字段；Valid 为 false 表示显式传了 null（清空）
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// OptionalOf 构造已赋值的字段
func OptionalOf[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Null 构造显式清空的字段
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON 字段缺省时不会被调用，Set 保持 false
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Valid, o.Value = false, zero
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// MarshalJSON null 或原值
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// ColumnValue 用于 gorm Updates(map)，nil 写入 NULL
func (o Optional[T]) ColumnValue() interface{} {
	if !o.Valid {
		return nil
	}
	return o.Value
}
