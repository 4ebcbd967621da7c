package errorx

import "fmt"

// ValidationError 参数校验错误（400）
// 请求进入评分/落库流程之前检测，不会自动重试
type ValidationError struct {
	Message string
}

// Error 实现 error 接口
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError 创建参数校验错误
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// StorageError 存储读写错误（500）
// 对外返回通用错误消息，底层原因只记录日志
type StorageError struct {
	Op  string
	Err error
}

// Error 实现 error 接口
func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("storage error: %s", e.Op)
	}
	return fmt.Sprintf("storage error: %s: %v", e.Op, e.Err)
}

// Unwrap 返回底层错误
func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError 创建存储错误
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}
