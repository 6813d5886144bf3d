package constant

import "fmt"

type AppError struct {
	ErrorCode string
	Message   string
	Params    map[string]interface{}
}

func (e AppError) Code() string  { return e.ErrorCode }
func (e AppError) Error() string { return e.Message }

type BadRequestError struct{ AppError }

func NewBadRequestError(code, message string, params map[string]interface{}) *BadRequestError {
	return &BadRequestError{
		AppError: AppError{
			ErrorCode: code,
			Message:   message,
			Params:    params,
		},
	}
}

type NotFoundError struct{ AppError }

func NewNotFoundError(code, message string, params map[string]interface{}) *NotFoundError {
	return &NotFoundError{
		AppError: AppError{
			ErrorCode: code,
			Message:   message,
			Params:    params,
		},
	}
}

type InternalServerError struct{ AppError }

func NewInternalServerError(code, message string, params map[string]interface{}) *InternalServerError {
	return &InternalServerError{
		AppError: AppError{
			ErrorCode: code,
			Message:   message,
			Params:    params,
		},
	}
}

func INVALID_MEASUREMENT(reason string) *BadRequestError {
	return NewBadRequestError("invalid_measurement", fmt.Sprintf("Invalid measurement: %v", reason),
		map[string]interface{}{"Reason": reason})
}

func DB_OPERATION_ERROR(e error) *InternalServerError {
	return NewInternalServerError("db_operation_failed", e.Error(), map[string]interface{}{})
}

func STORE_UNAVAILABLE_ERROR(e error) *InternalServerError {
	return NewInternalServerError("store_unavailable", e.Error(), map[string]interface{}{})
}
