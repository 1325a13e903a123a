package get_dashboard

import "errors"

// ErrInternal возвращается при внутренних ошибках usecase
var ErrInternal = errors.New("usecase: internal error")
