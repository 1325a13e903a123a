package deletionlog

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("deletionlog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("deletionlog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("deletionlog.repository: failed to scan row")

	// ErrEncode возвращается при ошибке сериализации снимка записи
	ErrEncode = errors.New("deletionlog.repository: failed to encode details")
)
