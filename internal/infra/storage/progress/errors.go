package progress

import "errors"

var (
	// ErrProgressNotFound возвращается, когда сохранённого прогресса нет
	ErrProgressNotFound = errors.New("progress.repository: progress not found")

	// ErrEncode возвращается при ошибке сериализации прогресса
	ErrEncode = errors.New("progress.repository: failed to encode progress")

	// ErrDecode возвращается при повреждённом снимке прогресса
	ErrDecode = errors.New("progress.repository: failed to decode progress")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("progress.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса
	ErrExecQuery = errors.New("progress.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("progress.repository: failed to scan row")
)
