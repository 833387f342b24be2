package import_cars

import "io"

// Request запрос на импорт файла объявлений
type Request struct {
	UserID int64
	File   io.Reader
}

// Response результат импорта
type Response struct {
	TotalRows int
}
