package upload_csv

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-CarsService/internal/api/handlers"
	"github.com/m04kA/SMC-CarsService/internal/api/middleware"
	importCars "github.com/m04kA/SMC-CarsService/internal/usecase/import_cars"
)

// maxUploadSize ограничение на размер загружаемого файла
const maxUploadSize = 32 << 20 // 32 MB

const (
	msgFileRequired  = "файл не передан, ожидается multipart поле file"
	msgParseFailed   = "не удалось разобрать файл как CSV"
	msgEmptyFile     = "файл не содержит строк данных"
	msgMissingColumn = "в файле отсутствует обязательная колонка"
	msgSuccess       = "файл успешно импортирован"
	msgUnauthorized  = "требуется аутентификация"
)

type Handler struct {
	useCase ImportCarsUseCase
	logger  Logger
}

func NewHandler(useCase ImportCarsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/upload-csv/.
// Файл импортируется в одной транзакции: ошибка в любой строке
// откатывает весь импорт.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.logger.Warn("POST /upload-csv/ - Failed to parse multipart form: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgFileRequired)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.logger.Warn("POST /upload-csv/ - Missing file field: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgFileRequired)
		return
	}
	defer file.Close()

	result, err := h.useCase.Execute(r.Context(), &importCars.Request{
		UserID: userID,
		File:   file,
	})
	if err != nil {
		switch {
		case errors.Is(err, importCars.ErrParseFailed):
			h.logger.Warn("POST /upload-csv/ - Parse failed: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgParseFailed)

		case errors.Is(err, importCars.ErrEmptyFile):
			h.logger.Warn("POST /upload-csv/ - Empty file: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgEmptyFile)

		case errors.Is(err, importCars.ErrMissingColumn):
			h.logger.Warn("POST /upload-csv/ - Missing column: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, fmt.Sprintf("%s: %v", msgMissingColumn, err))

		case errors.Is(err, importCars.ErrMissingField), errors.Is(err, importCars.ErrBadFieldValue):
			// В сообщение попадает номер строки и имя поля - без этого
			// пользователю не найти проблемную строку в большом файле
			h.logger.Warn("POST /upload-csv/ - Bad row: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /upload-csv/ - Import failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /upload-csv/ - Imported %d rows: user_id=%d", result.TotalRows, userID)
	handlers.RespondJSON(w, http.StatusCreated, UploadResponse{
		Success:   msgSuccess,
		TotalRows: result.TotalRows,
	})
}
