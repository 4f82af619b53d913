package doctor

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врач не найден
	ErrDoctorNotFound = errors.New("doctor.repository: doctor not found")

	// ErrDuplicateEmail возвращается при попытке создать врача с занятым email
	ErrDuplicateEmail = errors.New("doctor.repository: email already in use")

	// ErrScheduleMalformed возвращается, когда сохранённое расписание врача
	// не разбирается или нарушает инварианты. Вызывающий код трактует это
	// как отсутствие доступности, а не как фатальную ошибку
	ErrScheduleMalformed = errors.New("doctor.repository: stored schedule is malformed")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("doctor.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("doctor.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("doctor.repository: failed to scan row")
)
