package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/HD-AppointmentService/internal/infra/storage/appointment"
	doctorRepo "github.com/m04kA/HD-AppointmentService/internal/infra/storage/doctor"
)

// UseCase use case для создания записи на прием
type UseCase struct {
	appointmentRepo AppointmentRepository
	doctorRepo      DoctorRepository
	activityRepo    ActivityRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	doctorRepo DoctorRepository,
	activityRepo ActivityRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		activityRepo:    activityRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи на прием
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// даже при одновременных запросах на один слот запись получит только один пациент,
// остальные получат конфликт с альтернативными слотами
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, doctor=%d, date=%s, time=%s",
		req.UserID, req.DoctorID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем расписание врача
	schedule, err := uc.doctorRepo.GetSchedule(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			uc.logger.Warn("CreateAppointment: doctor id=%d not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		if errors.Is(err, doctorRepo.ErrScheduleMalformed) {
			// По битому расписанию врач недоступен для записи
			uc.logger.Error("CreateAppointment: doctor id=%d has malformed schedule: %v", req.DoctorID, err)
			return nil, ErrDoctorNotAvailable
		}
		uc.logger.Error("CreateAppointment: failed to get schedule for doctor id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	if err := schedule.Validate(); err != nil {
		uc.logger.Error("CreateAppointment: doctor id=%d has invalid schedule: %v", req.DoctorID, err)
		return nil, ErrDoctorNotAvailable
	}

	// 3. Проверяем, что запрошенное время попадает в сетку слотов врача
	grid := domain.SlotGrid(schedule, req.Date)
	if len(grid) == 0 {
		uc.logger.Warn("CreateAppointment: doctor id=%d does not work on %s",
			req.DoctorID, req.Date.Format(domain.DateFormat))
		return nil, ErrDoctorNotAvailable
	}

	if !domain.ContainsSlot(grid, req.Time) {
		uc.logger.Warn("CreateAppointment: time %s is outside working hours of doctor id=%d", req.Time, req.DoctorID)
		return nil, ErrOutsideWorkingHours
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем занятые слоты на эту дату с блокировкой (FOR UPDATE)
		booked, err := uc.appointmentRepo.ListScheduledTimes(txCtx, req.DoctorID, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get booked slots: %v", err)
			return fmt.Errorf("%w: failed to get booked slots: %v", ErrInternal, err)
		}

		// 4.2. Проверяем доступность слота
		if domain.ContainsSlot(booked, req.Time) {
			uc.logger.Warn("CreateAppointment: slot %s %s already taken for doctor id=%d",
				req.Date.Format(domain.DateFormat), req.Time, req.DoctorID)

			alternatives, altErr := uc.findAlternatives(txCtx, req.DoctorID, schedule, req.Date)
			if altErr != nil {
				uc.logger.Error("CreateAppointment: failed to find alternatives: %v", altErr)
				return fmt.Errorf("%w: failed to find alternatives: %v", ErrInternal, altErr)
			}

			return &SlotTakenError{Alternatives: alternatives}
		}

		// 4.3. Создаем запись на прием
		appointment := &domain.Appointment{
			UserID:   req.UserID,
			DoctorID: req.DoctorID,
			Date:     req.Date,
			Time:     req.Time,
			Reason:   req.Reason,
			Status:   domain.StatusScheduled,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return err
		}

		result = created
		return nil
	})

	if err != nil {
		// Ограничение уникальности сработало после нашей проверки: соседняя
		// транзакция успела занять слот. Отвечаем тем же конфликтом,
		// альтернативы собираем уже вне откатившейся транзакции
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateAppointment: lost slot race for doctor id=%d, %s %s",
				req.DoctorID, req.Date.Format(domain.DateFormat), req.Time)

			alternatives, altErr := uc.findAlternatives(ctx, req.DoctorID, schedule, req.Date)
			if altErr != nil {
				uc.logger.Error("CreateAppointment: failed to find alternatives after race: %v", altErr)
				alternatives = []domain.DaySlots{}
			}

			return nil, &SlotTakenError{Alternatives: alternatives}
		}

		var slotTaken *SlotTakenError
		if errors.As(err, &slotTaken) {
			return nil, slotTaken
		}

		if errors.Is(err, ErrInternal) || errors.Is(err, ErrInvalidInput) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 5. Фиксируем действие пользователя, ошибки журнала не критичны
	uc.logActivity(ctx, req)

	return &Response{
		ID:        result.ID,
		UserID:    result.UserID,
		DoctorID:  result.DoctorID,
		Date:      result.Date,
		Time:      result.Time,
		Reason:    result.Reason,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}

func (uc *UseCase) logActivity(ctx context.Context, req *Request) {
	details := fmt.Sprintf("doctor_id=%d, date=%s, time=%s",
		req.DoctorID, req.Date.Format(domain.DateFormat), req.Time)

	entry := &domain.UserActivity{
		UserID:  req.UserID,
		Type:    domain.ActivityAppointmentCreated,
		Details: &details,
	}

	if _, err := uc.activityRepo.Create(ctx, entry); err != nil {
		uc.logger.Warn("CreateAppointment: failed to log user activity: %v", err)
	}
}
