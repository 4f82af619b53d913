package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
	doctorRepo "github.com/m04kA/HD-AppointmentService/internal/infra/storage/doctor"
	"github.com/m04kA/HD-AppointmentService/pkg/types"
)

// UseCase use case для получения доступных слотов врача на дату
type UseCase struct {
	doctorRepo      DoctorRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	doctorRepo DoctorRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: doctor=%d, date=%s",
		req.DoctorID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем расписание врача
	schedule, err := uc.doctorRepo.GetSchedule(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			uc.logger.Warn("GetAvailableSlots: doctor id=%d not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		if errors.Is(err, doctorRepo.ErrScheduleMalformed) {
			// Битое расписание не должно ронять запрос: для пациента
			// такой врач просто не имеет свободных слотов
			uc.logger.Error("GetAvailableSlots: doctor id=%d has malformed schedule, returning no availability: %v",
				req.DoctorID, err)
			return uc.emptyResponse(req), nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get schedule for doctor id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 3. Проверяем расписание на согласованность
	if err := schedule.Validate(); err != nil {
		uc.logger.Error("GetAvailableSlots: doctor id=%d has invalid schedule, returning no availability: %v",
			req.DoctorID, err)
		return uc.emptyResponse(req), nil
	}

	// 4. Генерируем сетку слотов на день
	grid := domain.SlotGrid(schedule, req.Date)
	if len(grid) == 0 {
		uc.logger.Info("GetAvailableSlots: doctor id=%d does not work on %s",
			req.DoctorID, req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req), nil
	}

	// 5. Получаем занятые слоты на эту дату
	booked, err := uc.appointmentRepo.ListScheduledTimes(ctx, req.DoctorID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked slots for doctor id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get booked slots: %v", ErrInternal, err)
	}

	// 6. Вычитаем занятые слоты из сетки
	free := domain.SubtractBooked(grid, booked)

	uc.logger.Info("GetAvailableSlots: doctor=%d, date=%s: %d of %d slots free",
		req.DoctorID, req.Date.Format(domain.DateFormat), len(free), len(grid))

	return &Response{
		DoctorID: req.DoctorID,
		Date:     req.Date,
		Slots:    free,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request) *Response {
	return &Response{
		DoctorID: req.DoctorID,
		Date:     req.Date,
		Slots:    []types.TimeString{},
	}
}
