package complete_appointment

// CompleteAppointmentRequest HTTP request model
type CompleteAppointmentRequest struct {
	DoctorID int64 `json:"doctorId"`
}
