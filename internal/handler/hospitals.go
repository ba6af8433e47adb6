package handler

import (
	"net/http"

	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/domain"
)

func (h *Handler) GetAllHospitals(w http.ResponseWriter, r *http.Request) {
	hospitals, err := h.repository.GetAllHospitals()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Lấy danh sách bệnh viện thành công", hospitals)
}

func (h *Handler) GetHospital(w http.ResponseWriter, r *http.Request) {
	hospital := r.Context().Value(HospitalCtx).(*domain.Hospital)
	h.successResponse(w, r, "Lấy thông tin bệnh viện thành công", hospital)
}

func (h *Handler) GetHospitalRooms(w http.ResponseWriter, r *http.Request) {
	hospital := r.Context().Value(HospitalCtx).(*domain.Hospital)

	rooms, err := h.repository.GetRoomsByHospital(hospital.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Lấy danh sách phòng thành công", rooms)
}
