package handler

import "net/http"

// Dashboard — возвращает две серии агрегации продаж владельца:
// по дням и по товарам.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	report, err := h.dashboardUseCase.Compute(r.Context(), user)
	if err != nil {
		// частичный отчет не отдается никогда
		respondWithError(w, http.StatusInternalServerError, err.Error(), h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, report, h.logger)
}
