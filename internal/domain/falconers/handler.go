package falconers

import (
	"encoding/json"
	"net/http"
	"time"

	"mew-mate-api/internal/middleware"
	"mew-mate-api/internal/platform/pagination"
	"mew-mate-api/internal/platform/respond"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func RegisterRoutes(r chi.Router, svc *Service, log *zap.Logger) {
	r.Route("/falconer", func(fr chi.Router) {
		fr.Post("/", createFalconerHandler(svc, log))
		fr.Get("/", listFalconersHandler(svc, log))
		fr.Get("/{falconerID}", getFalconerHandler(svc, log))
	})
}

type createFalconerRequest struct {
	ID           string `json:"id"` // opcional; por defecto el subject del token
	Name         string `json:"name"`
	PermitClass  string `json:"permit_class" enums:"apprentice,general,master"`
	PermitNumber string `json:"permit_number"`
}

type falconerResponse struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	PermitClass  PermitClass `json:"permit_class"`
	PermitNumber string      `json:"permit_number"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// createFalconerHandler godoc
// @Summary Registrar halconero
// @Description Crea el halconero. Si no se envía `id`, se usa la identidad del token.
// @Tags falconer
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param payload body createFalconerRequest true "Datos del halconero"
// @Success 201 {object} falconerResponse
// @Failure 400 {string} string "invalid json / reglas de validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 409 {string} string "falconer already exists"
// @Router /falconer [post]
func createFalconerHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := middleware.CallerID(r.Context())
		if !ok {
			respond.Unauthorized(w)
			return
		}

		var req createFalconerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		f, err := svc.Create(r.Context(), callerID, CreateInput{
			ID:           req.ID,
			Name:         req.Name,
			PermitClass:  req.PermitClass,
			PermitNumber: req.PermitNumber,
		})
		if err != nil {
			respond.Error(w, log, err)
			return
		}

		respond.JSON(w, http.StatusCreated, toFalconerResponse(f))
	}
}

// getFalconerHandler godoc
// @Summary Obtener halconero
// @Tags falconer
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param falconerID path string true "ID del halconero"
// @Success 200 {object} falconerResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "falconer not found"
// @Router /falconer/{falconerID} [get]
func getFalconerHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.CallerID(r.Context()); !ok {
			respond.Unauthorized(w)
			return
		}

		f, err := svc.GetByID(r.Context(), chi.URLParam(r, "falconerID"))
		if err != nil {
			respond.Error(w, log, err)
			return
		}

		respond.JSON(w, http.StatusOK, toFalconerResponse(f))
	}
}

// listFalconersHandler godoc
// @Summary Listar halconeros
// @Tags falconer
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param limit query int false "1-200, por defecto 50"
// @Param offset query int false "por defecto 0"
// @Success 200 {array} falconerResponse
// @Failure 401 {string} string "unauthorized"
// @Router /falconer [get]
func listFalconersHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.CallerID(r.Context()); !ok {
			respond.Unauthorized(w)
			return
		}

		limit, offset := pagination.FromRequest(r)
		items, err := svc.List(r.Context(), limit, offset)
		if err != nil {
			respond.Error(w, log, err)
			return
		}

		out := make([]falconerResponse, 0, len(items))
		for _, f := range items {
			out = append(out, toFalconerResponse(f))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func toFalconerResponse(f Falconer) falconerResponse {
	return falconerResponse{
		ID:           f.ID,
		Name:         f.Name,
		PermitClass:  f.PermitClass,
		PermitNumber: f.PermitNumber,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}
