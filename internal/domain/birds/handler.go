package birds

import (
	"encoding/json"
	"net/http"
	"time"

	"mew-mate-api/internal/middleware"
	"mew-mate-api/internal/platform/respond"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RegisterRoutes monta /bird. Extra permite que otros módulos (dashboard)
// cuelguen rutas bajo /bird sin redefinir el subrouter.
func RegisterRoutes(r chi.Router, svc *Service, log *zap.Logger, extra ...func(chi.Router)) {
	r.Route("/bird", func(br chi.Router) {
		br.Post("/", createBirdHandler(svc, log))
		br.Post("/bulk", bulkCreateBirdsHandler(svc, log))
		br.Get("/", listMyBirdsHandler(svc, log))
		br.Get("/{birdID}", getBirdHandler(svc, log))
		br.Delete("/{birdID}", deleteBirdHandler(svc, log))

		for _, fn := range extra {
			fn(br)
		}
	})
}

type createBirdRequest struct {
	ID         string     `json:"id"`          // opcional (UUID)
	FalconerID string     `json:"falconer_id"` // opcional; por defecto el caller
	Name       string     `json:"name"`
	Gender     string     `json:"gender"`
	Species    string     `json:"species"`
	TrapDate   *time.Time `json:"trap_date"` // RFC3339, por defecto ahora
}

type BirdResponse struct {
	ID         string    `json:"id"`
	FalconerID string    `json:"falconer_id"`
	Name       string    `json:"name"`
	Gender     Gender    `json:"gender"`
	Species    string    `json:"species"`
	TrapDate   time.Time `json:"trap_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (req createBirdRequest) toInput() CreateInput {
	return CreateInput{
		ID:         req.ID,
		FalconerID: req.FalconerID,
		Name:       req.Name,
		Gender:     req.Gender,
		Species:    req.Species,
		TrapDate:   req.TrapDate,
	}
}

// createBirdHandler godoc
// @Summary Registrar ave
// @Description Crea un ave. `falconer_id` por defecto es el caller y no puede ser otro halconero; debe existir.
// @Tags bird
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param payload body createBirdRequest true "Datos del ave"
// @Success 201 {object} BirdResponse
// @Failure 400 {string} string "invalid json / reglas de validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "falconer not found"
// @Router /bird [post]
func createBirdHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := middleware.CallerID(r.Context())
		if !ok {
			respond.Unauthorized(w)
			return
		}

		var req createBirdRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		b, err := svc.Create(r.Context(), callerID, req.toInput())
		if err != nil {
			respond.Error(w, log, err)
			return
		}

		respond.JSON(w, http.StatusCreated, ToResponse(b))
	}
}

// bulkCreateBirdsHandler godoc
// @Summary Registrar aves en lote
// @Description Inserta todas las aves en una transacción; si una falla no se persiste ninguna.
// @Tags bird
// @Accept json
// @Param Authorization header string false "Bearer token"
// @Param payload body []createBirdRequest true "Aves"
// @Success 201
// @Failure 400 {string} string "invalid json / reglas de validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "falconer not found"
// @Router /bird/bulk [post]
func bulkCreateBirdsHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := middleware.CallerID(r.Context())
		if !ok {
			respond.Unauthorized(w)
			return
		}

		var req []createBirdRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := make([]CreateInput, 0, len(req))
		for _, item := range req {
			in = append(in, item.toInput())
		}

		if err := svc.BulkCreate(r.Context(), callerID, in); err != nil {
			respond.Error(w, log, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
	}
}

// listMyBirdsHandler godoc
// @Summary Listar mis aves
// @Description Aves cuyo falconer_id es la identidad del caller.
// @Tags bird
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Success 200 {array} BirdResponse
// @Failure 401 {string} string "unauthorized"
// @Router /bird [get]
func listMyBirdsHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := middleware.CallerID(r.Context())
		if !ok {
			respond.Unauthorized(w)
			return
		}

		items, err := svc.ListByOwner(r.Context(), callerID)
		if err != nil {
			respond.Error(w, log, err)
			return
		}

		out := make([]BirdResponse, 0, len(items))
		for _, b := range items {
			out = append(out, ToResponse(b))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// getBirdHandler godoc
// @Summary Obtener ave
// @Tags bird
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param birdID path string true "ID del ave"
// @Success 200 {object} BirdResponse
// @Failure 400 {string} string "id inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "bird not found"
// @Router /bird/{birdID} [get]
func getBirdHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.CallerID(r.Context()); !ok {
			respond.Unauthorized(w)
			return
		}

		b, err := svc.GetByID(r.Context(), chi.URLParam(r, "birdID"))
		if err != nil {
			respond.Error(w, log, err)
			return
		}

		respond.JSON(w, http.StatusOK, ToResponse(b))
	}
}

// deleteBirdHandler godoc
// @Summary Borrar ave
// @Description Solo el dueño. Borra en cascada pesajes, alimentaciones, cacerías y entrenamientos.
// @Tags bird
// @Param Authorization header string false "Bearer token"
// @Param birdID path string true "ID del ave"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "bird not found"
// @Router /bird/{birdID} [delete]
func deleteBirdHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := middleware.CallerID(r.Context())
		if !ok {
			respond.Unauthorized(w)
			return
		}

		if err := svc.Delete(r.Context(), callerID, chi.URLParam(r, "birdID")); err != nil {
			respond.Error(w, log, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ToResponse(b Bird) BirdResponse {
	return BirdResponse{
		ID:         b.ID,
		FalconerID: b.FalconerID,
		Name:       b.Name,
		Gender:     b.Gender,
		Species:    b.Species,
		TrapDate:   b.TrapDate,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}
