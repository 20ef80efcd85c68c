package dashboard

import (
	"net/http"

	"mew-mate-api/internal/domain/birds"
	"mew-mate-api/internal/domain/logbook"
	"mew-mate-api/internal/middleware"
	"mew-mate-api/internal/platform/respond"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Routes se cuelga del subrouter /bird (ver birds.RegisterRoutes).
func Routes(svc *Service, log *zap.Logger) func(chi.Router) {
	return func(br chi.Router) {
		br.Get("/{birdID}/dashboard", getDashboardHandler(svc, log))
	}
}

type DashboardResponse struct {
	birds.BirdResponse
	Weights   []logbook.WeightResponse   `json:"weights"`
	Feedings  []logbook.FeedingResponse  `json:"feedings"`
	Hunts     []logbook.HuntResponse     `json:"hunts"`
	Trainings []logbook.TrainingResponse `json:"trainings"`
}

// getDashboardHandler godoc
// @Summary Dashboard del ave
// @Description El ave con todos sus pesajes, alimentaciones, cacerías y entrenamientos (más recientes primero).
// @Tags bird
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param birdID path string true "ID del ave"
// @Success 200 {object} DashboardResponse
// @Failure 400 {string} string "id inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "bird not found"
// @Router /bird/{birdID}/dashboard [get]
func getDashboardHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.CallerID(r.Context()); !ok {
			respond.Unauthorized(w)
			return
		}

		d, err := svc.Get(r.Context(), chi.URLParam(r, "birdID"))
		if err != nil {
			respond.Error(w, log, err)
			return
		}

		respond.JSON(w, http.StatusOK, toResponse(d))
	}
}

func toResponse(d Dashboard) DashboardResponse {
	out := DashboardResponse{
		BirdResponse: birds.ToResponse(d.Bird),
		Weights:      make([]logbook.WeightResponse, 0, len(d.Weights)),
		Feedings:     make([]logbook.FeedingResponse, 0, len(d.Feedings)),
		Hunts:        make([]logbook.HuntResponse, 0, len(d.Hunts)),
		Trainings:    make([]logbook.TrainingResponse, 0, len(d.Trainings)),
	}
	for _, w := range d.Weights {
		out.Weights = append(out.Weights, logbook.ToWeightResponse(w))
	}
	for _, f := range d.Feedings {
		out.Feedings = append(out.Feedings, logbook.ToFeedingResponse(f))
	}
	for _, h := range d.Hunts {
		out.Hunts = append(out.Hunts, logbook.ToHuntResponse(h))
	}
	for _, t := range d.Trainings {
		out.Trainings = append(out.Trainings, logbook.ToTrainingResponse(t))
	}
	return out
}
