package logbook

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"mew-mate-api/internal/middleware"
	"mew-mate-api/internal/platform/pagination"
	"mew-mate-api/internal/platform/respond"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// request es el DTO de entrada de cada tipo de registro.
type request[T any] interface {
	toEntry() T
}

func RegisterWeightRoutes(r chi.Router, svc *Service[Weight], log *zap.Logger) {
	mount(r, "/weight", routeSet{
		create: createWeightHandler(svc, log),
		bulk:   bulkCreateWeightHandler(svc, log),
		list:   listWeightHandler(svc, log),
		get:    getWeightHandler(svc, log),
		filter: filterWeightByWindowHandler(svc, log),
	})
}

func RegisterFeedingRoutes(r chi.Router, svc *Service[Feeding], log *zap.Logger) {
	mount(r, "/feeding", routeSet{
		create: createFeedingHandler(svc, log),
		bulk:   bulkCreateFeedingHandler(svc, log),
		list:   listFeedingHandler(svc, log),
		get:    getFeedingHandler(svc, log),
		filter: filterFeedingByWindowHandler(svc, log),
	})
}

func RegisterHuntRoutes(r chi.Router, svc *Service[Hunt], log *zap.Logger) {
	mount(r, "/hunt", routeSet{
		create: createHuntHandler(svc, log),
		bulk:   bulkCreateHuntHandler(svc, log),
		list:   listHuntHandler(svc, log),
		get:    getHuntHandler(svc, log),
		filter: filterHuntByWindowHandler(svc, log),
	})
}

func RegisterTrainingRoutes(r chi.Router, svc *Service[Training], log *zap.Logger) {
	mount(r, "/training", routeSet{
		create: createTrainingHandler(svc, log),
		bulk:   bulkCreateTrainingHandler(svc, log),
		list:   listTrainingHandler(svc, log),
		get:    getTrainingHandler(svc, log),
		filter: filterTrainingByWindowHandler(svc, log),
	})
}

// routeSet es el mismo set de rutas para cualquier tipo de registro.
// En /{id}/filter-date el parámetro es el id del ave.
type routeSet struct {
	create, bulk, list, get, filter http.HandlerFunc
}

func mount(r chi.Router, path string, rs routeSet) {
	r.Route(path, func(lr chi.Router) {
		lr.Post("/", rs.create)
		lr.Post("/bulk", rs.bulk)
		lr.Get("/", rs.list)
		lr.Get("/{id}", rs.get)
		lr.Get("/{id}/filter-date", rs.filter)
	})
}

func encodeWeight(w Weight) any     { return ToWeightResponse(w) }
func encodeFeeding(f Feeding) any   { return ToFeedingResponse(f) }
func encodeHunt(h Hunt) any         { return ToHuntResponse(h) }
func encodeTraining(t Training) any { return ToTrainingResponse(t) }

// createWeightHandler godoc
// @Summary Registrar pesaje
// @Tags weight
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param payload body weightRequest true "Datos del registro"
// @Success 201 {object} WeightResponse
// @Failure 400 {string} string "invalid json / reglas de validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "bird not found"
// @Failure 409 {string} string "id already exists"
// @Router /weight [post]
func createWeightHandler(svc *Service[Weight], log *zap.Logger) http.HandlerFunc {
	return createHandler[Weight, weightRequest](svc, encodeWeight, log)
}

// bulkCreateWeightHandler godoc
// @Summary Registrar pesajes en lote
// @Description Valida todos los items y los inserta en una transacción; si uno falla no se persiste ninguno.
// @Tags weight
// @Accept json
// @Param Authorization header string false "Bearer token"
// @Param payload body []weightRequest true "Registros"
// @Success 201
// @Failure 400 {string} string "invalid json / reglas de validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "bird not found"
// @Failure 409 {string} string "id already exists"
// @Failure 500 {string} string "transaction failed"
// @Router /weight/bulk [post]
func bulkCreateWeightHandler(svc *Service[Weight], log *zap.Logger) http.HandlerFunc {
	return bulkCreateHandler[Weight, weightRequest](svc, log)
}

// listWeightHandler godoc
// @Summary Listar pesajes
// @Tags weight
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param limit query int false "1-200, por defecto 50"
// @Param offset query int false "por defecto 0"
// @Success 200 {array} WeightResponse
// @Failure 401 {string} string "unauthorized"
// @Router /weight [get]
func listWeightHandler(svc *Service[Weight], log *zap.Logger) http.HandlerFunc {
	return listHandler(svc, encodeWeight, log)
}

// getWeightHandler godoc
// @Summary Obtener pesaje
// @Tags weight
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param id path string true "ID del registro"
// @Success 200 {object} WeightResponse
// @Failure 400 {string} string "id inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "not found"
// @Router /weight/{id} [get]
func getWeightHandler(svc *Service[Weight], log *zap.Logger) http.HandlerFunc {
	return getHandler(svc, encodeWeight, log)
}

// filterWeightByWindowHandler godoc
// @Summary Pesajes del ave en los últimos N días
// @Description La ventana siempre se ancla al pesaje más reciente del ave: [latest - days, latest]. Sin `days` se usa WEIGHT_WINDOW_DAYS. Orden descendente.
// @Tags weight
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param id path string true "ID del ave"
// @Param days query int false "Días, entre 1 y 36500"
// @Success 200 {array} WeightResponse
// @Failure 400 {string} string "days inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /weight/{id}/filter-date [get]
func filterWeightByWindowHandler(svc *Service[Weight], log *zap.Logger) http.HandlerFunc {
	return filterByWindowHandler(svc, encodeWeight, log)
}

// createFeedingHandler godoc
// @Summary Registrar alimentación
// @Tags feeding
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param payload body feedingRequest true "Datos del registro"
// @Success 201 {object} FeedingResponse
// @Failure 400 {string} string "invalid json / reglas de validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "bird / weight not found"
// @Failure 409 {string} string "id already exists"
// @Router /feeding [post]
func createFeedingHandler(svc *Service[Feeding], log *zap.Logger) http.HandlerFunc {
	return createHandler[Feeding, feedingRequest](svc, encodeFeeding, log)
}

// bulkCreateFeedingHandler godoc
// @Summary Registrar alimentaciones en lote
// @Description Valida todos los items y los inserta en una transacción; si uno falla no se persiste ninguno.
// @Tags feeding
// @Accept json
// @Param Authorization header string false "Bearer token"
// @Param payload body []feedingRequest true "Registros"
// @Success 201
// @Failure 400 {string} string "invalid json / reglas de validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "bird / weight not found"
// @Failure 409 {string} string "id already exists"
// @Failure 500 {string} string "transaction failed"
// @Router /feeding/bulk [post]
func bulkCreateFeedingHandler(svc *Service[Feeding], log *zap.Logger) http.HandlerFunc {
	return bulkCreateHandler[Feeding, feedingRequest](svc, log)
}

// listFeedingHandler godoc
// @Summary Listar alimentaciones
// @Tags feeding
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param limit query int false "1-200, por defecto 50"
// @Param offset query int false "por defecto 0"
// @Success 200 {array} FeedingResponse
// @Failure 401 {string} string "unauthorized"
// @Router /feeding [get]
func listFeedingHandler(svc *Service[Feeding], log *zap.Logger) http.HandlerFunc {
	return listHandler(svc, encodeFeeding, log)
}

// getFeedingHandler godoc
// @Summary Obtener alimentación
// @Tags feeding
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param id path string true "ID del registro"
// @Success 200 {object} FeedingResponse
// @Failure 400 {string} string "id inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "not found"
// @Router /feeding/{id} [get]
func getFeedingHandler(svc *Service[Feeding], log *zap.Logger) http.HandlerFunc {
	return getHandler(svc, encodeFeeding, log)
}

// filterFeedingByWindowHandler godoc
// @Summary Alimentaciones del ave en los últimos N días
// @Description La ventana se ancla según WINDOW_ANCHOR (latest por defecto, o now). Sin `days` devuelve todos los registros del ave. Orden descendente.
// @Tags feeding
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param id path string true "ID del ave"
// @Param days query int false "Días, entre 1 y 36500"
// @Success 200 {array} FeedingResponse
// @Failure 400 {string} string "days inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /feeding/{id}/filter-date [get]
func filterFeedingByWindowHandler(svc *Service[Feeding], log *zap.Logger) http.HandlerFunc {
	return filterByWindowHandler(svc, encodeFeeding, log)
}

// createHuntHandler godoc
// @Summary Registrar cacería
// @Tags hunt
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param payload body huntRequest true "Datos del registro"
// @Success 201 {object} HuntResponse
// @Failure 400 {string} string "invalid json / reglas de validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "bird / weight not found"
// @Failure 409 {string} string "id already exists"
// @Router /hunt [post]
func createHuntHandler(svc *Service[Hunt], log *zap.Logger) http.HandlerFunc {
	return createHandler[Hunt, huntRequest](svc, encodeHunt, log)
}

// bulkCreateHuntHandler godoc
// @Summary Registrar cacerías en lote
// @Description Valida todos los items y los inserta en una transacción; si uno falla no se persiste ninguno.
// @Tags hunt
// @Accept json
// @Param Authorization header string false "Bearer token"
// @Param payload body []huntRequest true "Registros"
// @Success 201
// @Failure 400 {string} string "invalid json / reglas de validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "bird / weight not found"
// @Failure 409 {string} string "id already exists"
// @Failure 500 {string} string "transaction failed"
// @Router /hunt/bulk [post]
func bulkCreateHuntHandler(svc *Service[Hunt], log *zap.Logger) http.HandlerFunc {
	return bulkCreateHandler[Hunt, huntRequest](svc, log)
}

// listHuntHandler godoc
// @Summary Listar cacerías
// @Tags hunt
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param limit query int false "1-200, por defecto 50"
// @Param offset query int false "por defecto 0"
// @Success 200 {array} HuntResponse
// @Failure 401 {string} string "unauthorized"
// @Router /hunt [get]
func listHuntHandler(svc *Service[Hunt], log *zap.Logger) http.HandlerFunc {
	return listHandler(svc, encodeHunt, log)
}

// getHuntHandler godoc
// @Summary Obtener cacería
// @Tags hunt
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param id path string true "ID del registro"
// @Success 200 {object} HuntResponse
// @Failure 400 {string} string "id inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "not found"
// @Router /hunt/{id} [get]
func getHuntHandler(svc *Service[Hunt], log *zap.Logger) http.HandlerFunc {
	return getHandler(svc, encodeHunt, log)
}

// filterHuntByWindowHandler godoc
// @Summary Cacerías del ave en los últimos N días
// @Description La ventana se ancla según WINDOW_ANCHOR (latest por defecto, o now). Sin `days` devuelve todos los registros del ave. Orden descendente.
// @Tags hunt
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param id path string true "ID del ave"
// @Param days query int false "Días, entre 1 y 36500"
// @Success 200 {array} HuntResponse
// @Failure 400 {string} string "days inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /hunt/{id}/filter-date [get]
func filterHuntByWindowHandler(svc *Service[Hunt], log *zap.Logger) http.HandlerFunc {
	return filterByWindowHandler(svc, encodeHunt, log)
}

// createTrainingHandler godoc
// @Summary Registrar entrenamiento
// @Tags training
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param payload body trainingRequest true "Datos del registro"
// @Success 201 {object} TrainingResponse
// @Failure 400 {string} string "invalid json / reglas de validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "bird / weight not found"
// @Failure 409 {string} string "id already exists"
// @Router /training [post]
func createTrainingHandler(svc *Service[Training], log *zap.Logger) http.HandlerFunc {
	return createHandler[Training, trainingRequest](svc, encodeTraining, log)
}

// bulkCreateTrainingHandler godoc
// @Summary Registrar entrenamientos en lote
// @Description Valida todos los items y los inserta en una transacción; si uno falla no se persiste ninguno.
// @Tags training
// @Accept json
// @Param Authorization header string false "Bearer token"
// @Param payload body []trainingRequest true "Registros"
// @Success 201
// @Failure 400 {string} string "invalid json / reglas de validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "bird / weight not found"
// @Failure 409 {string} string "id already exists"
// @Failure 500 {string} string "transaction failed"
// @Router /training/bulk [post]
func bulkCreateTrainingHandler(svc *Service[Training], log *zap.Logger) http.HandlerFunc {
	return bulkCreateHandler[Training, trainingRequest](svc, log)
}

// listTrainingHandler godoc
// @Summary Listar entrenamientos
// @Tags training
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param limit query int false "1-200, por defecto 50"
// @Param offset query int false "por defecto 0"
// @Success 200 {array} TrainingResponse
// @Failure 401 {string} string "unauthorized"
// @Router /training [get]
func listTrainingHandler(svc *Service[Training], log *zap.Logger) http.HandlerFunc {
	return listHandler(svc, encodeTraining, log)
}

// getTrainingHandler godoc
// @Summary Obtener entrenamiento
// @Tags training
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param id path string true "ID del registro"
// @Success 200 {object} TrainingResponse
// @Failure 400 {string} string "id inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "not found"
// @Router /training/{id} [get]
func getTrainingHandler(svc *Service[Training], log *zap.Logger) http.HandlerFunc {
	return getHandler(svc, encodeTraining, log)
}

// filterTrainingByWindowHandler godoc
// @Summary Entrenamientos del ave en los últimos N días
// @Description La ventana se ancla según WINDOW_ANCHOR (latest por defecto, o now). Sin `days` devuelve todos los registros del ave. Orden descendente.
// @Tags training
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param id path string true "ID del ave"
// @Param days query int false "Días, entre 1 y 36500"
// @Success 200 {array} TrainingResponse
// @Failure 400 {string} string "days inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /training/{id}/filter-date [get]
func filterTrainingByWindowHandler(svc *Service[Training], log *zap.Logger) http.HandlerFunc {
	return filterByWindowHandler(svc, encodeTraining, log)
}

func createHandler[T Entry[T], R request[T]](svc *Service[T], encode func(T) any, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.CallerID(r.Context()); !ok {
			respond.Unauthorized(w)
			return
		}

		var req R
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		e, err := svc.Create(r.Context(), req.toEntry())
		if err != nil {
			respond.Error(w, log, err)
			return
		}

		respond.JSON(w, http.StatusCreated, encode(e))
	}
}

func bulkCreateHandler[T Entry[T], R request[T]](svc *Service[T], log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.CallerID(r.Context()); !ok {
			respond.Unauthorized(w)
			return
		}

		var req []R
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := make([]T, 0, len(req))
		for _, item := range req {
			in = append(in, item.toEntry())
		}

		if err := svc.BulkCreate(r.Context(), in); err != nil {
			respond.Error(w, log, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
	}
}

func getHandler[T Entry[T]](svc *Service[T], encode func(T) any, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.CallerID(r.Context()); !ok {
			respond.Unauthorized(w)
			return
		}

		e, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respond.Error(w, log, err)
			return
		}

		respond.JSON(w, http.StatusOK, encode(e))
	}
}

func listHandler[T Entry[T]](svc *Service[T], encode func(T) any, log *zap.Logger) http.HandlerFunc {
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

		respond.JSON(w, http.StatusOK, encodeAll(items, encode))
	}
}

func filterByWindowHandler[T Entry[T]](svc *Service[T], encode func(T) any, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.CallerID(r.Context()); !ok {
			respond.Unauthorized(w)
			return
		}

		var days *int
		if raw := strings.TrimSpace(r.URL.Query().Get("days")); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				http.Error(w, "days must be an integer", http.StatusBadRequest)
				return
			}
			days = &n
		}

		items, err := svc.FilterByWindow(r.Context(), chi.URLParam(r, "id"), days)
		if err != nil {
			respond.Error(w, log, err)
			return
		}

		respond.JSON(w, http.StatusOK, encodeAll(items, encode))
	}
}

func encodeAll[T any](items []T, encode func(T) any) []any {
	out := make([]any, 0, len(items))
	for _, e := range items {
		out = append(out, encode(e))
	}
	return out
}
