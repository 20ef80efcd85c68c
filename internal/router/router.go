package router

import (
	"database/sql"
	"net/http"
	"time"

	_ "mew-mate-api/docs"
	mem "mew-mate-api/internal/adapters/storage/memory"
	pg "mew-mate-api/internal/adapters/storage/postgres"
	"mew-mate-api/internal/domain/birds"
	"mew-mate-api/internal/domain/dashboard"
	"mew-mate-api/internal/domain/falconers"
	"mew-mate-api/internal/domain/logbook"
	"mew-mate-api/internal/middleware"
	"mew-mate-api/internal/platform/config"
	"mew-mate-api/internal/platform/metrics"
	"mew-mate-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger  *zap.Logger
	Metrics *metrics.HTTPMetrics

	// RequestTimeout corta el contexto de cada request. 0 => sin límite.
	RequestTimeout time.Duration

	// Logbook define anclas y defaults de los filtros por ventana.
	// Zero value => ancla latest y 30 días para weight.
	Logbook config.LogbookConfig
}

type repos struct {
	falconers falconers.Repository
	birds     birds.Repository
	weights   logbook.Repository[logbook.Weight]
	feedings  logbook.Repository[logbook.Feeding]
	hunts     logbook.Repository[logbook.Hunt]
	trainings logbook.Repository[logbook.Training]
}

func newRepos(db *sql.DB) repos {
	if db != nil {
		return repos{
			falconers: pg.NewFalconersRepo(db),
			birds:     pg.NewBirdsRepo(db),
			weights:   pg.NewWeightsRepo(db),
			feedings:  pg.NewFeedingsRepo(db),
			hunts:     pg.NewHuntsRepo(db),
			trainings: pg.NewTrainingsRepo(db),
		}
	}

	store := mem.NewStore()
	return repos{
		falconers: store.Falconers(),
		birds:     store.Birds(),
		weights:   store.Weights(),
		feedings:  store.Feedings(),
		hunts:     store.Hunts(),
		trainings: store.Trainings(),
	}
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	// AccessLog va por fuera de Recover para que un panic también quede contado.
	r.Use(middleware.AccessLog(log, opts.Metrics))
	r.Use(middleware.Recover(log))
	if opts.RequestTimeout > 0 {
		r.Use(chimw.Timeout(opts.RequestTimeout))
	}
	r.Use(middleware.AuthContext(opts.AuthVerifier, log))

	r.Get("/health", healthHandler)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	rp := newRepos(opts.DB)

	weightDays := opts.Logbook.WeightWindowDays
	if weightDays <= 0 {
		weightDays = 30
	}
	sessionAnchor := logbook.AnchorFor(opts.Logbook.WindowAnchor)

	// Services por módulo
	falconersSvc := falconers.NewService(rp.falconers)
	birdsSvc := birds.NewService(rp.birds)

	// Weight siempre se ancla al pesaje más reciente.
	weightsSvc := logbook.NewService(logbook.KindWeight, rp.weights, logbook.Options{
		Anchor:      logbook.LatestAnchor{},
		DefaultDays: weightDays,
	})
	sessionOpts := logbook.Options{Anchor: sessionAnchor, Weights: weightsSvc}
	feedingsSvc := logbook.NewService(logbook.KindFeeding, rp.feedings, sessionOpts)
	huntsSvc := logbook.NewService(logbook.KindHunt, rp.hunts, sessionOpts)
	trainingsSvc := logbook.NewService(logbook.KindTraining, rp.trainings, sessionOpts)

	dashboardSvc := dashboard.NewService(birdsSvc, weightsSvc, feedingsSvc, huntsSvc, trainingsSvc)

	// Rutas por módulo
	falconers.RegisterRoutes(r, falconersSvc, log)
	birds.RegisterRoutes(r, birdsSvc, log, dashboard.Routes(dashboardSvc, log))
	logbook.RegisterWeightRoutes(r, weightsSvc, log)
	logbook.RegisterFeedingRoutes(r, feedingsSvc, log)
	logbook.RegisterHuntRoutes(r, huntsSvc, log)
	logbook.RegisterTrainingRoutes(r, trainingsSvc, log)

	return r
}

// healthHandler godoc
// @Summary Liveness
// @Tags health
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /health [get]
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
