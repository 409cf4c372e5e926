package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/Artox/open-build-service/api/pkg/config"
	"github.com/Artox/open-build-service/api/pkg/controller"
	"github.com/Artox/open-build-service/api/pkg/janitor"
	"github.com/Artox/open-build-service/api/pkg/metrics"
	"github.com/Artox/open-build-service/api/pkg/pubsub"
	"github.com/Artox/open-build-service/api/pkg/store"
	"github.com/Artox/open-build-service/api/pkg/system"
	"github.com/Artox/open-build-service/api/pkg/types"
)

const APIPrefix = system.APISubPath

// statusInvalidator drops cached status snapshots
type statusInvalidator interface {
	Invalidate(project string)
}

type ObsAPIServer struct {
	Cfg        *config.ServerConfig
	Store      store.Store
	PubSub     pubsub.PubSub
	Controller *controller.Controller
	Status     statusInvalidator
	Janitor    *janitor.Janitor

	authMiddleware *authMiddleware
	router         *mux.Router
}

func NewServer(
	cfg *config.ServerConfig,
	store store.Store,
	ps pubsub.PubSub,
	controller *controller.Controller,
	status statusInvalidator,
	janitor *janitor.Janitor,
) (*ObsAPIServer, error) {
	if cfg.WebServer.Host == "" {
		return nil, fmt.Errorf("server host is required")
	}
	if cfg.WebServer.Port == 0 {
		return nil, fmt.Errorf("server port is required")
	}
	if cfg.WebServer.AuthProxyHeader == "" {
		return nil, fmt.Errorf("auth proxy header is required")
	}
	if controller == nil {
		return nil, fmt.Errorf("controller is required")
	}

	apiServer := &ObsAPIServer{
		Cfg:            cfg,
		Store:          store,
		PubSub:         ps,
		Controller:     controller,
		Status:         status,
		Janitor:        janitor,
		authMiddleware: newAuthMiddleware(store, cfg.WebServer.AuthProxyHeader, cfg.WebServer.AdminIDs),
	}
	apiServer.router = apiServer.registerRoutes()
	return apiServer, nil
}

func (apiServer *ObsAPIServer) ListenAndServe(ctx context.Context) error {
	if err := apiServer.subscribe(ctx); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", apiServer.Cfg.WebServer.Host, apiServer.Cfg.WebServer.Port),
		ReadHeaderTimeout: apiServer.Cfg.WebServer.ReadHeaderTimeout,
		IdleTimeout:       time.Minute * 10,
		Handler:           apiServer.router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shut down api server")
		}
	}()

	log.Info().Str("addr", srv.Addr).Msg("api server listening")
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// subscribe keeps the local status cache in line with the changes made through
// other replicas
func (apiServer *ObsAPIServer) subscribe(ctx context.Context) error {
	sub, err := apiServer.PubSub.Subscribe(ctx, pubsub.StatusInvalidateTopic, func(payload []byte) error {
		project := string(payload)
		log.Debug().Str("project", project).Msg("status snapshot invalidated")
		apiServer.Status.Invalidate(project)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", pubsub.StatusInvalidateTopic, err)
	}

	events, err := apiServer.PubSub.StreamConsume(ctx, pubsub.ProjectsStream, pubsub.ProjectEventsTopic, apiServer.handleProjectEvent)
	if err != nil {
		_ = sub.Unsubscribe()
		return fmt.Errorf("failed to consume %s: %w", pubsub.ProjectsStream, err)
	}

	go func() {
		<-ctx.Done()
		_ = sub.Unsubscribe()
		_ = events.Unsubscribe()
	}()
	return nil
}

func (apiServer *ObsAPIServer) handleProjectEvent(msg *pubsub.Message) error {
	event, err := pubsub.ParseProjectEvent(msg.Data)
	if err != nil {
		log.Warn().Err(err).Msg("dropping malformed project event")
		return msg.Ack()
	}
	log.Debug().
		Str("project", event.Project).
		Str("event", string(event.Type)).
		Str("user", event.User).
		Str("request_id", event.RequestID).
		Msg("project event")

	switch event.Type {
	case types.ProjectEventDeleted, types.ProjectEventUpdated, types.ProjectEventMetaSaved, types.ProjectEventRepositories:
		apiServer.Status.Invalidate(event.Project)
	}
	return msg.Ack()
}

func matchAllRoutes(*http.Request, *mux.RouteMatch) bool {
	return true
}

func (apiServer *ObsAPIServer) registerRoutes() *mux.Router {
	router := mux.NewRouter()
	apiServer.Janitor.InjectMiddleware(router)

	router.Use(system.RequestIDMiddleware)
	router.Use(metrics.Middleware)
	router.Use(errorLoggingMiddleware)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// any route that lives under /api/v1
	subRouter := router.PathPrefix(APIPrefix).Subrouter()
	subRouter.Use(apiServer.authMiddleware.extractMiddleware)

	// auth router requires a login from the frontend proxy
	authRouter := subRouter.MatcherFunc(matchAllRoutes).Subrouter()
	authRouter.Use(requireUser)

	subRouter.HandleFunc("/projects", system.Wrapper(apiServer.listProjects)).Methods(http.MethodGet)
	authRouter.HandleFunc("/projects", system.Wrapper(apiServer.createProject)).Methods(http.MethodPost)
	authRouter.HandleFunc("/projects/new", system.Wrapper(apiServer.prepareNewProject)).Methods(http.MethodGet)

	subRouter.HandleFunc("/autocomplete/projects", system.Wrapper(apiServer.autocompleteProjects)).Methods(http.MethodGet)
	subRouter.HandleFunc("/autocomplete/incidents", system.Wrapper(apiServer.autocompleteIncidents)).Methods(http.MethodGet)
	subRouter.HandleFunc("/distributions", system.Wrapper(apiServer.defaultDistributions)).Methods(http.MethodGet)
	subRouter.HandleFunc("/rebuild_time/{key}", apiServer.rebuildTimePNG).Methods(http.MethodGet)

	subRouter.HandleFunc("/projects/{project}", system.Wrapper(apiServer.getProject)).Methods(http.MethodGet)
	authRouter.HandleFunc("/projects/{project}", system.Wrapper(apiServer.updateProject)).Methods(http.MethodPut)
	authRouter.HandleFunc("/projects/{project}", system.Wrapper(apiServer.deleteProject)).Methods(http.MethodDelete)

	subRouter.HandleFunc("/projects/{project}/autocomplete/packages", system.Wrapper(apiServer.autocompletePackages)).Methods(http.MethodGet)
	subRouter.HandleFunc("/projects/{project}/autocomplete/repositories", system.Wrapper(apiServer.autocompleteRepositories)).Methods(http.MethodGet)
	subRouter.HandleFunc("/projects/{project}/users", system.Wrapper(apiServer.projectUsers)).Methods(http.MethodGet)
	subRouter.HandleFunc("/projects/{project}/subprojects", system.Wrapper(apiServer.subprojects)).Methods(http.MethodGet)
	authRouter.HandleFunc("/projects/{project}/watch", system.Wrapper(apiServer.toggleWatch)).Methods(http.MethodPost)
	authRouter.HandleFunc("/projects/{project}/unlock", system.Wrapper(apiServer.unlockProject)).Methods(http.MethodPost)

	subRouter.HandleFunc("/projects/{project}/meta", apiServer.getMeta).Methods(http.MethodGet)
	authRouter.HandleFunc("/projects/{project}/meta", system.Wrapper(apiServer.saveMeta)).Methods(http.MethodPut)
	subRouter.HandleFunc("/projects/{project}/prjconf", apiServer.getPrjconf).Methods(http.MethodGet)
	authRouter.HandleFunc("/projects/{project}/prjconf", system.Wrapper(apiServer.savePrjconf)).Methods(http.MethodPut)

	subRouter.HandleFunc("/projects/{project}/status", system.Wrapper(apiServer.projectStatus)).Methods(http.MethodGet)
	subRouter.HandleFunc("/projects/{project}/monitor", system.Wrapper(apiServer.monitor)).Methods(http.MethodGet)
	subRouter.HandleFunc("/projects/{project}/buildresult", system.Wrapper(apiServer.buildResult)).Methods(http.MethodGet)
	subRouter.HandleFunc("/projects/{project}/packages/{package}/buildresult", system.Wrapper(apiServer.packageBuildresult)).Methods(http.MethodGet)
	authRouter.HandleFunc("/projects/{project}/packages/{package}/comment", system.Wrapper(apiServer.editComment)).Methods(http.MethodPut)
	authRouter.HandleFunc("/projects/{project}/comments/clear", system.Wrapper(apiServer.clearFailedComment)).Methods(http.MethodPost)

	subRouter.HandleFunc("/projects/{project}/repositories", system.Wrapper(apiServer.listRepositories)).Methods(http.MethodGet)
	authRouter.HandleFunc("/projects/{project}/repositories", system.Wrapper(apiServer.addRepositories)).Methods(http.MethodPost)
	authRouter.HandleFunc("/projects/{project}/flags", system.Wrapper(apiServer.changeFlag)).Methods(http.MethodPost)
	subRouter.HandleFunc("/projects/{project}/repositories/{repository}", system.Wrapper(apiServer.editRepository)).Methods(http.MethodGet)
	authRouter.HandleFunc("/projects/{project}/repositories/{repository}", system.Wrapper(apiServer.updateTarget)).Methods(http.MethodPut)
	authRouter.HandleFunc("/projects/{project}/repositories/{repository}", system.Wrapper(apiServer.removeTarget)).Methods(http.MethodDelete)
	authRouter.HandleFunc("/projects/{project}/repositories/{repository}/release", system.Wrapper(apiServer.releaseRepository)).Methods(http.MethodPost)
	authRouter.HandleFunc("/projects/{project}/repositories/{repository}/paths", system.Wrapper(apiServer.removePath)).Methods(http.MethodDelete)
	authRouter.HandleFunc("/projects/{project}/repositories/{repository}/paths/move", system.Wrapper(apiServer.movePath)).Methods(http.MethodPost)
	subRouter.HandleFunc("/projects/{project}/repositories/{repository}/state", system.Wrapper(apiServer.repositoryState)).Methods(http.MethodGet)
	subRouter.HandleFunc("/projects/{project}/repositories/{repository}/rebuild_time", system.Wrapper(apiServer.rebuildTime)).Methods(http.MethodGet)

	subRouter.HandleFunc("/projects/{project}/requests", system.Wrapper(apiServer.listRequests)).Methods(http.MethodGet)
	authRouter.HandleFunc("/projects/{project}/requests/incident", system.Wrapper(apiServer.createIncidentRequest)).Methods(http.MethodPost)
	authRouter.HandleFunc("/projects/{project}/requests/release", system.Wrapper(apiServer.createReleaseRequest)).Methods(http.MethodPost)
	authRouter.HandleFunc("/projects/{project}/requests/remove_target", system.Wrapper(apiServer.createRemoveTargetRequest)).Methods(http.MethodPost)

	subRouter.HandleFunc("/projects/{project}/incidents", system.Wrapper(apiServer.maintenanceIncidents)).Methods(http.MethodGet)
	authRouter.HandleFunc("/projects/{project}/incidents", system.Wrapper(apiServer.newIncident)).Methods(http.MethodPost)
	subRouter.HandleFunc("/projects/{project}/maintained", system.Wrapper(apiServer.maintainedProjects)).Methods(http.MethodGet)
	authRouter.HandleFunc("/projects/{project}/maintained", system.Wrapper(apiServer.addMaintainedProject)).Methods(http.MethodPost)
	authRouter.HandleFunc("/projects/{project}/maintained/{maintained}", system.Wrapper(apiServer.removeMaintainedProject)).Methods(http.MethodDelete)

	return router
}

func getProjectName(r *http.Request) string {
	return mux.Vars(r)["project"]
}
