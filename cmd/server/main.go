package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"farmmate/config"
	"farmmate/database"
	"farmmate/pkg/logx"
	"farmmate/pkg/reminder"
	"farmmate/pkg/schedule"
	"farmmate/router"

	authCtrlImp "farmmate/pkg/auth/controllerImp"

	cropCtrlImp "farmmate/pkg/crop/controllerImp"
	cropRepoImp "farmmate/pkg/crop/repositoryImp"
	cropSvcImp "farmmate/pkg/crop/serviceImp"

	farmCtrlImp "farmmate/pkg/farm/controllerImp"
	farmRepoImp "farmmate/pkg/farm/repositoryImp"
	farmSvcImp "farmmate/pkg/farm/serviceImp"

	taskCtrlImp "farmmate/pkg/task/controllerImp"
	taskRepoImp "farmmate/pkg/task/repositoryImp"
	taskSvcImp "farmmate/pkg/task/serviceImp"

	schedCtrlImp "farmmate/pkg/schedule/controllerImp"
	schedSvcImp "farmmate/pkg/schedule/serviceImp"

	recCtrlImp "farmmate/pkg/recommendation/controllerImp"
	recRepoImp "farmmate/pkg/recommendation/repositoryImp"
	recSvcImp "farmmate/pkg/recommendation/serviceImp"

	healthCtrlImp "farmmate/pkg/health/controllerImp"
)

func main() {
	cfg := config.Load()
	log := logx.New(cfg.LogLevel, cfg.Development())
	if cfg.EnvFileErr != nil {
		log.Debug("no .env loaded", logx.Err(cfg.EnvFileErr))
	}
	loc := cfg.Location()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Error("database", logx.Err(err))
		os.Exit(1)
	}
	defer database.Close(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.SeedSampleData {
		today := schedule.Today(time.Now(), loc)
		if wrote, err := database.Seed(ctx, db, cfg.DefaultUserID, today); err != nil {
			log.Warn("seed sample data", logx.Err(err))
		} else if wrote {
			log.Info("seeded sample data", logx.String("uid", cfg.DefaultUserID))
		}
	}

	intervals := schedule.DefaultIntervals()
	if cfg.WorkIntervalsFile != "" {
		over, err := schedule.LoadIntervals(cfg.WorkIntervalsFile)
		if err != nil {
			log.Warn("work intervals file ignored, using defaults",
				logx.String("path", cfg.WorkIntervalsFile), logx.Err(err))
		} else {
			intervals = intervals.Merge(over)
			log.Info("work intervals loaded", logx.String("path", cfg.WorkIntervalsFile), logx.Int("overrides", len(over)))
		}
	}

	// Repos
	fRepo := farmRepoImp.New(db)
	cRepo := cropRepoImp.New(db)
	tRepo := taskRepoImp.New(db)
	rRepo := recRepoImp.New(db)

	// Services
	tSvc := taskSvcImp.NewTaskService(tRepo, cRepo, log.With(logx.String("svc", "task")))
	sSvc := schedSvcImp.NewScheduleService(schedule.NewGenerator(intervals), cRepo, tSvc, loc)

	e := echo.New()
	e.HideBanner = true
	router.New(e, router.Controllers{
		Farm:           farmCtrlImp.New(farmSvcImp.NewFarmService(fRepo)),
		Crop:           cropCtrlImp.New(cropSvcImp.NewCropService(cRepo)),
		Task:           taskCtrlImp.New(tSvc),
		Schedule:       schedCtrlImp.New(sSvc),
		Recommendation: recCtrlImp.New(recSvcImp.NewRecommendationService(rRepo)),
		Auth:           authCtrlImp.NewAuthController(cfg.DefaultUserID),
		Health:         healthCtrlImp.NewHealthCtrl(db, cfg.Env),
	}, router.Options{
		DefaultUserID: cfg.DefaultUserID,
		RequireUser:   cfg.RequireUser,
		RateLimitRPS:  cfg.RateLimitRPS,
		Log:           log,
	})

	rem := reminder.New(tRepo, cfg.ReminderCron, loc, log.With(logx.String("svc", "reminder")))
	if err := rem.Start(ctx); err != nil {
		log.Warn("reminder disabled", logx.Err(err))
	}

	go func() {
		log.Info("listening", logx.String("addr", cfg.Addr()), logx.String("env", cfg.Env), logx.String("tz", loc.String()))
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server", logx.Err(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	rem.Stop(shutdownCtx)
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", logx.Err(err))
	}
}
