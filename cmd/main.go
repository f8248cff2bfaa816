package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/cmd/fx/config_fx"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/cmd/fx/db_fx"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/cmd/fx/handler_fx"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/cmd/fx/messaging_fx"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/cmd/fx/routing_fx"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/cmd/fx/storage_fx"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/cmd/fx/usecase_fx"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/config"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/logger"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		storage_fx.Module,
		routing_fx.Module,
		messaging_fx.Module,
		usecase_fx.Module,
		handler_fx.Module,

		fx.WithLogger(func(lggr logger.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: lggr.Desugar().Named("fx")}
		}),
		fx.Invoke(StartServer),
	)

	app.Run()
}

// StartServer runs the HTTP server for the lifetime of the app and drains it on stop
func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, engine *gin.Engine, lggr logger.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			lggr.Infow("starting HTTP server", "addr", srv.Addr)
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					lggr.Errorw("HTTP server stopped", "err", err)
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			lggr.Infow("stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
