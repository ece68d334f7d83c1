package conn

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/edudata/scorecard/internal/query"
	"github.com/edudata/scorecard/internal/settings"
	"github.com/edudata/scorecard/internal/table"
	"github.com/edudata/scorecard/pkg"
)

// App composes the query service with the process settings for
// the transport layer. The store behind the service is immutable,
// so handlers run concurrently without locking.
type App struct {
	Service  *query.Service
	Settings *settings.Settings
}

func NewApp(store *table.Store, s *settings.Settings) *App {
	return &App{Service: query.NewService(store), Settings: s}
}

// Listen serves until SIGINT/SIGTERM, then shuts down gracefully.
func (app *App) Listen(port int) {
	exit := make(chan os.Signal, 2)
	signal.Notify(exit, os.Interrupt, syscall.SIGTERM)

	s := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: app.Routes(),
	}

	go func() {
		err := s.ListenAndServe()
		if err != http.ErrServerClosed {
			pkg.FatalLog(err)
		}
	}()

	pkg.InfoLog(app.Settings.AppName, "listening on port", port)
	<-exit
	pkg.DebugLog("Shutting down...")
	s.Shutdown(context.Background())
}
