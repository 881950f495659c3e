package snapshot

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/koteyur/impulse2d/internal/log"
)

const shutdownTimeout = 5 * time.Second

// Serve runs the hub's handler on addr until ctx is done, then shuts the
// server down and disconnects every client.
func Serve(ctx context.Context, addr string, hub *Hub, logger log.Log) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return ServeListener(ctx, ln, hub, logger)
}

func ServeListener(ctx context.Context, ln net.Listener, hub *Hub, logger log.Log) error {
	srv := &http.Server{
		Handler:           hub.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("snapshot server listening", log.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
