package bootstrap

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fulldump/box"

	"github.com/fulldump/usersvc/api"
	"github.com/fulldump/usersvc/configuration"
	"github.com/fulldump/usersvc/database"
	"github.com/fulldump/usersvc/service"
	"github.com/fulldump/usersvc/statics"
)

// Bootstrap builds the whole service from c. start blocks until stop is
// called or the process receives SIGTERM/SIGINT.
func Bootstrap(c *configuration.Configuration) (start, stop func(), err error) {

	index, err := statics.Index(c.Statics)
	if err != nil {
		return nil, nil, err
	}

	db := database.NewDatabase(&database.Config{
		Capacity: c.Capacity,
	})

	b := api.Build(service.NewService(db), index)
	b.WithInterceptors(api.RequestID)
	if c.EnableAccessLog {
		b.WithInterceptors(api.AccessLog(log.New(os.Stdout, "ACCESS: ", log.Lshortfile)))
	}
	if c.EnableCompression {
		b.WithInterceptors(api.Compression)
	}
	b.WithInterceptors(
		api.PrettyErrorInterceptor,
		api.RecoverFromPanic,
		api.InterceptorUnavailable(db),
	)

	s := &http.Server{
		Addr:    c.HttpAddr,
		Handler: box.Box2Http(b),
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("listen %s: %w", c.HttpAddr, err)
	}
	log.Println("listening on", ln.Addr().String())

	stopOnce := &sync.Once{}
	stop = func() {
		stopOnce.Do(func() {
			db.Stop()
			s.Shutdown(context.Background())
		})
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		for sig := range signalChan {
			log.Println("Signal received", sig.String())
			stop()
		}
	}()

	start = func() {

		wg := &sync.WaitGroup{}

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := db.Start()
			if err != nil {
				log.Println("ERROR:", err.Error())
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Serve(ln)
			if err != nil && err != http.ErrServerClosed {
				log.Println("ERROR:", err.Error())
				stop()
			}
		}()

		wg.Wait()
		signal.Stop(signalChan)
	}

	return start, stop, nil
}
