// Package server exposes the waitlist over HTTP.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/locaddo/locaddo/pkg/config"
	"github.com/locaddo/locaddo/pkg/mailer"
	"github.com/locaddo/locaddo/pkg/waitlist"
)

type Server struct {
	conf   config.Config
	svc    *waitlist.Service
	now    func() time.Time
	router *gin.Engine
	logger logrus.FieldLogger

	// listen is the --listen override. It wins over the file on every reload.
	listen    string
	newSender func(context.Context, config.Config) (mailer.Sender, error)
}

func New(conf config.Config, sender mailer.Sender) *Server {
	s := &Server{
		conf:      conf,
		svc:       waitlist.NewService(sender, conf),
		now:       time.Now,
		logger:    logrus.StandardLogger(),
		newSender: mailer.New,
	}
	s.router = s.setupRoutes()
	return s
}

// Handler returns the http.Handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ginLogger(s.logger))

	api := router.Group("/api")
	api.POST("/waitlist", s.joinWaitlist)
	api.GET("/waitlist", s.waitlistStatus)
	api.OPTIONS("/waitlist", preflight(s.conf.AllowedOrigin))

	router.GET("/version", getVersion)

	return router
}

// Reload re-reads the config, re-applies the listen override and rebuilds the
// mail sender, so a changed provider or API key takes effect for the next
// signup. On error the previous sender stays in use.
func (s *Server) Reload(ctx context.Context) error {
	if err := s.conf.Load(); err != nil {
		return pkgerrors.Wrap(err, "failed to reload config")
	}
	if s.listen != "" {
		s.conf.SetListen(s.listen)
	}

	sender, err := s.newSender(ctx, s.conf)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to rebuild mail sender")
	}
	s.svc.SetSender(sender)

	s.logger.WithFields(s.conf.LogrusFields()).Infof("config reloaded")
	return nil
}

func warnMissingKey(conf config.Config) {
	if conf.MailProvider() == config.MailProviderResend && conf.ResendAPIKey() == "" {
		logrus.Warnf("%s is not set, every waitlist signup will fail", config.EnvResendAPIKey)
	}
}

// Run serves until SIGINT or SIGTERM. A non-empty listen overrides the
// configured address, including after reloads. SIGHUP reloads the config
// file and rebuilds the mail sender.
func Run(conf config.Config, listen string) error {
	if listen != "" {
		conf.SetListen(listen)
	}

	sender, err := mailer.New(context.Background(), conf)
	if err != nil {
		return err
	}
	warnMissingKey(conf)

	s := New(conf, sender)
	s.listen = listen

	// Receive SIGHUP to reload config
	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGHUP)
		for range sigc {
			if err := s.Reload(context.Background()); err != nil {
				logrus.Errorf("%v", err)
				continue
			}
			warnMissingKey(conf)
		}
	}()

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	l, err := net.Listen("tcp", conf.Listen())
	if err != nil {
		return err
	}

	go func() {
		logrus.Infof("http server listening on %s", l.Addr().String())
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal(err)
		}
	}()

	// Handle common process-killing signals, so we can gracefully shut down:
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigc
	logrus.Infof("caught signal \"%s\": shutting down.", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("failed to shutdown http server: %v", err)
	}

	logrus.Info("exiting")
	return nil
}
