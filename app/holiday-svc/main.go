package main

import (
	"fmt"
	"github.com/OpenTransitTools/helligdage/app/holiday-svc/holidaysvc"
	"github.com/OpenTransitTools/helligdage/business/data/holiday"
	"github.com/ardanlabs/conf"
	"github.com/nats-io/nats.go"
	logger "log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

var build = "develop"

func main() {
	log := logger.New(os.Stdout, "HOLIDAY_SVC : ", logger.LstdFlags|logger.Lmicroseconds|logger.Lshortfile)
	if err := run(log); err != nil {
		log.Printf("main: error: %v", err)
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	var cfg struct {
		conf.Version
		Web struct {
			Port              int           `conf:"default:8080"`
			RequestsPerSecond float64       `conf:"default:20"`
			Burst             int           `conf:"default:40"`
			TrustProxy        bool          `conf:"default:false"`
			ClientIdleTimeout time.Duration `conf:"default:5m"`
		}
		NATS struct {
			Url          string
			QuerySubject string `conf:"default:holiday-query"`
		}
	}
	cfg.Version.SVN = build
	cfg.Version.Desc = "Serve Danish holiday queries"
	const prefix = "HOLIDAY_SVC"
	if err := conf.Parse(os.Args[1:], prefix, &cfg); err != nil {
		switch err {
		case conf.ErrHelpWanted:
			usage, err := conf.Usage(prefix, &cfg)
			if err != nil {
				return fmt.Errorf("generating config usage: %w", err)
			}
			fmt.Println(usage)
			return nil
		case conf.ErrVersionWanted:
			version, err := conf.VersionString(prefix, &cfg)
			if err != nil {
				return fmt.Errorf("generating config version: %w", err)
			}
			fmt.Println(version)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	// =========================================================================
	// App Starting

	log.Printf("main : Started : Application initializing : version %s", build)
	defer log.Println("main: Completed")

	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Printf("main: Config :\n%v\n", out)

	// =========================================================================
	// Start NATS

	var natsConn *nats.Conn
	if cfg.NATS.Url != "" {
		log.Printf("main: Connecting to NATS at %s", cfg.NATS.Url)
		natsConn, err = nats.Connect(cfg.NATS.Url)
		if err != nil {
			return fmt.Errorf("connecting to nats: %w", err)
		}
		defer func() {
			log.Printf("main: NATS Stopping : %s", cfg.NATS.Url)
			natsConn.Close()
		}()
	} else {
		log.Println("main: No NATS url configured, query responder disabled")
	}

	// Make a channel to listen for an interrupt or terminate signal from the OS.
	// Use a buffered channel because the signal package requires it.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	return holidaysvc.StartServices(log, holiday.NewService(log), natsConn, holidaysvc.Conf{
		HttpPort:          cfg.Web.Port,
		RequestsPerSecond: cfg.Web.RequestsPerSecond,
		Burst:             cfg.Web.Burst,
		TrustProxy:        cfg.Web.TrustProxy,
		ClientIdleTimeout: cfg.Web.ClientIdleTimeout,
		QuerySubject:      cfg.NATS.QuerySubject,
	}, shutdown)
}
