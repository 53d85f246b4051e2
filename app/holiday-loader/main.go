package main

import (
	"fmt"
	"github.com/OpenTransitTools/helligdage/app/holiday-loader/holidayloader"
	"github.com/OpenTransitTools/helligdage/foundation/database"
	"github.com/ardanlabs/conf"
	logger "log"
	"os"
	"strconv"
)

var build = "develop"

func main() {
	log := logger.New(os.Stdout, "HOLIDAY_LOADER : ", logger.LstdFlags|logger.Lmicroseconds|logger.Lshortfile)
	if err := run(log); err != nil {
		log.Printf("main: error: %v", err)
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	var cfg struct {
		conf.Version
		Args conf.Args
		DB   struct {
			User       string `conf:"default:postgres"`
			Password   string `conf:"default:postgres,noprint"`
			Host       string `conf:"default:0.0.0.0"`
			Name       string `conf:"default:postgres"`
			DisableTLS bool   `conf:"default:true"`
		}
	}
	cfg.Version.SVN = build
	cfg.Version.Desc = "Record Danish holidays in database"

	const prefix = "HOLIDAY_LOADER"

	usage, err := conf.Usage(prefix, &cfg)
	if err != nil {
		return fmt.Errorf("generating config usage: %w", err)
	}

	if err := conf.Parse(os.Args[1:], prefix, &cfg); err != nil {
		switch err {
		case conf.ErrHelpWanted:
			printUsage(usage)
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
	// Start Database

	log.Println("main: Initializing database support")

	db, err := database.Open(database.Config{
		User:       cfg.DB.User,
		Password:   cfg.DB.Password,
		Host:       cfg.DB.Host,
		Name:       cfg.DB.Name,
		DisableTLS: cfg.DB.DisableTLS,
	})
	if err != nil {
		return fmt.Errorf("connecting to db: %w", err)
	}
	defer func() {
		log.Printf("main: Database Stopping : %s", cfg.DB.Host)
		err = db.Close()
		if err != nil {
			log.Printf("main: error closing database: %v", err)
		}
	}()

	switch cfg.Args.Num(0) {
	case "load":
		fromYear, err := yearArg(cfg.Args.Num(1))
		if err != nil {
			return err
		}
		toYear, err := yearArg(cfg.Args.Num(2))
		if err != nil {
			return err
		}
		return holidayloader.LoadHolidays(log, db, fromYear, toYear)
	case "list":
		year, err := yearArg(cfg.Args.Num(1))
		if err != nil {
			return err
		}
		return holidayloader.ListHolidays(log, db, year)
	default:
		printUsage(usage)
		return nil
	}
}

func yearArg(arg string) (int, error) {
	if len(arg) < 1 {
		return 0, fmt.Errorf("expected year argument")
	}
	year, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("unable to parse year %s, error: %w", arg, err)
	}
	return year, nil
}

func printUsage(confUsage string) {
	fmt.Println(confUsage)
	fmt.Println("commands:")
	fmt.Println("load <fromYear> <toYear>: record holidays for the years in the database")
	fmt.Println("list <year>: list holidays recorded for year")
}
