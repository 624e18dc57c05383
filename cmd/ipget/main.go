package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/ipget/ipget/internal/config"
	"github.com/ipget/ipget/internal/health"
	"github.com/ipget/ipget/internal/healthchecksio"
	"github.com/ipget/ipget/internal/models"
	"github.com/ipget/ipget/internal/noop"
	"github.com/ipget/ipget/internal/publicip"
	"github.com/ipget/ipget/internal/server"
	"github.com/ipget/ipget/internal/shoutrrr"
	"github.com/ipget/ipget/internal/store"
	"github.com/ipget/ipget/internal/tracker"
	"github.com/qdm12/goservices"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	reader := reader.New(reader.Settings{})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, logger, buildInfo, time.Now)
	}()

	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil { // expected exit such as healthcheck
			os.Exit(0)
		}
		logger.Error(err.Error())
		cancel()
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
		}
		logger.Info("Shutdown successful")
	case <-timer.C:
		logger.Warn("Shutdown timed out")
	}

	os.Exit(1)
}

func _main(ctx context.Context, reader *reader.Reader, args []string,
	logger log.LoggerInterface, buildInfo models.BuildInformation,
	timeNow func() time.Time) (err error) {
	if len(args) > 1 {
		switch args[1] {
		case "version", "-version", "--version":
			fmt.Println(buildInfo.VersionString())
			return nil
		case "healthcheck":
			// Running the program in a separate ephemeral instance
			// through the Docker built-in healthcheck, to query the
			// long running instance of the program about its status
			var healthSettings config.Health
			healthSettings.Read(reader)
			healthSettings.SetDefaults()
			err = healthSettings.Validate()
			if err != nil {
				return fmt.Errorf("health settings: %w", err)
			}

			client := health.NewClient()
			return client.Query(ctx, *healthSettings.ServerAddress)
		}
	}

	printSplash(buildInfo)

	settings, err := readSettings(reader, logger)
	if err != nil {
		return err
	}

	shoutrrrSettings := shoutrrr.Settings{
		Addresses:    settings.Shoutrrr.Addresses,
		DefaultTitle: settings.Shoutrrr.DefaultTitle,
		Logger:       logger.New(log.SetComponent("shoutrrr")),
	}
	shoutrrrClient, err := shoutrrr.New(shoutrrrSettings)
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	dbType := reader.String("IPGET_DB_TYPE")
	db, err := store.New(dbType, reader, logger.New(log.SetComponent("store")))
	if err != nil {
		shoutrrrClient.Notify(err.Error())
		return err
	}
	defer func() {
		closeErr := db.Close()
		if closeErr != nil {
			logger.Error("closing store: " + closeErr.Error())
		}
	}()
	logger.Info("Storing public IP observations in " + db.String())

	client := &http.Client{Timeout: settings.Fetch.Timeout}
	defer client.CloseIdleConnections()

	ipFetcher, err := publicip.NewFetcher(
		publicip.DNSSettings{
			Enabled:   *settings.Fetch.DNS,
			Providers: settings.Fetch.DNSProviders,
		},
		publicip.HTTPSettings{
			Enabled: *settings.Fetch.HTTP,
			Client:  client,
			URLs:    settings.Fetch.HTTPProviders,
		})
	if err != nil {
		return fmt.Errorf("creating public IP fetcher: %w", err)
	}

	hioClient := healthchecksio.New(client,
		settings.Health.HealthchecksioBaseURL,
		*settings.Health.HealthchecksioUUID)

	trackerService := tracker.New(db, ipFetcher, settings.Tracker.Period,
		shoutrrrClient, hioClient,
		logger.New(log.SetComponent("tracker")), timeNow)

	healthLogger := logger.New(log.SetComponent("health server"))
	healthServer, err := health.NewServer(*settings.Health.ServerAddress,
		healthLogger, health.MakeIsHealthy(db))
	if err != nil {
		return fmt.Errorf("creating health server: %w", err)
	}

	apiServer, err := createServer(settings.Server, logger, db, buildInfo)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	servicesSequence, err := goservices.NewSequence(goservices.SequenceSettings{
		ServicesStart: []goservices.Service{trackerService, healthServer, apiServer},
		ServicesStop:  []goservices.Service{apiServer, healthServer, trackerService},
	})
	if err != nil {
		return fmt.Errorf("creating services sequence: %w", err)
	}

	runError, startErr := servicesSequence.Start(ctx)
	if startErr != nil {
		return fmt.Errorf("starting services: %w", startErr)
	}

	select {
	case <-ctx.Done():
	case err = <-runError:
		exitHealthchecksio(hioClient, logger, healthchecksio.Exit1)
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("exiting due to critical error: %w", err)
	}

	err = servicesSequence.Stop()
	if err != nil {
		exitHealthchecksio(hioClient, logger, healthchecksio.Exit1)
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("stopping failed: %w", err)
	}

	exitHealthchecksio(hioClient, logger, healthchecksio.Exit0)
	return nil
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "ipget",
		Repository: "ipget",
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}

func readSettings(reader *reader.Reader, logger log.LoggerInterface) (
	settings config.Settings, err error) {
	err = settings.Read(reader)
	if err != nil {
		return settings, fmt.Errorf("reading settings: %w", err)
	}
	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return settings, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(settings.Logger.ToOptions()...)
	logger.Info(settings.String())

	return settings, nil
}

func exitHealthchecksio(hioClient *healthchecksio.Client,
	logger log.LoggerInterface, state healthchecksio.State) {
	const timeout = 3 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	err := hioClient.Ping(ctx, state)
	if err != nil {
		logger.Error(err.Error())
	}
}

//nolint:ireturn
func createServer(settings config.Server, logger log.LoggerInterface,
	db server.LatestReader, buildInfo models.BuildInformation) (
	service goservices.Service, err error) {
	if !*settings.Enabled {
		return noop.New("server"), nil
	}
	serverLogger := logger.New(log.SetComponent("http server"))
	return server.New(settings.ListeningAddress, serverLogger,
		db, buildInfo.VersionString())
}
