package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/qdm12/ddns-scheduler/internal/backup"
	"github.com/qdm12/ddns-scheduler/internal/config"
	"github.com/qdm12/ddns-scheduler/internal/database"
	"github.com/qdm12/ddns-scheduler/internal/eventlog"
	"github.com/qdm12/ddns-scheduler/internal/health"
	"github.com/qdm12/ddns-scheduler/internal/models"
	"github.com/qdm12/ddns-scheduler/internal/noop"
	"github.com/qdm12/ddns-scheduler/internal/probe"
	"github.com/qdm12/ddns-scheduler/internal/provider"
	"github.com/qdm12/ddns-scheduler/internal/resolver"
	"github.com/qdm12/ddns-scheduler/internal/scheduler"
	"github.com/qdm12/ddns-scheduler/internal/server"
	"github.com/qdm12/ddns-scheduler/internal/shoutrrr"
	"github.com/qdm12/ddns-scheduler/internal/system"
	"github.com/qdm12/ddns-scheduler/internal/tasks"
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

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

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

//nolint:funlen,cyclop
func _main(ctx context.Context, reader *reader.Reader, args []string, logger log.LoggerInterface,
	buildInfo models.BuildInformation, timeNow func() time.Time) (err error) {
	if len(args) > 1 {
		switch args[1] {
		case "version", "-version", "--version":
			fmt.Println(buildInfo.VersionString())
			return nil
		case "healthcheck":
			// Running the program in a separate instance through the Docker
			// built-in healthcheck, in an ephemeral fashion to query the
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

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}

	if config.Paths.Umask != nil {
		previous := system.SetUmask(*config.Paths.Umask)
		logger.Debug(fmt.Sprintf("umask changed from %04o to %04o",
			uint32(previous), uint32(*config.Paths.Umask)))
	}

	shoutrrrClient, err := shoutrrr.New(shoutrrr.Settings{
		Addresses:    config.Shoutrrr.Addresses,
		DefaultTitle: config.Shoutrrr.DefaultTitle,
		Logger:       logger.New(log.SetComponent("shoutrrr")),
	})
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	db, err := database.New(*config.Paths.DataDir)
	if err != nil {
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("opening database: %w", err)
	}

	eventLog, err := readEventLog(db, logger.New(log.SetComponent("event log")), timeNow)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("reading event log: %w", err)
	}

	taskStore := tasks.NewStore(db)
	err = taskStore.Load()
	if err != nil {
		_ = db.Close()
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("loading tasks: %w", err)
	}
	logTasksCount(len(taskStore.List()), logger)

	client := &http.Client{Timeout: config.Client.Timeout}
	defer client.CloseIdleConnections()

	probeLogger := logger.New(log.SetComponent("probes"))
	pool, err := probe.New(probe.Settings{
		Client:      client,
		Store:       db,
		DNSEnabled:  config.Probe.DNSEnabled,
		Timeout:     config.Probe.Timeout,
		CacheTTL:    config.Probe.CacheTTL,
		Parallelism: config.Probe.Parallelism,
		Logger:      probeLogger,
		TimeNow:     timeNow,
	})
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("creating probe pool: %w", err)
	}

	var refresher goservices.Service = probe.NewRefresher(pool,
		*config.Probe.RefreshPeriod, probeLogger)
	refresher, err = goservices.NewRestarter(goservices.RestarterSettings{Service: refresher})
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("creating probe refresher restarter: %w", err)
	}

	resolver, err := resolver.New(resolver.Settings{
		Address: config.Resolver.Address,
		Timeout: config.Resolver.Timeout,
	})
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("creating resolver: %w", err)
	}

	gateway := provider.New(provider.Settings{
		Logger: logger.New(log.SetComponent("provider")),
	})

	taskScheduler, err := scheduler.New(scheduler.Settings{
		Store:      taskStore,
		Pool:       pool,
		Gateway:    gateway,
		EventLog:   eventLog,
		Resolver:   resolver,
		Notifier:   shoutrrrClient,
		DriftCheck: config.Scheduler.DriftCheck,
		Logger:     logger.New(log.SetComponent("scheduler")),
		TimeNow:    timeNow,
	})
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("creating scheduler: %w", err)
	}

	healthServer, err := createHealthServer(taskScheduler, resolver, logger,
		*config.Health.ServerAddress)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("creating health server: %w", err)
	}

	apiServer, err := createServer(config.Server, logger, taskScheduler, pool,
		eventLog, buildInfo)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("creating server: %w", err)
	}

	var backupService goservices.Service
	backupLogger := logger.New(log.SetComponent("backup"))
	backupService = backup.New(*config.Backup.Period, db, database.Filename,
		*config.Backup.Directory, backupLogger, timeNow)
	backupService, err = goservices.NewRestarter(goservices.RestarterSettings{Service: backupService})
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("creating backup restarter: %w", err)
	}

	servicesSequence, err := goservices.NewSequence(goservices.SequenceSettings{
		ServicesStart: []goservices.Service{
			db, taskScheduler, refresher,
			healthServer, apiServer, backupService,
		},
		ServicesStop: []goservices.Service{
			apiServer, healthServer, backupService,
			refresher, taskScheduler, db,
		},
	})
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("creating services sequence: %w", err)
	}

	runError, startErr := servicesSequence.Start(ctx)
	if startErr != nil {
		return fmt.Errorf("starting services: %w", startErr)
	}

	shoutrrrClient.Notify("Launched with " + strconv.Itoa(len(taskStore.List())) + " tasks")

	select {
	case <-ctx.Done():
	case err = <-runError:
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("exiting due to critical error: %w", err)
	}

	err = servicesSequence.Stop()
	if err != nil {
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("stopping failed: %w", err)
	}

	return nil
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "qdm12",
		Repository: "ddns-scheduler",
		Emails:     []string{"quentin.mcgaw@gmail.com"},
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
		// Sponsor information
		PaypalUser:    "qmcgaw",
		GithubSponsor: "qdm12",
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader, logger)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())

	return config, nil
}

func readEventLog(db *database.Database, logger eventlog.Logger,
	timeNow func() time.Time) (eventLog *eventlog.Log, err error) {
	entries, err := db.LoadLogs()
	if err != nil {
		return nil, err
	}
	return eventlog.New(entries, db, logger, timeNow)
}

func logTasksCount(tasksCount int, logger log.LeveledLogger) {
	switch tasksCount {
	case 0:
		logger.Info("Found no task, create one with the HTTP API")
	case 1:
		logger.Info("Found a single task")
	default:
		logger.Info("Found " + strconv.Itoa(tasksCount) + " tasks")
	}
}

//nolint:ireturn
func createHealthServer(lister health.TaskLister, resolver health.LookupNetIPer,
	logger log.LoggerInterface, serverAddress string) (
	healthServer goservices.Service, err error) {
	if !health.IsDocker() {
		return noop.New("healthcheck server"), nil
	}
	healthLogger := logger.New(log.SetComponent("healthcheck server"))
	isHealthy := health.MakeIsHealthy(lister, resolver, healthLogger)
	return health.NewServer(serverAddress, healthLogger, isHealthy)
}

//nolint:ireturn
func createServer(config config.Server, logger log.LoggerInterface,
	scheduler server.Scheduler, pool server.Pool, eventLog server.EventLog,
	buildInfo models.BuildInformation) (
	service goservices.Service, err error) {
	if !*config.Enabled {
		return noop.New("server"), nil
	}
	return server.New(server.Settings{
		Address:   config.ListeningAddress,
		RootURL:   config.RootURL,
		Scheduler: scheduler,
		Pool:      pool,
		EventLog:  eventLog,
		BuildInfo: buildInfo,
		Logger:    logger.New(log.SetComponent("http server")),
	})
}
