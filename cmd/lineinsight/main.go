package main

/*
Important principles: stateless as much as possible
*/

/*
Target architecture:

Incoming REST call --> http.go
There is one handler for that specific call. It parses the parameters and
executes further functions:
1. One or multiple functions getting snapshots from the facility store (repository)
2. Only one function processing everything. In this function no store access is
   allowed, to stay as stateless as possible (services/dataprocessing.go)
Then the results are bundled together and a return JSON is created.
*/

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/heptiolabs/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rung/go-safecast"
	"go.elastic.co/ecszap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lineinsight/lineinsight/cmd/lineinsight/repository"
	"github.com/lineinsight/lineinsight/cmd/lineinsight/services"
	"github.com/lineinsight/lineinsight/cmd/lineinsight/simulator"
	"github.com/lineinsight/lineinsight/internal"
)

var buildtime string
var shutdownEnabled bool

func main() {
	var logLevel = os.Getenv("LOGGING_LEVEL")
	encoderConfig := ecszap.NewDefaultEncoderConfig()
	var core zapcore.Core
	switch logLevel {
	case "DEVELOPMENT":
		core = ecszap.NewCore(encoderConfig, os.Stdout, zap.DebugLevel)
	default:
		core = ecszap.NewCore(encoderConfig, os.Stdout, zap.InfoLevel)
	}
	logger := zap.New(core, zap.AddCaller())
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	zap.S().Infof("This is lineinsight build date: %s", buildtime)

	// Read environment variables
	facilityName := os.Getenv("FACILITY_NAME")
	if facilityName == "" {
		facilityName = "demo-facility"
	}

	listenPortString := "80"
	if os.Getenv("LISTEN_PORT") != "" {
		listenPortString = os.Getenv("LISTEN_PORT")
	}
	listenPort, err := safecast.Atoi32(listenPortString)
	if err != nil {
		zap.S().Errorf("Cannot parse LISTEN_PORT: not a number (%s)", listenPortString)
		return // Abort program
	}

	healthPortString := "8086"
	if os.Getenv("HEALTH_PORT") != "" {
		healthPortString = os.Getenv("HEALTH_PORT")
	}
	healthPort, err := safecast.Atoi32(healthPortString)
	if err != nil {
		zap.S().Errorf("Cannot parse HEALTH_PORT: not a number (%s)", healthPortString)
		return // Abort program
	}

	// Loading up user accounts
	accounts := gin.Accounts{}

	zap.S().Debugf("Loading accounts from environment..")

	for i := 1; i <= 100; i++ {
		tempUser := os.Getenv("FACILITY_USER_" + strconv.Itoa(i))
		tempPassword := os.Getenv("FACILITY_PASSWORD_" + strconv.Itoa(i))
		if tempUser != "" && tempPassword != "" {
			zap.S().Infof("Added account for " + tempUser)
			accounts[tempUser] = tempPassword
		}
	}

	// the facility itself always gets an account
	facilityPassword := os.Getenv("LINEINSIGHT_PASSWORD")
	if facilityPassword == "" {
		facilityPassword = "changeme"
		zap.S().Warnf("LINEINSIGHT_PASSWORD not set, using default password")
	}
	accounts[facilityName] = facilityPassword

	// get currentVersion
	version := os.Getenv("VERSION")
	if version == "" {
		version = "2"
	}

	zap.S().Debugf("Starting program..")

	redisURI := os.Getenv("REDIS_URI")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0 // default database

	dryRun := os.Getenv("DRY_RUN")
	internal.InitCache(redisURI, redisPassword, redisDB, dryRun)

	zap.S().Debugf("Cache initialized..")

	// Site configuration: OEE thresholds and the downtime impact model
	siteConfiguration, err := internal.LoadSiteConfiguration(os.Getenv("SITE_CONFIG_PATH"))
	if err != nil {
		zap.S().Errorf("Cannot load site configuration: %v", err)
		return // Abort program
	}

	store := repository.NewStore(facilityName)
	if os.Getenv("SEED_DEMO_DATA") != "false" {
		repository.Seed(store, time.Now())
		zap.S().Infof("Seeded demo facility data")
	}

	services.Init(store, siteConfiguration)

	health := healthcheck.NewHandler()
	shutdownEnabled = false
	health.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(100))
	health.AddReadinessCheck("shutdownEnabled", isShutdownEnabled())

	healthMux := http.NewServeMux()
	healthMux.Handle("/metrics", promhttp.Handler())
	healthMux.HandleFunc("/live", health.LiveEndpoint)
	healthMux.HandleFunc("/ready", health.ReadyEndpoint)
	go http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", healthPort), healthMux)

	zap.S().Debugf("Healthcheck initialized..")

	// Telemetry simulator for demo deployments. Production deployments feed
	// the store from their own ingestion instead.
	var sim *simulator.Simulator
	if os.Getenv("MOCK_TELEMETRY") == "true" {
		sim = simulator.New(store, 3*time.Second)
		sim.Start()
		zap.S().Infof("Telemetry simulator started")
	}

	router := SetupRestAPI(accounts, version)
	go func() {
		err := router.Run(fmt.Sprintf(":%d", listenPort))
		if err != nil {
			zap.S().Fatalf("REST API failed: %v", err)
		}
	}()

	// Allow graceful shutdown
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTERM)

	go func() {
		// Kubernetes sends SIGTERM 30 seconds before
		// shutting down the pod.

		sig := <-sigs

		// Log the received signal
		zap.S().Infof("Received SIGTERM %v", sig)

		ShutdownApplicationGraceful(sim)
	}()

	select {} // block forever
}

func isShutdownEnabled() healthcheck.Check {
	return func() error {
		if shutdownEnabled {
			return fmt.Errorf("shutdown")
		}
		return nil
	}
}

// ShutdownApplicationGraceful stops the simulator and drains open connections
// before exiting.
func ShutdownApplicationGraceful(sim *simulator.Simulator) {
	zap.S().Infof("Shutting down application")
	shutdownEnabled = true

	if sim != nil {
		sim.Stop()
	}

	time.Sleep(20 * time.Second) // Wait until remaining open connections are handled

	zap.S().Infof("Successfull shutdown. Exiting.")

	// Gracefully exit.
	// (Use runtime.GoExit() if you need to call defers)
	os.Exit(0)
}
