// filepath: internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"portfolio/internal/api"
	"portfolio/internal/api/handlers"
	"portfolio/internal/audit"
	"portfolio/internal/config"
	"portfolio/internal/housekeeping"
	"portfolio/internal/logging"
	"portfolio/internal/repository"
	"portfolio/internal/services"
	"portfolio/internal/services/auth"

	"github.com/spf13/cobra"
)

var (
	// Version info
	Version = "1.0.0"

	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags
	cfgFile       string
	password      string
	port          int
	logLevel      string
	resetPassword bool
	uploadDir     string
	publicDir     string
	dbPath        string
	maxUpload     string
	auditEnabled  bool
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio API & Web Interface",
	Long:  `A REST API and static web frontend for a single-photographer portfolio site.`,
	// PersistentPreRunE loads the configuration before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	// RunE executes the main server logic.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Define flags.
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", "config.toml", "Path to the base configuration file. (Env: PF_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: PF_LOG_LEVEL)")

	// Server-specific flags
	RootCmd.Flags().StringVar(&password, "password", "", "Password for the 'admin' user. (Env: PF_PASSWORD)")
	RootCmd.Flags().IntVar(&port, "port", 0, "Port for the HTTP server. (Env: PF_PORT)")
	RootCmd.Flags().BoolVar(&resetPassword, "reset_pw", false, "If true, reset admin password on startup. (Env: PF_RESET_PW=true)")
	RootCmd.Flags().StringVar(&uploadDir, "upload-dir", "", "Directory for uploaded images. (Env: PF_UPLOAD_DIR)")
	RootCmd.Flags().StringVar(&publicDir, "public-dir", "", "Directory for the static site. (Env: PF_PUBLIC_DIR)")
	RootCmd.Flags().StringVar(&dbPath, "db-path", "", "Path to the sqlite database file. (Env: PF_DATABASE_PATH)")
	RootCmd.Flags().StringVar(&maxUpload, "max-upload-size", "", "Max size for image uploads (e.g. '10MB'). (Env: PF_MAX_UPLOAD_SIZE)")
	RootCmd.Flags().BoolVar(&auditEnabled, "audit-enabled", false, "Enable detailed audit logging. (Env: PF_AUDIT_ENABLED=true)")
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command) error {
	// 1. Check environment variable for config path first
	if envPath := os.Getenv("PF_CONFIG_PATH"); envPath != "" && cfgFile == "config.toml" {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config if not found, rely on defaults/flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	// 2. Apply Overrides (Env Vars and CLI Flags)
	applyOverrides(cfg, cmd)

	// 3. Validate
	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// 4. Initialize Logging
	logging.Init(cfg.Logging.Level)

	return nil
}

func applyOverrides(c *config.Config, cmd *cobra.Command) {
	getEnv := func(key string) string {
		return os.Getenv(key)
	}

	// --- 1. Environment Variables ---
	if v := getEnv("PF_PASSWORD"); v != "" {
		c.AdminPassword = v
	}
	if v := getEnv("PF_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := getEnv("PF_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := getEnv("PF_AUDIT_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.AuditEnabled = b
		}
	}
	if v := getEnv("PF_RESET_PW"); v == "true" {
		c.ResetAdminPassword = true
	}
	if v := getEnv("PF_DATABASE_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := getEnv("PF_UPLOAD_DIR"); v != "" {
		c.Storage.UploadDir = v
	}
	if v := getEnv("PF_PUBLIC_DIR"); v != "" {
		c.Storage.PublicDir = v
	}
	if v := getEnv("PF_MAX_UPLOAD_SIZE"); v != "" {
		c.Server.MaxUploadSize = v
	}

	// --- 2. CLI Flags (Take precedence) ---
	if password != "" {
		c.AdminPassword = password
	}
	if port != 0 {
		c.Server.Port = port
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	// Check if flag was explicitly set
	if cmd.Flags().Changed("audit-enabled") {
		c.Logging.AuditEnabled = auditEnabled
	}
	if resetPassword {
		c.ResetAdminPassword = true
	}
	if uploadDir != "" {
		c.Storage.UploadDir = uploadDir
	}
	if publicDir != "" {
		c.Storage.PublicDir = publicDir
	}
	if dbPath != "" {
		c.Database.Path = dbPath
	}
	if maxUpload != "" {
		c.Server.MaxUploadSize = maxUpload
	}

	// --- 3. Defaults ---
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.Database.Path == "" {
		c.Database.Path = "portfolio.db"
	}
	if c.Storage.UploadDir == "" {
		c.Storage.UploadDir = "uploads"
	}
	if c.Storage.PublicDir == "" {
		c.Storage.PublicDir = "public"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Session.TTLHours == 0 {
		c.Session.TTLHours = 24
	}
	if c.Housekeeping.IntervalHours == 0 {
		c.Housekeeping.IntervalHours = 6
	}
}

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer() error {
	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	defer repo.Close()

	// --- Auto-migrate on startup ---
	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		logging.Log.Errorf("Failed to bootstrap database: %v", err)
		return err
	}

	// Service Initialization
	uploadService := services.NewUploadService(cfg)
	userService := services.NewUserService(repo)
	artworkService := services.NewArtworkService(repo, uploadService)
	sessionService := auth.NewSessionService(cfg, userService)
	housekeepingService := housekeeping.NewService(cfg, repo, uploadService)

	// Auditor Initialization
	loggerAuditor := audit.NewLoggerAuditor(cfg.Logging.AuditEnabled)

	authMiddleware := auth.NewMiddleware(userService, sessionService)

	if err := userService.EnsureDefaultUser(cfg); err != nil {
		return fmt.Errorf("failed to handle admin user: %w", err)
	}

	housekeepingService.Start()
	// No defer stop here, we stop explicitly during graceful shutdown

	h := handlers.NewHandlers(
		userService,
		artworkService,
		sessionService,
		housekeepingService,
		loggerAuditor,
		cfg,
	)

	r := api.SetupRouter(h, authMiddleware, cfg)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	// --- Graceful Shutdown Setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Run server in a goroutine
	go func() {
		logging.Log.Infof("Portfolio %s starting on %s (Max Upload: %s)", Version, serverAddr, cfg.Server.MaxUploadSize)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Block until a signal is received
	<-stop
	logging.Log.Info("Shutting down server...")

	// Create a deadline for existing requests to complete (30 seconds)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Stop background services
	housekeepingService.Stop()

	// Shutdown the HTTP server
	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
