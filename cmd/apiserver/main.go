package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/apna-adda/adda/internal/apiserver/database"
	"github.com/apna-adda/adda/internal/apiserver/handler"
	"github.com/apna-adda/adda/internal/common/config"
	"github.com/apna-adda/adda/internal/listing"
	"github.com/apna-adda/adda/internal/session"
	"github.com/apna-adda/adda/internal/upload"
	"github.com/apna-adda/adda/pkg/logger"
	"github.com/apna-adda/adda/pkg/version"
)

var (
	configPath string

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of apiserver",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("apiserver version %s\n", version.Get())
		},
	}

	rootCmd = &cobra.Command{
		Use:   "apiserver",
		Short: "Apna Adda API Server",
		Long:  `Apna Adda API Server is the backend of the real-estate listing site`,
		Run: func(cmd *cobra.Command, args []string) {
			run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "conf", "configs/apiserver.yaml", "path to configuration file")
	rootCmd.AddCommand(versionCmd)
}

func run() {
	cfg, err := config.LoadConfig[config.APIServerConfig](configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.NewLogger(&cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		zapLogger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	sessionStore, err := session.NewStore(&cfg.Session)
	if err != nil {
		zapLogger.Fatal("failed to initialize session store", zap.Error(err))
	}
	sessions := session.NewManager(sessionStore, cfg.Session.TTL)

	uploader := upload.NewUploader(cfg.Upload.Dir)
	if err := uploader.EnsureDirs(); err != nil {
		zapLogger.Fatal("failed to provision upload directories", zap.Error(err))
	}

	appender := listing.NewAppender(cfg.Listings.DataDir)

	r := gin.Default()
	r.Use(cors.Default())

	if cfg.Web.AssetsDir != "" {
		r.Static("/assets", cfg.Web.AssetsDir)
	}
	if cfg.Web.FrontendDir != "" {
		r.StaticFile("/", filepath.Join(cfg.Web.FrontendDir, "Homepage.html"))
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.Web.FrontendDir))))
	}

	handler.Register(r,
		handler.NewAuth(db, sessions, zapLogger),
		handler.NewAdmin(db, sessions, uploader, zapLogger),
		handler.NewTenant(db, uploader, zapLogger),
		handler.NewListing(db, appender, zapLogger),
		handler.NewSeeder(db, cfg.Seed.DataDir, zapLogger),
		sessions,
	)

	zapLogger.Info("starting apiserver",
		zap.String("version", version.Get()),
		zap.Int("port", cfg.Port))
	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		zapLogger.Fatal("server exited", zap.Error(err))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
