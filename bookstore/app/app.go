package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/config"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/handler"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/model"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/repository"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/server"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/service"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/migrations"
	"github.com/kimnamhyeong01/bookstore-service/pkg/kafka"
	"github.com/kimnamhyeong01/bookstore-service/pkg/logger"
	"github.com/kimnamhyeong01/bookstore-service/pkg/migrate"
	"github.com/kimnamhyeong01/bookstore-service/pkg/postgres"
	"github.com/kimnamhyeong01/bookstore-service/pkg/sqlite"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "bookstore")
	defer log.Sync() //nolint:errcheck

	db, err := OpenDB(context.Background(), cfg.Database, log)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	opts := []service.Option{service.WithBookDatePinning(cfg.Reservation.PinBookDate)}
	var publisher *kafka.Publisher
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		publisher = kafka.NewPublisher(producer, cfg.Kafka, log)
		opts = append(opts, service.WithPublisher(publisher))
	}
	svc := service.NewService(repo, cfg.Auth, log, opts...)

	h := handler.New(svc, cfg.Auth, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if publisher != nil {
		if err = publisher.Close(); err != nil {
			log.Warn("kafka producer close", zap.Error(err))
		}
	}
	if err = db.Close(); err != nil {
		log.Warn("db close", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}

// OpenDB connects to the configured database and applies pending migrations.
func OpenDB(ctx context.Context, cfg config.Database, log *zap.Logger) (*sqlx.DB, error) {
	switch cfg.Driver {
	case postgres.DriverName:
		return postgres.NewPostgresDB(ctx, &cfg.Postgres, migrations.Postgres(), log)
	case sqlite.DriverName:
		return sqlite.NewSQLiteDB(ctx, &cfg.SQLite, migrations.SQLite(), log)
	}
	return nil, errors.Errorf("unknown database driver %q", cfg.Driver)
}

// Migrate runs a single goose command against the configured database.
func Migrate(ctx context.Context, cfg *config.Config, cmd migrate.Command) error {
	log := logger.NewLogger(cfg.Log, "migrate")
	defer log.Sync() //nolint:errcheck

	var (
		db      *sqlx.DB
		dialect string
		files   = migrations.Postgres()
		err     error
	)
	switch cfg.Database.Driver {
	case postgres.DriverName:
		db, err = postgres.Connect(ctx, &cfg.Database.Postgres)
		dialect = migrate.DialectPostgres
	case sqlite.DriverName:
		db, err = sqlite.Connect(ctx, &cfg.Database.SQLite)
		dialect, files = migrate.DialectSQLite, migrations.SQLite()
	default:
		return errors.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return err
	}
	defer db.Close()

	return migrate.Run(ctx, db.DB, dialect, files, cmd, log)
}

// AddUser registers an account directly in the store, bypassing the admin API.
func AddUser(ctx context.Context, cfg *config.Config, req model.CreateUserRequest) (model.User, error) {
	log := logger.NewLogger(cfg.Log, "user")
	defer log.Sync() //nolint:errcheck

	db, err := OpenDB(ctx, cfg.Database, log)
	if err != nil {
		return model.User{}, err
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return model.User{}, err
	}
	return service.NewService(repo, cfg.Auth, log).CreateUser(ctx, req)
}
