package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"

	"github.com/san-kum/classkit/internal/classstore"
	"github.com/san-kum/classkit/internal/config"
)

var (
	dataDir    string
	configFile string
	logLevel   string
	storeKind  string
	className  string
	seed       int64
	outFile    string
	themeName  string
)

// app is the state shared by every command once flags are parsed.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	store  *classstore.Store
	redis  *redis.Client
}

var cli app

func main() {
	rootCmd := &cobra.Command{
		Use:               "classkit",
		Short:             "seat plans, groups and name picking for a class",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if cli.redis != nil {
				return cli.redis.Close()
			}
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", "", "data directory (default "+config.DefaultDataDir+")")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&storeKind, "store", "", "class store backend: file or redis")

	rootCmd.AddCommand(
		rosterCommand(),
		seatCommand(),
		swapCommand(),
		groupCommand(),
		classCommand(),
		pickCommand(),
		editCommand(),
		sweepCommand(),
		presetsCommand(),
		configCommand(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if cli.logger != nil {
			cli.logger.Error(err.Error())
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		stop()
		os.Exit(1)
	}
}

// setup resolves configuration in order: defaults, config file, .env and
// CLASSKIT_* variables, then explicit flags.
func setup(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("store") {
		cfg.Store.Backend = storeKind
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	cli.cfg = cfg
	cli.logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "classkit",
	})
	cli.logger.Debug("config resolved", "data", cfg.DataDir, "store", cfg.Store.Backend)
	return nil
}

// openStore connects the configured backend on first use.
func (a *app) openStore(ctx context.Context) (*classstore.Store, error) {
	if a.store != nil {
		return a.store, nil
	}

	var backend classstore.Backend
	switch a.cfg.Store.Backend {
	case config.BackendRedis:
		client, err := classstore.DialRedis(ctx, a.cfg.Store.RedisAddr, a.cfg.Store.RedisDB)
		if err != nil {
			return nil, err
		}
		a.redis = client
		backend = classstore.NewRedisBackend(client, a.cfg.Store.Key)
	default:
		backend = classstore.NewFileBackend(a.cfg.DataDir, a.cfg.Store.Key)
	}

	a.store = classstore.New(backend, classstore.WithLogger(a.logger))
	return a.store, nil
}

// loadClass returns the saved class, or an empty one when it does not
// exist yet and allowNew is set.
func (a *app) loadClass(ctx context.Context, name string, allowNew bool) (*classstore.SavedClass, error) {
	if name == "" {
		return nil, classstore.ErrEmptyName
	}
	st, err := a.openStore(ctx)
	if err != nil {
		return nil, err
	}
	c, err := st.Load(ctx, name)
	if errors.Is(err, classstore.ErrNotFound) && allowNew {
		return &classstore.SavedClass{Name: name}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("class %q: %w", name, err)
	}
	return c, nil
}

func requireClass(cmd *cobra.Command) {
	cmd.Flags().StringVar(&className, "class", "", "class name")
	_ = cmd.MarkFlagRequired("class")
}
