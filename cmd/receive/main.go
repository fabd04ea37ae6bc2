package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/Xausdorf/vietqr-receive/internal/delivery/tui"
	"github.com/Xausdorf/vietqr-receive/internal/domain/entity"
	"github.com/Xausdorf/vietqr-receive/internal/infrastructure/clipboard"
	"github.com/Xausdorf/vietqr-receive/internal/infrastructure/config"
	"github.com/Xausdorf/vietqr-receive/internal/infrastructure/grpcclient"
	"github.com/Xausdorf/vietqr-receive/internal/infrastructure/i18n"
	"github.com/Xausdorf/vietqr-receive/internal/infrastructure/qrgenerator"
	"github.com/Xausdorf/vietqr-receive/internal/usecase/receive"
)

const (
	qrCodeSize     = 256
	profileTimeout = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "receive:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	user, err := resolveUser(ctx, cfg)
	if err != nil {
		return err
	}

	accountNum := cfg.AccountNum
	if user != nil && user.AccountNum() != "" {
		accountNum = user.AccountNum()
	}
	if accountNum == "" {
		return errors.New("no account number: set ACCOUNT_NUM or USER_ID with SERVER_ADDR")
	}

	catalog, err := i18n.Load()
	if err != nil {
		return err
	}

	props := receive.Props{
		AccountNum:   accountNum,
		User:         user,
		Translations: catalog.Lookup(cfg.DefaultLang),
		Theme:        receive.ParseTheme(cfg.DefaultTheme),
		OnBack: func() {
			logger.Info("receive screen closed")
		},
	}

	model := tui.New(ctx, props, clipboard.NewSystem(), qrgenerator.NewGenerator(qrCodeSize), logger)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run screen: %w", err)
	}
	return nil
}

func resolveUser(ctx context.Context, cfg *config.Config) (*entity.User, error) {
	if cfg.UserID != "" && cfg.ServerAddr != "" {
		client, err := grpcclient.NewClient(cfg.ServerAddr)
		if err != nil {
			return nil, err
		}
		defer client.Close()

		ctx, cancel := context.WithTimeout(ctx, profileTimeout)
		defer cancel()

		user, err := client.FindUser(ctx, cfg.UserID)
		if err != nil {
			return nil, fmt.Errorf("fetch profile %s: %w", cfg.UserID, err)
		}
		return user, nil
	}

	if cfg.UserName == "" {
		return nil, nil
	}
	return entity.NewUser(uuid.Nil, cfg.UserName, cfg.AccountNum), nil
}

// newLogger writes JSON logs at level to path; without a path logs are
// dropped since the terminal belongs to the screen.
func newLogger(path, level string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	return slog.New(slog.NewJSONHandler(f, opts)), func() { _ = f.Close() }, nil
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
