package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/keygen"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"github.com/imjasonh/chessboard/internal/render"
)

// newSSHServer builds a wish server that gives every session its own board.
func newSSHServer(port int, hostKey ssh.Option, white bool) (*ssh.Server, error) {
	s, err := wish.NewServer(
		wish.WithAddress(fmt.Sprintf(":%d", port)),
		hostKey,
		wish.WithMiddleware(
			bubbletea.Middleware(teaHandler(white)),
			logging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}
	return s, nil
}

func teaHandler(white bool) bubbletea.Handler {
	return func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		painter := render.NewStylePainter(bubbletea.MakeRenderer(s))
		log.Debug("New session", "user", s.User(), "remote", s.RemoteAddr())
		return initialModel(painter, white), []tea.ProgramOption{tea.WithAltScreen()}
	}
}

// localHostKey generates an Ed25519 host key at keyPath unless one exists.
func localHostKey(keyPath string) (ssh.Option, error) {
	if err := os.MkdirAll(filepath.Dir(keyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create key directory: %w", err)
	}
	if _, err := os.Stat(keyPath); os.IsNotExist(err) {
		log.Info("Generating SSH host key", "path", keyPath)
		if _, err := keygen.New(keyPath, keygen.WithKeyType(keygen.Ed25519), keygen.WithWrite()); err != nil {
			return nil, fmt.Errorf("failed to generate host key: %w", err)
		}
	}
	return wish.WithHostKeyPath(keyPath), nil
}

// secretHostKey loads a PEM host key from Secret Manager.
func secretHostKey(ctx context.Context, name string) (ssh.Option, error) {
	if name == "" {
		return nil, errors.New("SSH_HOST_KEY_SECRET is not set")
	}
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Secret Manager client: %w", err)
	}
	defer client.Close()

	resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to access secret version: %w", err)
	}
	return wish.WithHostKeyPEM(resp.Payload.Data), nil
}
