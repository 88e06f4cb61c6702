package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/gorilla/websocket"
	"github.com/imjasonh/chessboard/internal/board"
	"github.com/imjasonh/chessboard/internal/render"
	sshproxy "github.com/imjasonh/ssh-proxy"
)

func main() {
	var (
		sshPort   = flag.Int("port", 2222, "SSH server port")
		local     = flag.Bool("local", false, "run in local mode (generates/uses local host key instead of Secret Manager)")
		printOnly = flag.Bool("print", false, "print the starting board to stdout and exit")
		black     = flag.Bool("black", false, "show the board from Black's side")
		debug     = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "chessboard",
	}))
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if *printOnly {
		if err := render.Print(board.NewBoard(), !*black); err != nil {
			log.Fatal("Failed to print board", "err", err)
		}
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var hostKey ssh.Option
	if *local {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatal("Failed to get user home directory", "err", err)
		}
		hostKey, err = localHostKey(filepath.Join(homeDir, ".chessboard", "host_key"))
		if err != nil {
			log.Fatal("Failed to load host key", "err", err)
		}
		log.Info("Running in local mode")
	} else {
		var err error
		hostKey, err = secretHostKey(ctx, os.Getenv("SSH_HOST_KEY_SECRET"))
		if err != nil {
			log.Fatal("Failed to load host key", "err", err)
		}
		log.Info("Running in cloud mode with Secret Manager")
	}

	s, err := newSSHServer(*sshPort, hostKey, !*black)
	if err != nil {
		log.Fatal("Failed to start", "err", err)
	}
	go func() {
		log.Info("Starting SSH board server", "port", *sshPort)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatal("SSH server error", "err", err)
		}
	}()

	if httpPort := os.Getenv("PORT"); httpPort != "" {
		go func() {
			log.Info("Starting WebSocket to SSH proxy", "port", httpPort)
			http.HandleFunc("/ssh", sshproxy.ProxyWebSocketToSSH(fmt.Sprintf(":%d", *sshPort), websocket.Upgrader{
				CheckOrigin: func(r *http.Request) bool {
					return true
				},
			}))
			if err := http.ListenAndServe(fmt.Sprintf(":%s", httpPort), nil); err != nil {
				log.Fatal("HTTP server error", "err", err)
			}
		}()
	}

	<-ctx.Done()
	log.Info("Stopping SSH server")

	tctx, tcancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer tcancel()
	if err := s.Shutdown(tctx); err != nil {
		log.Fatal("Shutdown failed", "err", err)
	}
}
