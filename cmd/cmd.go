package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/relaymesh/chat-service/config"
	"github.com/relaymesh/chat-service/gen/chatpb"
	grpcsrv "github.com/relaymesh/chat-service/infra/server/grpc"
	"github.com/relaymesh/chat-service/internal/domain/registry"
	grpchandler "github.com/relaymesh/chat-service/internal/handler/grpc"
	"github.com/relaymesh/chat-service/internal/handler/textproto"
	"github.com/relaymesh/chat-service/internal/metrics"
	"github.com/relaymesh/chat-service/internal/service"
	"github.com/relaymesh/chat-service/internal/storage/memory"
)

const ServiceName = "chat-service"

func Run() error {
	app := &cli.App{
		Name:  ServiceName,
		Usage: "Replicated multi-user chat service",
		Commands: []*cli.Command{
			serverCmd(),
			chatCmd(),
			textCmd(),
		},
	}
	return app.Run(os.Args)
}

// serverCmd runs one replica: persistent store, client and peer gRPC
// listeners, optional cluster join.
func serverCmd() *cli.Command {
	return &cli.Command{
		Name:      "server",
		Aliases:   []string{"s"},
		Usage:     "Run a replicated chat server",
		ArgsUsage: "chat_port replica_port database_path",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "cluster",
				Usage: "HOST:PORT of an existing replica to join",
			},
			&cli.Float64Flag{
				Name:  "self-destruct",
				Usage: "exit cleanly after this many minutes (crash testing)",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 3 {
				return cli.Exit("usage: server chat_port replica_port database_path", 2)
			}
			chatPort, err := parsePort(c.Args().Get(0))
			if err != nil {
				return cli.Exit(fmt.Sprintf("invalid chat_port: %v", err), 2)
			}
			replicaPort, err := parsePort(c.Args().Get(1))
			if err != nil {
				return cli.Exit(fmt.Sprintf("invalid replica_port: %v", err), 2)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cfg.ChatAddr = ":" + strconv.Itoa(chatPort)
			cfg.ReplicaAddr = ":" + strconv.Itoa(replicaPort)
			cfg.DatabasePath = c.Args().Get(2)
			cfg.Cluster = c.String("cluster")
			cfg.SelfDestruct = time.Duration(c.Float64("self-destruct") * float64(time.Minute))
			if cfg.Advertise == "" {
				cfg.Advertise = net.JoinHostPort(cfg.AdvertiseHost, strconv.Itoa(replicaPort))
			}

			app := NewApp(cfg)
			if err := app.Start(c.Context); err != nil {
				return err
			}
			<-app.Done()
			slog.Info("shutting down")
			return app.Stop(context.Background())
		},
	}
}

// chatCmd runs the non-replicated gRPC generation: one client-facing
// listener over an in-memory store.
func chatCmd() *cli.Command {
	return &cli.Command{
		Name:  "chat",
		Usage: "Run the non-replicated gRPC chat server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Usage:   "listen port",
				Value:   "8080",
				EnvVars: []string{"PORT"},
			},
		},
		Action: func(c *cli.Context) error {
			port, err := parsePort(c.String("port"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("invalid port: %v", err), 2)
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := ProvideLogger(cfg)

			core := service.New(memory.New(), registry.NewHub(), metrics.NoopCollector{}, log)
			srv := grpcsrv.New("chat", ":"+strconv.Itoa(port), log)
			chatpb.RegisterChatServer(srv.GRPC(), grpchandler.NewChatService(core, metrics.NoopCollector{}, log))
			if err := srv.Start(); err != nil {
				return err
			}
			waitForSignal()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Stop(ctx)
			return nil
		},
	}
}

// textCmd runs the first-generation null-terminated text protocol
// server.
func textCmd() *cli.Command {
	return &cli.Command{
		Name:  "text",
		Usage: "Run the text protocol chat server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Usage:   "listen port",
				Value:   "8080",
				EnvVars: []string{"PORT"},
			},
		},
		Action: func(c *cli.Context) error {
			port, err := parsePort(c.String("port"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("invalid port: %v", err), 2)
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := ProvideLogger(cfg)

			srv := textproto.NewServer(log, metrics.NoopCollector{})
			if err := srv.Listen(":" + strconv.Itoa(port)); err != nil {
				return err
			}
			ctx, cancel := context.WithCancel(c.Context)
			go func() {
				waitForSignal()
				cancel()
			}()
			return srv.Serve(ctx)
		},
	}
}

func parsePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("%d is out of range", port)
	}
	return port, nil
}

func waitForSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}
