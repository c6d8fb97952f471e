package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/blueprint-app/blueprint/pkg/cli/config"
	httpctrl "github.com/blueprint-app/blueprint/pkg/controller/http"
	"github.com/blueprint-app/blueprint/pkg/service/assistant"
	"github.com/blueprint-app/blueprint/pkg/usecase"
	"github.com/blueprint-app/blueprint/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var appCfg config.AppConfig
	var repoCfg config.Repository
	var llmCfg config.LLM
	var voiceCfg config.Transcribe

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       "127.0.0.1:8581",
			Sources:     cli.EnvVars("BLUEPRINT_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, llmCfg.Flags()...)
	flags = append(flags, voiceCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := appCfg.Load(); err != nil {
				return goerr.Wrap(err, "failed to load application config")
			}

			repo, err := repoCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			if err := appCfg.Apply(ctx, repo); err != nil {
				return goerr.Wrap(err, "failed to apply application config")
			}

			var ucOpts []usecase.Option

			llmClient, err := llmCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure LLM client")
			}
			if llmClient != nil {
				ucOpts = append(ucOpts, usecase.WithAssistant(assistant.New(llmClient)))
				logging.Default().Info("Assistant enabled", "llm", llmCfg.LogAttrs())
			} else {
				logging.Default().Info("LLM not configured, chat features disabled")
			}

			transcriber, err := voiceCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure transcription service")
			}
			if transcriber != nil {
				ucOpts = append(ucOpts, usecase.WithTranscriber(transcriber))
				logging.Default().Info("Voice transcription enabled", "voice", voiceCfg.LogAttrs())
			} else {
				logging.Default().Info("Transcription not configured, voice features disabled")
			}

			uc := usecase.New(repo, ucOpts...)

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, gctx := errgroup.WithContext(sigCtx)
			g.Go(func() error {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return goerr.Wrap(err, "failed to start server")
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				logging.Default().Info("Shutting down server")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}
				return nil
			})

			if err := g.Wait(); err != nil {
				return err
			}
			logging.Default().Info("Server stopped")
			return nil
		},
	}
}
