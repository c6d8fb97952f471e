package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/blueprint-app/blueprint/pkg/cli/config"
	"github.com/blueprint-app/blueprint/pkg/service/assistant"
	"github.com/blueprint-app/blueprint/pkg/usecase"
	"github.com/blueprint-app/blueprint/pkg/utils/logging"
)

func cmdChat() *cli.Command {
	var appCfg config.AppConfig
	var repoCfg config.Repository
	var llmCfg config.LLM

	var flags []cli.Flag
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, llmCfg.Flags()...)

	return &cli.Command{
		Name:    "chat",
		Aliases: []string{"c"},
		Usage:   "Chat with the assistant from the terminal",
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

			llmClient, err := llmCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure LLM client")
			}
			if llmClient == nil {
				return goerr.New("LLM is not configured, set --llm-api-key or --gemini-project")
			}

			uc := usecase.New(repo, usecase.WithAssistant(assistant.New(llmClient)))
			return runChatLoop(ctx, uc)
		},
	}
}

func runChatLoop(ctx context.Context, uc *usecase.UseCases) error {
	prompt := color.New(color.FgCyan, color.Bold)
	reply := color.New(color.FgGreen)
	report := color.New(color.FgYellow)
	failed := color.New(color.FgRed)

	fmt.Println("Type a message, or /quit to exit, /clear to wipe history.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		prompt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/clear":
			if err := uc.ClearHistory(ctx); err != nil {
				failed.Printf("failed to clear history: %v\n", err)
				continue
			}
			fmt.Println("history cleared")
			continue
		}

		msg, actionReport, err := uc.SendMessage(ctx, line)
		if err != nil {
			failed.Printf("error: %v\n", err)
			continue
		}

		reply.Printf("assistant> %s\n", msg.Content)
		if actionReport != nil {
			for _, res := range actionReport.Results {
				if res.OK {
					report.Printf("  [done] %s\n", res.Kind)
				} else {
					failed.Printf("  [failed] %s: %s\n", res.Kind, res.Error)
				}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return goerr.Wrap(err, "failed to read input")
	}
	return nil
}
