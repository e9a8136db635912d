// Command watch follows an event from the terminal: it waits for the unlock,
// then prints the program each time a step is completed.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-gin-event-program/internal/syncclient"
	"go-gin-event-program/pkg/logger"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	baseURL := pflag.String("base-url", "http://localhost:5000/api", "API root of the server")
	wsURL := pflag.String("ws-url", "", "websocket endpoint (derived from --base-url when empty)")
	slug := pflag.StringP("slug", "s", "", "event to follow")
	poll := pflag.Duration("poll", 30*time.Second, "longest wait between polls while the event is locked")
	pflag.Parse()

	defer logger.Sync()
	log := logger.WithComponent("watch")

	controller, err := syncclient.New(syncclient.Config{
		BaseURL:      *baseURL,
		WSURL:        *wsURL,
		Slug:         *slug,
		PollInterval: *poll,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		pflag.Usage()
		os.Exit(2)
	}

	var last syncclient.Snapshot
	controller.OnChange(func(s syncclient.Snapshot) {
		if s.Connected != last.Connected {
			state := "offline"
			if s.Connected {
				state = "live"
			}
			fmt.Printf("[%s]\n", state)
		}
		if s.Progress != last.Progress && len(s.Program) > 0 {
			printProgram(s)
		}
		last = s
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := controller.Run(ctx); err != nil {
		log.Fatal("Watch failed", zap.Error(err))
	}
}

func printProgram(s syncclient.Snapshot) {
	fmt.Printf("%s: %d/%d (%d%%)\n", s.Slug, s.Progress.CompletedSteps, s.Progress.TotalSteps, s.Progress.CompletionRate)
	for i, step := range s.Program {
		mark := " "
		if step.Completed {
			mark = "x"
		}
		fmt.Printf("  [%s] %d. %s\n", mark, i+1, step.Title)
	}
}
