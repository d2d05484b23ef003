// scripts/getme/main.go
//
// Fetches the identity of a Max bot and prints it as JSON.
//
// Usage:
//   MAX_BOT_TOKEN=... go run scripts/getme/main.go [flags]
//
// The token is read from MAX_BOT_TOKEN (a .env file in the working
// directory is honoured).

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"maxbot-api/pkg/log"
	"maxbot-api/pkg/maxbot"
)

const tokenEnv = "MAX_BOT_TOKEN"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if kind := maxbot.KindOf(err); kind != maxbot.KindUnknown {
			fmt.Fprintf(os.Stderr, "kind: %s\n", kind)
		}
		os.Exit(1)
	}
}

func run() error {
	var (
		baseURL      string
		useAsync     bool
		headerAuth   bool
		insecureHTTP bool
		strict       bool
		verbose      bool
		timeout      time.Duration
	)

	flagSet := pflag.NewFlagSet("getme", pflag.ContinueOnError)
	flagSet.StringVar(&baseURL, "base-url", maxbot.DefaultBaseURL, "Max Bot API base URL")
	flagSet.BoolVar(&useAsync, "async", false, "use the non-blocking client")
	flagSet.BoolVar(&headerAuth, "header-auth", false, "send the token in the Authorization header instead of the query")
	flagSet.BoolVar(&insecureHTTP, "insecure-http", false, "allow plain http base URLs")
	flagSet.BoolVar(&strict, "strict-transport", false, "fail instead of falling back when TLS setup fails")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log the outgoing request")
	flagSet.DurationVar(&timeout, "timeout", 30*time.Second, "overall request timeout (0 = none)")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	_ = godotenv.Load()
	token := os.Getenv(tokenEnv)
	if token == "" {
		return fmt.Errorf("%s is not set", tokenEnv)
	}

	opts := []maxbot.Option{
		maxbot.WithHTTPSOnly(!insecureHTTP),
		maxbot.WithTimeout(timeout),
	}
	if strict {
		opts = append(opts, maxbot.WithStrictTransport())
	}
	if headerAuth {
		opts = append(opts, maxbot.WithAuthenticator(maxbot.HeaderAuth{}))
	}
	if verbose {
		opts = append(opts, maxbot.WithLogger(log.Init(log.ZapConfig{
			Level:    "debug",
			Mode:     log.ModeDevelopment,
			Encoding: log.EncodingConsole,
		})))
	}

	ctx := context.Background()
	info, err := fetch(ctx, token, baseURL, useAsync, opts)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}

func fetch(ctx context.Context, token, baseURL string, useAsync bool, opts []maxbot.Option) (*maxbot.BotInfo, error) {
	if !useAsync {
		client, err := maxbot.NewWithBaseURL(token, baseURL, opts...)
		if err != nil {
			return nil, err
		}
		return client.GetMe(ctx)
	}

	client, err := maxbot.NewAsyncWithBaseURL(token, baseURL, opts...)
	if err != nil {
		return nil, err
	}
	pending := client.GetMe(ctx)

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-pending.Done():
			return pending.Wait(ctx)
		case <-ticker.C:
			fmt.Fprintln(os.Stderr, "waiting for Max API...")
		}
	}
}
