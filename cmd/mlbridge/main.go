package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"searchforge/mlbridge/internal/bridge"
	"searchforge/mlbridge/internal/config"
	"searchforge/mlbridge/internal/provider"
)

const version = "0.3"

func main() {
	cmd := &cli.Command{
		Name:    "mlbridge",
		Usage:   "provision model connectors for the agent plugin",
		Version: version,
		Flags:   config.GetFlags(),
		Commands: []*cli.Command{
			{
				Name:  "providers",
				Usage: "list the supported model providers",
				Action: func(ctx context.Context, c *cli.Command) error {
					for _, key := range provider.NewRegistry().Keys() {
						fmt.Println(key)
					}
					return nil
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg := config.NewConfiguration(c)
			if cfg.Output.Verbose {
				fmt.Fprint(os.Stderr, bridge.GetBanner(version))
			}
			return bridge.Run(ctx, cfg)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
