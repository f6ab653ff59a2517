package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"searchforge/mlbridge/internal/config"
	"searchforge/mlbridge/internal/core"
	"searchforge/mlbridge/internal/provider"
	"searchforge/mlbridge/internal/provision"
)

// Run provisions a model registration descriptor from the configuration
// and prints it as JSON on stdout.
func Run(ctx context.Context, cfg *config.Configuration) error {
	core.InitLogger(cfg.Output.Verbose)
	defer zap.L().Sync()

	if cfg.Output.Verbose {
		cfg.PrintConfig()
	}

	service := provision.NewService(provider.NewRegistry())

	spec := &provision.ModelSpec{
		ModelID:    cfg.Model.ModelID,
		Provider:   cfg.Model.Provider,
		Credential: credentialMap(cfg),
		Parameters: parameterMap(cfg),
	}

	registration, err := service.CreateModelFromSpec(spec)
	if err != nil {
		return err
	}

	var out []byte
	if cfg.Output.Pretty {
		out, err = json.MarshalIndent(registration, "", "  ")
	} else {
		out, err = json.Marshal(registration)
	}
	if err != nil {
		return fmt.Errorf("failed to encode registration: %w", err)
	}

	fmt.Println(string(out))
	return nil
}

// credentialMap assembles the credential fields the selected vendor
// expects. Leaving it empty on purpose fails closed in the adapter.
func credentialMap(cfg *config.Configuration) map[string]string {
	cred := make(map[string]string)

	switch cfg.Model.Provider {
	case provider.BedrockConverseKey:
		if cfg.API.AccessKey != "" {
			cred["access_key"] = cfg.API.AccessKey
		}
		if cfg.API.SecretKey != "" {
			cred["secret_key"] = cfg.API.SecretKey
		}
		if cfg.API.SessionToken != "" {
			cred["session_token"] = cfg.API.SessionToken
		}
	case provider.OpenAIChatKey:
		if cfg.API.OpenAIKey != "" {
			cred["openAI_key"] = cfg.API.OpenAIKey
		}
	}

	return cred
}

func parameterMap(cfg *config.Configuration) map[string]string {
	params := make(map[string]string, len(cfg.Model.Parameters)+1)
	for k, v := range cfg.Model.Parameters {
		params[k] = v
	}
	if cfg.Model.Region != "" {
		params["region"] = cfg.Model.Region
	}
	return params
}
