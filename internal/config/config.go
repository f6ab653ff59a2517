package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

type Configuration struct {
	Model  *ModelConfig
	API    *APIConfig
	Output *OutputConfig
}

type ModelConfig struct {
	ModelID    string
	Provider   string
	Region     string
	Parameters map[string]string
}

type APIConfig struct {
	AccessKey    string
	SecretKey    string
	SessionToken string
	OpenAIKey    string
}

type OutputConfig struct {
	Verbose bool
	Pretty  bool
}

// YamlSource implements cli.ValueSource for a map loaded from YAML
type YamlSource struct {
	data map[string]any
	key  string
}

func (y *YamlSource) Lookup() (string, bool) {
	if v, ok := y.data[y.key]; ok {
		// Handle slices by joining with comma
		if slice, ok := v.([]any); ok {
			var strs []string
			for _, item := range slice {
				strs = append(strs, fmt.Sprintf("%v", item))
			}
			return strings.Join(strs, ","), true
		}
		return fmt.Sprintf("%v", v), true
	}
	return "", false
}

func (y *YamlSource) String() string   { return "yaml" }
func (y *YamlSource) GoString() string { return "yaml" }

func GetFlags() []cli.Flag {
	// Credentials may live in a dotenv file; load it before the flag
	// env sources are consulted.
	if envFile := getEnvFilePath(); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load env file %s: %v\n", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	// Pre-parse config path
	configPath := getConfigPath()
	var configData map[string]any
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err == nil {
			_ = yaml.Unmarshal(data, &configData)
		} else {
			fmt.Fprintf(os.Stderr, "Warning: failed to read config file %s: %v\n", configPath, err)
		}
	}

	// Helper to create sources: EnvVar > YAML
	src := func(key string, env ...string) cli.ValueSourceChain {
		chain := cli.ValueSourceChain{}
		for _, e := range env {
			chain.Chain = append(chain.Chain, cli.EnvVar(e))
		}
		if configData != nil {
			chain.Chain = append(chain.Chain, &YamlSource{data: configData, key: key})
		}
		return chain
	}

	return []cli.Flag{
		// Config files
		&cli.StringFlag{Name: "config", Aliases: []string{"b"}, Usage: "use the named configuration file", Sources: cli.EnvVars("MLBRIDGE_CONFIG")},
		&cli.StringFlag{Name: "env-file", Usage: "load credentials from the named dotenv file", Sources: cli.EnvVars("MLBRIDGE_ENV_FILE")},

		// Model
		&cli.StringFlag{Name: "model-id", Aliases: []string{"m"}, Usage: "model identifier at the upstream vendor", Sources: src("model_id", "MLBRIDGE_MODEL_ID")},
		&cli.StringFlag{Name: "provider", Aliases: []string{"p"}, Usage: "vendor key, e.g. bedrock/converse", Sources: src("provider", "MLBRIDGE_PROVIDER")},
		&cli.StringFlag{Name: "region", Aliases: []string{"r"}, Usage: "region for signed-request vendors", Sources: src("region", "MLBRIDGE_REGION")},
		&cli.StringSliceFlag{Name: "param", Usage: "extra connector parameter as key=value, repeatable", Sources: src("parameters", "MLBRIDGE_PARAMS")},

		// Credentials
		&cli.StringFlag{Name: "access-key", Usage: "AWS access key id", Sources: src("access_key", "AWS_ACCESS_KEY_ID")},
		&cli.StringFlag{Name: "secret-key", Usage: "AWS secret access key", Sources: src("secret_key", "AWS_SECRET_ACCESS_KEY")},
		&cli.StringFlag{Name: "session-token", Usage: "AWS session token", Sources: src("session_token", "AWS_SESSION_TOKEN")},
		&cli.StringFlag{Name: "openai-key", Usage: "OpenAI API key", Sources: src("openai_key", "OPENAI_API_KEY")},

		// Output
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"V"}, Usage: "enable verbose logging", Sources: src("verbose", "MLBRIDGE_VERBOSE")},
		&cli.BoolFlag{Name: "pretty", Usage: "indent the printed descriptor", Sources: src("pretty", "MLBRIDGE_PRETTY")},
	}
}

func getConfigPath() string {
	return pathFromArgs("MLBRIDGE_CONFIG", "--config", "-b")
}

func getEnvFilePath() string {
	return pathFromArgs("MLBRIDGE_ENV_FILE", "--env-file", "")
}

func pathFromArgs(env, long, short string) string {
	// Check env first
	if v := os.Getenv(env); v != "" {
		return v
	}
	// Check args
	for i, arg := range os.Args {
		if arg == long || (short != "" && arg == short) {
			if i+1 < len(os.Args) {
				return os.Args[i+1]
			}
		}
		if strings.HasPrefix(arg, long+"=") {
			return strings.TrimPrefix(arg, long+"=")
		}
	}
	return ""
}

func (c *Configuration) PrintConfig() {
	fmt.Printf("model-id: %s\n", c.Model.ModelID)
	fmt.Printf("provider: %s\n", c.Model.Provider)
	fmt.Printf("region: %s\n", c.Model.Region)
	fmt.Printf("parameters: %v\n", c.Model.Parameters)
	fmt.Printf("access-key: %s\n", mask(c.API.AccessKey))
	fmt.Printf("secret-key: %s\n", mask(c.API.SecretKey))
	fmt.Printf("session-token: %s\n", mask(c.API.SessionToken))
	fmt.Printf("openai-key: %s\n", mask(c.API.OpenAIKey))
	fmt.Printf("verbose: %t\n", c.Output.Verbose)
	fmt.Printf("pretty: %t\n", c.Output.Pretty)
}

func mask(secret string) string {
	if len(secret) > 3 {
		return strings.Repeat("*", len(secret)-3) + secret[len(secret)-3:]
	}
	return secret
}

func NewConfiguration(c *cli.Command) *Configuration {
	parameters := make(map[string]string)
	for _, kv := range c.StringSlice("param") {
		key, value, found := strings.Cut(kv, "=")
		if !found || key == "" {
			fmt.Fprintf(os.Stderr, "Warning: ignoring malformed parameter %q\n", kv)
			continue
		}
		parameters[key] = value
	}

	return &Configuration{
		Model: &ModelConfig{
			ModelID:    c.String("model-id"),
			Provider:   c.String("provider"),
			Region:     c.String("region"),
			Parameters: parameters,
		},
		API: &APIConfig{
			AccessKey:    c.String("access-key"),
			SecretKey:    c.String("secret-key"),
			SessionToken: c.String("session-token"),
			OpenAIKey:    c.String("openai-key"),
		},
		Output: &OutputConfig{
			Verbose: c.Bool("verbose"),
			Pretty:  c.Bool("pretty"),
		},
	}
}
