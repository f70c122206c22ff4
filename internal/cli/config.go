package cli

import (
	"context"
	"fmt"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/Pro7ech/symmetric/perm"
)

// Config is the content of the TOML configuration file:
//
//	n = 8
//	workers = 4
type Config struct {
	// N is the size of the domain {1, ..., n}.
	N int `toml:"n"`
	// Workers bounds the number of permutations analyzed at the same time.
	Workers int `toml:"workers"`
}

func defaultConfig() Config {
	return Config{
		N:       perm.DefaultN,
		Workers: runtime.NumCPU(),
	}
}

// loadConfig reads the configuration at path on top of the defaults.
// An empty path returns the defaults.
func loadConfig(path string) (cfg Config, undecoded []string, err error) {

	cfg = defaultConfig()

	if path == "" {
		return
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, nil, fmt.Errorf("toml.DecodeFile: %w", err)
	}

	for _, key := range md.Undecoded() {
		undecoded = append(undecoded, key.String())
	}

	return
}

func withConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

func configFromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(configKey).(Config); ok {
		return cfg
	}
	return defaultConfig()
}

func withEvaluator(ctx context.Context, eval *perm.Evaluator) context.Context {
	return context.WithValue(ctx, evaluatorKey, eval)
}

func evaluatorFromContext(ctx context.Context) (*perm.Evaluator, error) {
	if eval, ok := ctx.Value(evaluatorKey).(*perm.Evaluator); ok {
		return eval, nil
	}
	return nil, fmt.Errorf("no evaluator attached to the context")
}
