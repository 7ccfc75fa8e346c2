package command

import (
	"io"

	"github.com/bytedance/sonic"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"quotegateway/internal/app"
	"quotegateway/internal/config"
	"quotegateway/internal/logging"
)

type Commander interface {
	Command() *cli.Command
}

var (
	Commands = []Commander{
		Quotes{},
		Statement{},
		News{},
		Dump{},
	}
)

// open loads the configuration named by the global --config flag, installs
// the logger and wires the providers. The returned func undoes both.
func open(c *cli.Context) (*app.App, func(), error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, err
	}
	err = cfg.Validate()
	if err != nil {
		return nil, nil, err
	}

	// keep stdout for results
	cfg.Log.File = ""
	undo, err := logging.Setup(cfg.Log)
	if err != nil {
		return nil, nil, err
	}

	a, err := app.New(c.Context, cfg)
	if err != nil {
		undo()
		return nil, nil, err
	}

	return a, func() {
		if err := a.Close(); err != nil {
			zap.L().Warn("close providers failed", zap.Error(err))
		}
		undo()
	}, nil
}

func printJSON(w io.Writer, v any) error {
	enc := sonic.ConfigStd.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
