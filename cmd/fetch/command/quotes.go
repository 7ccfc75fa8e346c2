package command

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

type Quotes struct{}

func (q Quotes) Command() *cli.Command {
	return &cli.Command{
		Name:    "quotes",
		Aliases: []string{"q"},
		Usage:   "print the eligible quotes of a symbol list",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "symbols",
				Aliases:  []string{"s"},
				Usage:    "comma-separated tickers, e.g. AAPL,MSFT",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			a, done, err := open(c)
			if err != nil {
				return err
			}
			defer done()

			quotes, err := a.Service.Quotes(c.Context, c.String("symbols"))
			if err != nil {
				zap.L().Error("fetch quotes failed", zap.Error(err), zap.String("symbols", c.String("symbols")))
				return err
			}

			return printJSON(c.App.Writer, quotes)
		},
	}
}
