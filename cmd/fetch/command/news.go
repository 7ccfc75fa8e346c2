package command

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"quotegateway/internal/market"
)

type News struct{}

func (n News) Command() *cli.Command {
	return &cli.Command{
		Name:    "news",
		Aliases: []string{"n"},
		Usage:   "print curated news about a symbol or of a category",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "symbol",
				Aliases: []string{"s"},
			},
			&cli.StringFlag{
				Name:  "category",
				Value: "general",
			},
			&cli.IntFlag{
				Name:  "count",
				Value: market.DefaultNewsCount,
			},
		},
		Action: func(c *cli.Context) error {
			a, done, err := open(c)
			if err != nil {
				return err
			}
			defer done()

			articles, err := a.Service.News(c.Context, c.String("symbol"), c.String("category"), c.Int("count"))
			if err != nil {
				zap.L().Error("fetch news failed", zap.Error(err))
				return err
			}

			return printJSON(c.App.Writer, articles)
		},
	}
}
