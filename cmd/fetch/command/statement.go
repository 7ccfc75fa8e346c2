package command

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"quotegateway/internal/provider"
)

type Statement struct{}

func (s Statement) Command() *cli.Command {
	return &cli.Command{
		Name:    "statement",
		Aliases: []string{"st"},
		Usage:   "print a financial statement as per-period records",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "symbol",
				Aliases:  []string{"s"},
				Required: true,
			},
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Value:   string(provider.BalanceSheet),
				Usage:   "balance-sheet, cash-flow, income-statement or valuation-measures",
			},
			&cli.StringFlag{
				Name:    "period",
				Aliases: []string{"p"},
				Value:   "a",
				Usage:   "a (annual) or q (quarterly)",
			},
		},
		Action: func(c *cli.Context) error {
			kind, err := provider.ParseStatementKind(c.String("kind"))
			if err != nil {
				return err
			}

			a, done, err := open(c)
			if err != nil {
				return err
			}
			defer done()

			records, err := a.Service.Statement(c.Context, c.String("symbol"), kind, c.String("period"))
			if err != nil {
				zap.L().Error("fetch statement failed",
					zap.Error(err),
					zap.String("symbol", c.String("symbol")),
					zap.String("kind", string(kind)))
				return err
			}

			return printJSON(c.App.Writer, records)
		},
	}
}
