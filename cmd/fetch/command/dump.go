package command

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"quotegateway/internal/market"
)

type Dump struct{}

func (d Dump) Command() *cli.Command {
	return &cli.Command{
		Name:    "dump",
		Aliases: []string{"d"},
		Usage:   "stream the eligible quotes of a large symbol list to a JSON file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "symbols-file",
				Aliases:  []string{"f"},
				Usage:    "one ticker per line; blank lines and # comments are skipped",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Value:   "quotes.json",
			},
			&cli.IntFlag{
				Name:  "batch",
				Value: 50,
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Value: 4,
			},
			&cli.IntFlag{
				Name:  "retries",
				Value: 3,
				Usage: "retries per batch while the upstream is unavailable",
			},
		},
		Action: func(c *cli.Context) error {
			symbols, err := d.readSymbols(c.String("symbols-file"))
			if err != nil {
				return err
			}
			if len(symbols) == 0 {
				return errors.New("no symbols found in symbols-file")
			}
			a, done, err := open(c)
			if err != nil {
				return err
			}
			defer done()

			file, err := os.Create(c.String("out"))
			if err != nil {
				return err
			}
			defer file.Close()

			dumper := dumper{
				source:      a.Service,
				batchSize:   c.Int("batch"),
				concurrency: c.Int("concurrency"),
				retries:     c.Int("retries"),
				backoff:     250 * time.Millisecond,
			}
			written, err := dumper.run(c.Context, symbols, file)
			if err != nil {
				return err
			}

			zap.L().Info("dump done", zap.String("out", c.String("out")), zap.Int("quotes", written))
			return nil
		},
	}
}

func (d Dump) readSymbols(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var symbols []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		symbols = append(symbols, line)
	}
	return symbols, scanner.Err()
}

type quoteSource interface {
	Quotes(ctx context.Context, input string) ([]market.EligibleQuote, error)
}

// dumper fetches symbol batches with a worker pool and streams every
// eligible quote into one JSON array. Batch order in the output follows
// completion order.
type dumper struct {
	source      quoteSource
	batchSize   int
	concurrency int
	retries     int
	backoff     time.Duration
}

// run must be called after the logger is set up.
func (d dumper) run(ctx context.Context, symbols []string, w io.Writer) (int, error) {
	batchSize := max(1, min(d.batchSize, market.MaxBatchSize))
	concurrency := max(1, d.concurrency)
	zap.L().Info("symbols loaded",
		zap.Int("symbols", len(symbols)),
		zap.Int("batch", batchSize),
		zap.Int("concurrency", concurrency))

	bw := bufio.NewWriterSize(w, 1<<20)
	_, _ = bw.WriteString("[")

	var (
		mu      sync.Mutex
		written int
		wg      sync.WaitGroup
	)

	type job struct {
		idx   int
		batch []string
	}
	jobs := make(chan job, concurrency*2)

	worker := func() {
		defer wg.Done()
		for j := range jobs {
			quotes, err := d.fetch(ctx, j.batch)
			if err != nil {
				zap.L().Warn("batch failed", zap.Int("batch", j.idx), zap.Error(err))
				continue
			}

			mu.Lock()
			for _, q := range quotes {
				raw, err := sonic.Marshal(q)
				if err != nil {
					zap.L().Warn("encode quote failed", zap.String("symbol", q.Symbol()), zap.Error(err))
					continue
				}
				if written > 0 {
					_, _ = bw.WriteString(",")
				}
				_, _ = bw.Write(raw)
				written++
			}
			mu.Unlock()
		}
	}

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go worker()
	}

	count := 0
	for i := 0; i < len(symbols); i += batchSize {
		end := min(i+batchSize, len(symbols))
		jobs <- job{idx: count, batch: symbols[i:end]}
		count++
	}
	close(jobs)
	wg.Wait()

	_, _ = bw.WriteString("]\n")
	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("flush: %w", err)
	}
	return written, ctx.Err()
}

// fetch retries a batch with exponential backoff while the upstream is
// unavailable. A batch rejected as invalid is split in halves until the
// offending symbol is isolated and skipped.
func (d dumper) fetch(ctx context.Context, batch []string) ([]market.EligibleQuote, error) {
	input := strings.Join(batch, ",")
	for attempt := 0; ; attempt++ {
		quotes, err := d.source.Quotes(ctx, input)
		if err == nil {
			return quotes, nil
		}

		if errors.Is(err, market.ErrInvalidInput) {
			if len(batch) <= 1 {
				zap.L().Warn("skip symbol", zap.Strings("symbols", batch), zap.Error(err))
				return nil, nil
			}
			mid := len(batch) / 2
			left, err := d.fetch(ctx, batch[:mid])
			if err != nil {
				return nil, err
			}
			right, err := d.fetch(ctx, batch[mid:])
			if err != nil {
				return nil, err
			}
			return append(left, right...), nil
		}

		if !errors.Is(err, market.ErrUpstreamUnavailable) || attempt >= d.retries {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(d.backoff << attempt):
		}
	}
}
