package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"quotegateway/internal/market"
	"quotegateway/internal/provider"
)

type healthResponse struct {
	Status    string            `json:"status"`
	Upstreams map[string]string `json:"upstreams,omitempty"`
}

// healthz reports "degraded" while any upstream circuit is open. The process
// itself is up either way, so the status code stays 200.
func (s *Server) healthz(c *gin.Context) {
	resp := healthResponse{Status: "ok"}
	if len(s.opts.Upstreams) > 0 {
		resp.Upstreams = make(map[string]string, len(s.opts.Upstreams))
	}
	for _, u := range s.opts.Upstreams {
		state := u.State()
		resp.Upstreams[u.Name()] = state
		if state == "open" {
			resp.Status = "degraded"
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) search(c *gin.Context) {
	results, err := s.svc.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (s *Server) trending(c *gin.Context) {
	quotes, err := s.svc.Trending(c.Request.Context(), c.Query("country"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotes)
}

func (s *Server) marketSummary(c *gin.Context) {
	summaries, err := s.svc.MarketSummary(c.Request.Context(), c.Query("country"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (s *Server) screener(c *gin.Context) {
	count, err := queryCount(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	quotes, err := s.svc.Screener(c.Request.Context(), c.Query("type"), count)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotes)
}

func (s *Server) quotes(c *gin.Context) {
	quotes, err := s.svc.Quotes(c.Request.Context(), c.Query("ticker"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotes)
}

func (s *Server) price(c *gin.Context) {
	quote, err := s.svc.Price(c.Request.Context(), c.Query("ticker"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (s *Server) overview(c *gin.Context) {
	record, err := s.svc.Overview(c.Request.Context(), c.Query("ticker"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (s *Server) module(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		record, err := s.svc.Module(c.Request.Context(), c.Query("ticker"), name)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

func (s *Server) fundSectorWeightings(c *gin.Context) {
	record, err := s.svc.FundSectorWeightings(c.Request.Context(), c.Query("ticker"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (s *Server) recommendations(c *gin.Context) {
	quotes, err := s.svc.Recommendations(c.Request.Context(), c.Query("ticker"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotes)
}

func (s *Server) optionChain(c *gin.Context) {
	records, err := s.svc.OptionChain(c.Request.Context(), c.Query("ticker"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) history(c *gin.Context) {
	records, err := s.svc.History(c.Request.Context(), c.Query("ticker"), c.Query("period"), c.Query("interval"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) statement(kind provider.StatementKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := s.svc.Statement(c.Request.Context(), c.Query("ticker"), kind, c.Query("period"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

func (s *Server) news(c *gin.Context) {
	count, err := queryCount(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	articles, err := s.svc.News(c.Request.Context(), c.Query("ticker"), c.Query("category"), count)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// queryCount parses the optional count parameter; absent means 0.
func queryCount(c *gin.Context) (int, error) {
	raw := strings.TrimSpace(c.Query("count"))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: count must be a non-negative integer", market.ErrInvalidInput)
	}
	return n, nil
}
