package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quotegateway/internal/provider"
	"quotegateway/internal/service"
)

// moduleRoutes serve one quote summary module each.
var moduleRoutes = map[string]string{
	"/summary-detail":    service.ModuleSummaryDetail,
	"/profile":           service.ModuleAssetProfile,
	"/financial-data":    service.ModuleFinancialData,
	"/key-stats":         service.ModuleKeyStatistics,
	"/esg":               service.ModuleESGScores,
	"/fund-performance":  service.ModuleFundPerformance,
	"/fund-profile":      service.ModuleFundProfile,
	"/fund-top-holdings": service.ModuleFundTopHoldings,
}

var statementRoutes = []provider.StatementKind{
	provider.BalanceSheet,
	provider.CashFlow,
	provider.IncomeStatement,
	provider.ValuationMeasures,
}

func (s *Server) registerRoutes() {
	s.engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound, errorResponse{Error: "not found"})
	})

	s.engine.GET("/healthz", s.healthz)

	s.engine.GET("/search", s.search)
	s.engine.GET("/trending", s.trending)
	s.engine.GET("/market-summary", s.marketSummary)
	s.engine.GET("/screener", s.screener)

	s.engine.GET("/quotes", s.quotes)
	s.engine.GET("/price", s.price)
	s.engine.GET("/overview", s.overview)
	for path, module := range moduleRoutes {
		s.engine.GET(path, s.module(module))
	}
	s.engine.GET("/fund-sector-weightings", s.fundSectorWeightings)
	s.engine.GET("/recommendations", s.recommendations)

	s.engine.GET("/history", s.history)
	s.engine.GET("/option-chain", s.optionChain)
	for _, kind := range statementRoutes {
		s.engine.GET("/"+string(kind), s.statement(kind))
	}

	s.engine.GET("/news", s.news)
}
