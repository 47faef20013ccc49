package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cocktails-rolodex/cocktails-api/internal/domain/record"
	"github.com/cocktails-rolodex/cocktails-api/internal/httperr"
)

// fail writes err and logs it when it was not an expected business error.
func fail(c *gin.Context, log *zap.Logger, op string, err error) {
	if !httperr.Respond(c, err) {
		log.Error("request failed",
			zap.String("op", op),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
}

// listParams reads take, skip, search and orderBy from the query string.
func listParams(c *gin.Context) record.ListParams {
	return record.ListParams{
		Skip:   record.ParseCount(c.Query("skip")),
		Take:   record.ParseCount(c.Query("take")),
		Search: c.Query("search"),
		Order:  record.ParseOrder(c.Query("orderBy")),
	}
}
