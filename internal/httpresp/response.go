// Package httpresp holds the response envelopes shared by the agency
// dashboard list endpoints (bookings, audit logs).
package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListResponse wraps dashboard collections with their size so clients
// can render "N demandes" counters without a second request. Lists are
// never paginated here; Count is always the full result size.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Count int `json:"count"`
}

func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Count: len(data),
	})
}
