package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
)

type RequestObserver interface {
	ObserveRequest(method, route string, status int, d time.Duration)
}

func Metrics(obs RequestObserver) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()
		c.Next()
		obs.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
