package server

import (
	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	errs "github.com/Mohfazam/CIVICOS/errors"
	"github.com/gin-gonic/gin"
)

// limitRateForIssueCreation throttles issue submissions per client IP.
func limitRateForIssueCreation(store ratelimit.Store) gin.HandlerFunc {
	mw := ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler:   errs.ErrorHandler,
		KeyFunc:        keyFunc,
		BeforeResponse: nil,
	})
	return mw
}

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}
