package server

import (
	"fmt"
	"os"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (s *Server) setupRouter() *gin.Engine {
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "test" {
		r := gin.New()
		s.defineRoutes(r)
		return r
	}

	r := gin.New()

	// LoggerWithFormatter middleware will write the logs to gin.DefaultWriter
	// By default gin.DefaultWriter = os.Stdout
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.MaxMultipartMemory = 32 << 20
	s.defineRoutes(r)

	return r
}

func (s *Server) defineRoutes(router *gin.Engine) {
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{Rate: time.Minute, Limit: s.issueRateLimit()})
	limitIssueCreation := limitRateForIssueCreation(store)

	apirouter := router.Group("/api/v1")

	apirouter.GET("/citizen/details", s.handleGetCitizenDetails())
	apirouter.POST("/citizen/issue", limitIssueCreation, s.handleCreateOrUpdateIssue())
	apirouter.GET("/citizen/all", s.handleGetAllIssues())
	apirouter.GET("/citizen/issues", s.handleListIssues())
	apirouter.GET("/citizen/issue/:issueId", s.handleGetIssueThread())
	apirouter.POST("/citizen/issue/:issueId/comment", s.handleAddComment())
	apirouter.DELETE("/citizen/comment/:commentId", s.handleDeleteComment())
	apirouter.POST("/citizen/issue/:issueId/upvote", s.handleToggleUpvote())

	apirouter.GET("/issues/:issueId/comments", s.handleListComments())
	apirouter.POST("/issues/:issueId/comments", s.handleAddComment())
	apirouter.DELETE("/comments/:commentId", s.handleDeleteComment())
	apirouter.GET("/issues/:issueId/upvotes", s.handleUpvoteStatus())
	apirouter.POST("/issues/:issueId/upvote", s.handleToggleUpvote())
	apirouter.GET("/issues/:issueId/upvote-list", s.handleListUpvoters())
	apirouter.GET("/issues/:issueId/thread", s.handleGetIssueThread())

	apirouter.GET("/mlas/leaderboard", s.handleMLALeaderboard())
	apirouter.POST("/media/upload", s.handleMediaUpload())
}

func (s *Server) issueRateLimit() uint {
	if s.Config != nil && s.Config.IssueRateLimit > 0 {
		return s.Config.IssueRateLimit
	}
	return 20
}
