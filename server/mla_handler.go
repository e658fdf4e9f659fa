package server

import (
	"net/http"
	"strconv"

	errs "github.com/Mohfazam/CIVICOS/errors"
	"github.com/Mohfazam/CIVICOS/server/response"
	"github.com/gin-gonic/gin"
)

func (s *Server) handleMLALeaderboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 0
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				response.Err(c, errs.BadRequest("invalid limit"))
				return
			}
			limit = n
		}
		mlas, err := s.DirectoryService.MLALeaderboard(limit)
		if err != nil {
			response.Err(c, err)
			return
		}
		response.JSON(c, "leaderboard retrieved successfully", http.StatusOK, mlas, nil)
	}
}
