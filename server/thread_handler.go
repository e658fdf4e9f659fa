package server

import (
	"net/http"

	errs "github.com/Mohfazam/CIVICOS/errors"
	"github.com/Mohfazam/CIVICOS/models"
	"github.com/Mohfazam/CIVICOS/server/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/leebenson/conform"
)

func (s *Server) handleListComments() gin.HandlerFunc {
	return func(c *gin.Context) {
		issueID, err := uuid.Parse(c.Param("issueId"))
		if err != nil {
			response.Err(c, errs.NotFound("Issue"))
			return
		}
		comments, err := s.ThreadService.ListComments(issueID)
		if err != nil {
			response.Err(c, err)
			return
		}
		response.JSON(c, "comments retrieved successfully", http.StatusOK, comments, nil)
	}
}

func (s *Server) handleAddComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		issueID, err := uuid.Parse(c.Param("issueId"))
		if err != nil {
			response.Err(c, errs.NotFound("Issue"))
			return
		}

		var req models.CommentRequest
		if err := decode(c, &req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.BadRequest("invalid request body"))
			return
		}
		if err := conform.Strings(&req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.BadRequest("invalid request body"))
			return
		}

		comment, err := s.ThreadService.AddComment(issueID, &req)
		if err != nil {
			response.Err(c, err)
			return
		}
		response.JSON(c, "comment added successfully", http.StatusCreated, comment, nil)
	}
}

func (s *Server) handleDeleteComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		commentID, err := uuid.Parse(c.Param("commentId"))
		if err != nil {
			response.Err(c, errs.NotFound("Comment"))
			return
		}

		var req models.DeleteCommentRequest
		if err := decode(c, &req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.BadRequest("invalid request body"))
			return
		}
		if err := conform.Strings(&req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.BadRequest("invalid request body"))
			return
		}

		if err := s.ThreadService.DeleteComment(commentID, &req); err != nil {
			response.Err(c, err)
			return
		}
		response.JSON(c, "comment deleted successfully", http.StatusOK, nil, nil)
	}
}

// handleToggleUpvote flips the (issue, citizen) upvote and returns the
// new state plus the counter as stored after the flip.
func (s *Server) handleToggleUpvote() gin.HandlerFunc {
	return func(c *gin.Context) {
		issueID, err := uuid.Parse(c.Param("issueId"))
		if err != nil {
			response.Err(c, errs.NotFound("Issue"))
			return
		}

		var req models.UpvoteRequest
		if err := decode(c, &req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.BadRequest("invalid request body"))
			return
		}
		if req.CitizenID == "" {
			response.Err(c, errs.MissingField("citizenId"))
			return
		}
		citizenID, err := uuid.Parse(req.CitizenID)
		if err != nil {
			response.Err(c, errs.NotFound("Citizen"))
			return
		}

		upvoted, count, err := s.ThreadService.ToggleUpvote(issueID, citizenID)
		if err != nil {
			response.Err(c, err)
			return
		}
		message := "upvote removed"
		if upvoted {
			message = "upvote added"
		}
		response.JSON(c, message, http.StatusOK, gin.H{
			"upvoted":     upvoted,
			"upvoteCount": count,
		}, nil)
	}
}

func (s *Server) handleUpvoteStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		issueID, err := uuid.Parse(c.Param("issueId"))
		if err != nil {
			response.Err(c, errs.NotFound("Issue"))
			return
		}

		var citizenID *uuid.UUID
		if v := c.Query("citizenId"); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				response.Err(c, errs.BadRequest("invalid citizenId"))
				return
			}
			citizenID = &id
		}

		status, err := s.ThreadService.UpvoteStatus(issueID, citizenID)
		if err != nil {
			response.Err(c, err)
			return
		}
		response.JSON(c, "upvote status retrieved successfully", http.StatusOK, status, nil)
	}
}

func (s *Server) handleListUpvoters() gin.HandlerFunc {
	return func(c *gin.Context) {
		issueID, err := uuid.Parse(c.Param("issueId"))
		if err != nil {
			response.Err(c, errs.NotFound("Issue"))
			return
		}
		upvoters, err := s.ThreadService.ListUpvoters(issueID)
		if err != nil {
			response.Err(c, err)
			return
		}
		response.JSON(c, "upvoters retrieved successfully", http.StatusOK, upvoters, nil)
	}
}
