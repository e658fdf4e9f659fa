package server

import (
	"net/http"
	"strconv"

	errs "github.com/Mohfazam/CIVICOS/errors"
	"github.com/Mohfazam/CIVICOS/models"
	"github.com/Mohfazam/CIVICOS/server/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/leebenson/conform"
)

func (s *Server) handleGetCitizenDetails() gin.HandlerFunc {
	return func(c *gin.Context) {
		details, err := s.CitizenService.GetDetails(c.Query("email"))
		if err != nil {
			response.Err(c, err)
			return
		}
		response.JSON(c, "citizen details retrieved successfully", http.StatusOK, details, nil)
	}
}

// handleCreateOrUpdateIssue serves POST /citizen/issue. The same endpoint
// creates and updates: a body with update=true is routed to the partial
// update path, anything else creates a new issue.
func (s *Server) handleCreateOrUpdateIssue() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.IssueRequest
		if err := decode(c, &req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.BadRequest("invalid request body"))
			return
		}
		if err := conform.Strings(&req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.BadRequest("invalid request body"))
			return
		}

		if req.Update {
			issue, err := s.IssueService.UpdateIssue(&req)
			if err != nil {
				response.Err(c, err)
				return
			}
			response.JSON(c, "issue updated successfully", http.StatusOK, issue.View(), nil)
			return
		}

		issue, err := s.IssueService.CreateIssue(&req)
		if err != nil {
			response.Err(c, err)
			return
		}
		response.JSON(c, "issue created successfully", http.StatusCreated, issue.View(), nil)
	}
}

func (s *Server) handleGetAllIssues() gin.HandlerFunc {
	return func(c *gin.Context) {
		issues, total, err := s.IssueService.ListIssues(models.IssueFilter{})
		if err != nil {
			response.Err(c, err)
			return
		}
		response.JSON(c, "issues retrieved successfully", http.StatusOK, gin.H{
			"issues":     issues,
			"totalCount": total,
		}, nil)
	}
}

// handleListIssues serves the filtered, paginated list. Every filter is
// optional and unrecognized enum values simply match nothing; filters are
// passed through as written.
func (s *Server) handleListIssues() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.IssueFilter{
			Status:       c.Query("status"),
			Severity:     c.Query("severity"),
			Category:     c.Query("category"),
			Constituency: c.Query("constituency"),
		}

		if v := c.Query("citizenId"); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				response.Err(c, errs.BadRequest("invalid citizenId"))
				return
			}
			filter.CitizenID = &id
		}
		if v := c.Query("mlaId"); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				response.Err(c, errs.BadRequest("invalid mlaId"))
				return
			}
			filter.MLAID = &id
		}
		if v := c.Query("organizationId"); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				response.Err(c, errs.BadRequest("invalid organizationId"))
				return
			}
			filter.OrganizationID = &id
		}
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				response.Err(c, errs.BadRequest("invalid limit"))
				return
			}
			filter.Limit = &n
		}
		if v := c.Query("offset"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				response.Err(c, errs.BadRequest("invalid offset"))
				return
			}
			filter.Offset = &n
		}

		issues, total, err := s.IssueService.ListIssues(filter)
		if err != nil {
			response.Err(c, err)
			return
		}
		response.JSON(c, "issues retrieved successfully", http.StatusOK, gin.H{
			"issues":     issues,
			"totalCount": total,
		}, nil)
	}
}

func (s *Server) handleGetIssueThread() gin.HandlerFunc {
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

		thread, err := s.IssueService.GetIssueThread(issueID, citizenID)
		if err != nil {
			response.Err(c, err)
			return
		}
		response.JSON(c, "issue retrieved successfully", http.StatusOK, thread, nil)
	}
}
