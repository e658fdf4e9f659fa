package server

import (
	"net/http"

	errs "github.com/Mohfazam/CIVICOS/errors"
	"github.com/Mohfazam/CIVICOS/server/response"
	"github.com/gin-gonic/gin"
)

func (s *Server) handleMediaUpload() gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			response.Err(c, errs.MissingField("file"))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			response.Err(c, errs.StorageFailure(err))
			return
		}
		defer file.Close()

		result, err := s.MediaService.UploadIssueMedia(file, fileHeader)
		if err != nil {
			response.Err(c, err)
			return
		}
		response.JSON(c, "media uploaded successfully", http.StatusCreated, result, nil)
	}
}
