package controllers

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shivam-2025/KhelSaksham/middlewares"
	"github.com/Shivam-2025/KhelSaksham/services"
)

type UploadController struct {
	storage *services.StorageService
	results *services.ResultService
}

func NewUploadController(storage *services.StorageService, results *services.ResultService) *UploadController {
	return &UploadController{storage: storage, results: results}
}

// Upload stores a video and returns its public URL without recording a
// result. The client follows up with /results once the reps are known.
func (ctl *UploadController) Upload(c *gin.Context) {
	data, filename, contentType, err := readMultipartFile(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	videoURL, err := ctl.storage.UploadVideo(c.Request.Context(), filename, data, contentType)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"video_url": videoURL})
}

// Submit uploads the evidence video and records the result in one call.
// The upload happens first; a persistence failure afterwards leaves the
// uploaded object behind with no DB row pointing at it.
func (ctl *UploadController) Submit(c *gin.Context) {
	exercise := c.PostForm("exercise")
	videoHash := c.PostForm("video_hash")
	reps, err := strconv.Atoi(c.PostForm("reps"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reps must be an integer"})
		return
	}
	if reps <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reps must be greater than 0"})
		return
	}
	if strings.TrimSpace(exercise) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Exercise name required"})
		return
	}

	data, filename, contentType, err := readMultipartFile(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	videoURL, err := ctl.storage.UploadVideo(c.Request.Context(), filename, data, contentType)
	if err != nil {
		respondErr(c, err)
		return
	}

	user := middlewares.CurrentUser(c)
	err = ctl.results.Create(user.ID, exercise, reps, videoURL, videoHash, time.Now().UTC())
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "video_url": videoURL})
}

func readMultipartFile(c *gin.Context) (data []byte, filename, contentType string, err error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, "", "", services.E(services.KindValidation, "No file provided")
	}

	f, err := header.Open()
	if err != nil {
		return nil, "", "", services.Wrap(services.KindValidation, "Could not read file", err)
	}
	defer f.Close()

	data, err = io.ReadAll(f)
	if err != nil {
		return nil, "", "", services.Wrap(services.KindValidation, "Could not read file", err)
	}
	return data, header.Filename, header.Header.Get("Content-Type"), nil
}
