package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"unzone-backend/models"
	"unzone-backend/repository"
	"unzone-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FileHandler handles HTTP requests for avatar uploads and downloads
type FileHandler struct {
	store            repository.Store
	blobs            storage.Storage
	maxFileSize      int64
	allowedMimeTypes map[string]bool
}

// NewFileHandler creates a new file handler
func NewFileHandler(store repository.Store, blobs storage.Storage) *FileHandler {
	return &FileHandler{
		store:       store,
		blobs:       blobs,
		maxFileSize: 5 * 1024 * 1024, // 5MB
		allowedMimeTypes: map[string]bool{
			"image/png":  true,
			"image/jpeg": true,
			"image/gif":  true,
			"image/webp": true,
		},
	}
}

// UploadAvatar handles POST /api/users/:id/avatar
func (h *FileHandler) UploadAvatar(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if _, err := h.store.GetUser(c.Request.Context(), userID); err != nil {
		storeError(c, err, "User not found")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File is required"})
		return
	}

	if fileHeader.Size > h.maxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": fmt.Sprintf("File size exceeds maximum of %d bytes", h.maxFileSize),
		})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mimeFromFilename(fileHeader.Filename)
	}
	if !h.allowedMimeTypes[mimeType] {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "File type not allowed. Allowed types: PNG, JPEG, GIF, WEBP",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	defer file.Close()

	fileID := uuid.New()
	storagePath, err := h.blobs.Upload(c.Request.Context(), fileID, fileHeader.Filename, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload file"})
		return
	}

	record := &models.File{
		ID:          fileID,
		UserID:      userID,
		Filename:    fileHeader.Filename,
		MimeType:    mimeType,
		Size:        fileHeader.Size,
		StoragePath: storagePath,
	}
	if err := h.store.CreateFile(c.Request.Context(), record); err != nil {
		// Best effort cleanup of the orphaned blob
		h.blobs.Delete(c.Request.Context(), storagePath)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save file record"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetFile handles GET /api/files/:id
func (h *FileHandler) GetFile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid file ID format"})
		return
	}

	file, err := h.store.GetFile(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "File not found")
		return
	}

	reader, err := h.blobs.Download(c.Request.Context(), file.StoragePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to download file"})
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", file.Filename))
	c.DataFromReader(http.StatusOK, file.Size, file.MimeType, reader, nil)
}

func mimeFromFilename(filename string) string {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(lower, ".gif"):
		return "image/gif"
	case strings.HasSuffix(lower, ".webp"):
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
