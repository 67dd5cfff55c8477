package delivery

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lawdesk-backend/internal/apperr"
	"lawdesk-backend/internal/document/dto"
	"lawdesk-backend/internal/document/usecase"
)

// DocumentHandler handles document hierarchy HTTP requests
type DocumentHandler struct {
	docUsecase usecase.DocumentUsecase
	logger     *zap.SugaredLogger
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(docUsecase usecase.DocumentUsecase, logger *zap.SugaredLogger) *DocumentHandler {
	return &DocumentHandler{
		docUsecase: docUsecase,
		logger:     logger,
	}
}

// List returns folders and files under a folder
// GET /documents?folderId=<id|root>
func (h *DocumentHandler) List(c *gin.Context) {
	folderID := c.DefaultQuery("folderId", usecase.RootFolderID)

	docs, err := h.docUsecase.List(folderID)
	if err != nil {
		h.fail(c, err, "list documents failed")
		return
	}
	c.JSON(http.StatusOK, docs)
}

// CreateFolder creates a folder
// POST /documents/folders
func (h *DocumentHandler) CreateFolder(c *gin.Context) {
	var req dto.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Folder name is required"})
		return
	}

	folder, err := h.docUsecase.CreateFolder(req.Name, req.ParentID)
	if err != nil {
		h.fail(c, err, "create folder failed")
		return
	}
	c.JSON(http.StatusCreated, folder)
}

// RenameFolder renames a folder
// PATCH /documents/folders/:id
func (h *DocumentHandler) RenameFolder(c *gin.Context) {
	var req dto.RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	folder, err := h.docUsecase.RenameFolder(c.Param("id"), req.Name)
	if err != nil {
		h.fail(c, err, "rename folder failed")
		return
	}
	c.JSON(http.StatusOK, folder)
}

// DeleteFolder deletes an empty folder
// DELETE /documents/folders/:id
func (h *DocumentHandler) DeleteFolder(c *gin.Context) {
	if err := h.docUsecase.DeleteFolder(c.Param("id")); err != nil {
		h.fail(c, err, "delete folder failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Upload stores a multipart file under a parent folder
// POST /documents/upload (multipart: file, parentId)
func (h *DocumentHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	parentID := c.PostForm("parentId")

	src, err := fileHeader.Open()
	if err != nil {
		h.fail(c, err, "open upload failed")
		return
	}
	defer src.Close()

	doc, err := h.docUsecase.Upload(fileHeader.Filename, parentID, fileHeader.Header.Get("Content-Type"), src)
	if err != nil {
		h.fail(c, err, "upload failed")
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// RenameFile renames a file
// PATCH /documents/file/:id
func (h *DocumentHandler) RenameFile(c *gin.Context) {
	var req dto.RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	file, err := h.docUsecase.RenameFile(c.Param("id"), req.Name)
	if err != nil {
		h.fail(c, err, "rename file failed")
		return
	}
	c.JSON(http.StatusOK, file)
}

// DeleteFile deletes a file and its stored bytes
// DELETE /documents/file/:id
func (h *DocumentHandler) DeleteFile(c *gin.Context) {
	if err := h.docUsecase.DeleteFile(c.Param("id")); err != nil {
		h.fail(c, err, "delete file failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Download streams the file content as an attachment
// GET /documents/file/:id/download
func (h *DocumentHandler) Download(c *gin.Context) {
	file, err := h.docUsecase.GetFile(c.Param("id"))
	if err != nil {
		h.fail(c, err, "download lookup failed")
		return
	}

	content, err := h.docUsecase.OpenContent(file)
	if err != nil {
		h.fail(c, err, "download open failed")
		return
	}
	defer content.Close()

	mimeType := file.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	headers := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", file.Name),
	}
	c.DataFromReader(http.StatusOK, file.Size, mimeType, content, headers)
}

func (h *DocumentHandler) fail(c *gin.Context, err error, logMsg string) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		h.logger.Errorw(logMsg, "error", err)
	}
	c.JSON(status, gin.H{"error": apperr.Message(err)})
}
