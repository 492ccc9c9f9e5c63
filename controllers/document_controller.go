package controllers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flashme/cardgenx-backend/models"
	"github.com/flashme/cardgenx-backend/services"
	"github.com/flashme/cardgenx-backend/utils"
	"github.com/flashme/cardgenx-backend/ws"
)

type documentResponse struct {
	models.Document
	FileURL string `json:"file_url"`
}

func withFileURL(doc models.Document) documentResponse {
	return documentResponse{Document: doc, FileURL: utils.PublicFileURL(doc.FilePath)}
}

// UploadDocument stores the PDF blob in the files bucket and inserts the
// metadata row.
func UploadDocument(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file attached"})
		return
	}
	if file.Size > 20*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds 20MB"})
		return
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are supported"})
		return
	}

	objectPath := fmt.Sprintf("uploads/%d-%s", time.Now().UnixMilli(), file.Filename)

	if _, err := utils.UploadFileToSupabase(file, objectPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage upload failed", "details": err.Error()})
		return
	}

	// page count is best effort, the document is usable without it
	pages := 0
	if src, err := file.Open(); err == nil {
		if data, err := io.ReadAll(src); err == nil {
			if n, err := services.CountPDFPages(data); err == nil {
				pages = n
			}
		}
		src.Close()
	}

	doc := models.Document{
		ID:       uuid.New(),
		UserID:   userID,
		FileName: file.Filename,
		FilePath: objectPath,
		FileSize: file.Size,
		Pages:    pages,
	}
	if err := db.Create(&doc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save document", "details": err.Error()})
		return
	}

	ws.BroadcastDocumentListChanged()

	c.JSON(http.StatusOK, gin.H{
		"message":  "Uploaded successfully",
		"document": withFileURL(doc),
	})
}

func GetDocuments(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	query := db.Model(&models.Document{}).Where("user_id = ?", userID)

	if search := c.Query("search"); search != "" {
		query = query.Where("file_name ILIKE ?", "%"+search+"%")
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count documents"})
		return
	}

	var documents []models.Document
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&documents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list documents"})
		return
	}

	data := make([]documentResponse, 0, len(documents))
	for _, doc := range documents {
		data = append(data, withFileURL(doc))
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  data,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

func GetDocumentDetail(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var document models.Document
	if err := db.First(&document, "id = ? AND user_id = ?", c.Param("id"), userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	c.JSON(http.StatusOK, withFileURL(document))
}

type RenameDocumentInput struct {
	FileName string `json:"file_name" binding:"required"`
}

func RenameDocument(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input RenameDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var document models.Document
	if err := db.First(&document, "id = ? AND user_id = ?", c.Param("id"), userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	if err := db.Model(&document).Update("file_name", input.FileName).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rename document"})
		return
	}

	ws.BroadcastDocumentListChanged()
	c.JSON(http.StatusOK, withFileURL(document))
}

// DeleteDocument removes the storage object and the metadata row. Flashcards
// and summaries for the document are left in place.
func DeleteDocument(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document ID"})
		return
	}

	var document models.Document
	if err := db.First(&document, "id = ? AND user_id = ?", documentID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	if err := utils.DeleteFileFromSupabase(document.FilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file from storage", "details": err.Error()})
		return
	}

	if err := db.Delete(&models.Document{}, "id = ?", documentID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		return
	}

	services.Sessions.Delete(userID.String(), documentID.String())
	ws.BroadcastDocumentListChanged()
	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}
