package handlers

import (
	"strings"

	"github.com/firstshift/jobboard/internal/storage"
	"github.com/gin-gonic/gin"
)

// FileHandler serves stored files from the local backend.
type FileHandler struct {
	Store *storage.LocalStore
}

func NewFileHandler(store *storage.LocalStore) *FileHandler {
	return &FileHandler{Store: store}
}

// Serve is GET /files/*path (authenticated). The reference a client holds
// is exactly what Resolve returned for the stored path.
func (h *FileHandler) Serve(c *gin.Context) {
	ref := strings.TrimPrefix(c.Param("path"), "/")
	path, err := h.Store.FilePath(ref)
	if err != nil {
		writeError(c, err)
		return
	}
	c.File(path)
}
