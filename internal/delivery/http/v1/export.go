package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv"
)

// sendExport streams an export as an attachment, typed by its extension
func sendExport(c *gin.Context, data []byte, filename string) {
	contentType := contentTypeXLSX
	if strings.HasSuffix(filename, ".csv") {
		contentType = contentTypeCSV
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}
