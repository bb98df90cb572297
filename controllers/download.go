package controllers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/projectlog/linebot/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DownloadController 按文件名提供已生成的导出文件
type DownloadController struct {
	dir string
}

// NewDownloadController 创建下载控制器
func NewDownloadController(dir string) *DownloadController {
	return &DownloadController{dir: dir}
}

// Download 下载导出的工作簿。文件不存在（被清理或从未生成）时
// 返回 200 + 提示文案，而不是 404，维持原有的宽松契约。
func (h *DownloadController) Download(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))
	path := filepath.Join(h.dir, filename)

	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusOK, gin.H{"message": service.MsgFileNotFound})
		return
	}

	c.Header("Content-Type", xlsxContentType)
	c.FileAttachment(path, "projectlog.xlsx")
}
