package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/projectlog/linebot/models"
	"github.com/projectlog/linebot/repository"
	"github.com/projectlog/linebot/utils"
)

// 工作表名
const (
	projectSheet  = "โครงการ"
	followUpSheet = "ติดตามโครงการ"
)

var (
	projectHeaders  = []string{"project_no", "project_name", "project_date", "description", "contractor", "supervisor"}
	followUpHeaders = []string{"branch", "date", "follow_up_no", "project", "address", "description", "next_follow_up_date"}
)

// Exporter 把项目主档和跟进记录导出为一个 xlsx 工作簿，
// 文件写入临时目录，通过下载端点按文件名提供
type Exporter struct {
	store   repository.IntakeStore
	dir     string
	baseURL string
}

// NewExporter 创建导出服务
func NewExporter(store repository.IntakeStore, dir, baseURL string) *Exporter {
	return &Exporter{store: store, dir: dir, baseURL: baseURL}
}

// Export 生成工作簿并返回回复文案：下载链接或"暂无数据"提示
func (e *Exporter) Export(ctx context.Context) (string, error) {
	projects, err := e.store.AllProjects(ctx)
	if err != nil {
		return "", fmt.Errorf("读取项目主档失败: %w", err)
	}
	followUps, err := e.store.AllFollowUps(ctx)
	if err != nil {
		return "", fmt.Errorf("读取跟进记录失败: %w", err)
	}

	if len(projects) == 0 && len(followUps) == 0 {
		return MsgNoProjectData, nil
	}

	filename, err := e.writeWorkbook(projects, followUps)
	if err != nil {
		return "", err
	}

	utils.LogInfo(map[string]interface{}{
		"filename":  filename,
		"projects":  len(projects),
		"followUps": len(followUps),
	}, "导出工作簿完成")

	return fmt.Sprintf(MsgDownloadFmt, e.baseURL+"/download/"+filename), nil
}

// writeWorkbook 每类记录各占一个工作表，无数据的工作表不创建
func (e *Exporter) writeWorkbook(projects []models.ProjectRecord, followUps []models.FollowUpRecord) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	first := true
	if len(projects) > 0 {
		addSheet(f, projectSheet, first)
		first = false
		writeHeaders(f, projectSheet, projectHeaders)
		for i, p := range projects {
			writeRow(f, projectSheet, i+2, []string{
				p.ProjectNo, p.ProjectName, p.ProjectDate, p.Description, p.Contractor, p.Supervisor,
			})
		}
	}
	if len(followUps) > 0 {
		addSheet(f, followUpSheet, first)
		writeHeaders(f, followUpSheet, followUpHeaders)
		for i, r := range followUps {
			writeRow(f, followUpSheet, i+2, []string{
				r.Branch, r.Date, r.FollowUpNo, r.Project, r.Address, r.Description, r.NextFollowUpDate,
			})
		}
	}

	filename := "project_" + strings.ReplaceAll(uuid.NewString(), "-", "") + ".xlsx"
	if err := f.SaveAs(filepath.Join(e.dir, filename)); err != nil {
		return "", fmt.Errorf("保存工作簿失败: %w", err)
	}
	return filename, nil
}

// addSheet 第一个工作表沿用默认表改名，其余新建
func addSheet(f *excelize.File, name string, first bool) {
	if first {
		_ = f.SetSheetName(f.GetSheetName(0), name)
		return
	}
	_, _ = f.NewSheet(name)
}

func writeHeaders(f *excelize.File, sheet string, headers []string) {
	writeRow(f, sheet, 1, headers)
}

func writeRow(f *excelize.File, sheet string, row int, values []string) {
	for i, value := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = f.SetCellValue(sheet, cell, value)
	}
}
