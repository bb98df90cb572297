package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/projectlog/linebot/models"
	"github.com/projectlog/linebot/repository/mock"
)

func TestExportWithoutData(t *testing.T) {
	exporter := NewExporter(&mock.Store{}, t.TempDir(), "http://localhost:8080")

	reply, err := exporter.Export(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != MsgNoProjectData {
		t.Errorf("reply = %q, want %q", reply, MsgNoProjectData)
	}
}

func TestExportWritesWorkbook(t *testing.T) {
	dir := t.TempDir()
	store := &mock.Store{
		Projects: []models.ProjectRecord{
			{ProjectNo: "P1", ProjectName: "X", ProjectDate: "2024-03-15", Description: "d", Contractor: "c"},
		},
		FollowUps: []models.FollowUpRecord{
			{Branch: "BKK", Date: "2024-01-01", FollowUpNo: "1", Project: "X", Address: "Y", Description: "Z"},
		},
	}
	exporter := NewExporter(store, dir, "https://bot.example.com")

	reply, err := exporter.Export(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(reply, "📥") || !strings.Contains(reply, "https://bot.example.com/download/project_") {
		t.Fatalf("reply = %q, want download link", reply)
	}

	// open the workbook back and check sheet layout
	filename := reply[strings.LastIndex(reply, "/")+1:]
	f, err := excelize.OpenFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != projectSheet || sheets[1] != followUpSheet {
		t.Fatalf("sheets = %v, want [%s %s]", sheets, projectSheet, followUpSheet)
	}

	if got, _ := f.GetCellValue(projectSheet, "A1"); got != "project_no" {
		t.Errorf("project header A1 = %q, want %q", got, "project_no")
	}
	if got, _ := f.GetCellValue(projectSheet, "A2"); got != "P1" {
		t.Errorf("project A2 = %q, want %q", got, "P1")
	}
	if got, _ := f.GetCellValue(followUpSheet, "C2"); got != "1" {
		t.Errorf("follow-up C2 = %q, want %q", got, "1")
	}
}

func TestExportOnlyFollowUps(t *testing.T) {
	dir := t.TempDir()
	store := &mock.Store{
		FollowUps: []models.FollowUpRecord{
			{Branch: "BKK", Date: "2024-01-01", FollowUpNo: "1", Project: "X", Address: "Y", Description: "Z"},
		},
	}
	exporter := NewExporter(store, dir, "http://localhost:8080")

	reply, err := exporter.Export(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	filename := reply[strings.LastIndex(reply, "/")+1:]
	f, err := excelize.OpenFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != followUpSheet {
		t.Errorf("sheets = %v, want only %q", sheets, followUpSheet)
	}
}
