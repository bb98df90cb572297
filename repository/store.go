package repository

import (
	"context"

	"github.com/projectlog/linebot/models"
)

// IntakeStore 录入管线依赖的存储接口，便于在测试中替换为内存实现
type IntakeStore interface {
	// FindProjectByNo 按项目编号查找，不存在时返回 (nil, nil)
	FindProjectByNo(ctx context.Context, projectNo string) (*models.ProjectRecord, error)
	InsertProject(ctx context.Context, record *models.ProjectRecord) error
	InsertFollowUp(ctx context.Context, record *models.FollowUpRecord) error
	InsertCustomer(ctx context.Context, record *models.CustomerRecord) error
	// AllProjects / AllFollowUps 导出用的全量读取，结果不含内部 _id
	AllProjects(ctx context.Context) ([]models.ProjectRecord, error)
	AllFollowUps(ctx context.Context) ([]models.FollowUpRecord, error)
}
