// Package mock 提供测试用的内存存储实现
package mock

import (
	"context"
	"sync"

	"github.com/projectlog/linebot/models"
	"github.com/projectlog/linebot/repository"
)

var _ repository.IntakeStore = (*Store)(nil)

// Store 内存版 IntakeStore，可注入错误
type Store struct {
	mu        sync.Mutex
	Projects  []models.ProjectRecord
	FollowUps []models.FollowUpRecord
	Customers []models.CustomerRecord

	FindErr   error
	InsertErr error
	ReadErr   error
}

func (s *Store) FindProjectByNo(_ context.Context, projectNo string) (*models.ProjectRecord, error) {
	if s.FindErr != nil {
		return nil, s.FindErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Projects {
		if s.Projects[i].ProjectNo == projectNo {
			record := s.Projects[i]
			return &record, nil
		}
	}
	return nil, nil
}

func (s *Store) InsertProject(_ context.Context, record *models.ProjectRecord) error {
	if s.InsertErr != nil {
		return s.InsertErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Projects = append(s.Projects, *record)
	return nil
}

func (s *Store) InsertFollowUp(_ context.Context, record *models.FollowUpRecord) error {
	if s.InsertErr != nil {
		return s.InsertErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FollowUps = append(s.FollowUps, *record)
	return nil
}

func (s *Store) InsertCustomer(_ context.Context, record *models.CustomerRecord) error {
	if s.InsertErr != nil {
		return s.InsertErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Customers = append(s.Customers, *record)
	return nil
}

func (s *Store) AllProjects(_ context.Context) ([]models.ProjectRecord, error) {
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ProjectRecord, len(s.Projects))
	copy(out, s.Projects)
	return out, nil
}

func (s *Store) AllFollowUps(_ context.Context) ([]models.FollowUpRecord, error) {
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.FollowUpRecord, len(s.FollowUps))
	copy(out, s.FollowUps)
	return out, nil
}
