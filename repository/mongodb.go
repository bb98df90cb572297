package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/projectlog/linebot/models"
	"github.com/projectlog/linebot/utils"
)

const (
	// 集合名
	ProjectMasterCollection = "projectmaster"
	ProjectLogCollection    = "projectlog"
	CustomersCollection     = "customers"
)

// Store MongoDB 存储实现，连接句柄通过构造函数注入
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore 连接MongoDB并初始化集合
func NewStore(ctx context.Context, uri, dbName string) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("连接MongoDB失败: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping MongoDB失败: %w", err)
	}

	s := &Store{
		client: client,
		db:     client.Database(dbName),
	}
	utils.Logger.Info().Str("database", dbName).Msg("已连接到MongoDB")

	if err := s.initializeCollections(ctx); err != nil {
		return nil, fmt.Errorf("初始化数据库集合失败: %w", err)
	}

	return s, nil
}

// Close 断开MongoDB连接
func (s *Store) Close(ctx context.Context) {
	if s.client == nil {
		return
	}
	if err := s.client.Disconnect(ctx); err != nil {
		utils.Logger.Error().Err(err).Msg("断开MongoDB连接失败")
		return
	}
	utils.Logger.Info().Msg("已断开MongoDB连接")
}

// initializeCollections 初始化数据库集合
func (s *Store) initializeCollections(ctx context.Context) error {
	collections := []string{
		ProjectMasterCollection,
		ProjectLogCollection,
		CustomersCollection,
	}

	existing, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("检查集合失败: %w", err)
	}

	have := make(map[string]bool, len(existing))
	for _, name := range existing {
		have[name] = true
	}

	for _, collName := range collections {
		if have[collName] {
			utils.Logger.Info().Str("collection", collName).Msg("集合已存在")
			continue
		}
		if err := s.db.CreateCollection(ctx, collName); err != nil {
			return fmt.Errorf("创建集合失败: %w", err)
		}
		utils.Logger.Info().Str("collection", collName).Msg("创建集合成功")
	}

	return nil
}

// FindProjectByNo 按项目编号查找主档记录，不存在时返回 (nil, nil)
func (s *Store) FindProjectByNo(ctx context.Context, projectNo string) (*models.ProjectRecord, error) {
	var record models.ProjectRecord
	err := s.db.Collection(ProjectMasterCollection).
		FindOne(ctx, bson.M{"project_no": projectNo}).
		Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// InsertProject 写入项目主档记录
func (s *Store) InsertProject(ctx context.Context, record *models.ProjectRecord) error {
	_, err := s.db.Collection(ProjectMasterCollection).InsertOne(ctx, record)
	utils.LogDbOperation("insertOne", ProjectMasterCollection, record.ProjectNo, err)
	return err
}

// InsertFollowUp 写入项目跟进记录
func (s *Store) InsertFollowUp(ctx context.Context, record *models.FollowUpRecord) error {
	_, err := s.db.Collection(ProjectLogCollection).InsertOne(ctx, record)
	utils.LogDbOperation("insertOne", ProjectLogCollection, record.FollowUpNo, err)
	return err
}

// InsertCustomer 写入客户记录
func (s *Store) InsertCustomer(ctx context.Context, record *models.CustomerRecord) error {
	_, err := s.db.Collection(CustomersCollection).InsertOne(ctx, record)
	utils.LogDbOperation("insertOne", CustomersCollection, record.Phone, err)
	return err
}

// AllProjects 全量读取项目主档，排除内部 _id
func (s *Store) AllProjects(ctx context.Context) ([]models.ProjectRecord, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0})
	cursor, err := s.db.Collection(ProjectMasterCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.ProjectRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// AllFollowUps 全量读取跟进记录，排除内部 _id
func (s *Store) AllFollowUps(ctx context.Context) ([]models.FollowUpRecord, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0})
	cursor, err := s.db.Collection(ProjectLogCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.FollowUpRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
