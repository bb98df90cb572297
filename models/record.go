package models

// RecordKind 录入记录类型标签，在解析边界上确定一次，后续不再按 key 判断
type RecordKind string

const (
	KindProject  RecordKind = "project"
	KindFollowUp RecordKind = "follow_up"
	KindCustomer RecordKind = "customer"
)

// ProjectRecord 项目主档记录
type ProjectRecord struct {
	ProjectNo   string `json:"project_no" bson:"project_no"`
	ProjectName string `json:"project_name" bson:"project_name"`
	ProjectDate string `json:"project_date" bson:"project_date"`
	Description string `json:"description" bson:"description"`
	Contractor  string `json:"contractor" bson:"contractor"`
	Supervisor  string `json:"supervisor,omitempty" bson:"supervisor,omitempty"`
}

// FollowUpRecord 项目跟进记录
type FollowUpRecord struct {
	Branch           string `json:"branch" bson:"branch"`
	Date             string `json:"date" bson:"date"`
	FollowUpNo       string `json:"follow_up_no" bson:"follow_up_no"`
	Project          string `json:"project" bson:"project"`
	Address          string `json:"address" bson:"address"`
	Description      string `json:"description" bson:"description"`
	NextFollowUpDate string `json:"next_follow_up_date,omitempty" bson:"next_follow_up_date,omitempty"`
}

// CustomerRecord 客户联系信息记录
type CustomerRecord struct {
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone" bson:"phone"`
	Email string `json:"email" bson:"email"`
}

// IntakeRecord 分类校验完成后的记录，Kind 对应的指针字段非空
type IntakeRecord struct {
	Kind     RecordKind
	Project  *ProjectRecord
	FollowUp *FollowUpRecord
	Customer *CustomerRecord
}
