package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/projectlog/linebot/config"
	"github.com/projectlog/linebot/models"
	"github.com/projectlog/linebot/repository"
	"github.com/projectlog/linebot/utils"
)

// dateField 需要按 YYYY-MM-DD 严格校验的日期字段
type dateField struct {
	key      string
	optional bool
	errMsg   string // 校验失败时指明具体字段的文案
}

// kindSpec 单个记录类型的校验表：识别 key、必填字段、日期字段、语义校验、构造函数
type kindSpec struct {
	kind     models.RecordKind
	tagKey   string // 分类用的识别 key，客户模式不按 key 识别
	required []string
	dates    []dateField
	semantic func(fields map[string]string) string
	build    func(fields map[string]string) *models.IntakeRecord
}

// projectSpec / followUpSpec / customerSpec 三类记录的参数化校验表，
// 取代按部署复制的三套近似管线
var (
	projectSpec = kindSpec{
		kind:     models.KindProject,
		tagKey:   "project_no",
		required: []string{"project_no", "project_name", "project_date", "description", "contractor"},
		dates: []dateField{
			{key: "project_date", errMsg: MsgBadProjectDate},
		},
		build: func(f map[string]string) *models.IntakeRecord {
			return &models.IntakeRecord{
				Kind: models.KindProject,
				Project: &models.ProjectRecord{
					ProjectNo:   f["project_no"],
					ProjectName: f["project_name"],
					ProjectDate: f["project_date"],
					Description: f["description"],
					Contractor:  f["contractor"],
					Supervisor:  f["supervisor"],
				},
			}
		},
	}

	followUpSpec = kindSpec{
		kind:     models.KindFollowUp,
		tagKey:   "branch",
		required: []string{"branch", "date", "follow_up_no", "project", "address", "description"},
		dates: []dateField{
			{key: "date", errMsg: MsgBadFollowUpDate},
			{key: "next_follow_up_date", optional: true, errMsg: MsgBadNextFollowUpDate},
		},
		build: func(f map[string]string) *models.IntakeRecord {
			return &models.IntakeRecord{
				Kind: models.KindFollowUp,
				FollowUp: &models.FollowUpRecord{
					Branch:           f["branch"],
					Date:             f["date"],
					FollowUpNo:       f["follow_up_no"],
					Project:          f["project"],
					Address:          f["address"],
					Description:      f["description"],
					NextFollowUpDate: f["next_follow_up_date"],
				},
			}
		},
	}

	customerSpec = kindSpec{
		kind: models.KindCustomer,
		// 姓名/电话/邮箱三项全部通过才接受，任何一项失败都返回同一条组合文案
		semantic: func(f map[string]string) string {
			if !utils.IsValidName(f["name"]) || !utils.IsValidPhone(f["phone"]) || !utils.IsValidEmail(f["email"]) {
				return MsgCustomerInvalid
			}
			return ""
		},
		build: func(f map[string]string) *models.IntakeRecord {
			return &models.IntakeRecord{
				Kind: models.KindCustomer,
				Customer: &models.CustomerRecord{
					Name:  f["name"],
					Phone: f["phone"],
					Email: f["email"],
				},
			}
		},
	}
)

// Classify 对抽取结果分类并逐项校验，纯函数，无 I/O。
// 成功返回规范化后的记录，失败返回直接转发给用户的文案。
func Classify(raw map[string]any, mode config.BotMode) (*models.IntakeRecord, string) {
	if raw == nil {
		return nil, MsgCannotProcess
	}

	spec, ok := classifyKind(raw, mode)
	if !ok {
		return nil, MsgUnclassifiable
	}

	fields := coerceFields(raw)

	// 必填字段检查：有意只返回一条笼统文案，不指明缺了哪个字段
	for _, key := range spec.required {
		if fields[key] == "" {
			return nil, MsgIncomplete
		}
	}

	for _, d := range spec.dates {
		value := fields[d.key]
		if value == "" && d.optional {
			continue
		}
		if !isValidDate(value) {
			return nil, d.errMsg
		}
	}

	if spec.semantic != nil {
		if msg := spec.semantic(fields); msg != "" {
			return nil, msg
		}
	}

	return spec.build(fields), ""
}

// classifyKind 按固定优先级识别记录类型：project_no 优先于 branch。
// 客户模式不做 key 识别，所有抽取结果都按客户记录处理。
func classifyKind(raw map[string]any, mode config.BotMode) (kindSpec, bool) {
	if mode == config.ModeCustomer {
		return customerSpec, true
	}
	if _, ok := raw["project_no"]; ok {
		return projectSpec, true
	}
	if _, ok := raw["branch"]; ok {
		return followUpSpec, true
	}
	return kindSpec{}, false
}

// coerceFields 把抽取对象的值统一转成去除首尾空白的字符串
func coerceFields(raw map[string]any) map[string]string {
	fields := make(map[string]string, len(raw))
	for key, value := range raw {
		fields[key] = strings.TrimSpace(coerceString(value))
	}
	return fields
}

// coerceString 标量转字符串，模型偶尔会把编号输出成数字
func coerceString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// isValidDate 严格按 YYYY-MM-DD 解析，佛历转公历由上游抽取提示词负责
func isValidDate(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// IntakeService 录入服务：分类校验 + 查重 + 入库
type IntakeService struct {
	store repository.IntakeStore
	mode  config.BotMode
}

// NewIntakeService 创建录入服务
func NewIntakeService(store repository.IntakeStore, mode config.BotMode) *IntakeService {
	return &IntakeService{store: store, mode: mode}
}

// Submit 处理一条抽取结果，返回转发给用户的文案。
// 所有失败都终止于当前消息，不重试、不落库。
func (s *IntakeService) Submit(ctx context.Context, raw map[string]any) string {
	record, userMsg := Classify(raw, s.mode)
	if userMsg != "" {
		return userMsg
	}

	switch record.Kind {
	case models.KindProject:
		return s.submitProject(ctx, record.Project)
	case models.KindFollowUp:
		return s.submitFollowUp(ctx, record.FollowUp)
	case models.KindCustomer:
		return s.submitCustomer(ctx, record.Customer)
	}
	return MsgUnclassifiable
}

func (s *IntakeService) submitProject(ctx context.Context, record *models.ProjectRecord) string {
	// 查重和写入不在同一事务里，并发提交同一编号可能都通过检查，属已知接受的限制
	existing, err := s.store.FindProjectByNo(ctx, record.ProjectNo)
	if err != nil {
		utils.LogError(err, map[string]interface{}{"project_no": record.ProjectNo}, "查重失败")
		return MsgCannotProcess
	}
	if existing != nil {
		return fmt.Sprintf(MsgDuplicateProjectFmt, record.ProjectNo, orPlaceholder(record.ProjectName, unknownName))
	}

	if err := s.store.InsertProject(ctx, record); err != nil {
		utils.LogError(err, map[string]interface{}{"project_no": record.ProjectNo}, "写入项目主档失败")
		return MsgCannotProcess
	}
	return fmt.Sprintf(MsgProjectSavedFmt, orPlaceholder(record.ProjectName, unknownName))
}

func (s *IntakeService) submitFollowUp(ctx context.Context, record *models.FollowUpRecord) string {
	if err := s.store.InsertFollowUp(ctx, record); err != nil {
		utils.LogError(err, map[string]interface{}{"follow_up_no": record.FollowUpNo}, "写入跟进记录失败")
		return MsgCannotProcess
	}
	return fmt.Sprintf(MsgFollowUpSavedFmt,
		orPlaceholder(record.Project, unknownName),
		orPlaceholder(record.FollowUpNo, unspecified))
}

func (s *IntakeService) submitCustomer(ctx context.Context, record *models.CustomerRecord) string {
	if err := s.store.InsertCustomer(ctx, record); err != nil {
		utils.LogError(err, map[string]interface{}{"phone": record.Phone}, "写入客户记录失败")
		return MsgCannotProcess
	}
	return fmt.Sprintf(MsgCustomerSavedFmt, record.Name)
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
