package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/projectlog/linebot/line"
	"github.com/projectlog/linebot/llm"
	"github.com/projectlog/linebot/models"
	"github.com/projectlog/linebot/service"
	"github.com/projectlog/linebot/utils"
)

// 触发短语，按子串包含匹配，同一条消息里多个触发词各自独立生效
const (
	TriggerHelp   = "Update ข้อมูลโครงการ"
	TriggerUpload = "Upload รูปภาพโครงการ"
	TriggerExport = "แสดงข้อมูลโครงการ"
)

// WebhookController webhook 分发器，依赖通过构造函数注入
type WebhookController struct {
	extractor llm.Extractor
	replier   line.Replier
	intake    *service.IntakeService
	exporter  *service.Exporter
}

// NewWebhookController 创建 webhook 控制器
func NewWebhookController(extractor llm.Extractor, replier line.Replier, intake *service.IntakeService, exporter *service.Exporter) *WebhookController {
	return &WebhookController{
		extractor: extractor,
		replier:   replier,
		intake:    intake,
		exporter:  exporter,
	}
}

// Handle 处理一次 webhook 投递，逐个处理文本消息事件。
// 无论单条消息处理结果如何，都向平台返回 {"status":"ok"}。
func (h *WebhookController) Handle(c *gin.Context) {
	var payload models.WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("无效的请求数据"))
		return
	}

	ctx := c.Request.Context()
	for _, event := range payload.Events {
		if !event.IsText() {
			continue
		}
		h.handleText(ctx, event.ReplyToken, event.Message.Text)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleText 先匹配触发短语，命中任意触发词就不再走模型抽取
func (h *WebhookController) handleText(ctx context.Context, replyToken, text string) {
	var replies []string

	if strings.Contains(text, TriggerHelp) {
		replies = append(replies, service.MsgHelp)
	}
	if strings.Contains(text, TriggerUpload) {
		replies = append(replies, service.MsgUnderDevelopment)
	}
	if strings.Contains(text, TriggerExport) {
		replies = append(replies, h.export(ctx))
	}

	if len(replies) == 0 {
		replies = append(replies, h.process(ctx, text))
	}

	// 回复失败只记录日志，当前消息不再有其他出口
	if err := h.replier.Reply(ctx, replyToken, replies...); err != nil {
		utils.LogError(err, map[string]interface{}{"replyToken": replyToken}, "回复消息失败")
	}
}

// process 模型抽取 + 分类校验 + 入库，返回回复文案
func (h *WebhookController) process(ctx context.Context, text string) string {
	raw, err := h.extractor.Extract(ctx, text)
	if err != nil {
		utils.LogError(err, map[string]interface{}{"text": text}, "抽取失败")
		return service.MsgCannotProcess
	}
	return h.intake.Submit(ctx, raw)
}

// export 生成导出工作簿，失败时降级为通用错误文案
func (h *WebhookController) export(ctx context.Context) string {
	reply, err := h.exporter.Export(ctx)
	if err != nil {
		utils.LogError(err, nil, "导出失败")
		return service.MsgCannotProcess
	}
	return reply
}
