package llm

import (
	"github.com/tmc/langchaingo/prompts"

	"github.com/projectlog/linebot/config"
)

// projectLogTemplate 项目日志模式的抽取提示词，要求模型只返回一个JSON对象，
// 并把佛历日期减543转换为公历 YYYY-MM-DD
const projectLogTemplate = "ตรวจสอบข้อความนี้ว่าเป็น 'โครงการใหม่' หรือ 'การติดตาม'\n\n" +
	"- ถ้าเป็นโครงการใหม่ ให้แปลงข้อมูลเป็น JSON ตามโครงสร้างนี้:\n" +
	"  project_no (string), project_name, project_date, description, contractor, supervisor\n" +
	"- ถ้าเป็นการติดตาม ให้แปลงข้อมูลเป็น JSON ตามโครงสร้างนี้:\n" +
	"  branch, date (YYYY-MM-DD), follow_up_no, project, address, description, next_follow_up_date (YYYY-MM-DD)\n\n" +
	"ให้แปลงวันที่จาก พ.ศ. เป็น ค.ศ. โดยหัก 543 และแสดงผลในรูปแบบ YYYY-MM-DD\n" +
	"บังคับให้ทุกค่าที่เป็นเลข เช่น project_no หรือ follow_up_no ต้องอยู่ในรูปแบบ string (ใส่เครื่องหมายคำพูด)\n" +
	"ส่งกลับเฉพาะ JSON เท่านั้น ไม่ต้องอธิบายหรือใส่ข้อความอื่นใด\n\n" +
	"ข้อความ: {{.text}}"

// customerTemplate 客户模式的抽取提示词
const customerTemplate = "แปลงข้อความนี้เป็นข้อมูลลูกค้าในรูปแบบ JSON ตามโครงสร้างนี้:\n" +
	"  name (ชื่อ-สกุล), phone, email\n\n" +
	"บังคับให้ทุกค่าอยู่ในรูปแบบ string (ใส่เครื่องหมายคำพูด)\n" +
	"ส่งกลับเฉพาะ JSON เท่านั้น ไม่ต้องอธิบายหรือใส่ข้อความอื่นใด\n\n" +
	"ข้อความ: {{.text}}"

// PromptForMode 返回对应部署模式的提示词模板
func PromptForMode(mode config.BotMode) prompts.PromptTemplate {
	tpl := projectLogTemplate
	if mode == config.ModeCustomer {
		tpl = customerTemplate
	}
	return prompts.NewPromptTemplate(tpl, []string{"text"})
}
