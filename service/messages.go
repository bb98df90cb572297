package service

// 面向用户的泰语回复文案，逐字转发给发送者
const (
	MsgCannotProcess       = "❌ ไม่สามารถประมวลผลข้อมูลได้"
	MsgUnclassifiable      = "❌ ไม่สามารถระบุประเภทข้อมูลได้"
	MsgIncomplete          = "❌ กรุณาระบุข้อมูลให้ครบถ้วนครับ"
	MsgBadProjectDate      = "❌ วันที่โครงการต้องอยู่ในรูปแบบ YYYY-MM-DD ครับ"
	MsgBadFollowUpDate     = "❌ รูปแบบวันที่ไม่ถูกต้อง ต้องเป็น YYYY-MM-DD"
	MsgBadNextFollowUpDate = "❌ รูปแบบวันที่ติดตามครั้งถัดไปไม่ถูกต้อง ต้องเป็น YYYY-MM-DD"
	MsgCustomerInvalid     = "❌ กรุณากรอกข้อมูลให้ครบถ้วน ชื่อ-สกุล เบอร์โทร E-mail ตัวอย่าง มานะ ใจดี 0899999999 mana_jaidee@dynastyceramic.com 😊"
	MsgNoProjectData       = "❌ ยังไม่มีข้อมูลโครงการในระบบครับ"
	MsgUnderDevelopment    = "ขออภัยในความไม่สะดวก ระบบกำลังอยู่ระหว่างการพัฒนา อดใจรอซักนิดนะครับ 😉"

	MsgHelp = "ท่านสามารถบันทึกข้อมูลโครงการได้โดยพิมพ์ \n\n" +
		"เลขที่โครงการ:XXX \n" +
		"ชื่อโครงการ:XXX \n" +
		"วันที่โครงการ:XXX \n" +
		"รายละเอียดโครงการ:XXX \n" +
		"ผู้รับเหมา:XXX \n" +
		"ผู้ดูแล(หากมี):XXX \n\n" +
		"และ สามารถอัพเดตสถานะโครงการได้โดยการพิมพ์\n\n" +
		"สาขา:XXX \n" +
		"วันที่อัพเดตโครงการ:XXX \n" +
		"ครั้งที่ติดตาม:XXX \n" +
		"ชื่อโครงการ:XXX \n" +
		"ที่อยู่โครงการ:XXX \n" +
		"รายละเอียดโครงการ:XXX \n" +
		"วันที่อัพเดตครั้งถัดไป:XXX"
)

// 带占位参数的文案
const (
	MsgDuplicateProjectFmt = "❌ ข้อมูลโครงการนี้: โครงการที่ %s : %s มีอยู่ในระบบแล้วครับ"
	MsgProjectSavedFmt     = "✅ บันทึกข้อมูลแล้วครับ: โครงการ: %s"
	MsgFollowUpSavedFmt    = "✅ บันทึกข้อมูลการติดตามแล้วครับ: โครงการ: %s การติดตามครั้งที่  %s"
	MsgCustomerSavedFmt    = "✅ บันทึกข้อมูลลูกค้าแล้วครับ: คุณ %s"
	MsgDownloadFmt         = "📥 ดาวน์โหลดข้อมูลโครงการได้ที่นี่:\n%s"
	MsgFileNotFound        = "❌ ไฟล์ไม่พบหรือหมดอายุ"
)

// 空值占位
const (
	unknownName = "ไม่ทราบชื่อ"
	unspecified = "ไม่ระบุ"
)
