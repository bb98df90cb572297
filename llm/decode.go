package llm

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoObject 模型输出中找不到可解析的JSON对象
var ErrNoObject = errors.New("llm: no JSON object in model output")

// DecodeObject 从模型自由文本输出中扫描并解析唯一的JSON对象。
// 贪婪扫描：取第一个 '{' 到最后一个 '}' 之间的内容。
// 模型输出属于不可信的外部格式，任何解析失败都返回可恢复的 ErrNoObject。
func DecodeObject(raw string) (map[string]any, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, ErrNoObject
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(raw[start:end+1]), &data); err != nil {
		return nil, ErrNoObject
	}
	return data, nil
}
