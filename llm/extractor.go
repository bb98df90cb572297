package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/prompts"

	"github.com/projectlog/linebot/config"
	"github.com/projectlog/linebot/utils"
)

// Extractor 从自由文本中抽取结构化字段的协作方接口
type Extractor interface {
	// Extract 调用模型抽取字段，解析失败返回 ErrNoObject
	Extract(ctx context.Context, text string) (map[string]any, error)
}

// OpenAIExtractor 基于 langchaingo 的 ChatOpenAI 抽取实现
type OpenAIExtractor struct {
	model  llms.Model
	prompt prompts.PromptTemplate
}

// NewOpenAIExtractor 创建抽取器，提示词按部署模式选择
func NewOpenAIExtractor(cfg *config.Config) (*OpenAIExtractor, error) {
	model, err := openai.New(
		openai.WithToken(cfg.OpenAIKey),
		openai.WithModel(cfg.OpenAIModel),
	)
	if err != nil {
		return nil, fmt.Errorf("创建OpenAI客户端失败: %w", err)
	}

	return &OpenAIExtractor{
		model:  model,
		prompt: PromptForMode(cfg.Mode),
	}, nil
}

// Extract 填充提示词并调用模型，输出经过严格解码边界
func (e *OpenAIExtractor) Extract(ctx context.Context, text string) (map[string]any, error) {
	prompt, err := e.prompt.Format(map[string]any{"text": text})
	if err != nil {
		return nil, fmt.Errorf("填充提示词失败: %w", err)
	}

	output, err := llms.GenerateFromSinglePrompt(ctx, e.model, prompt,
		llms.WithTemperature(0),
	)
	if err != nil {
		return nil, fmt.Errorf("调用模型失败: %w", err)
	}

	utils.Logger.Debug().Str("output", output).Msg("模型输出")
	return DecodeObject(output)
}
