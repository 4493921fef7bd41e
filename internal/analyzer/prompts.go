package analyzer

import "github.com/nguyentantai21042004/interview-summarizer/internal/models"

// Step names one request of the pipeline.
type Step string

const (
	StepTranscript Step = "transcript"
	StepSummary    Step = "summary"
	StepMindMap    Step = "mind map"
)

// Prompts is the instruction set for one output language.
type Prompts struct {
	Instruction string
	Transcript  string
	Summary     string
	MindMap     string
}

// For returns the task prompt of a step.
func (p Prompts) For(step Step) string {
	switch step {
	case StepTranscript:
		return p.Transcript
	case StepSummary:
		return p.Summary
	default:
		return p.MindMap
	}
}

var chinesePrompts = Prompts{
	Instruction: `你是一位专业的访谈分析专家，同时也是一位秘书。
你的任务是分析提供的访谈录音/视频/图片。
请用中文回复。`,
	Transcript: "生成访谈的逐字稿。区分不同发言人很重要。格式为 '发言人: 内容'。",
	Summary: `提供访谈的全面总结。包括：
1. **执行摘要**：高层次概述（约100字）
2. **关键要点**：讨论的主要议题（要点列表）
3. **行动事项/结论**：提到的任何决定或后续步骤
4. **详细笔记**：内容的结构化分解`,
	MindMap: `使用 Mermaid.js 语法创建访谈内容的思维导图。
注重主题和子主题的层级结构。

只输出 Mermaid 代码，不要包含其他说明文字。
使用中文节点标签。

示例格式：
mindmap
  root((访谈主题))
    话题1
      要点A
      要点B
    话题2
      要点C`,
}

var englishPrompts = Prompts{
	Instruction: `You are an expert Interview Analyst acting as a professional secretary.
Your task is to analyze the provided interview recording/image.`,
	Transcript: "Generate a verbatim transcript of this interview. Speaker distinction is important. Format as 'Speaker: Text'.",
	Summary: `Provide a comprehensive summary of the interview.
Include:
1. **Executive Summary**: A high-level overview (100 words).
2. **Key Topics**: Bullet points of main subjects discussed.
3. **Action Items/Conclusions**: Any decisions or next steps mentioned.
4. **Detailed Notes**: A structured breakdown of the content.`,
	MindMap: `Create a Mind Map of the interview content using Mermaid.js syntax.
Focus on the hierarchy of topics and subtopics.

Output ONLY the Mermaid code, no other text.

Example format:
mindmap
  root((Interview Topic))
    Topic 1
      Subpoint A
      Subpoint B
    Topic 2
      Subpoint C`,
}

// PromptsFor returns the Chinese prompts for zh and the English prompts otherwise.
func PromptsFor(lang models.Language) Prompts {
	switch lang {
	case models.LanguageChinese:
		return chinesePrompts
	default:
		return englishPrompts
	}
}
