// Package report turns an analysis result into downloadable documents.
package report

import (
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/interview-summarizer/internal/models"
)

const (
	noSummary    = "无摘要 / No summary"
	noTranscript = "无转录 / No transcript"
	noMindMap    = "mindmap\n  root((No Data))"

	defaultStem = "interview"
)

const reportTemplate = `# 📋 访谈分析报告 / Interview Analysis Report

## 📝 访谈纪要 / Summary

{{summary}}

---

## 🗺️ 信息框图 / Mind Map

` + "```mermaid" + `
{{mind_map}}
` + "```" + `

---

## 📜 访谈正文 / Transcript

{{transcript}}

---

*由访谈总结器自动生成 / Generated by Interview Summarizer*
`

// Footer is the attribution line closing every report.
const Footer = "*由访谈总结器自动生成 / Generated by Interview Summarizer*"

// Compose renders the Markdown report. Empty fields are replaced by placeholders.
func Compose(result models.Result, stem string) string {
	r := strings.NewReplacer(
		"{{summary}}", orDefault(result.Summary, noSummary),
		"{{mind_map}}", orDefault(result.MindMap, noMindMap),
		"{{transcript}}", orDefault(result.Transcript, noTranscript),
	)
	return r.Replace(reportTemplate)
}

// Stem returns the file name without directory and last extension.
func Stem(filename string) string {
	base := filepath.Base(filename)
	if base == "." || base == string(filepath.Separator) {
		return defaultStem
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return defaultStem
	}
	return stem
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
