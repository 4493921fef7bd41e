package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/interview-summarizer/internal/models"
)

func TestCompose(t *testing.T) {
	got := Compose(models.Result{Summary: "S", MindMap: "M", Transcript: "T"}, "foo")

	want := "# 📋 访谈分析报告 / Interview Analysis Report\n" +
		"\n" +
		"## 📝 访谈纪要 / Summary\n" +
		"\n" +
		"S\n" +
		"\n" +
		"---\n" +
		"\n" +
		"## 🗺️ 信息框图 / Mind Map\n" +
		"\n" +
		"```mermaid\n" +
		"M\n" +
		"```\n" +
		"\n" +
		"---\n" +
		"\n" +
		"## 📜 访谈正文 / Transcript\n" +
		"\n" +
		"T\n" +
		"\n" +
		"---\n" +
		"\n" +
		"*由访谈总结器自动生成 / Generated by Interview Summarizer*\n"

	if got != want {
		t.Errorf("Compose() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
	if !strings.Contains(got, Footer) {
		t.Error("Compose() output is missing the footer")
	}
}

func TestComposePlaceholders(t *testing.T) {
	got := Compose(models.Result{}, "")

	for _, want := range []string{noSummary, noTranscript, "```mermaid\n" + noMindMap + "\n```", Footer} {
		if !strings.Contains(got, want) {
			t.Errorf("Compose() output is missing %q", want)
		}
	}
}

func TestComposePartialResult(t *testing.T) {
	got := Compose(models.Result{Transcript: "A: hi"}, "foo")

	if !strings.Contains(got, "A: hi") || !strings.Contains(got, noSummary) || !strings.Contains(got, noMindMap) {
		t.Errorf("Compose() = %s", got)
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"meeting.mp3", "meeting"},
		{"a.b.c.webm", "a.b.c"},
		{"/uploads/talk.mov", "talk"},
		{"noext", "noext"},
		{"", "interview"},
		{".mp3", "interview"},
	}

	for _, tt := range tests {
		if got := Stem(tt.input); got != tt.want {
			t.Errorf("Stem(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestArtifacts(t *testing.T) {
	result := models.Result{Summary: "S", MindMap: "M", Transcript: "T"}
	got := Artifacts(result, "foo")

	want := []struct {
		kind     Kind
		filename string
		content  string
	}{
		{KindSummary, "foo_summary.md", "S"},
		{KindMindMap, "foo_mindmap.mmd", "M"},
		{KindTranscript, "foo_transcript.txt", "T"},
		{KindReport, "foo_report.md", Compose(result, "foo")},
	}
	if len(got) != len(want) {
		t.Fatalf("Artifacts() returned %d artifacts, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Kind != w.kind || got[i].Filename != w.filename || got[i].Content != w.content {
			t.Errorf("artifact %d = %+v, want %+v", i, got[i], w)
		}
	}

	if _, err := Build(Kind("docx"), result, "foo"); err == nil {
		t.Error("Build() should reject unknown artifacts")
	}
}

func TestBuildUnknownKind(t *testing.T) {
	_, err := Build(Kind("slides"), models.Result{}, "foo")
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("Build() error = %v, want ErrUnknownKind", err)
	}
}

func TestMustBuild(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(string(k), func(t *testing.T) {
			if a := mustBuild(k, models.Result{}, "foo"); a.Filename == "" || a.Kind != k {
				t.Errorf("mustBuild(%s) = %+v", k, a)
			}
		})
	}

	defer func() {
		if recover() == nil {
			t.Error("mustBuild() with unknown kind did not panic")
		}
	}()
	mustBuild(Kind("slides"), models.Result{}, "foo")
}
