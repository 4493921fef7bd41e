package analyzer

import "testing"

func TestExtractMindMap(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "mermaid fence",
			input: "```mermaid\nmindmap\n  root((X))\n```",
			want:  "mindmap\n  root((X))",
		},
		{
			name:  "mermaid fence with surrounding text",
			input: "Sure!\n```mermaid\nmindmap\n  root((X))\n```\nEnjoy.",
			want:  "mindmap\n  root((X))",
		},
		{
			name:  "mermaid fence preferred over earlier generic fence",
			input: "```\nnot this\n```\n```mermaid\nmindmap\n```",
			want:  "mindmap",
		},
		{
			name:  "generic fence",
			input: "```\nmindmap\n  root((Y))\n```",
			want:  "mindmap\n  root((Y))",
		},
		{
			name:  "generic fence with other tag",
			input: "```text\nmindmap\n  root((Y))\n```",
			want:  "mindmap\n  root((Y))",
		},
		{
			name:  "generic fence keeps mindmap first line",
			input: "```mindmap\n  root((Y))\n```",
			want:  "mindmap\n  root((Y))",
		},
		{
			name:  "no fence",
			input: "mindmap\n  root((Z))\n",
			want:  "mindmap\n  root((Z))\n",
		},
		{
			name:  "unterminated mermaid fence",
			input: "```mermaid\nmindmap\n  root((Z))",
			want:  "```mermaid\nmindmap\n  root((Z))",
		},
		{
			name:  "unterminated generic fence",
			input: "```\nmindmap",
			want:  "```\nmindmap",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractMindMap(tt.input); got != tt.want {
				t.Errorf("ExtractMindMap() = %q, want %q", got, tt.want)
			}
		})
	}
}
