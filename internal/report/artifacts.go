package report

import (
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/interview-summarizer/internal/models"
)

// Kind identifies one downloadable artifact.
type Kind string

const (
	KindSummary    Kind = "summary"
	KindMindMap    Kind = "mindmap"
	KindTranscript Kind = "transcript"
	KindReport     Kind = "report"
)

// ErrUnknownKind is returned by Build for a kind outside Kinds.
var ErrUnknownKind = errors.New("unknown artifact")

// Artifact is one downloadable file.
type Artifact struct {
	Kind        Kind
	Filename    string
	ContentType string
	Content     string
}

// Kinds lists the artifacts in display order.
func Kinds() []Kind {
	return []Kind{KindSummary, KindMindMap, KindTranscript, KindReport}
}

// Build returns one artifact for the given result.
func Build(kind Kind, result models.Result, stem string) (Artifact, error) {
	switch kind {
	case KindSummary:
		return Artifact{kind, stem + "_summary.md", "text/markdown; charset=utf-8", result.Summary}, nil
	case KindMindMap:
		return Artifact{kind, stem + "_mindmap.mmd", "text/plain; charset=utf-8", result.MindMap}, nil
	case KindTranscript:
		return Artifact{kind, stem + "_transcript.txt", "text/plain; charset=utf-8", result.Transcript}, nil
	case KindReport:
		return Artifact{kind, stem + "_report.md", "text/markdown; charset=utf-8", Compose(result, stem)}, nil
	default:
		return Artifact{}, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
}

// Artifacts returns all four artifacts for a result.
func Artifacts(result models.Result, stem string) []Artifact {
	out := make([]Artifact, 0, len(Kinds()))
	for _, k := range Kinds() {
		out = append(out, mustBuild(k, result, stem))
	}
	return out
}

// mustBuild is for kinds taken from Kinds; any error there is a programming mistake.
func mustBuild(kind Kind, result models.Result, stem string) Artifact {
	a, err := Build(kind, result, stem)
	if err != nil {
		panic(err)
	}
	return a
}
