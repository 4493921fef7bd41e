package analyzer

import (
	"context"
	"errors"
	"time"

	"github.com/nguyentantai21042004/interview-summarizer/internal/config"
	"github.com/nguyentantai21042004/interview-summarizer/internal/gateway"
	"github.com/nguyentantai21042004/interview-summarizer/internal/logger"
)

type generateCall struct {
	file        gateway.Handle
	instruction string
	prompt      string
}

// fakeGateway replays a scripted sequence of handle states and answers.
type fakeGateway struct {
	states    []gateway.State
	uploadErr error
	getErr    error

	answers  []string
	genErrAt int
	genErr   error

	uploads  int
	refetch  int
	genCalls []generateCall
}

func (f *fakeGateway) handle(i int) gateway.Handle {
	state := gateway.StateActive
	if i < len(f.states) {
		state = f.states[i]
	}
	return gateway.Handle{Name: "files/test", URI: "https://gateway.test/files/test", MIMEType: "audio/mpeg", State: state}
}

func (f *fakeGateway) Upload(ctx context.Context, path, mimeType string) (gateway.Handle, error) {
	f.uploads++
	if f.uploadErr != nil {
		return gateway.Handle{}, f.uploadErr
	}
	return f.handle(0), nil
}

func (f *fakeGateway) GetFile(ctx context.Context, name string) (gateway.Handle, error) {
	f.refetch++
	if f.getErr != nil {
		return gateway.Handle{}, f.getErr
	}
	return f.handle(f.refetch), nil
}

func (f *fakeGateway) Generate(ctx context.Context, file gateway.Handle, instruction, prompt string) (string, error) {
	f.genCalls = append(f.genCalls, generateCall{file: file, instruction: instruction, prompt: prompt})
	n := len(f.genCalls)
	if f.genErr != nil && n == f.genErrAt {
		return "", f.genErr
	}
	if n <= len(f.answers) {
		return f.answers[n-1], nil
	}
	return "", errors.New("no scripted answer")
}

// newTestAnalyzer returns an analyzer that records sleeps instead of waiting.
func newTestAnalyzer(gw gateway.Gateway, interval, timeout time.Duration) (*implAnalyzer, *[]time.Duration) {
	a := New(gw, config.GeminiConfig{PollInterval: interval, PollTimeout: timeout}, logger.Discard()).(*implAnalyzer)
	var slept []time.Duration
	a.sleep = func(ctx context.Context, d time.Duration) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		slept = append(slept, d)
		return nil
	}
	return a, &slept
}
