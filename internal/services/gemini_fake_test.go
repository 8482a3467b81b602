package services

import "context"

// fakeGemini is a canned-response stand-in for the external AI service, so
// extraction and scoring logic can be tested without the network.
type fakeGemini struct {
	ocrText   string
	ocrErr    error
	scoreJSON string
	scoreErr  error

	ocrMIMETypes []string
	scoreCalls   int
}

func (f *fakeGemini) ExtractImageText(_ context.Context, mimeType string, _ []byte) (string, error) {
	f.ocrMIMETypes = append(f.ocrMIMETypes, mimeType)
	if f.ocrErr != nil {
		return "", f.ocrErr
	}
	return f.ocrText, nil
}

func (f *fakeGemini) ScoreResume(_ context.Context, _, _ string) (string, error) {
	f.scoreCalls++
	if f.scoreErr != nil {
		return "", f.scoreErr
	}
	return f.scoreJSON, nil
}
