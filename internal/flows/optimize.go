package flows

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"resume-builder-backend/internal/llm"
	"resume-builder-backend/resume/model"
)

// ErrEntriesChanged means the model returned a resume whose entry set
// differs from the input. The rewrite is discarded when that happens.
var ErrEntriesChanged = errors.New("optimized resume added or removed entries")

// RunOptimize runs the optimize-content flow over a full document and
// enforces that the rewrite only changed wording: the set of work,
// project, education and custom entries must survive untouched.
func RunOptimize(ctx context.Context, client llm.Client, doc model.ResumeDocument, jobDescription string) (model.ResumeDocument, error) {
	flow, ok := Get("optimize-content")
	if !ok {
		return model.ResumeDocument{}, errors.New("optimize-content flow is not registered")
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		return model.ResumeDocument{}, fmt.Errorf("encode resume: %w", err)
	}
	var resumeData map[string]any
	if err := json.Unmarshal(encoded, &resumeData); err != nil {
		return model.ResumeDocument{}, fmt.Errorf("encode resume: %w", err)
	}

	out, err := flow.Run(ctx, client, map[string]any{
		"resumeData":     resumeData,
		"jobDescription": jobDescription,
	})
	if err != nil {
		return model.ResumeDocument{}, err
	}

	rewritten, err := json.Marshal(out)
	if err != nil {
		return model.ResumeDocument{}, fmt.Errorf("encode optimized resume: %w", err)
	}
	var optimized model.ResumeDocument
	if err := json.Unmarshal(rewritten, &optimized); err != nil {
		return model.ResumeDocument{}, fmt.Errorf("decode optimized resume: %w", err)
	}
	optimized = optimized.Normalize()

	if !reflect.DeepEqual(doc.EntryKeys(), optimized.EntryKeys()) {
		return model.ResumeDocument{}, ErrEntriesChanged
	}
	return optimized, nil
}
