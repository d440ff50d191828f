package internal

import (
	"time"

	"github.com/google/uuid"
)

// TranslationRun describes one translate invocation. Its ID tags every log
// line of the run.
type TranslationRun struct {
	ID         uuid.UUID `json:"id"`
	InputFile  string    `json:"input_file"`
	OutputFile string    `json:"output_file"`
	SourceLang string    `json:"source_lang"`
	TargetLang string    `json:"target_lang"`
	Timestamp  time.Time `json:"timestamp"`
}

func NewTranslationRun(inputFile, outputFile, sourceLang, targetLang string) TranslationRun {
	return TranslationRun{
		ID:         uuid.New(),
		InputFile:  inputFile,
		OutputFile: outputFile,
		SourceLang: sourceLang,
		TargetLang: targetLang,
		Timestamp:  time.Now(),
	}
}
