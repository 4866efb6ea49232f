package slotfill

import (
	pkgLog "hospitality-concierge/pkg/log"
	"hospitality-concierge/pkg/openai"
)

// Engine is the generic merge/complete/ask loop shared by every slot-filling
// category. It is instantiated once and parameterized per call by a Schema.
type Engine struct {
	llm openai.IOpenAI
	l   pkgLog.Logger
}

// New creates a new slot-filling Engine.
func New(llm openai.IOpenAI, l pkgLog.Logger) *Engine {
	return &Engine{
		llm: llm,
		l:   l,
	}
}
