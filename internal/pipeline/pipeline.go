package pipeline

import "fmt"

// Processor is one tag source. It sets ctx.Tag and ctx.Done when it
// recognises ctx.Value and leaves ctx untouched otherwise.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries a value through the processors.
type PipelineContext struct {
	Value  any
	Tag    string
	Done   bool
	Errors []error
}

func NewPipelineContext(value any) *PipelineContext {
	return &PipelineContext{Value: value}
}

// Pipeline represents an ordered sequence of tag sources.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline. The first processor to mark the context done
// wins; a processor that panics is recorded in ctx.Errors and skipped.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for i, processor := range p.processors {
		if ctx.Done {
			break
		}
		ctx = runProcessor(i, processor, ctx)
	}
	return ctx
}

func runProcessor(index int, processor Processor, ctx *PipelineContext) (out *PipelineContext) {
	tag, done := ctx.Tag, ctx.Done
	defer func() {
		if r := recover(); r != nil {
			ctx.Tag, ctx.Done = tag, done
			ctx.Errors = append(ctx.Errors, &TaggerError{
				Index:     index,
				Tagger:    describe(processor),
				Recovered: r,
			})
			out = ctx
		}
	}()
	if next := processor.Process(ctx); next != nil {
		return next
	}
	return ctx
}

func describe(processor Processor) string {
	if s, ok := processor.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", processor)
}

// TaggerError records a tag source that panicked.
type TaggerError struct {
	Index     int
	Tagger    string
	Recovered any
}

func (e *TaggerError) Error() string {
	return fmt.Sprintf("tagger %d (%s) panicked: %v", e.Index, e.Tagger, e.Recovered)
}

// Unwrap exposes the recovered value when it was an error.
func (e *TaggerError) Unwrap() error {
	if err, ok := e.Recovered.(error); ok {
		return err
	}
	return nil
}
