package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Analyze(ctx context.Context, in AnalyzeInput) (AnalyzeOutput, error)
	History(ctx context.Context, in HistoryQuery) (HistoryOutput, error)
	Defaults(ctx context.Context) DefaultsOutput
}

// DefaultsPort is the read only view meta uses to report the algorithm setup
type DefaultsPort interface {
	Defaults(ctx context.Context) DefaultsOutput
}
