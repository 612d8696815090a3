package intent

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	ParseFreeText(ctx context.Context, input ParseFreeTextInput) (ParseFreeTextOutput, error)
}

// Parser turns free text into an untrusted StructuredIntent.
type Parser interface {
	ParseIntentFromText(ctx context.Context, opts ParseOptions) (StructuredIntent, error)
}
