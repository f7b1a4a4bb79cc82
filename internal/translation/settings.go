package translation

import "context"

var _ Settings = StaticSettings{}

// StaticSettings is a fixed language pair, used when the command line
// overrides the stored preferences.
type StaticSettings struct {
	Source   string
	Target   string
	Glossary bool
}

func (s StaticSettings) SourceLanguageCode(context.Context) (string, error) {
	return s.Source, nil
}

func (s StaticSettings) TargetLanguageCode(context.Context) (string, error) {
	return s.Target, nil
}

func (s StaticSettings) GlossaryEnabled(context.Context) (bool, error) {
	return s.Glossary, nil
}

var _ Settings = OverrideSettings{}

// OverrideSettings answers from its own fields where they are set and from
// Base otherwise.
type OverrideSettings struct {
	Base     Settings
	Source   string
	Target   string
	Glossary *bool
}

func (s OverrideSettings) SourceLanguageCode(ctx context.Context) (string, error) {
	if s.Source != "" {
		return s.Source, nil
	}
	return s.Base.SourceLanguageCode(ctx)
}

func (s OverrideSettings) TargetLanguageCode(ctx context.Context) (string, error) {
	if s.Target != "" {
		return s.Target, nil
	}
	return s.Base.TargetLanguageCode(ctx)
}

func (s OverrideSettings) GlossaryEnabled(ctx context.Context) (bool, error) {
	if s.Glossary != nil {
		return *s.Glossary, nil
	}
	return s.Base.GlossaryEnabled(ctx)
}
