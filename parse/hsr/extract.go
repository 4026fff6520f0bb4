package hsr

import (
	"context"
	"errors"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Extractor turns one character id into a CharacterBuild:
// render -> detect element -> select the build tab -> run every locator.
type Extractor struct {
	options
}

func NewExtractor(opts ...Option) *Extractor {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}
	e := &Extractor{}
	e.options = options
	e.logger = loggerOrNop(e.logger)
	return e
}

// ExtractCharacter runs one page session. It fails only when the page cannot
// be rendered or the build tab cannot be selected; missing sections are left
// empty in the returned record.
func (e *Extractor) ExtractCharacter(ctx context.Context, character string) (*CharacterBuild, error) {
	if e.fetcher == nil {
		return nil, &ExtractError{Character: character, Stage: StageLoaded, Err: errors.New("no page fetcher configured")}
	}
	logger := e.logger.With(zap.String("character", character))

	page, err := e.fetcher.Render(ctx, character)
	if err != nil {
		return nil, &ExtractError{Character: character, Stage: StageLoaded, Err: err}
	}
	defer func() {
		if err := page.Close(); err != nil {
			logger.Debug("close page failed", zap.Error(err))
		}
	}()
	logger.Debug("page session", zap.Stringer("stage", StageLoaded))

	el := DetectElement(page.Document(), logger)
	logger.Info("element detected", zap.Stringer("stage", StageElementDetected), zap.Stringer("element", el))

	selected, err := e.fetcher.SelectTab(ctx, page, e.tabLabel, el)
	if err != nil {
		return nil, &ExtractError{Character: character, Stage: StageElementDetected, Err: err}
	}
	logger.Debug("page session", zap.Stringer("stage", StageSectionSelected), zap.String("tab", e.tabLabel))

	build := ParseBuild(selected.Document(), character, el, logger)
	logger.Debug("page session", zap.Stringer("stage", StageExtracted))
	return build, nil
}

// ParseBuild runs every section locator over an already rendered page.
func ParseBuild(doc *goquery.Document, character string, el Element, logger *zap.Logger) *CharacterBuild {
	logger = loggerOrNop(logger)
	b := newBuild(character, el)

	b.LightCones = ParseLightCones(doc, el, logger)
	b.Relics = ParseRelics(doc, el, logger)
	b.PlanarSets, b.PlanarNotes = ParsePlanarSets(doc, el, logger)

	stats := ParseStats(doc, el, logger)
	b.MainStats = stats.Main
	b.Substats = stats.Substats
	b.SubstatsText = stats.SubstatsText
	b.StatDetailsText = stats.Details
	b.StatCommentsText = stats.Comments
	b.EndgameStats = stats.Endgame

	b.Traces = ParseTraces(doc, el, logger)
	b.Synergy = ParseSynergy(doc, el, logger)
	b.Teams = ParseTeams(doc, logger)
	return b
}
