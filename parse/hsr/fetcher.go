package hsr

import (
	"context"
	"errors"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// ErrTabNotFound is returned by a PageFetcher when the requested tab is not on the page.
var ErrTabNotFound = errors.New("tab not found")

// Page is a rendered character page.
type Page interface {
	// Document returns a parsed snapshot of the page as currently rendered.
	Document() *goquery.Document
	Close() error
}

// PageFetcher renders character pages and drives the tab interaction needed
// to expose the build section.
type PageFetcher interface {
	Render(ctx context.Context, character string) (Page, error)
	// SelectTab activates the tab whose label contains label among the tabs
	// tagged with scope, and returns the page re-rendered after the click.
	// The returned page shares the session of page; closing page releases both.
	SelectTab(ctx context.Context, page Page, label string, scope Element) (Page, error)
}

// Stage 单个角色页面会话所处的阶段
type Stage int

const (
	StageLoaded Stage = iota
	StageElementDetected
	StageSectionSelected
	StageExtracted
)

func (s Stage) String() string {
	switch s {
	case StageLoaded:
		return "loaded"
	case StageElementDetected:
		return "element-detected"
	case StageSectionSelected:
		return "section-selected"
	case StageExtracted:
		return "extracted"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// ExtractError is a session-aborting failure for one character. Stage is the
// last stage reached before the failure.
type ExtractError struct {
	Character string
	Stage     Stage
	Err       error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract %s (after %s): %v", e.Character, e.Stage, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}
