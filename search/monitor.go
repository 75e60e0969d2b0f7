package search

import (
	"github.com/AubakirovArman/skai/core"
)

// SearchMonitor provides hooks to observe the search pipeline.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterNormalize(normalized string)
	AfterEmbedding(dimension int)
	AfterSectionSearch(candidates []core.Candidate)
	AfterSubsectionSearch(candidates []core.Candidate)
	Finish(results []core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                            {}
func (n *noopMonitor) AfterNormalize(_ string)                   {}
func (n *noopMonitor) AfterEmbedding(_ int)                      {}
func (n *noopMonitor) AfterSectionSearch(_ []core.Candidate)     {}
func (n *noopMonitor) AfterSubsectionSearch(_ []core.Candidate)  {}
func (n *noopMonitor) Finish(_ []core.SearchResult)              {}
