package extract

import "cdox/types"

// Summary aggregates one file's extraction results for reporting.
type Summary struct {
	File     string `json:"file"`
	Comments int    `json:"comments"`
	Doc      int    `json:"doc"`
	Tags     int    `json:"tags"`
	Markers  int    `json:"markers"`
	Assoc    int    `json:"assoc"`
	Errors   int    `json:"errors"`
}

// Summarize reduces extraction results to per-file counts, in input
// order.
func Summarize(results []types.FileResult) []Summary {
	summaries := make([]Summary, 0, len(results))
	for _, res := range results {
		s := Summary{
			File:     res.File,
			Comments: len(res.Comments),
			Errors:   len(res.Errors),
		}
		for _, c := range res.Comments {
			if c.Style.IsDoc() {
				s.Doc++
			}
			s.Tags += len(c.Tags)
			s.Markers += len(c.Markers)
			if c.Decl != nil {
				s.Assoc++
			}
		}
		summaries = append(summaries, s)
	}
	return summaries
}
