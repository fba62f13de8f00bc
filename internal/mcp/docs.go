package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `pairwork finds, for every project, the two employees who worked on it together the longest.

Call find_longest_pairs with assignment rows in csv (or a file path over stdio).
Read pairwork://docs/input-format for the row format and how ties are decided.`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "pairwork://docs/input-format",
		Name:        "input-format",
		Title:       "Assignment input format",
		Description: "Row layout, date rules and result semantics of find_longest_pairs",
		Content: `# Assignment input format

One assignment per line, fields separated by a comma (or the separator argument):

    EmpID, ProjectID, DateFrom, DateTo
    143, 12, 2013-11-01, 2014-01-05
    218, 10, 2012-05-16, NULL

- EmpID and ProjectID are whole numbers.
- Dates are YYYY-MM-DD.
- DateTo may be NULL, empty or missing: the assignment is ongoing and ends today.
- Spaces after a separator are ignored; blank lines are skipped.
- Rows that do not parse (a header line, for example) are skipped and listed under rejected.

## Results

- One result per project, ordered by project id.
- days_worked_together counts days from the later start up to, not including, the earlier end.
- Every pair of rows is compared, so two rows of the same employee can be reported as a pair.
- On equal overlaps the pair found first wins (earlier row, then earlier partner row).
- A project whose best overlap is 0 days has no result.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
