package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/stahnma/gh-explore/internal/present"
)

// WriteJSON writes formatted JSON to w, optionally wrapped in a slack code block.
func WriteJSON(w io.Writer, v any, slackMode bool) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if slackMode {
		fmt.Fprintln(w, "```")
	}
	fmt.Fprintln(w, string(output))
	if slackMode {
		fmt.Fprintln(w, "```")
	}
	return nil
}

var (
	repoHeader = []string{"Repository", "Description", "Language", "Stars", "Forks", "Private"}
	userHeader = []string{"Login", "Name", "Repos", "Followers", "Following", "Bio"}
)

// WriteTable renders items as a table. All items must be of one kind; the
// first item picks the columns. An empty slice writes nothing.
func WriteTable(w io.Writer, items []present.Item, slackMode bool) error {
	if len(items) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	switch items[0].(type) {
	case *present.Repository:
		table.SetHeader(repoHeader)
	case *present.User:
		table.SetHeader(userHeader)
	default:
		return fmt.Errorf("unsupported item type %T", items[0])
	}

	for _, it := range items {
		switch v := it.(type) {
		case *present.Repository:
			table.Append([]string{
				v.FullName,
				v.Description,
				v.Language,
				strconv.Itoa(v.Stars),
				strconv.Itoa(v.Forks),
				strconv.FormatBool(v.Private),
			})
		case *present.User:
			table.Append([]string{
				v.Login,
				v.Name,
				strconv.Itoa(v.PublicRepos),
				strconv.Itoa(v.Followers),
				strconv.Itoa(v.Following),
				v.Bio,
			})
		default:
			return fmt.Errorf("unsupported item type %T", it)
		}
	}

	if slackMode {
		fmt.Fprintln(w, "```")
	}
	table.Render()
	if slackMode {
		fmt.Fprintln(w, "```")
	}
	return nil
}
