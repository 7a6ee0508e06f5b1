package output

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/jstucken/trello-export/internal/trello"
)

// RenderCardTable writes a tabular card listing: row number, card name,
// creation date derived from the card id, last-activity date, and URL.
// A card whose id cannot be decoded aborts the rendering; per the error
// policy there is no per-record recovery.
func RenderCardTable(w io.Writer, cards []trello.Card) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "#\tcard_name\tcreated_date\tdateLastActivity\turl")
	for i, card := range cards {
		created, err := trello.CreationTime(card.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			i+1, card.Name, created.Format(time.RFC3339), card.DateLastActivity, card.URL)
	}

	return tw.Flush()
}
