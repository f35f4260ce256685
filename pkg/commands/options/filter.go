package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tasklists/pkg/dates"
)

// FilterOptions select and group the tasks printed by get.
type FilterOptions struct {
	View    string
	Keyword string
	Dates   []string
	Lists   []string
	All     bool
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVar(&o.View, "view", "",
		"Group by list or by date. Defaults to the configured view.")
	cmd.Flags().StringVar(&o.Keyword, "keyword", "",
		"Only tasks whose name contains the keyword, ignoring case.")
	cmd.Flags().StringSliceVar(&o.Dates, "date", nil,
		`Only tasks due today, tomorrow, week or no-date. Repeat to widen, example: --date=today --date=no-date.`)
	cmd.Flags().StringSliceVarP(&o.Lists, "list", "l", nil,
		"Only tasks in these lists, by id or name. Repeat to widen.")
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Include completed tasks.")
}

// GetDates parses --date values.
func (o *FilterOptions) GetDates() ([]dates.Bucket, error) {
	out := make([]dates.Bucket, 0, len(o.Dates))
	for _, d := range o.Dates {
		b, err := dates.ParseBucket(d)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
