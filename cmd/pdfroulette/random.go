package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bobinette/pdfroulette"
	"github.com/bobinette/pdfroulette/services"
)

var (
	randomCategories []string
	randomTags       []string
	randomSearch     string
	randomSource     string
)

func init() {
	RandomCmd.Flags().StringSliceVar(&randomCategories, "categories", nil, "restrict to these categories")
	RandomCmd.Flags().StringSliceVar(&randomTags, "tags", nil, "require all of these tags")
	RandomCmd.Flags().StringVar(&randomSearch, "search", "", "search term matched against title, author and tags")
	RandomCmd.Flags().StringVar(&randomSource, "source", "", "restrict to this source")
	RootCmd.AddCommand(&RandomCmd)
}

var RandomCmd = cobra.Command{
	Use:   "random",
	Short: "Pick a random pdf from the terminal",
	Run: func(cmd *cobra.Command, args []string) {
		filter := pdfroulette.Filter{
			Categories: randomCategories,
			Tags:       randomTags,
			Search:     randomSearch,
			Source:     randomSource,
		}

		pdf, err := pickerService.Random(services.RandomRequest{
			Filter:    filter,
			HasParams: !filter.IsZero(),
		})
		if err != nil {
			logger.Fatal(err)
		}

		fmt.Println(pdf.Title)
		if pdf.Author != "" {
			fmt.Println("by", pdf.Author)
		}
		fmt.Println(pdf.URL)
	},
}
