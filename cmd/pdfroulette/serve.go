package main

import (
	"net/http"

	"github.com/spf13/cobra"

	pdfgin "github.com/bobinette/pdfroulette/gin"
	pdfhttp "github.com/bobinette/pdfroulette/http"
)

func init() {
	RootCmd.AddCommand(&ServeCmd)
}

var ServeCmd = cobra.Command{
	Use:   "serve",
	Short: "Start the http server",
	Run: func(cmd *cobra.Command, args []string) {
		srv := pdfgin.New()
		pdfhttp.RegisterPickerEndpoints(srv, pickerService)

		addr := cfg.HTTP.Addr
		if addr == "" {
			addr = ":1705"
		}

		logger.Print("server started, listening on", addr)
		logger.Fatal(http.ListenAndServe(addr, srv.Handler()))
	},
}
