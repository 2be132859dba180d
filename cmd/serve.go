package cmd

import (
	"log"
	"net/http"

	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/aguilarcarboni/musical-grammar/constants"
	"github.com/aguilarcarboni/musical-grammar/server"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", constants.DefaultServeAddr, "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves validation and analysis over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler := cors.Default().Handler(server.NewRouter())
		log.Printf("listening on %v", serveAddr)
		return http.ListenAndServe(serveAddr, handler)
	},
}
