package main

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/alecthomas/kingpin.v2"

	"cashbook/ledger"
	"cashbook/models"
	"cashbook/tracing"
)

var (
	database_path = kingpin.Flag("database", "Ledger database").Default("cashbook.db").Short('d').String()
	verbose       = kingpin.Flag("verbose", "Verbosity").Short('v').Bool()
	port          = kingpin.Flag("port", "Port").Short('p').Default("8080").String()
)

func main() {
	kingpin.Parse()
	zerolog.DurationFieldUnit = time.Millisecond
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	shutdown, err := tracing.Init("cashbook")
	if err != nil {
		log.Fatal().Err(err).Msg("Tracing error")
	}
	defer shutdown()

	db, err := models.Connect(*database_path, *verbose)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	service := ledger.New(models.NewStore(db))

	// Run the server
	log.Info().Msgf("Server running on port %s", *port)
	if err := setupServer(service).Run(":" + *port); err != nil {
		log.Fatal().Err(err).Msg("Server Error")
	}
}
