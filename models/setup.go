package models

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type zerologger struct {
	Logger *zerolog.Logger
}

func (z zerologger) LogMode(logger.LogLevel) logger.Interface            { return z }
func (z zerologger) Info(c context.Context, m string, x ...interface{})  { z.Logger.Info().Msg(m) }
func (z zerologger) Warn(c context.Context, m string, x ...interface{})  { z.Logger.Warn().Msg(m) }
func (z zerologger) Error(c context.Context, m string, x ...interface{}) { z.Logger.Error().Msg(m) }
func (z zerologger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	s, r := fc()
	verb := strings.ToLower(strings.Split(s, " ")[0])
	z.Logger.Trace().Int64("rows", r).Dur("duration_ms", time.Since(begin)).Str("verb", verb).Msg(s)
}

// Connect opens the sqlite database at path and migrates the transactions
// table. The returned handle is the only durable state of the service.
func Connect(path string, debug bool) (*gorm.DB, error) {
	db, err := gorm.Open(
		sqlite.Open(path),
		&gorm.Config{
			Logger: zerologger{
				Logger: &log.Logger,
			},
		},
	)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Transaction{}); err != nil {
		return nil, err
	}

	if debug {
		db = db.Debug()
	}
	log.Info().Msgf("Database connected: %s", path)

	return db, nil
}
