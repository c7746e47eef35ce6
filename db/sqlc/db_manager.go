package sqlc

import (
	"time"

	"github.com/saeidalz13/battleship-sim/db"
)

const (
	QuerierCtxTimeout = time.Second * 10
)

type DbManager struct {
	Analytics *AnalyticsManager
}

func NewDbManager(queries Querier) DbManager {
	return DbManager{
		Analytics: NewAnalyticsManager(queries),
	}
}

// NewQueries picks the placeholder style for driver.
func NewQueries(dbtx DBTX, driver string) *Queries {
	if driver == db.DriverSqlite {
		return NewSqlite(dbtx)
	}
	return New(dbtx)
}
