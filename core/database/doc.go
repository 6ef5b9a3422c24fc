// Package database handles the connection to the run history database.
//
// It wraps GORM to configure MySQL (or SQLite, for local runs) from the application's
// configuration. The connection is optional: commands warn and carry on without history
// when it fails.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("History disabled", zap.Error(err))
//	}
package database
