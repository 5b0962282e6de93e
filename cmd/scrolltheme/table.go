package main

import (
	"fmt"

	"github.com/thatcatcamp/scrolltheme/internal/config"
	"github.com/thatcatcamp/scrolltheme/internal/db"
	"github.com/thatcatcamp/scrolltheme/internal/stopsets"
	"github.com/thatcatcamp/scrolltheme/internal/themes"
)

// initSystemDB opens the stop set database
func initSystemDB() error {
	if err := initApp(); err != nil {
		return err
	}

	dbType := config.GetString("database.type")
	dbPath := config.GetString("database.path")

	return db.InitDB(dbType, dbPath)
}

// loadStopTable resolves the keyframe table named by theme.source. Any error
// here is a configuration error and the caller must not start.
func loadStopTable() (*themes.StopTable, error) {
	switch source := config.GetString("theme.source"); source {
	case "", "builtin":
		return themes.DefaultTable(), nil
	case "file":
		path := config.GetString("theme.file")
		if path == "" {
			return nil, fmt.Errorf("theme.source is file but theme.file is empty")
		}
		f, err := stopsets.LoadFile(path)
		if err != nil {
			return nil, err
		}
		return f.Table()
	case "database":
		if err := db.InitDB(config.GetString("database.type"), config.GetString("database.path")); err != nil {
			return nil, err
		}
		return stopsets.Load(db.GetDB(), config.GetString("theme.stop_set"))
	default:
		return nil, fmt.Errorf("unknown theme.source %q (want builtin, file or database)", source)
	}
}

// mustStopTable loads the table or exits
func mustStopTable() *themes.StopTable {
	table, err := loadStopTable()
	if err != nil {
		exitf("Error loading color stops: %v\n", err)
	}
	return table
}
