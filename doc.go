// File: lixenwraith/settings/doc.go

// Package settings loads flat, line-oriented settings files and infers a
// scalar type for every entry.
//
// File format, one entry per line:
//
//	// comment lines start with two slashes
//	port: 8080
//	ratio: 0.75
//	debug: t
//	name: primary
//
// Each value is classified in order: a number that is whole becomes an
// int64, any other number a float64, "true"/"t"/"false"/"f" (any case) a
// bool, and everything else a trimmed string. Lines without a separator and
// lines starting with "//" are skipped.
//
// Quick Start:
//
//	store, err := settings.Load("game.settings")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	port, _ := store.GetInt64("port")
//	debug, _ := store.GetBool("debug")
//
// Custom separator and logging:
//
//	opts := settings.DefaultLoadOptions()
//	opts.Separator = "="
//	opts.Logger = logger
//	store, err := settings.LoadWithOptions("app.env", opts)
//
// Builder:
//
//	store, err := settings.NewBuilder().
//	    WithFile("game.settings").
//	    WithDefaults(map[string]settings.Setting{"lives": settings.NewInt(3)}).
//	    WithRequired("port").
//	    Build()
//
// A Store is not safe for concurrent mutation. Load it once, then read it, or
// guard it externally.
package settings
