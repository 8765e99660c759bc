package folio

import "embed"

// EmbeddedAssets contains the stylesheet shipped with folio, served at
// /public/site.css.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
